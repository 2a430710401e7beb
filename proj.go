/*
Copyright © 2017 the Proj authors.
This file is part of Proj.

Proj is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Proj is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Proj.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package proj parses textual coordinate reference system (CRS)
// definitions, either PROJ-style "+key=value" strings or WKT trees, into
// resolved spatial reference objects ready for use with projection
// transforms.
package proj

import (
	"fmt"
	"math"
	"reflect"

	"github.com/ctessum/geom"
	"github.com/gonum/floats"
	"github.com/sirupsen/logrus"
)

// Logger receives non-fatal diagnostics, such as reports of projection
// names with no registered transform. It may be replaced before the first
// call to Parse.
var Logger = logrus.StandardLogger()

// Authority is the naming authority a spatial reference code belongs to.
type Authority int

// Recognized naming authorities.
const (
	NoAuthority Authority = iota
	EPSG
	IGNF
	CRS
)

func (a Authority) String() string {
	switch a {
	case EPSG:
		return "EPSG"
	case IGNF:
		return "IGNF"
	case CRS:
		return "CRS"
	}
	return "none"
}

// A Transformer converts a point between coordinate systems.
type Transformer func(geom.Point) (geom.Point, error)

// A TransformerFunc initializes a projection from a spatial reference,
// returning its forward and inverse Transformers.
type TransformerFunc func(*SR) (forward, inverse Transformer, err error)

// SR holds information about a spatial reference (projection).
// It is filled in by the parsers, completed by DeriveConstants, and should
// be treated as read-only afterwards.
type SR struct {
	SRSCode       string
	SRSAuth       Authority
	SRSProjNumber string
	Name          string // canonical projection short code
	Title         string
	GeoCSCode     string

	DatumCode   string
	DatumName   string
	DatumParams []float64
	NADGrids    string

	Ellps       string
	EllipseName string
	A, B, Rf    float64
	A2, B2      float64
	Es, E, Ep2  float64

	Lat0, Lat1, Lat2, LatTS float64
	Long0, LongC            float64
	Alpha                   float64
	X0, Y0, K0              float64
	Zone                    float64
	UTMSouth                bool
	Ra                      bool

	Units         string
	ToMeter       float64
	FromGreenwich float64
	Axis          string
	NoDefs        bool

	sphere    bool
	local     bool
	raApplied bool
	datum     *datum

	forward, inverse Transformer
}

// NewSR initializes an SR object and sets fields to default values.
func NewSR() *SR {
	sr := new(SR)
	// Initialize floats to NaN. NaN doubles as the not-a-number sentinel
	// for values that fail to parse.
	v := reflect.ValueOf(sr).Elem()
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		if f.Type().Kind() == reflect.Float64 {
			f.SetFloat(math.NaN())
		}
	}
	sr.ToMeter = 1.
	return sr
}

// Bound reports whether a transform capability has been attached to sr.
// Forward and Inverse must not be used when Bound returns false.
func (sr *SR) Bound() bool {
	return sr.forward != nil && sr.inverse != nil
}

// Forward converts p from geographic coordinates to this spatial reference.
func (sr *SR) Forward(p geom.Point) (geom.Point, error) {
	if sr.forward == nil {
		return geom.Point{}, fmt.Errorf("proj: no transform is bound for projection %q", sr.Name)
	}
	return sr.forward(p)
}

// Inverse converts p from this spatial reference to geographic coordinates.
func (sr *SR) Inverse(p geom.Point) (geom.Point, error) {
	if sr.inverse == nil {
		return geom.Point{}, fmt.Errorf("proj: no transform is bound for projection %q", sr.Name)
	}
	return sr.inverse(p)
}

// IsLocal reports whether sr is a local (engineering) coordinate system
// that requires no transform.
func (sr *SR) IsLocal() bool { return sr.local }

// IsSphere reports whether the reference ellipsoid is a perfect sphere.
func (sr *SR) IsSphere() bool { return sr.sphere }

// copy returns a caller-owned copy of sr with a freshly bound transform
// capability, so definitions cached in the defs table are never shared.
func (sr *SR) copy() *SR {
	o := *sr
	if sr.DatumParams != nil {
		o.DatumParams = append([]float64(nil), sr.DatumParams...)
	}
	if sr.datum != nil {
		d := *sr.datum
		if d.params != nil {
			d.params = append([]float64(nil), d.params...)
		}
		o.datum = &d
	}
	o.forward, o.inverse = nil, nil
	o.bind()
	return &o
}

// Equal determines whether spatial references sr and sr2 are equal to
// within ulp floating point units in the last place.
func (sr *SR) Equal(sr2 *SR, ulp uint) bool {
	v1 := reflect.ValueOf(sr).Elem()
	v2 := reflect.ValueOf(sr2).Elem()
	return equal(v1, v2, ulp)
}

func equal(v1, v2 reflect.Value, ulp uint) bool {
	for i := 0; i < v1.NumField(); i++ {
		f1 := v1.Field(i)
		f2 := v2.Field(i)
		switch ft := f1.Type().Kind(); ft {
		case reflect.Float64:
			fv1 := f1.Float()
			fv2 := f2.Float()
			if math.IsNaN(fv1) != math.IsNaN(fv2) {
				return false
			}
			if !math.IsNaN(fv1) && !floats.EqualWithinULP(fv1, fv2, ulp) {
				return false
			}
		case reflect.Int:
			if f1.Int() != f2.Int() {
				return false
			}
		case reflect.Bool:
			if f1.Bool() != f2.Bool() {
				return false
			}
		case reflect.String:
			if f1.String() != f2.String() {
				return false
			}
		case reflect.Ptr:
			if f1.IsNil() != f2.IsNil() {
				return false
			}
			if !f1.IsNil() && !equal(reflect.Indirect(f1), reflect.Indirect(f2), ulp) {
				return false
			}
		case reflect.Slice:
			if f1.Len() != f2.Len() {
				return false
			}
			for j := 0; j < f1.Len(); j++ {
				if !floats.EqualWithinULP(f1.Index(j).Float(), f2.Index(j).Float(), ulp) {
					return false
				}
			}
		case reflect.Func:
			// Bound capabilities are not part of structural equality.
		default:
			panic(fmt.Errorf("proj: unsupported field type %s", ft))
		}
	}
	return true
}
