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

package proj

import (
	"math"
	"reflect"
	"testing"
)

// TestDeriveIdempotent checks that rederiving an already-derived spatial
// reference is a no-op, bit for bit. The authalic-radius branch is the
// interesting case: without its guard the semi-major axis would shrink on
// every rerun.
func TestDeriveIdempotent(t *testing.T) {
	defs := []string{
		"+proj=merc +ellps=WGS84",
		"+proj=longlat +ellps=WGS84 +r_a",
		"+proj=lcc +lat_1=33 +lat_2=45 +datum=NAD83",
		"+proj=longlat +datum=ire65",
		"+proj=merc +a=6378137 +b=6378137 +nadgrids=@null",
	}
	for _, def := range defs {
		once := projString(def)
		once.DeriveConstants()
		many := projString(def)
		many.DeriveConstants()
		many.DeriveConstants()
		many.DeriveConstants()
		if !once.Equal(many, 0) {
			t.Errorf("%s: rederiving changed the result:\nonce: %+v\nmany: %+v",
				def, once, many)
		}
	}
}

// TestSphereInvariant checks that rf == 0 forces a perfect sphere.
func TestSphereInvariant(t *testing.T) {
	sr := projString("+proj=merc +a=6370997 +rf=0")
	sr.DeriveConstants()
	if !sr.IsSphere() {
		t.Error("rf=0 should give a sphere")
	}
	if sr.B != sr.A {
		t.Errorf("b: got %g, want %g", sr.B, sr.A)
	}
	if sr.Es != 0 {
		t.Errorf("es: got %g, want 0", sr.Es)
	}
}

func TestAuthalicRadius(t *testing.T) {
	sr := projString("+proj=longlat +ellps=WGS84 +r_a")
	sr.DeriveConstants()
	// The authalic radius of the WGS84 ellipsoid is about 6371007.18 m.
	if sr.A < 6371000 || sr.A > 6371015 {
		t.Errorf("authalic a: got %g", sr.A)
	}
	if sr.Es != 0 || sr.E != 0 {
		t.Errorf("authalic sphere should have no eccentricity, got es=%g e=%g", sr.Es, sr.E)
	}
}

// TestDatumTableWins checks that a recognized datum code overrides
// caller-supplied shift parameters with the table's canonical shift.
func TestDatumTableWins(t *testing.T) {
	sr := projString("+proj=longlat +datum=ch1903 +towgs84=1,2,3")
	sr.DeriveConstants()
	want := []float64{674.374, 15.056, 405.346}
	if !reflect.DeepEqual(sr.DatumParams, want) {
		t.Errorf("datum params: got %v, want %v", sr.DatumParams, want)
	}
	if sr.Ellps != "bessel" {
		t.Errorf("ellps: got %q, want %q", sr.Ellps, "bessel")
	}
	if sr.DatumName != "swiss" {
		t.Errorf("datum name: got %q, want %q", sr.DatumName, "swiss")
	}
	if sr.A != 6377397.155 {
		t.Errorf("a: got %g, want %g", sr.A, 6377397.155)
	}
}

func TestUnknownEllipsoidFallsBackToWGS84(t *testing.T) {
	sr := projString("+proj=longlat +ellps=nosuch")
	sr.DeriveConstants()
	if sr.A != 6378137.0 || sr.Rf != 298.257223563 {
		t.Errorf("got a=%g rf=%g, want WGS84 values", sr.A, sr.Rf)
	}
	if sr.EllipseName != "WGS 84" {
		t.Errorf("ellipse name: got %q", sr.EllipseName)
	}
}

func TestSemiMinorFromFlattening(t *testing.T) {
	sr := projString("+proj=longlat +a=6378137 +rf=298.257223563")
	sr.DeriveConstants()
	want := (1 - 1/298.257223563) * 6378137
	if sr.B != want {
		t.Errorf("b: got %g, want %g", sr.B, want)
	}
	if sr.IsSphere() {
		t.Error("an ellipsoid with rf=298.26 is not a sphere")
	}
}

func TestNullGridForcesNoDatum(t *testing.T) {
	sr := projString("+proj=merc +a=6378137 +b=6378137 +datum=WGS84 +nadgrids=@null")
	sr.DeriveConstants()
	if sr.DatumCode != "none" {
		t.Errorf("datum code: got %q, want %q", sr.DatumCode, "none")
	}
	if sr.datum == nil || sr.datum.typ != datumNone {
		t.Errorf("datum type: got %+v, want none", sr.datum)
	}
}

func TestDeriveDefaults(t *testing.T) {
	sr := projString("+proj=longlat +ellps=WGS84")
	sr.DeriveConstants()
	if sr.K0 != 1.0 {
		t.Errorf("k0: got %g, want 1", sr.K0)
	}
	if sr.Axis != "enu" {
		t.Errorf("axis: got %q, want %q", sr.Axis, "enu")
	}
}

func TestEccentricityConstants(t *testing.T) {
	sr := projString("+proj=longlat +ellps=WGS84")
	sr.DeriveConstants()
	if sr.A2 != sr.A*sr.A || sr.B2 != sr.B*sr.B {
		t.Error("a2/b2 do not match a/b")
	}
	if want := (sr.A2 - sr.B2) / sr.A2; sr.Es != want {
		t.Errorf("es: got %g, want %g", sr.Es, want)
	}
	if want := math.Sqrt(sr.Es); sr.E != want {
		t.Errorf("e: got %g, want %g", sr.E, want)
	}
	if want := (sr.A2 - sr.B2) / sr.B2; sr.Ep2 != want {
		t.Errorf("ep2: got %g, want %g", sr.Ep2, want)
	}
}

// TestSevenParamConversion checks that the rotation and scale terms of a
// 7-parameter shift are converted on the datum object but left as parsed
// on the spatial reference itself.
func TestSevenParamConversion(t *testing.T) {
	sr := projString("+proj=longlat +ellps=airy +towgs84=446.448,-125.157,542.06,0.1502,0.247,0.8421,-20.4894")
	sr.DeriveConstants()
	if sr.datum == nil {
		t.Fatal("datum not constructed")
	}
	if sr.datum.typ != datum7Param {
		t.Errorf("datum type: got %v, want %v", sr.datum.typ, datum7Param)
	}
	if sr.DatumParams[3] != 0.1502 {
		t.Errorf("sr params were converted in place: %v", sr.DatumParams)
	}
	if want := 0.1502 * secToRad; sr.datum.params[3] != want {
		t.Errorf("rx: got %g, want %g", sr.datum.params[3], want)
	}
	if want := -20.4894/1000000.0 + 1.0; sr.datum.params[6] != want {
		t.Errorf("scale: got %g, want %g", sr.datum.params[6], want)
	}
}
