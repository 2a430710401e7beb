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
	"fmt"
	"math"

	"github.com/ctessum/geom"
)

// LCC is a Lambert Conformal Conic projection.
func LCC(sr *SR) (forward, inverse Transformer, err error) {
	if math.IsNaN(sr.Lat2) {
		sr.Lat2 = sr.Lat1 // the single-parallel form
	}
	if math.IsNaN(sr.Lat0) {
		sr.Lat0 = 0
	}
	if math.IsNaN(sr.Long0) {
		sr.Long0 = 0
	}
	if math.IsNaN(sr.K0) {
		sr.K0 = 1
	}
	if math.IsNaN(sr.X0) {
		sr.X0 = 0
	}
	if math.IsNaN(sr.Y0) {
		sr.Y0 = 0
	}
	// Standard parallels cannot be equal and on opposite sides of the
	// equator.
	if math.Abs(sr.Lat1+sr.Lat2) < epsln {
		return nil, nil, fmt.Errorf("in proj.LCC: standard parallels cannot be equal " +
			"and on opposite sides of the equator")
	}

	temp := sr.B / sr.A
	e := math.Sqrt(1 - temp*temp)

	sin1 := math.Sin(sr.Lat1)
	cos1 := math.Cos(sr.Lat1)
	ms1 := msfnz(e, sin1, cos1)
	ts1 := tsfnz(e, sr.Lat1, sin1)

	sin2 := math.Sin(sr.Lat2)
	cos2 := math.Cos(sr.Lat2)
	ms2 := msfnz(e, sin2, cos2)
	ts2 := tsfnz(e, sr.Lat2, sin2)

	ts0 := tsfnz(e, sr.Lat0, math.Sin(sr.Lat0))

	var ns float64
	if math.Abs(sr.Lat1-sr.Lat2) > epsln {
		ns = math.Log(ms1/ms2) / math.Log(ts1/ts2)
	} else {
		ns = sin1
	}
	if math.IsNaN(ns) {
		ns = sin1
	}
	f0 := ms1 / (ns * math.Pow(ts1, ns))
	rh := sr.A * f0 * math.Pow(ts0, ns)
	if sr.Title == "" {
		sr.Title = "Lambert Conformal Conic"
	}

	// Lambert Conformal Conic forward equations--mapping lat,long to x,y.
	forward = func(p geom.Point) (geom.Point, error) {
		lon, lat := p.X, p.Y
		// singular cases:
		if math.Abs(2*math.Abs(lat)-math.Pi) <= epsln {
			lat = sign(lat) * (halfPi - 2*epsln)
		}
		con := math.Abs(math.Abs(lat) - halfPi)
		var rh1 float64
		if con > epsln {
			ts := tsfnz(e, lat, math.Sin(lat))
			rh1 = sr.A * f0 * math.Pow(ts, ns)
		} else {
			con = lat * ns
			if con <= 0 {
				return geom.Point{}, fmt.Errorf("in proj.LCC forward: point cannot be projected")
			}
			rh1 = 0
		}
		theta := ns * adjustLon(lon-sr.Long0)
		x := sr.K0*(rh1*math.Sin(theta)) + sr.X0
		y := sr.K0*(rh-rh1*math.Cos(theta)) + sr.Y0
		return geom.Point{X: x, Y: y}, nil
	}

	// Lambert Conformal Conic inverse equations--mapping x,y to lat/long.
	inverse = func(p geom.Point) (geom.Point, error) {
		var rh1, con float64
		x := (p.X - sr.X0) / sr.K0
		y := rh - (p.Y-sr.Y0)/sr.K0
		if ns > 0 {
			rh1 = math.Sqrt(x*x + y*y)
			con = 1
		} else {
			rh1 = -math.Sqrt(x*x + y*y)
			con = -1
		}
		theta := 0.
		if rh1 != 0 {
			theta = math.Atan2(con*x, con*y)
		}
		var lat float64
		if rh1 != 0 || ns > 0 {
			con = 1 / ns
			ts := math.Pow(rh1/(sr.A*f0), con)
			var err error
			lat, err = phi2z(e, ts)
			if err != nil {
				return geom.Point{}, err
			}
		} else {
			lat = -halfPi
		}
		lon := adjustLon(theta/ns + sr.Long0)
		return geom.Point{X: lon, Y: lat}, nil
	}
	return forward, inverse, nil
}

func init() {
	Register(LCC, "Lambert Tangential Conformal Conic Projection",
		"Lambert_Conformal_Conic", "Lambert_Conformal_Conic_1SP",
		"Lambert_Conformal_Conic_2SP", "lcc")
}
