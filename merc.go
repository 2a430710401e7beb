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

// Merc is a Mercator projection.
func Merc(sr *SR) (forward, inverse Transformer, err error) {
	if math.IsNaN(sr.Long0) {
		sr.Long0 = 0
	}
	con := sr.B / sr.A
	sr.Es = 1 - con*con
	sr.E = math.Sqrt(sr.Es)
	if math.IsNaN(sr.X0) {
		sr.X0 = 0
	}
	if math.IsNaN(sr.Y0) {
		sr.Y0 = 0
	}
	if !math.IsNaN(sr.LatTS) {
		if sr.sphere {
			sr.K0 = math.Cos(sr.LatTS)
		} else {
			sr.K0 = msfnz(sr.E, math.Sin(sr.LatTS), math.Cos(sr.LatTS))
		}
	} else if math.IsNaN(sr.K0) {
		sr.K0 = 1
	}

	// Mercator forward equations--mapping lat,long to x,y.
	forward = func(p geom.Point) (geom.Point, error) {
		lon, lat := p.X, p.Y // radians
		if math.IsNaN(lat) || math.IsNaN(lon) ||
			lat*r2d > 90 || lat*r2d < -90 || lon*r2d > 180 || lon*r2d < -180 {
			return geom.Point{}, fmt.Errorf(
				"in proj.Merc forward: invalid longitude (%g) or latitude (%g)", lon, lat)
		}
		if math.Abs(math.Abs(lat)-halfPi) <= epsln {
			return geom.Point{}, fmt.Errorf("in proj.Merc forward: abs(lat)==pi/2")
		}
		var x, y float64
		if sr.sphere {
			x = sr.X0 + sr.A*sr.K0*adjustLon(lon-sr.Long0)
			y = sr.Y0 + sr.A*sr.K0*math.Log(math.Tan(fortPi+0.5*lat))
		} else {
			sinphi := math.Sin(lat)
			ts := tsfnz(sr.E, lat, sinphi)
			x = sr.X0 + sr.A*sr.K0*adjustLon(lon-sr.Long0)
			y = sr.Y0 - sr.A*sr.K0*math.Log(ts)
		}
		return geom.Point{X: x, Y: y}, nil
	}

	// Mercator inverse equations--mapping x,y to lat/long.
	inverse = func(p geom.Point) (geom.Point, error) {
		x := p.X - sr.X0
		y := p.Y - sr.Y0
		var lon, lat float64
		if sr.sphere {
			lat = halfPi - 2*math.Atan(math.Exp(-y/(sr.A*sr.K0)))
		} else {
			ts := math.Exp(-y / (sr.A * sr.K0))
			var err error
			lat, err = phi2z(sr.E, ts)
			if err != nil {
				return geom.Point{}, err
			}
		}
		lon = adjustLon(sr.Long0 + x/(sr.A*sr.K0))
		return geom.Point{X: lon, Y: lat}, nil
	}
	return forward, inverse, nil
}

func init() {
	Register(Merc, "Mercator", "Popular Visualisation Pseudo Mercator",
		"Mercator_1SP", "Mercator_Auxiliary_Sphere", "merc")
}
