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

// TMerc is a transverse Mercator projection.
func TMerc(sr *SR) (forward, inverse Transformer, err error) {
	if math.IsNaN(sr.Lat0) {
		sr.Lat0 = 0
	}
	if math.IsNaN(sr.Long0) {
		sr.Long0 = 0
	}
	if math.IsNaN(sr.X0) {
		sr.X0 = 0
	}
	if math.IsNaN(sr.Y0) {
		sr.Y0 = 0
	}
	e0 := e0fn(sr.Es)
	e1 := e1fn(sr.Es)
	e2 := e2fn(sr.Es)
	e3 := e3fn(sr.Es)
	ml0 := sr.A * mlfn(e0, e1, e2, e3, sr.Lat0)

	// Transverse Mercator forward: long/lat (radians) to x/y.
	forward = func(p geom.Point) (geom.Point, error) {
		lon, lat := p.X, p.Y
		deltaLon := adjustLon(lon - sr.Long0)
		sinPhi := math.Sin(lat)
		cosPhi := math.Cos(lat)
		var x, y, con float64

		if sr.sphere {
			b := cosPhi * math.Sin(deltaLon)
			if math.Abs(math.Abs(b)-1) < 0.0000000001 {
				return geom.Point{}, fmt.Errorf("in proj.TMerc forward: point projects into infinity")
			}
			x = 0.5 * sr.A * sr.K0 * math.Log((1+b)/(1-b))
			con = math.Acos(cosPhi * math.Cos(deltaLon) / math.Sqrt(1-b*b))
			if lat < 0 {
				con = -con
			}
			y = sr.A * sr.K0 * (con - sr.Lat0)
		} else {
			al := cosPhi * deltaLon
			als := al * al
			c := sr.Ep2 * cosPhi * cosPhi
			tq := math.Tan(lat)
			t := tq * tq
			con = 1 - sr.Es*sinPhi*sinPhi
			n := sr.A / math.Sqrt(con)
			ml := sr.A * mlfn(e0, e1, e2, e3, lat)

			x = sr.K0*n*al*(1+als/6*(1-t+c+als/20*(5-18*t+t*t+72*c-58*sr.Ep2))) + sr.X0
			y = sr.K0*(ml-ml0+n*tq*als*(0.5+als/24*(5-t+9*c+4*c*c+als/30*(61-58*t+t*t+600*c-330*sr.Ep2)))) + sr.Y0
		}
		return geom.Point{X: x, Y: y}, nil
	}

	// Transverse Mercator inverse: x/y to long/lat.
	inverse = func(p geom.Point) (geom.Point, error) {
		var con, phi, deltaPhi float64
		var lon, lat float64
		const maxIter = 6

		if sr.sphere {
			f := math.Exp(p.X / (sr.A * sr.K0))
			g := 0.5 * (f - 1/f)
			temp := sr.Lat0 + p.Y/(sr.A*sr.K0)
			h := math.Cos(temp)
			con = math.Sqrt((1 - h*h) / (1 + g*g))
			lat = asinz(con)
			if temp < 0 {
				lat = -lat
			}
			if g == 0 && h == 0 {
				lon = sr.Long0
			} else {
				lon = adjustLon(math.Atan2(g, h) + sr.Long0)
			}
		} else { // ellipsoidal form
			x := p.X - sr.X0
			y := p.Y - sr.Y0

			con = (ml0 + y/sr.K0) / sr.A
			phi = con
			for i := 0; ; i++ {
				deltaPhi = (con+e1*math.Sin(2*phi)-e2*math.Sin(4*phi)+e3*math.Sin(6*phi))/e0 - phi
				phi += deltaPhi
				if math.Abs(deltaPhi) <= epsln {
					break
				}
				if i >= maxIter {
					return geom.Point{}, fmt.Errorf("in proj.TMerc inverse: latitude iteration did not converge")
				}
			}
			if math.Abs(phi) < halfPi {
				sinPhi := math.Sin(phi)
				cosPhi := math.Cos(phi)
				tanPhi := math.Tan(phi)
				c := sr.Ep2 * cosPhi * cosPhi
				cs := c * c
				t := tanPhi * tanPhi
				ts := t * t
				con = 1 - sr.Es*sinPhi*sinPhi
				n := sr.A / math.Sqrt(con)
				r := n * (1 - sr.Es) / con
				d := x / (n * sr.K0)
				ds := d * d
				lat = phi - (n*tanPhi*ds/r)*(0.5-ds/24*(5+3*t+10*c-4*cs-9*sr.Ep2-ds/30*(61+90*t+298*c+45*ts-252*sr.Ep2-3*cs)))
				lon = adjustLon(sr.Long0 + d*(1-ds/6*(1+2*t+c-ds/20*(5-2*c+28*t-3*cs+8*sr.Ep2+24*ts)))/cosPhi)
			} else {
				lat = halfPi * sign(y)
				lon = sr.Long0
			}
		}
		return geom.Point{X: lon, Y: lat}, nil
	}
	return forward, inverse, nil
}

func init() {
	Register(TMerc, "Transverse_Mercator", "Transverse Mercator", "tmerc")
}
