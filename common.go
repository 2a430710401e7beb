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
)

const (
	twoPi  = math.Pi * 2
	halfPi = math.Pi / 2
	fortPi = math.Pi / 4
	r2d    = 57.29577951308232088

	// sPi is slightly greater than math.Pi, so values that exceed the
	// -180..180 degree range by a tiny amount don't get wrapped. This
	// prevents points that have drifted from their original location along
	// the 180th meridian (due to floating point error) from changing their
	// sign.
	sPi = 3.14159265359
)

func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}

// adjustLon wraps a longitude into the -π..π range.
func adjustLon(x float64) float64 {
	if math.Abs(x) <= sPi {
		return x
	}
	return x - sign(x)*twoPi
}

func msfnz(eccent, sinphi, cosphi float64) float64 {
	con := eccent * sinphi
	return cosphi / math.Sqrt(1-con*con)
}

func tsfnz(eccent, phi, sinphi float64) float64 {
	con := eccent * sinphi
	com := 0.5 * eccent
	con = math.Pow((1-con)/(1+con), com)
	return math.Tan(0.5*(halfPi-phi)) / con
}

func phi2z(eccent, ts float64) (float64, error) {
	eccnth := 0.5 * eccent
	phi := halfPi - 2*math.Atan(ts)
	for i := 0; i <= 15; i++ {
		con := eccent * math.Sin(phi)
		dphi := halfPi - 2*math.Atan(ts*math.Pow((1-con)/(1+con), eccnth)) - phi
		phi += dphi
		if math.Abs(dphi) <= 0.0000000001 {
			return phi, nil
		}
	}
	return math.NaN(), fmt.Errorf("phi2z has no convergence")
}

func asinz(x float64) float64 {
	if math.Abs(x) > 1 {
		x = sign(x)
	}
	return math.Asin(x)
}

// Meridional distance series terms, from GCTP.

func e0fn(x float64) float64 {
	return 1 - 0.25*x*(1+x/16*(3+1.25*x))
}

func e1fn(x float64) float64 {
	return 0.375 * x * (1 + 0.25*x*(1+0.46875*x))
}

func e2fn(x float64) float64 {
	return 0.05859375 * x * x * (1 + 0.75*x)
}

func e3fn(x float64) float64 {
	return x * x * x * (35.0 / 3072.0)
}

func mlfn(e0, e1, e2, e3, phi float64) float64 {
	return e0*phi - e1*math.Sin(2*phi) + e2*math.Sin(4*phi) - e3*math.Sin(6*phi)
}
