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

// UTM is a universal transverse Mercator projection: a transverse
// Mercator with its parameters preset from the zone number.
func UTM(sr *SR) (forward, inverse Transformer, err error) {
	if math.IsNaN(sr.Zone) {
		return nil, nil, fmt.Errorf("in proj.UTM: zone is not specified")
	}
	sr.Lat0 = 0
	sr.Long0 = (6*math.Abs(sr.Zone) - 183) * deg2rad
	sr.X0 = 500000
	if sr.UTMSouth {
		sr.Y0 = 10000000
	} else {
		sr.Y0 = 0
	}
	sr.K0 = 0.9996

	return TMerc(sr)
}

func init() {
	Register(UTM, "Universal Transverse Mercator System", "utm")
}
