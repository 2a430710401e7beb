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
	"strconv"
	"strings"
)

const deg2rad = 0.01745329251994329577

// parseFloat converts s to a float64, substituting NaN when s is not a
// number. A bad value never aborts a parse; the NaN propagates into the
// affected field instead.
func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

const legalAxis = "ewnsud"

func validAxis(s string) bool {
	if len(s) != 3 {
		return false
	}
	for i := 0; i < 3; i++ {
		if !strings.Contains(legalAxis, s[i:i+1]) {
			return false
		}
	}
	return true
}

// projString parses a PROJ4-style "+key=value" definition. Unrecognized
// keys are skipped and angles are stored in radians.
func projString(defData string) *SR {
	sr := NewSR()
	for i, section := range strings.Split(defData, "+") {
		if i == 0 {
			continue // skip everything to the left of the first +
		}
		section = strings.TrimSpace(section)
		split := strings.SplitN(section, "=", 2)
		paramName := strings.Join(strings.Fields(strings.ToLower(split[0])), "")
		paramVal := "true"
		if len(split) == 2 {
			paramVal = strings.TrimSpace(split[1])
		}

		switch paramName {
		case "title":
			sr.Title = paramVal
		case "proj":
			sr.Name = paramVal
		case "units":
			sr.Units = paramVal
			if u, ok := unitDefs[paramVal]; ok {
				sr.ToMeter = u.toMeter
			}
		case "datum":
			sr.DatumCode = paramVal
		case "nadgrids":
			sr.NADGrids = paramVal
		case "ellps":
			sr.Ellps = paramVal
		case "a":
			sr.A = parseFloat(paramVal)
		case "b":
			sr.B = parseFloat(paramVal)
		case "rf":
			sr.Rf = parseFloat(paramVal)
		case "lat_0":
			sr.Lat0 = parseFloat(paramVal) * deg2rad
		case "lat_1":
			sr.Lat1 = parseFloat(paramVal) * deg2rad
		case "lat_2":
			sr.Lat2 = parseFloat(paramVal) * deg2rad
		case "lat_ts":
			sr.LatTS = parseFloat(paramVal) * deg2rad
		case "lon_0":
			sr.Long0 = parseFloat(paramVal) * deg2rad
		case "alpha":
			sr.Alpha = parseFloat(paramVal) * deg2rad
		case "lonc":
			sr.LongC = parseFloat(paramVal) * deg2rad
		case "x_0":
			sr.X0 = parseFloat(paramVal)
		case "y_0":
			sr.Y0 = parseFloat(paramVal)
		case "k_0", "k":
			sr.K0 = parseFloat(paramVal)
		case "r_a":
			sr.Ra = true
		case "zone":
			sr.Zone = parseFloat(paramVal)
		case "south":
			sr.UTMSouth = true
		case "towgs84":
			split := strings.Split(paramVal, ",")
			sr.DatumParams = make([]float64, len(split))
			for j, s := range split {
				sr.DatumParams[j] = parseFloat(s)
			}
		case "to_meter":
			sr.ToMeter = parseFloat(paramVal)
		case "from_greenwich":
			sr.FromGreenwich = parseFloat(paramVal) * deg2rad
		case "pm":
			if pm, ok := primeMeridians[strings.ToLower(paramVal)]; ok {
				sr.FromGreenwich = pm * deg2rad
			} else {
				sr.FromGreenwich = parseFloat(paramVal) * deg2rad
			}
		case "axis":
			if validAxis(paramVal) {
				sr.Axis = paramVal
			}
		case "no_defs":
			sr.NoDefs = true
		default:
			// Unrecognized keys are tolerated, not errors.
		}
	}
	if sr.DatumCode != "" {
		sr.DatumCode = strings.ToLower(sr.DatumCode)
	}
	return sr
}
