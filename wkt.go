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
	"regexp"
	"strings"
)

// wktNode matches a bracketed WKT node, KEYWORD[content].
var wktNode = regexp.MustCompile(`(?s)^(\w+)\[(.*)\]$`)

// splitWKTArgs splits node content into its top-level comma-separated
// arguments, counting bracket depth so nested nodes stay intact. Commas
// inside quoted names that are not also inside brackets are not protected.
func splitWKTArgs(content string) []string {
	var args []string
	depth, start := 0, 0
	for i := 0; i < len(content); i++ {
		switch content[i] {
		case '[':
			depth++
		case ']':
			depth--
		case ',':
			if depth == 0 {
				args = append(args, strings.TrimSpace(content[start:i]))
				start = i + 1
			}
		}
	}
	return append(args, strings.TrimSpace(content[start:]))
}

func stripQuotes(s string) string {
	return strings.Trim(s, `"`)
}

// wkt recursively parses a WKT node into sr, depth-first, so nested nodes
// may overwrite fields their parents set. Input that does not match the
// KEYWORD[content] shape leaves sr unchanged.
func wkt(sr *SR, def string) {
	m := wktNode.FindStringSubmatch(strings.TrimSpace(def))
	if m == nil {
		return
	}
	keyword, content := m[1], m[2]
	args := splitWKTArgs(content)

	// The first argument is the node's name, except for TOWGS84 whose
	// arguments are all values.
	var name string
	if keyword != "TOWGS84" && len(args) > 0 {
		name = stripQuotes(args[0])
		args = args[1:]
	}

	switch keyword {
	case "LOCAL_CS":
		sr.Name = "identity"
		sr.local = true
		sr.SRSCode = name
	case "GEOGCS":
		sr.Name = longlat
		sr.GeoCSCode = name
		if sr.SRSCode == "" {
			sr.SRSCode = name
		}
	case "PROJCS":
		sr.SRSCode = name
	case "GEOCCS":
		// Geocentric systems are recognized but not yet mapped to fields.
	case "PROJECTION":
		if short, ok := wktProjections[name]; ok {
			sr.Name = short
		} else {
			sr.Name = name
		}
	case "DATUM":
		sr.DatumName = name
	case "LOCAL_DATUM":
		sr.DatumCode = "none"
	case "SPHEROID":
		sr.Ellps = name
		if len(args) > 0 {
			sr.A = parseFloat(stripQuotes(args[0]))
		}
		if len(args) > 1 {
			sr.Rf = parseFloat(stripQuotes(args[1]))
		}
	case "PRIMEM":
		// The offset keeps the units it was given in; it is not forced
		// to radians here.
		if len(args) > 0 {
			sr.FromGreenwich = parseFloat(stripQuotes(args[0]))
		}
	case "UNIT":
		sr.Units = strings.ToLower(name)
		if len(args) > 0 {
			sr.ToMeter = parseFloat(stripQuotes(args[0]))
		}
	case "PARAMETER":
		if len(args) > 0 {
			wktParameter(sr, strings.ToLower(name), parseFloat(stripQuotes(args[0])))
		}
	case "TOWGS84":
		sr.DatumParams = make([]float64, len(args))
		for i, a := range args {
			sr.DatumParams[i] = parseFloat(stripQuotes(a))
		}
	case "AXIS":
		if len(args) > 0 {
			wktAxis(sr, strings.ToLower(name), stripQuotes(args[0]))
		}
	default:
		// Unknown keywords are tolerated; their arguments may still hold
		// nested nodes worth visiting.
	}

	for _, a := range args {
		if wktNode.MatchString(strings.TrimSpace(a)) {
			wkt(sr, a)
		}
	}
}

// wktParameter maps a PARAMETER node onto the corresponding projection
// field, converting angles to radians. Unrecognized names are skipped.
func wktParameter(sr *SR, name string, val float64) {
	switch name {
	case "standard_parallel_1":
		sr.Lat1 = val * deg2rad
	case "standard_parallel_2":
		sr.Lat2 = val * deg2rad
	case "false_easting":
		sr.X0 = val
	case "false_northing":
		sr.Y0 = val
	case "latitude_of_origin", "central_parallel", "latitude_of_center":
		sr.Lat0 = val * deg2rad
	case "longitude_of_center":
		sr.LongC = val * deg2rad
	case "central_meridian":
		sr.Long0 = val * deg2rad
	case "scale_factor":
		sr.K0 = val
	case "azimuth":
		sr.Alpha = val * deg2rad
	}
}

// wktAxis applies one AXIS node to sr.Axis: the direction is mapped to its
// compass letter and written at the position the axis name selects.
func wktAxis(sr *SR, name, direction string) {
	var c byte
	switch strings.ToUpper(direction) {
	case "EAST":
		c = 'e'
	case "WEST":
		c = 'w'
	case "NORTH":
		c = 'n'
	case "SOUTH":
		c = 's'
	case "UP":
		c = 'u'
	case "DOWN":
		c = 'd'
	default:
		c = ' '
	}
	if sr.Axis == "" {
		sr.Axis = enu
	}
	var pos int
	switch {
	case strings.HasPrefix(name, "x") || name == "lon" || name == "long" || name == "easting":
		pos = 0
	case strings.HasPrefix(name, "y") || name == "lat" || name == "northing":
		pos = 1
	case strings.HasPrefix(name, "z") || name == "up" || name == "elevation":
		pos = 2
	default:
		return
	}
	b := []byte(sr.Axis)
	b[pos] = c
	sr.Axis = string(b)
}
