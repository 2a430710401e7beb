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
	"strings"
)

// wktMarkers are the top-level keywords whose presence routes a definition
// to the WKT parser.
var wktMarkers = []string{"GEOGCS", "GEOCCS", "PROJCS", "LOCAL_CS"}

func testWKT(code string) bool {
	for _, m := range wktMarkers {
		if strings.Contains(code, m) {
			return true
		}
	}
	return false
}

func testProj(code string) bool {
	return len(code) >= 1 && code[0] == '+'
}

// classifyCode normalizes an authority-qualified code and splits it into
// its authority and numeric identifier.
func classifyCode(code string) (auth Authority, projNumber, normalized string) {
	normalized = strings.ToUpper(strings.TrimLeft(code, ":"))
	switch {
	case strings.HasPrefix(normalized, "EPSG") && len(normalized) > 5:
		return EPSG, normalized[5:], normalized
	case strings.HasPrefix(normalized, "IGNF") && len(normalized) > 5:
		return IGNF, normalized[5:], normalized
	case strings.HasPrefix(normalized, "CRS") && len(normalized) > 4:
		return CRS, normalized[4:], normalized
	}
	return NoAuthority, normalized, normalized
}

// Parse parses a WKT- or PROJ4-formatted definition, or resolves an
// authority-qualified code such as "EPSG:4326" that has been registered
// with AddDef, into a spatial reference. The returned SR is owned by the
// caller. A projection transform is bound to the result when the
// projection name resolves in the registry; otherwise the miss is reported
// to Logger and the SR is returned unbound.
func Parse(code string) (*SR, error) {
	if testWKT(code) {
		sr := NewSR()
		wkt(sr, code)
		sr.DeriveConstants()
		sr.bind()
		return sr, nil
	}
	if testProj(code) {
		sr := projString(code)
		sr.DeriveConstants()
		sr.bind()
		return sr, nil
	}
	auth, projNumber, normalized := classifyCode(code)
	sr := lookupDef(code)
	if sr == nil {
		sr = lookupDef(normalized)
	}
	if sr != nil {
		sr.SRSCode = normalized
		sr.SRSAuth = auth
		sr.SRSProjNumber = projNumber
		return sr, nil
	}
	return nil, fmt.Errorf("proj: unsupported projection definition '%s'; only proj4, "+
		"WKT, and registered codes are supported", code)
}
