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

import "fmt"

// wgs84Def is the well-known default geographic definition; Parse("WGS84")
// is always available as a target for datum shifts.
const wgs84Def = "+title=long/lat:WGS84 +proj=longlat +ellps=WGS84 +datum=WGS84 +units=degrees"

// defs maps names to definition strings. Parsing is deferred until first
// use so projections registered in init functions are always visible.
var defs = map[string]string{
	"WGS84":     wgs84Def,
	"EPSG:4326": wgs84Def,
	"EPSG:4269": "+title=long/lat:NAD83 +proj=longlat +a=6378137.0 +b=6356752.31414036 +ellps=GRS80 +datum=NAD83 +units=degrees",
	"EPSG:3857": "+title=WGS 84 / Pseudo-Mercator +proj=merc +a=6378137 +b=6378137 +lat_ts=0.0 +lon_0=0.0 +x_0=0.0 +y_0=0 +k=1.0 +units=m +nadgrids=@null +no_defs",
}

// defCache holds the parsed form of entries in defs. Entries are never
// handed out directly; Parse copies them.
var defCache = map[string]*SR{}

// AddDef registers a definition string under a name, so that later calls
// to Parse can resolve the name. Like the projection registry, definitions
// are expected to be registered before the first Parse call from any other
// goroutine.
func AddDef(name, def string) error {
	sr, err := Parse(def)
	if err != nil {
		return fmt.Errorf("proj: registering definition %q: %v", name, err)
	}
	defs[name] = def
	defCache[name] = sr
	return nil
}

func lookupDef(code string) *SR {
	if sr, ok := defCache[code]; ok {
		return sr.copy()
	}
	def, ok := defs[code]
	if !ok {
		return nil
	}
	sr, err := Parse(def)
	if err != nil {
		return nil
	}
	defCache[code] = sr
	return sr.copy()
}
