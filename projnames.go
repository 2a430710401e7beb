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

// wktProjections maps the free-text projection names found in WKT
// PROJECTION nodes to canonical short codes. Names with no entry pass
// through unchanged and are resolved against the registry directly.
var wktProjections = map[string]string{
	"Lambert Tangential Conformal Conic Projection": "lcc",
	"Lambert_Conformal_Conic":                       "lcc",
	"Lambert_Conformal_Conic_1SP":                   "lcc",
	"Lambert_Conformal_Conic_2SP":                   "lcc",
	"Mercator":                                      "merc",
	"Mercator_1SP":                                  "merc",
	"Mercator_Auxiliary_Sphere":                     "merc",
	"Popular Visualisation Pseudo Mercator":         "merc",
	"Popular_Visualisation_Pseudo_Mercator":         "merc",
	"Transverse_Mercator":                           "tmerc",
	"Transverse Mercator":                           "tmerc",
	"Universal Transverse Mercator System":          "utm",
}
