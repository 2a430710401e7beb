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

// datumDefEntry ties a named datum to its ellipsoid and its canonical
// Helmert shift to WGS84 (3 or 7 parameters), or to its shift grids.
type datumDefEntry struct {
	towgs84   []float64
	ellipse   string
	datumName string
	nadgrids  []string
}

// datumDefs is the process-wide datum table, keyed by lower-case datum
// codes.
var datumDefs = map[string]datumDefEntry{
	"wgs84": {
		towgs84:   []float64{0., 0., 0.},
		ellipse:   "WGS84",
		datumName: "WGS84",
	},
	"ch1903": {
		towgs84:   []float64{674.374, 15.056, 405.346},
		ellipse:   "bessel",
		datumName: "swiss",
	},
	"ggrs87": {
		towgs84:   []float64{-199.87, 74.79, 246.62},
		ellipse:   "GRS80",
		datumName: "Greek_Geodetic_Reference_System_1987",
	},
	"nad83": {
		towgs84:   []float64{0., 0., 0.},
		ellipse:   "GRS80",
		datumName: "North_American_Datum_1983",
	},
	"nad27": {
		nadgrids:  []string{"@conus", "@alaska", "@ntv2_0.gsb", "@ntv1_can.dat"},
		ellipse:   "clrk66",
		datumName: "North_American_Datum_1927",
	},
	"potsdam": {
		towgs84:   []float64{606.0, 23.0, 413.0},
		ellipse:   "bessel",
		datumName: "Potsdam Rauenberg 1950 DHDN",
	},
	"carthage": {
		towgs84:   []float64{-263.0, 6.0, 431.0},
		ellipse:   "clark80",
		datumName: "Carthage 1934 Tunisia",
	},
	"hermannskogel": {
		towgs84:   []float64{653.0, -212.0, 449.0},
		ellipse:   "bessel",
		datumName: "Hermannskogel",
	},
	"ire65": {
		towgs84:   []float64{482.530, -130.596, 564.557, -1.042, -0.214, -0.631, 8.15},
		ellipse:   "mod_airy",
		datumName: "Ireland 1965",
	},
	"rassadiran": {
		towgs84:   []float64{-133.63, -157.5, -158.62},
		ellipse:   "intl",
		datumName: "Rassadiran",
	},
	"nzgd49": {
		towgs84:   []float64{59.47, -5.04, 187.44, 0.47, -0.1, 1.024, -4.5993},
		ellipse:   "intl",
		datumName: "New Zealand Geodetic Datum 1949",
	},
	"osgb36": {
		towgs84:   []float64{446.448, -125.157, 542.060, 0.1502, 0.2470, 0.8421, -20.4894},
		ellipse:   "airy",
		datumName: "Airy 1830",
	},
	"s_jtsk": {
		towgs84:   []float64{589, 76, 480},
		ellipse:   "bessel",
		datumName: "S-JTSK (Ferro)",
	},
	"beduaram": {
		towgs84:   []float64{-106, -87, 188},
		ellipse:   "clrk80",
		datumName: "Beduaram",
	},
	"gunung_segara": {
		towgs84:   []float64{-403, 684, 41},
		ellipse:   "bessel",
		datumName: "Gunung Segara Jakarta",
	},
	"rnb72": {
		towgs84:   []float64{106.869, -52.2978, 103.724, -0.33657, 0.456955, -1.84218, 1},
		ellipse:   "intl",
		datumName: "Reseau National Belge 1972",
	},
}
