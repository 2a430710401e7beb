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

// primeMeridians maps named prime meridians to their offsets from
// Greenwich in degrees. Values matching no name are parsed as literal
// numeric offsets instead.
var primeMeridians = map[string]float64{
	"greenwich": 0.0,
	"lisbon":    -9.131906111111,
	"paris":     2.337229166667,
	"bogota":    -74.080916666667,
	"madrid":    -3.687938888889,
	"rome":      12.452333333333,
	"bern":      7.439583333333,
	"jakarta":   106.807719444444,
	"ferro":     -17.666666666667,
	"brussels":  4.367975,
	"stockholm": 18.058277777778,
	"athens":    23.7163375,
	"oslo":      10.722916666667,
}
