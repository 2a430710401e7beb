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

type datumType int

const (
	datum3Param datumType = iota + 1
	datum7Param
	datumGridShift
	datumWGS84 // WGS84 or equivalent
	datumNone
)

const secToRad = 4.84813681109535993589914102357e-6

// datum anchors an ellipsoid relative to the Earth. Datum-shift transforms
// consume it; this package only constructs it.
type datum struct {
	typ           datumType
	params        []float64
	a, b, es, ep2 float64
	nadGrids      string
}

// getDatum builds the datum sub-object from the resolved ellipsoid and
// shift parameters. The 7-parameter rotation terms are converted from
// arc-seconds and ppm on a private copy, leaving sr.DatumParams as parsed.
func (sr *SR) getDatum() *datum {
	d := &datum{typ: datumWGS84}
	if sr.DatumCode == "" || sr.DatumCode == "none" {
		d.typ = datumNone
	}
	if len(sr.DatumParams) > 0 {
		d.params = append([]float64(nil), sr.DatumParams...)
		if d.params[0] != 0 || d.params[1] != 0 || d.params[2] != 0 {
			d.typ = datum3Param
		}
		if len(d.params) >= 7 {
			if d.params[3] != 0 || d.params[4] != 0 || d.params[5] != 0 ||
				d.params[6] != 0 {
				d.typ = datum7Param
				d.params[3] *= secToRad
				d.params[4] *= secToRad
				d.params[5] *= secToRad
				d.params[6] = (d.params[6] / 1000000.0) + 1.0
			}
		}
	}
	if sr.NADGrids != "" && sr.NADGrids != "@null" {
		d.typ = datumGridShift
		d.nadGrids = sr.NADGrids
	}
	d.a = sr.A
	d.b = sr.B
	d.es = sr.Es
	d.ep2 = sr.Ep2
	return d
}
