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

import "math"

const (
	epsln = 1.0e-10

	// Authalic radius series coefficients, from pj_ell_set.c.
	sixth = 0.1666666666666666667  /* 1/6 */
	ra4   = 0.04722222222222222222 /* 17/360 */
	ra6   = 0.02215608465608465608
)

const (
	enu     = "enu"
	longlat = "longlat"
)

// DeriveConstants resolves the ellipsoid and datum of a parsed spatial
// reference and fills in the constants that depend on them. It is
// idempotent: rerunning it on an already-derived SR changes nothing.
func (sr *SR) DeriveConstants() {
	if sr.NADGrids == "@null" {
		sr.DatumCode = "none"
	}
	if sr.DatumCode != "" && sr.DatumCode != "none" {
		if d, ok := datumDefs[sr.DatumCode]; ok {
			// A named datum implies its canonical shift, so the table
			// overwrites any caller-supplied parameters.
			sr.DatumParams = append([]float64(nil), d.towgs84...)
			sr.Ellps = d.ellipse
			if d.datumName != "" {
				sr.DatumName = d.datumName
			} else {
				sr.DatumName = sr.DatumCode
			}
		}
	}
	if math.IsNaN(sr.A) { // do we have an ellipsoid?
		ellipse, ok := ellipsoidDefs[sr.Ellps]
		if !ok {
			ellipse = ellipsoidDefs["WGS84"]
		}
		if ellipse.a != 0 {
			sr.A = ellipse.a
		}
		if ellipse.b != 0 {
			sr.B = ellipse.b
		}
		if ellipse.rf != 0 {
			sr.Rf = ellipse.rf
		}
		sr.EllipseName = ellipse.ellipseName
	}
	if !math.IsNaN(sr.Rf) && math.IsNaN(sr.B) {
		sr.B = (1.0 - 1.0/sr.Rf) * sr.A
	}
	if sr.Rf == 0 || math.Abs(sr.A-sr.B) < epsln {
		sr.sphere = true
		sr.B = sr.A
	}
	sr.A2 = sr.A * sr.A
	sr.B2 = sr.B * sr.B
	sr.Es = (sr.A2 - sr.B2) / sr.A2 // e ^ 2
	sr.E = math.Sqrt(sr.Es)         // eccentricity
	if sr.Ra {
		// Shrink to the authalic sphere at most once; the sphere has no
		// eccentricity.
		if !sr.raApplied {
			sr.A *= 1 - sr.Es*(sixth+sr.Es*(ra4+sr.Es*ra6))
			sr.raApplied = true
		}
		sr.A2 = sr.A * sr.A
		sr.B2 = sr.B * sr.B
		sr.Es = 0
		sr.E = 0
	}
	sr.Ep2 = (sr.A2 - sr.B2) / sr.B2 // used in geocentric
	if math.IsNaN(sr.K0) {
		sr.K0 = 1.0 // default value
	}
	if sr.Axis == "" {
		sr.Axis = enu
	}
	if sr.datum == nil {
		sr.datum = sr.getDatum()
	}
}
