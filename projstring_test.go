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
	"testing"

	"github.com/gonum/floats"
)

// TestProjStringKeys checks that every recognized key sets exactly the
// documented fields and nothing else.
func TestProjStringKeys(t *testing.T) {
	tests := []struct {
		def  string
		want func(*SR)
	}{
		{"+title=long/lat:WGS84", func(sr *SR) { sr.Title = "long/lat:WGS84" }},
		{"+proj=merc", func(sr *SR) { sr.Name = "merc" }},
		{"+units=degrees", func(sr *SR) { sr.Units = "degrees" }},
		{"+units=ft", func(sr *SR) { sr.Units = "ft"; sr.ToMeter = 0.3048 }},
		{"+datum=WGS84", func(sr *SR) { sr.DatumCode = "wgs84" }},
		{"+nadgrids=@conus", func(sr *SR) { sr.NADGrids = "@conus" }},
		{"+ellps=GRS80", func(sr *SR) { sr.Ellps = "GRS80" }},
		{"+a=6378137", func(sr *SR) { sr.A = 6378137 }},
		{"+b=6356752.3", func(sr *SR) { sr.B = 6356752.3 }},
		{"+rf=298.257", func(sr *SR) { sr.Rf = 298.257 }},
		{"+lat_0=45", func(sr *SR) { sr.Lat0 = 45 * deg2rad }},
		{"+lat_1=33", func(sr *SR) { sr.Lat1 = 33 * deg2rad }},
		{"+lat_2=45", func(sr *SR) { sr.Lat2 = 45 * deg2rad }},
		{"+lat_ts=0.5", func(sr *SR) { sr.LatTS = 0.5 * deg2rad }},
		{"+lon_0=-93", func(sr *SR) { sr.Long0 = -93 * deg2rad }},
		{"+alpha=2.5", func(sr *SR) { sr.Alpha = 2.5 * deg2rad }},
		{"+lonc=7.25", func(sr *SR) { sr.LongC = 7.25 * deg2rad }},
		{"+x_0=500000", func(sr *SR) { sr.X0 = 500000 }},
		{"+y_0=-100", func(sr *SR) { sr.Y0 = -100 }},
		{"+k_0=0.9996", func(sr *SR) { sr.K0 = 0.9996 }},
		{"+k=2", func(sr *SR) { sr.K0 = 2 }},
		{"+r_a", func(sr *SR) { sr.Ra = true }},
		{"+zone=15", func(sr *SR) { sr.Zone = 15 }},
		{"+south", func(sr *SR) { sr.UTMSouth = true }},
		{"+towgs84=1,2,3", func(sr *SR) { sr.DatumParams = []float64{1, 2, 3} }},
		{"+towgs84=446.448,-125.157,542.06,0.1502,0.247,0.8421,-20.4894", func(sr *SR) {
			sr.DatumParams = []float64{446.448, -125.157, 542.06, 0.1502, 0.247, 0.8421, -20.4894}
		}},
		{"+to_meter=0.3048", func(sr *SR) { sr.ToMeter = 0.3048 }},
		{"+from_greenwich=2.337", func(sr *SR) { sr.FromGreenwich = 2.337 * deg2rad }},
		{"+pm=paris", func(sr *SR) { sr.FromGreenwich = 2.337229166667 * deg2rad }},
		{"+pm=-17.666666666667", func(sr *SR) { sr.FromGreenwich = -17.666666666667 * deg2rad }},
		{"+axis=wnu", func(sr *SR) { sr.Axis = "wnu" }},
		{"+axis=abc", func(sr *SR) {}}, // invalid letters are ignored
		{"+no_defs", func(sr *SR) { sr.NoDefs = true }},
		{"+not_a_real_key=banana", func(sr *SR) {}}, // unknown keys are ignored
		{"+a=banana", func(sr *SR) {}},              // NaN sentinel; NewSR floats are already NaN
	}
	for _, test := range tests {
		got := projString(test.def)
		want := NewSR()
		test.want(want)
		if !got.Equal(want, 0) {
			t.Errorf("%s: got %+v, want %+v", test.def, got, want)
		}
	}
}

func TestProjStringWhitespace(t *testing.T) {
	sr := projString("+ PROJ = merc + lat_ts = 0.5")
	if sr.Name != "merc" {
		t.Errorf("name: got %q, want %q", sr.Name, "merc")
	}
	if !floats.EqualWithinAbs(sr.LatTS, 0.5*deg2rad, 1.e-12) {
		t.Errorf("latTS: got %g, want %g", sr.LatTS, 0.5*deg2rad)
	}
}

// TestLatTSRadians checks that angle-valued keys are stored in radians.
func TestLatTSRadians(t *testing.T) {
	sr, err := Parse("+proj=merc +lat_ts=0.5 +ellps=sphere")
	if err != nil {
		t.Fatal(err)
	}
	if want := 0.5 * math.Pi / 180; !floats.EqualWithinAbs(sr.LatTS, want, 1.e-12) {
		t.Errorf("latTS: got %g, want %g", sr.LatTS, want)
	}
	if !sr.IsSphere() {
		t.Error("ellps=sphere should give a spherical reference")
	}
}

func TestAxisValidation(t *testing.T) {
	sr, err := Parse("+proj=longlat +ellps=WGS84 +axis=abc")
	if err != nil {
		t.Fatal(err)
	}
	if sr.Axis != "enu" {
		t.Errorf("invalid axis: got %q, want %q", sr.Axis, "enu")
	}
	sr, err = Parse("+proj=longlat +ellps=WGS84 +axis=wns")
	if err != nil {
		t.Fatal(err)
	}
	if sr.Axis != "wns" {
		t.Errorf("axis: got %q, want %q", sr.Axis, "wns")
	}
}

// TestNaNSentinel checks that a bad numeric value poisons its field but
// does not abort the parse. Constant derivation later replaces the unset
// semi-major axis with the WGS84 fallback.
func TestNaNSentinel(t *testing.T) {
	sr := projString("+proj=merc +a=banana +b=6378137")
	if !math.IsNaN(sr.A) {
		t.Errorf("a: got %g, want NaN", sr.A)
	}
	if sr.B != 6378137 {
		t.Errorf("b: got %g, want %g", sr.B, 6378137.)
	}
	sr.DeriveConstants()
	if sr.A != 6378137 {
		t.Errorf("derived a: got %g, want %g", sr.A, 6378137.)
	}
}
