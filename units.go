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

type unitDef struct {
	toMeter float64
}

// unitDefs maps linear unit names from "+units=" clauses to their size in
// meters.
var unitDefs = map[string]unitDef{
	"km":     {toMeter: 1000.},
	"m":      {toMeter: 1.},
	"dm":     {toMeter: 1. / 10.},
	"cm":     {toMeter: 1. / 100.},
	"mm":     {toMeter: 1. / 1000.},
	"kmi":    {toMeter: 1852.0},
	"in":     {toMeter: 0.0254},
	"ft":     {toMeter: 0.3048},
	"yd":     {toMeter: 0.9144},
	"mi":     {toMeter: 1609.344},
	"fath":   {toMeter: 1.8288},
	"ch":     {toMeter: 20.1168},
	"link":   {toMeter: 0.201168},
	"us-in":  {toMeter: 1. / 39.37},
	"us-ft":  {toMeter: 0.304800609601219},
	"us-yd":  {toMeter: 0.914401828803658},
	"us-ch":  {toMeter: 20.11684023368047},
	"us-mi":  {toMeter: 1609.347218694437},
	"ind-yd": {toMeter: 0.91439523},
	"ind-ft": {toMeter: 0.30479841},
	"ind-ch": {toMeter: 20.11669506},
}
