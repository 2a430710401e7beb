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

import "github.com/ctessum/geom"

// LongLat is a longitude-latitude (i.e., no projection) projection. It is
// also bound, as "identity", to local coordinate systems that require no
// transform at all.
func LongLat(sr *SR) (forward, inverse Transformer, err error) {
	identity := func(p geom.Point) (geom.Point, error) {
		return p, nil
	}
	return identity, identity, nil
}

func init() {
	Register(LongLat, "longlat", "identity")
}
