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

import "strings"

// projections maps canonical projection names to their initializers.
// Registration must happen before the first call to Parse; after that the
// map is treated as read-only, so no locking is needed.
var projections map[string]TransformerFunc

// Register makes a projection available for binding under the given names.
// It is intended to be called from init functions of projection
// implementations.
func Register(t TransformerFunc, names ...string) {
	if projections == nil {
		projections = make(map[string]TransformerFunc)
	}
	for _, n := range names {
		projections[strings.ToLower(n)] = t
	}
}

// bind looks the projection up by name, initializes it, and attaches its
// forward and inverse transformers to sr. A miss or a failed initialization
// is reported to Logger and leaves sr unbound; it is not an error.
func (sr *SR) bind() {
	t, ok := projections[strings.ToLower(sr.Name)]
	if !ok {
		Logger.WithField("projection", sr.Name).Warnf(
			"proj: could not find transform for projection %q", sr.Name)
		return
	}
	forward, inverse, err := t(sr)
	if err != nil {
		Logger.WithField("projection", sr.Name).Warnf(
			"proj: initializing projection %q: %v", sr.Name, err)
		return
	}
	sr.forward, sr.inverse = forward, inverse
}
