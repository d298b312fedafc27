// pressmark/pdf - a library for generating PDF files
// Copyright (C) 2026  The pressmark authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package font

import (
	"slices"

	"seehuhn.de/go/sfnt/glyph"
)

const subsetModulus = 26 * 26 * 26 * 26 * 26 * 26

// subsetTag constructs the six-letter tag (AAAAAA to ZZZZZZ) which marks an
// embedded font as a subset.  The tag is a deterministic function of the
// glyph set, so that re-embedding the same subset yields the same name.
func subsetTag(gg []glyph.ID, numGlyphs int) string {
	gg = slices.Clone(gg)
	slices.Sort(gg)

	// mix the glyph set into a single number
	//
	// 11 is the largest integer which is smaller than 1<<32/subsetModulus
	// and relatively prime to 26.
	X := uint32(numGlyphs)
	for _, g := range gg {
		X = (X*11 + uint32(g)) % subsetModulus
	}

	var buf [6]byte
	for i := range buf {
		buf[i] = 'A' + byte(X%26)
		X /= 26
	}
	return string(buf[:])
}
