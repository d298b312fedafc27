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

import "fmt"

// UnmappableGlyphError indicates that a rune has no glyph in the font, or no
// code in the font's encoding.
type UnmappableGlyphError struct {
	Rune     rune
	FontName string
}

func (err *UnmappableGlyphError) Error() string {
	return fmt.Sprintf("font: no glyph for %q in %s", err.Rune, err.FontName)
}

// MissingGlyphDataError indicates that a glyph exists in the font's encoding,
// but the corresponding metric data is not available.
type MissingGlyphDataError struct {
	Rune     rune
	FontName string
}

func (err *MissingGlyphDataError) Error() string {
	return fmt.Sprintf("font: no metric data for %q in %s", err.Rune, err.FontName)
}
