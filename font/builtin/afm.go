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

package builtin

import (
	"io"

	"golang.org/x/text/encoding/charmap"

	"seehuhn.de/go/postscript/afm"
	"seehuhn.de/go/postscript/type1/names"
)

// LoadAFM reads an Adobe Font Metrics file and converts it into a metric
// table for use with WinAnsiEncoding.  Glyphs whose name does not correspond
// to a single WinAnsi character are ignored.
func LoadAFM(r io.Reader) (*Metrics, error) {
	info, err := afm.Read(r)
	if err != nil {
		return nil, err
	}

	m := &Metrics{
		FontName:     info.FontName,
		Ascent:       info.Ascent,
		Descent:      info.Descent,
		CapHeight:    info.CapHeight,
		IsFixedPitch: info.IsFixedPitch,
		Widths:       make(map[byte]float64),
	}
	for name, glyph := range info.Glyphs {
		rr := []rune(names.ToUnicode(name, info.FontName))
		if len(rr) != 1 {
			continue
		}
		code, ok := charmap.Windows1252.EncodeRune(rr[0])
		if !ok {
			continue
		}
		m.Widths[code] = glyph.WidthX
	}
	return m, nil
}
