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
	"math"

	"golang.org/x/text/encoding/charmap"

	"github.com/pressmark/pdf"
	"github.com/pressmark/pdf/font"
)

// Font is a built-in PDF text font, used with WinAnsiEncoding.
// Use [New] or [NewFromMetrics] to create a Font.
type Font struct {
	metrics *Metrics
	geom    *font.Geometry

	used [256]bool
	ref  pdf.Reference
}

var _ font.Font = (*Font)(nil)

// New returns the built-in font with the given PostScript name.  The metric
// table for the font must be compiled in.
func New(fontName string) (*Font, error) {
	m, err := Get(fontName)
	if err != nil {
		return nil, err
	}
	return NewFromMetrics(m), nil
}

// NewFromMetrics creates a font from a metric table, e.g. one loaded with
// [LoadAFM].
func NewFromMetrics(m *Metrics) *Font {
	return &Font{
		metrics: m,
		geom: &font.Geometry{
			Ascent:           m.Ascent / 1000,
			Descent:          m.Descent / 1000,
			BaseLineDistance: 1.2,
		},
	}
}

// PostScriptName implements the [font.Font] interface.
func (f *Font) PostScriptName() string {
	return f.metrics.FontName
}

// Geometry implements the [font.Font] interface.
func (f *Font) Geometry() *font.Geometry {
	return f.geom
}

// Typeset implements the [font.Font] interface.
func (f *Font) Typeset(s string, size float64) (*font.GlyphSeq, error) {
	seq := &font.GlyphSeq{}
	for _, r := range s {
		code, ok := charmap.Windows1252.EncodeRune(r)
		if !ok {
			return nil, &font.UnmappableGlyphError{
				Rune:     r,
				FontName: f.metrics.FontName,
			}
		}
		w, ok := f.metrics.Widths[code]
		if !ok {
			return nil, &font.MissingGlyphDataError{
				Rune:     r,
				FontName: f.metrics.FontName,
			}
		}
		seq.Seq = append(seq.Seq, font.Glyph{
			Advance: w / 1000 * size,
			Text:    []rune{r},
		})
	}
	return seq, nil
}

// AppendEncoded implements the [font.Font] interface.
func (f *Font) AppendEncoded(buf pdf.String, seq *font.GlyphSeq) pdf.String {
	for _, g := range seq.Seq {
		if len(g.Text) == 0 {
			continue
		}
		code, _ := charmap.Windows1252.EncodeRune(g.Text[0])
		f.used[code] = true
		buf = append(buf, code)
	}
	return buf
}

// Embed implements the [font.Font] interface.  The font program itself is
// not embedded; viewers supply the built-in fonts.
func (f *Font) Embed(g *pdf.Graph) (pdf.Reference, error) {
	if f.ref != 0 {
		return f.ref, nil
	}

	dict := pdf.NewDict().
		Set("Type", pdf.Name("Font")).
		Set("Subtype", pdf.Name("Type1")).
		Set("BaseFont", pdf.Name(f.metrics.FontName)).
		Set("Encoding", pdf.Name("WinAnsiEncoding"))

	// The Widths array covers exactly the codes which were used.
	first, last, any := 256, -1, false
	for code, used := range f.used {
		if used {
			if code < first {
				first = code
			}
			last = code
			any = true
		}
	}
	if any {
		widths := make(pdf.Array, 0, last-first+1)
		for code := first; code <= last; code++ {
			widths = append(widths,
				pdf.Integer(math.Round(f.metrics.Widths[byte(code)])))
		}
		dict.Set("FirstChar", pdf.Integer(first)).
			Set("LastChar", pdf.Integer(last)).
			Set("Widths", widths)
	}

	f.ref = g.Alloc(dict)
	return f.ref, nil
}
