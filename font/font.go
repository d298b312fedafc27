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

// Package font provides fonts for embedding into PDF files.
//
// Two kinds of fonts are supported: the built-in PDF fonts with metrics
// compiled into the library (see the subpackage builtin), and TrueType fonts
// embedded as composite fonts with a glyph subset (see [Composite]).
package font

import (
	"seehuhn.de/go/sfnt/glyph"

	"github.com/pressmark/pdf"
)

// Glyph is a single glyph of laid-out text.
type Glyph struct {
	// GID identifies the glyph within the font.  For fonts which are not
	// glyph-addressable this is zero.
	GID glyph.ID

	// Advance is the horizontal advance in text space units, at the size
	// the text was laid out for.
	Advance float64

	// Text is the unicode text represented by the glyph.
	Text []rune
}

// GlyphSeq is a sequence of laid-out glyphs.
type GlyphSeq struct {
	Seq []Glyph
}

// TotalWidth returns the total advance width of the sequence, in text space
// units.
func (s *GlyphSeq) TotalWidth() float64 {
	var w float64
	for _, g := range s.Seq {
		w += g.Advance
	}
	return w
}

// Geometry describes the vertical extent of a font.  All values are
// fractions of the font size.
type Geometry struct {
	Ascent  float64
	Descent float64 // negative for descenders below the baseline

	// BaseLineDistance is the default distance between the baselines of
	// consecutive lines of text.
	BaseLineDistance float64
}

// Font is a font ready for use in a PDF file.
//
// A Font accumulates state while text is encoded: only glyphs which were
// actually encoded are included when the font is embedded.  [Font.Embed]
// must therefore be called after all text using the font has been encoded.
//
// Fonts are not safe for concurrent use.
type Font interface {
	// PostScriptName returns the PostScript name of the font.
	PostScriptName() string

	// Geometry returns the font metrics needed for line layout.
	Geometry() *Geometry

	// Typeset converts a string into a sequence of glyphs with advance
	// widths for the given font size.  Runes which cannot be represented
	// by the font result in an error.
	Typeset(s string, size float64) (*GlyphSeq, error)

	// AppendEncoded appends the content stream encoding of seq to buf and
	// registers the glyphs for inclusion in the embedded font.
	AppendEncoded(buf pdf.String, seq *GlyphSeq) pdf.String

	// Embed adds the font dictionaries to the graph and returns a
	// reference to the font dictionary.  Repeated calls return the same
	// reference, so that a document can be finalised more than once.
	Embed(g *pdf.Graph) (pdf.Reference, error)
}
