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
	"bytes"
	"errors"
	"io"
	"math"

	"golang.org/x/exp/maps"

	"seehuhn.de/go/postscript/cid"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyph"

	"github.com/pressmark/pdf"
)

// Composite is a TrueType font embedded as a composite (Type 0) font with
// Identity-H encoding.
//
// Character identifiers are assigned sequentially as glyphs are first
// encoded.  Only the glyphs actually used are included in the embedded font
// program; since the subset is arranged in CID order, the CID to glyph
// mapping of the embedded font is the identity.
type Composite struct {
	font *sfnt.Font
	cmap cmap.Subtable
	geom *Geometry

	cids   map[glyph.ID]cid.CID
	glyphs []glyph.ID // original glyph for each CID, in CID order
	text   map[cid.CID][]rune

	ref pdf.Reference
}

var _ Font = (*Composite)(nil)

// NewComposite makes a PDF composite font from a sfnt.Font.
// The font must be a TrueType or OpenType font with glyf outlines.
func NewComposite(info *sfnt.Font) (*Composite, error) {
	if !info.IsGlyf() {
		return nil, errors.New("font: no glyf outlines in font")
	}
	sub, err := info.CMapTable.GetBest()
	if err != nil {
		return nil, err
	}

	q := 1 / float64(info.UnitsPerEm)
	geom := &Geometry{
		Ascent:           float64(info.Ascent) * q,
		Descent:          float64(info.Descent) * q,
		BaseLineDistance: float64(info.Ascent-info.Descent+info.LineGap) * q,
	}

	return &Composite{
		font:   info,
		cmap:   sub,
		geom:   geom,
		cids:   map[glyph.ID]cid.CID{0: 0},
		glyphs: []glyph.ID{0}, // CID 0 is always notdef
		text:   make(map[cid.CID][]rune),
	}, nil
}

// LoadComposite reads a TrueType or OpenType font from r and prepares it for
// embedding as a composite font.
func LoadComposite(r io.Reader) (*Composite, error) {
	info, err := sfnt.Read(r)
	if err != nil {
		return nil, err
	}
	return NewComposite(info)
}

// PostScriptName implements the [Font] interface.
func (f *Composite) PostScriptName() string {
	return f.font.PostScriptName()
}

// Geometry implements the [Font] interface.
func (f *Composite) Geometry() *Geometry {
	return f.geom
}

// Typeset implements the [Font] interface.
func (f *Composite) Typeset(s string, size float64) (*GlyphSeq, error) {
	seq := &GlyphSeq{}
	for _, r := range s {
		gid := f.cmap.Lookup(r)
		if gid == 0 {
			return nil, &UnmappableGlyphError{
				Rune:     r,
				FontName: f.font.PostScriptName(),
			}
		}
		seq.Seq = append(seq.Seq, Glyph{
			GID:     gid,
			Advance: f.font.GlyphWidthPDF(gid) / 1000 * size,
			Text:    []rune{r},
		})
	}
	return seq, nil
}

// AppendEncoded implements the [Font] interface.
func (f *Composite) AppendEncoded(buf pdf.String, seq *GlyphSeq) pdf.String {
	for _, g := range seq.Seq {
		c := f.cidFor(g.GID, g.Text)
		buf = append(buf, byte(c>>8), byte(c))
	}
	return buf
}

// cidFor returns the CID assigned to gid, allocating the next free CID on
// first use.
func (f *Composite) cidFor(gid glyph.ID, text []rune) cid.CID {
	if c, ok := f.cids[gid]; ok {
		return c
	}
	c := cid.CID(len(f.glyphs))
	f.cids[gid] = c
	f.glyphs = append(f.glyphs, gid)
	f.text[c] = text
	return c
}

// Embed implements the [Font] interface.
func (f *Composite) Embed(g *pdf.Graph) (pdf.Reference, error) {
	if f.ref != 0 {
		return f.ref, nil
	}

	postScriptName := f.font.PostScriptName()
	tag := subsetTag(f.glyphs, f.font.NumGlyphs())
	baseFont := tag + "+" + postScriptName

	origFont := f.font.Clone()
	origFont.CMapTable = nil
	origFont.Gdef = nil
	origFont.Gsub = nil
	origFont.Gpos = nil

	// The subset is arranged in CID order, so that the embedded font needs
	// no explicit CIDToGIDMap.
	subsetFont := origFont.Subset(f.glyphs)

	buf := &bytes.Buffer{}
	length1, err := subsetFont.WriteTrueTypePDF(buf)
	if err != nil {
		return 0, err
	}
	fontFile, err := pdf.NewStream(
		pdf.NewDict().Set("Length1", pdf.Integer(length1)),
		buf.Bytes(), &pdf.FilterFlate{})
	if err != nil {
		return 0, err
	}
	fontFileRef := g.Alloc(fontFile)

	q := 1000 / float64(subsetFont.UnitsPerEm)
	flags := pdf.Integer(1 << 2) // symbolic
	if subsetFont.IsFixedPitch() {
		flags |= 1 << 0
	}
	if subsetFont.ItalicAngle != 0 {
		flags |= 1 << 6
	}
	bbox := subsetFont.FontBBoxPDF()
	descriptor := pdf.NewDict().
		Set("Type", pdf.Name("FontDescriptor")).
		Set("FontName", pdf.Name(baseFont)).
		Set("Flags", flags).
		Set("FontBBox", &pdf.Rectangle{
			LLx: math.Floor(bbox.LLx),
			LLy: math.Floor(bbox.LLy),
			URx: math.Ceil(bbox.URx),
			URy: math.Ceil(bbox.URy),
		}).
		Set("ItalicAngle", pdf.Number(subsetFont.ItalicAngle)).
		Set("Ascent", pdf.Integer(math.Round(float64(subsetFont.Ascent)*q))).
		Set("Descent", pdf.Integer(math.Round(float64(subsetFont.Descent)*q))).
		Set("CapHeight", pdf.Integer(math.Round(float64(subsetFont.CapHeight)*q))).
		Set("StemV", pdf.Integer(80)).
		Set("FontFile2", fontFileRef)
	descriptorRef := g.Alloc(descriptor)

	dw := math.Round(subsetFont.GlyphWidthPDF(0))
	ww := make([]cidWidth, len(f.glyphs))
	for i, gid := range f.glyphs {
		ww[i] = cidWidth{CID: cid.CID(i), Width: f.font.GlyphWidthPDF(gid)}
	}

	cidFont := pdf.NewDict().
		Set("Type", pdf.Name("Font")).
		Set("Subtype", pdf.Name("CIDFontType2")).
		Set("BaseFont", pdf.Name(baseFont)).
		Set("CIDSystemInfo", pdf.NewDict().
			Set("Registry", pdf.String("Adobe")).
			Set("Ordering", pdf.String("Identity")).
			Set("Supplement", pdf.Integer(0))).
		Set("FontDescriptor", descriptorRef).
		Set("DW", pdf.Integer(dw)).
		Set("W", encodeWidths(ww, dw)).
		Set("CIDToGIDMap", pdf.Name("Identity"))
	cidFontRef := g.Alloc(cidFont)

	mm := make([]cidMapping, 0, len(f.text))
	for _, c := range maps.Keys(f.text) {
		text := f.text[c]
		if len(text) == 0 {
			continue
		}
		mm = append(mm, cidMapping{Code: uint16(c), Text: text})
	}
	toUnicode, err := toUnicodeStream(mm)
	if err != nil {
		return 0, err
	}
	toUnicodeRef := g.Alloc(toUnicode)

	fontDict := pdf.NewDict().
		Set("Type", pdf.Name("Font")).
		Set("Subtype", pdf.Name("Type0")).
		Set("BaseFont", pdf.Name(baseFont+"-Identity-H")).
		Set("Encoding", pdf.Name("Identity-H")).
		Set("DescendantFonts", pdf.Array{cidFontRef}).
		Set("ToUnicode", toUnicodeRef)
	f.ref = g.Alloc(fontDict)

	return f.ref, nil
}
