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
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pressmark/pdf"
	"github.com/pressmark/pdf/font"
)

func TestGet(t *testing.T) {
	compiled := []string{
		Helvetica, HelveticaBold, HelveticaOblique, HelveticaBoldOblique,
		Courier, CourierBold, CourierOblique, CourierBoldOblique,
		TimesRoman, TimesBold,
	}
	for _, fontName := range compiled {
		m, err := Get(fontName)
		if err != nil {
			t.Errorf("Get(%q): %v", fontName, err)
			continue
		}
		if m.FontName != fontName {
			t.Errorf("Get(%q) returned metrics for %q", fontName, m.FontName)
		}
		if len(m.Widths) == 0 {
			t.Errorf("Get(%q): no widths", fontName)
		}
	}

	var ncErr *NotCompiledError
	for _, fontName := range []string{TimesItalic, Symbol, ZapfDingbats, "NoSuchFont"} {
		_, err := Get(fontName)
		if !errors.As(err, &ncErr) {
			t.Errorf("Get(%q): got %v, want *NotCompiledError", fontName, err)
		}
	}
}

func TestTypeset(t *testing.T) {
	F, err := New(Courier)
	if err != nil {
		t.Fatal(err)
	}

	seq, err := F.Typeset("abc", 10)
	if err != nil {
		t.Fatal(err)
	}
	// all Courier glyphs are 600/1000 units wide
	for i, g := range seq.Seq {
		if g.Advance != 6 {
			t.Errorf("glyph %d: advance %f, want 6", i, g.Advance)
		}
	}
	if w := seq.TotalWidth(); w != 18 {
		t.Errorf("TotalWidth() = %f, want 18", w)
	}
}

func TestTypesetErrors(t *testing.T) {
	F, err := New(Helvetica)
	if err != nil {
		t.Fatal(err)
	}

	// not in WinAnsiEncoding
	_, err = F.Typeset("漢", 10)
	var unmappable *font.UnmappableGlyphError
	if !errors.As(err, &unmappable) {
		t.Errorf("got %v, want *font.UnmappableGlyphError", err)
	}

	// in WinAnsiEncoding, but outside the compiled metric table
	_, err = F.Typeset("€", 10)
	var missing *font.MissingGlyphDataError
	if !errors.As(err, &missing) {
		t.Errorf("got %v, want *font.MissingGlyphDataError", err)
	}
}

func TestEmbed(t *testing.T) {
	F, err := New(Helvetica)
	if err != nil {
		t.Fatal(err)
	}
	seq, err := F.Typeset("AC", 10)
	if err != nil {
		t.Fatal(err)
	}
	F.AppendEncoded(nil, seq)

	g := pdf.NewGraph()
	ref, err := F.Embed(g)
	if err != nil {
		t.Fatal(err)
	}

	dict := g.Get(ref).(*pdf.Dict)
	if got, _ := dict.Get("BaseFont"); got != pdf.Name("Helvetica") {
		t.Errorf("wrong BaseFont %v", got)
	}
	if got, _ := dict.Get("Encoding"); got != pdf.Name("WinAnsiEncoding") {
		t.Errorf("wrong Encoding %v", got)
	}
	if got, _ := dict.Get("FirstChar"); got != pdf.Integer('A') {
		t.Errorf("wrong FirstChar %v", got)
	}
	if got, _ := dict.Get("LastChar"); got != pdf.Integer('C') {
		t.Errorf("wrong LastChar %v", got)
	}
	widths, _ := dict.Get("Widths")
	want := pdf.Array{pdf.Integer(667), pdf.Integer(667), pdf.Integer(722)}
	if diff := cmp.Diff(want, widths); diff != "" {
		t.Errorf("wrong Widths (-want +got):\n%s", diff)
	}

	ref2, err := F.Embed(g)
	if err != nil {
		t.Fatal(err)
	}
	if ref2 != ref {
		t.Error("Embed is not idempotent")
	}
}

func TestLoadAFM(t *testing.T) {
	const testAFM = `StartFontMetrics 4.1
FontName Example-Regular
FullName Example Regular
FamilyName Example
Weight Regular
ItalicAngle 0
IsFixedPitch false
FontBBox -100 -200 1000 900
CapHeight 700
XHeight 500
Ascender 720
Descender -210
StartCharMetrics 3
C 65 ; WX 640 ; N A ; B 10 0 630 700 ;
C 97 ; WX 480 ; N a ; B 30 -10 450 510 ;
C -1 ; WX 560 ; N Euro ; B 20 -10 540 690 ;
EndCharMetrics
EndFontMetrics
`
	m, err := LoadAFM(strings.NewReader(testAFM))
	if err != nil {
		t.Fatal(err)
	}
	if m.FontName != "Example-Regular" {
		t.Errorf("wrong font name %q", m.FontName)
	}
	if w := m.Widths['A']; w != 640 {
		t.Errorf("width of A is %f, want 640", w)
	}
	if w := m.Widths['a']; w != 480 {
		t.Errorf("width of a is %f, want 480", w)
	}
	// the Euro sign is code 128 in WinAnsiEncoding
	if w := m.Widths[0x80]; w != 560 {
		t.Errorf("width of Euro is %f, want 560", w)
	}

	F := NewFromMetrics(m)
	if _, err := F.Typeset("Aa€", 12); err != nil {
		t.Errorf("Typeset failed: %v", err)
	}
}
