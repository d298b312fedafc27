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

package graphics

import (
	"strings"
	"testing"

	"seehuhn.de/go/geom/matrix"

	"github.com/pressmark/pdf"
	"github.com/pressmark/pdf/font/builtin"
)

func TestWriterText(t *testing.T) {
	F, err := builtin.New(builtin.Helvetica)
	if err != nil {
		t.Fatal(err)
	}

	w := NewWriter(NewResources())
	w.TextBegin()
	w.TextSetFont(F, 12)
	w.TextSetLeading(14.4)
	w.TextFirstLine(72, 720)
	w.TextShow("Hello")
	w.TextNextLine()
	w.TextShow("world")
	w.TextEnd()
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	want := strings.Join([]string{
		"BT",
		"/F0 12 Tf",
		"14.4 TL",
		"72 720 Td",
		"(Hello) Tj",
		"T*",
		"(world) Tj",
		"ET",
		"",
	}, "\n")
	if got := w.Content.String(); got != want {
		t.Errorf("wrong content stream:\ngot  %q\nwant %q", got, want)
	}
}

func TestWriterGraphics(t *testing.T) {
	w := NewWriter(NewResources())
	w.PushGraphicsState()
	w.SetFillRGB(1, 0, 0.5)
	w.Rectangle(10, 20, 100, 50)
	w.Fill()
	w.SetLineWidth(2)
	w.SetStrokeGray(0.5)
	w.Rectangle(10, 20, 100, 50)
	w.Stroke()
	w.Transform(matrix.Matrix{100, 0, 0, 50, 72, 600})
	w.DrawXObject(pdf.Reference(7))
	w.PopGraphicsState()
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	want := strings.Join([]string{
		"q",
		"1 0 0.5 rg",
		"10 20 100 50 re",
		"f",
		"2 w",
		"0.5 G",
		"10 20 100 50 re",
		"S",
		"100 0 0 50 72 600 cm",
		"/Im0 Do",
		"Q",
		"",
	}, "\n")
	if got := w.Content.String(); got != want {
		t.Errorf("wrong content stream:\ngot  %q\nwant %q", got, want)
	}
}

func TestWriterStateChecks(t *testing.T) {
	w := NewWriter(NewResources())
	w.TextShow("hi")
	if w.Err == nil {
		t.Error("text operator outside BT/ET not detected")
	}

	w = NewWriter(NewResources())
	w.PopGraphicsState()
	if w.Err == nil {
		t.Error("unbalanced Q not detected")
	}

	w = NewWriter(NewResources())
	w.TextBegin()
	if err := w.Close(); err == nil {
		t.Error("unclosed text object not detected")
	}

	w = NewWriter(NewResources())
	w.PushGraphicsState()
	if err := w.Close(); err == nil {
		t.Error("unbalanced q not detected")
	}
}

func TestResources(t *testing.T) {
	F1, err := builtin.New(builtin.Helvetica)
	if err != nil {
		t.Fatal(err)
	}
	F2, err := builtin.New(builtin.Courier)
	if err != nil {
		t.Fatal(err)
	}

	res := NewResources()
	if name := res.AddFont(F1); name != "F0" {
		t.Errorf("got %q, want F0", name)
	}
	if name := res.AddFont(F2); name != "F1" {
		t.Errorf("got %q, want F1", name)
	}
	if name := res.AddFont(F1); name != "F0" {
		t.Errorf("re-adding a font: got %q, want F0", name)
	}
	if name := res.AddXObject(pdf.Reference(9)); name != "Im0" {
		t.Errorf("got %q, want Im0", name)
	}

	g := pdf.NewGraph()
	ref, err := res.Embed(g)
	if err != nil {
		t.Fatal(err)
	}
	dict := g.Get(ref).(*pdf.Dict)
	fonts, _ := dict.Get("Font")
	if fonts.(*pdf.Dict).Len() != 2 {
		t.Error("wrong number of fonts")
	}
	xobjs, _ := dict.Get("XObject")
	if got, _ := xobjs.(*pdf.Dict).Get("Im0"); got != pdf.Reference(9) {
		t.Error("wrong XObject entry")
	}

	ref2, err := res.Embed(g)
	if err != nil {
		t.Fatal(err)
	}
	if ref2 != ref {
		t.Error("Embed is not idempotent")
	}
}
