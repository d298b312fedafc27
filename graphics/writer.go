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

// Package graphics builds PDF content streams.
package graphics

import (
	"bytes"
	"errors"
	"fmt"

	"seehuhn.de/go/geom/matrix"

	"github.com/pressmark/pdf"
	"github.com/pressmark/pdf/font"
)

// Writer writes a sequence of PDF content stream operators.
//
// The first error encountered is stored in Err; once set, subsequent
// operator calls do nothing.  The error is also returned by [Writer.Close].
type Writer struct {
	Content   *bytes.Buffer
	Resources *Resources
	Err       error

	inText      bool
	stackDepth  int
	currentFont font.Font
	fontSize    float64
}

// NewWriter creates a content stream writer using the given resource
// dictionary.
func NewWriter(res *Resources) *Writer {
	return &Writer{
		Content:   &bytes.Buffer{},
		Resources: res,
	}
}

// Close verifies that the content stream is balanced and returns the first
// error encountered while writing.
func (w *Writer) Close() error {
	if w.Err != nil {
		return w.Err
	}
	if w.inText {
		return errors.New("graphics: unclosed text object")
	}
	if w.stackDepth != 0 {
		return errors.New("graphics: unbalanced graphics state stack")
	}
	return nil
}

// num formats a number for use in the content stream.
func num(x float64) string {
	return pdf.Format(pdf.Number(x))
}

// PushGraphicsState saves the current graphics state.
func (w *Writer) PushGraphicsState() {
	if w.Err != nil {
		return
	}
	w.stackDepth++
	fmt.Fprintln(w.Content, "q")
}

// PopGraphicsState restores the previously saved graphics state.
func (w *Writer) PopGraphicsState() {
	if w.Err != nil {
		return
	}
	if w.stackDepth == 0 {
		w.Err = errors.New("graphics: graphics state stack is empty")
		return
	}
	w.stackDepth--
	fmt.Fprintln(w.Content, "Q")
}

// Transform applies the coordinate transformation m to user space.
func (w *Writer) Transform(m matrix.Matrix) {
	if w.Err != nil {
		return
	}
	fmt.Fprintln(w.Content,
		num(m[0]), num(m[1]), num(m[2]), num(m[3]), num(m[4]), num(m[5]), "cm")
}

// SetLineWidth sets the line width for stroking.
func (w *Writer) SetLineWidth(width float64) {
	if w.Err != nil {
		return
	}
	fmt.Fprintln(w.Content, num(width), "w")
}

// SetFillRGB sets the fill colour in the DeviceRGB colour space.
func (w *Writer) SetFillRGB(r, g, b float64) {
	if w.Err != nil {
		return
	}
	fmt.Fprintln(w.Content, num(r), num(g), num(b), "rg")
}

// SetStrokeRGB sets the stroke colour in the DeviceRGB colour space.
func (w *Writer) SetStrokeRGB(r, g, b float64) {
	if w.Err != nil {
		return
	}
	fmt.Fprintln(w.Content, num(r), num(g), num(b), "RG")
}

// SetFillGray sets the fill colour in the DeviceGray colour space.
func (w *Writer) SetFillGray(g float64) {
	if w.Err != nil {
		return
	}
	fmt.Fprintln(w.Content, num(g), "g")
}

// SetStrokeGray sets the stroke colour in the DeviceGray colour space.
func (w *Writer) SetStrokeGray(g float64) {
	if w.Err != nil {
		return
	}
	fmt.Fprintln(w.Content, num(g), "G")
}

// Rectangle appends a rectangle to the current path.
func (w *Writer) Rectangle(x, y, width, height float64) {
	if w.Err != nil {
		return
	}
	fmt.Fprintln(w.Content, num(x), num(y), num(width), num(height), "re")
}

// Fill fills the current path using the nonzero winding rule.
func (w *Writer) Fill() {
	if w.Err != nil {
		return
	}
	fmt.Fprintln(w.Content, "f")
}

// Stroke strokes the current path.
func (w *Writer) Stroke() {
	if w.Err != nil {
		return
	}
	fmt.Fprintln(w.Content, "S")
}

// DrawXObject paints the XObject stored under ref, e.g. an image.  The
// XObject is painted into the unit square; use [Writer.Transform] to
// position and scale it.
func (w *Writer) DrawXObject(ref pdf.Reference) {
	if w.Err != nil {
		return
	}
	name := w.Resources.AddXObject(ref)
	fmt.Fprintln(w.Content, pdf.Format(name), "Do")
}

// TextBegin starts a text object.
func (w *Writer) TextBegin() {
	if w.Err != nil {
		return
	}
	if w.inText {
		w.Err = errors.New("graphics: nested text object")
		return
	}
	w.inText = true
	fmt.Fprintln(w.Content, "BT")
}

// TextEnd closes the current text object.
func (w *Writer) TextEnd() {
	if w.Err != nil {
		return
	}
	if !w.inText {
		w.Err = errors.New("graphics: ET outside text object")
		return
	}
	w.inText = false
	fmt.Fprintln(w.Content, "ET")
}

// TextSetFont selects the font and font size for subsequent text.
func (w *Writer) TextSetFont(F font.Font, size float64) {
	if !w.check() {
		return
	}
	w.currentFont = F
	w.fontSize = size
	name := w.Resources.AddFont(F)
	fmt.Fprintln(w.Content, pdf.Format(name), num(size), "Tf")
}

// TextSetLeading sets the distance between consecutive baselines.
func (w *Writer) TextSetLeading(leading float64) {
	if !w.check() {
		return
	}
	fmt.Fprintln(w.Content, num(leading), "TL")
}

// TextSetCharacterSpacing sets extra space added after each glyph.
func (w *Writer) TextSetCharacterSpacing(spacing float64) {
	if !w.check() {
		return
	}
	fmt.Fprintln(w.Content, num(spacing), "Tc")
}

// TextFirstLine moves the text position by (dx, dy) relative to the start of
// the previous line.
func (w *Writer) TextFirstLine(dx, dy float64) {
	if !w.check() {
		return
	}
	fmt.Fprintln(w.Content, num(dx), num(dy), "Td")
}

// TextNextLine moves the text position to the start of the next line, using
// the current leading.
func (w *Writer) TextNextLine() {
	if !w.check() {
		return
	}
	fmt.Fprintln(w.Content, "T*")
}

// TextShow typesets a string with the current font and shows it at the
// current text position.
func (w *Writer) TextShow(s string) {
	if !w.check() {
		return
	}
	if w.currentFont == nil {
		w.Err = errors.New("graphics: no font selected")
		return
	}
	seq, err := w.currentFont.Typeset(s, w.fontSize)
	if err != nil {
		w.Err = err
		return
	}
	w.TextShowGlyphs(seq)
}

// TextShowGlyphs shows a previously laid-out glyph sequence at the current
// text position.
func (w *Writer) TextShowGlyphs(seq *font.GlyphSeq) {
	if !w.check() {
		return
	}
	if w.currentFont == nil {
		w.Err = errors.New("graphics: no font selected")
		return
	}
	if len(seq.Seq) == 0 {
		return
	}
	encoded := w.currentFont.AppendEncoded(nil, seq)
	err := encoded.PDF(w.Content)
	if err != nil {
		w.Err = err
		return
	}
	fmt.Fprintln(w.Content, " Tj")
}

// check reports whether the writer is inside a text object and error-free.
func (w *Writer) check() bool {
	if w.Err != nil {
		return false
	}
	if !w.inText {
		w.Err = errors.New("graphics: text operator outside text object")
		return false
	}
	return true
}
