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

// Package builtin provides the built-in PDF text fonts.
//
// These fonts are not embedded into the PDF file; every conforming viewer
// supplies them.  Only the font metrics are needed for layout, and a
// selection of metric tables is compiled into the library.  Helvetica and
// Helvetica-Bold are always available; the Courier and Times families can be
// excluded via the build tags "pressmark_no_courier" and
// "pressmark_no_times".  Metrics for further fonts can be loaded at runtime
// from AFM files using [LoadAFM].
package builtin

// PostScript names of the built-in fonts.
const (
	Courier              = "Courier"
	CourierBold          = "Courier-Bold"
	CourierOblique       = "Courier-Oblique"
	CourierBoldOblique   = "Courier-BoldOblique"
	Helvetica            = "Helvetica"
	HelveticaBold        = "Helvetica-Bold"
	HelveticaOblique     = "Helvetica-Oblique"
	HelveticaBoldOblique = "Helvetica-BoldOblique"
	TimesRoman           = "Times-Roman"
	TimesBold            = "Times-Bold"
	TimesItalic          = "Times-Italic"
	TimesBoldItalic      = "Times-BoldItalic"
	Symbol               = "Symbol"
	ZapfDingbats         = "ZapfDingbats"
)

// Metrics holds the metric data for one built-in font.  All lengths are in
// PDF glyph space units, i.e. thousandths of the font size.
type Metrics struct {
	FontName  string
	Ascent    float64
	Descent   float64 // negative
	CapHeight float64

	IsFixedPitch bool

	// Widths maps WinAnsi character codes to advance widths.  Codes not
	// present in the map have no metric data.
	Widths map[byte]float64
}

// registry holds the compiled-in metric tables.  It is populated by the
// init functions of the data files and read-only afterwards, so lookups
// are safe for concurrent use.
var registry = make(map[string]*Metrics)

func register(m *Metrics) {
	registry[m.FontName] = m
}

// Get returns the compiled-in metrics for the given font.
func Get(fontName string) (*Metrics, error) {
	m, ok := registry[fontName]
	if !ok {
		return nil, &NotCompiledError{FontName: fontName}
	}
	return m, nil
}

// NotCompiledError indicates that the metric table for a built-in font was
// not compiled into the binary.
type NotCompiledError struct {
	FontName string
}

func (err *NotCompiledError) Error() string {
	return "builtin: metrics for " + err.FontName + " not compiled in"
}

// asciiWidths converts a width table for the printable ASCII range
// (codes 32 to 126) into a code-indexed map.
func asciiWidths(ww []float64) map[byte]float64 {
	widths := make(map[byte]float64, len(ww))
	for i, w := range ww {
		widths[byte(32+i)] = w
	}
	return widths
}
