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

// Metric data from the Adobe Core 14 AFM files, for the printable ASCII
// range of WinAnsiEncoding.

var helveticaWidths = []float64{
	278, 278, 355, 556, 556, 889, 667, 191, // space .. quotesingle
	333, 333, 389, 584, 278, 333, 278, 278, // parenleft .. slash
	556, 556, 556, 556, 556, 556, 556, 556, // zero .. seven
	556, 556, 278, 278, 584, 584, 584, 556, // eight .. question
	1015, 667, 667, 722, 722, 667, 611, 778, // at .. G
	722, 278, 500, 667, 556, 833, 722, 778, // H .. O
	667, 778, 722, 667, 611, 722, 667, 944, // P .. W
	667, 667, 611, 278, 278, 278, 469, 556, // X .. underscore
	333, 556, 556, 500, 556, 556, 278, 556, // grave .. g
	556, 222, 222, 500, 222, 833, 556, 556, // h .. o
	556, 556, 333, 500, 278, 556, 500, 722, // p .. w
	500, 500, 500, 334, 260, 334, 584, // x .. asciitilde
}

var helveticaBoldWidths = []float64{
	278, 333, 474, 556, 556, 889, 722, 238,
	333, 333, 389, 584, 278, 333, 278, 278,
	556, 556, 556, 556, 556, 556, 556, 556,
	556, 556, 333, 333, 584, 584, 584, 611,
	975, 722, 722, 722, 722, 667, 611, 778,
	722, 278, 556, 722, 611, 833, 722, 778,
	667, 778, 722, 667, 611, 722, 667, 944,
	667, 667, 611, 333, 278, 333, 584, 556,
	333, 556, 611, 556, 611, 556, 333, 611,
	611, 278, 278, 556, 278, 889, 611, 611,
	611, 611, 389, 556, 333, 611, 556, 778,
	556, 556, 500, 389, 280, 389, 584,
}

func init() {
	for _, fontName := range []string{Helvetica, HelveticaOblique} {
		register(&Metrics{
			FontName:  fontName,
			Ascent:    718,
			Descent:   -207,
			CapHeight: 718,
			Widths:    asciiWidths(helveticaWidths),
		})
	}
	for _, fontName := range []string{HelveticaBold, HelveticaBoldOblique} {
		register(&Metrics{
			FontName:  fontName,
			Ascent:    718,
			Descent:   -207,
			CapHeight: 718,
			Widths:    asciiWidths(helveticaBoldWidths),
		})
	}
}
