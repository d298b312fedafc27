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

//go:build !pressmark_no_times

package builtin

// Metric data from the Adobe Core 14 AFM files, for the printable ASCII
// range of WinAnsiEncoding.  The italic variants have their own width
// tables, which are not compiled in.

var timesRomanWidths = []float64{
	250, 333, 408, 500, 500, 833, 778, 180, // space .. quotesingle
	333, 333, 500, 564, 250, 333, 250, 278, // parenleft .. slash
	500, 500, 500, 500, 500, 500, 500, 500, // zero .. seven
	500, 500, 278, 278, 564, 564, 564, 444, // eight .. question
	921, 722, 667, 667, 722, 611, 556, 722, // at .. G
	722, 333, 389, 722, 611, 889, 722, 722, // H .. O
	556, 722, 667, 556, 611, 722, 722, 944, // P .. W
	722, 722, 611, 333, 278, 333, 469, 500, // X .. underscore
	333, 444, 500, 444, 500, 444, 333, 500, // grave .. g
	500, 278, 278, 500, 278, 778, 500, 500, // h .. o
	500, 500, 333, 389, 278, 500, 500, 722, // p .. w
	500, 500, 444, 480, 200, 480, 541, // x .. asciitilde
}

var timesBoldWidths = []float64{
	250, 333, 555, 500, 500, 1000, 833, 278,
	333, 333, 500, 570, 250, 333, 250, 278,
	500, 500, 500, 500, 500, 500, 500, 500,
	500, 500, 333, 333, 570, 570, 570, 500,
	930, 722, 667, 722, 722, 667, 611, 778,
	778, 389, 500, 778, 667, 944, 722, 778,
	611, 778, 722, 556, 667, 722, 722, 1000,
	722, 722, 667, 333, 278, 333, 581, 500,
	333, 500, 556, 444, 556, 444, 333, 500,
	556, 278, 333, 556, 278, 833, 556, 500,
	556, 556, 444, 389, 333, 556, 500, 722,
	500, 500, 444, 394, 220, 394, 520,
}

func init() {
	register(&Metrics{
		FontName:  TimesRoman,
		Ascent:    683,
		Descent:   -217,
		CapHeight: 662,
		Widths:    asciiWidths(timesRomanWidths),
	})
	register(&Metrics{
		FontName:  TimesBold,
		Ascent:    683,
		Descent:   -217,
		CapHeight: 676,
		Widths:    asciiWidths(timesBoldWidths),
	})
}
