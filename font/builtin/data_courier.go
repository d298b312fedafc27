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

//go:build !pressmark_no_courier

package builtin

// All Courier glyphs are 600 units wide.

func init() {
	courierNames := []string{
		Courier, CourierBold, CourierOblique, CourierBoldOblique,
	}
	for _, fontName := range courierNames {
		widths := make(map[byte]float64, 95)
		for c := byte(32); c <= 126; c++ {
			widths[c] = 600
		}
		register(&Metrics{
			FontName:     fontName,
			Ascent:       629,
			Descent:      -157,
			CapHeight:    562,
			IsFixedPitch: true,
			Widths:       widths,
		})
	}
}
