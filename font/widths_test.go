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
	"testing"

	"github.com/pressmark/pdf"
)

func TestEncodeWidths(t *testing.T) {
	cases := []struct {
		ww  []cidWidth
		dw  float64
		out string
	}{
		{ // all widths are the default width
			ww: []cidWidth{{0, 600}, {1, 600}, {2, 600}},
			dw: 600,
		},
		{ // a run of equal widths becomes a range
			ww: []cidWidth{{5, 100}, {6, 100}, {7, 100}},
			dw: 600,
			out: "[5 7 100]",
		},
		{ // a single width becomes a one-element array
			ww: []cidWidth{{3, 400}},
			dw: 600,
			out: "[3 [400]]",
		},
		{ // consecutive CIDs with distinct widths become an array
			ww: []cidWidth{{2, 100}, {3, 200}, {4, 300}},
			dw: 600,
			out: "[2 [100 200 300]]",
		},
	}
	for i, test := range cases {
		arr := encodeWidths(test.ww, test.dw)
		got := ""
		if arr != nil {
			got = pdf.Format(arr)
		}
		if got != test.out {
			t.Errorf("case %d: got %q, want %q", i, got, test.out)
		}
	}
}
