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

package layout

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pressmark/pdf/font/builtin"
)

// Courier glyphs are all 600/1000 units wide, so at size 10 every glyph
// advances by 6 units.

func lineStrings(lines []*Line) []string {
	var res []string
	for _, line := range lines {
		b := &strings.Builder{}
		for _, g := range line.Seq.Seq {
			b.WriteString(string(g.Text))
		}
		res = append(res, b.String())
	}
	return res
}

func TestBreakText(t *testing.T) {
	F, err := builtin.New(builtin.Courier)
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		text  string
		width float64
		want  []string
	}{
		{"", 100, nil},
		{"hello", 100, []string{"hello"}},
		{"aaa bbb ccc", 40, []string{"aaa", "bbb", "ccc"}},
		{"aaa bbb ccc", 60, []string{"aaa bbb", "ccc"}},
		{"aaa bbb ccc", 1000, []string{"aaa bbb ccc"}},
		{"ab\ncd", 1000, []string{"ab", "cd"}},
		{"a\n\nb", 1000, []string{"a", "", "b"}},
		// a single fragment wider than the line breaks between glyphs
		{"abcdefgh", 30, []string{"abcde", "fgh"}},
	}
	for _, test := range cases {
		lines, err := BreakText(F, test.text, &Options{
			FontSize: 10,
			Width:    test.width,
		})
		if err != nil {
			t.Errorf("%q: %v", test.text, err)
			continue
		}
		if diff := cmp.Diff(test.want, lineStrings(lines)); diff != "" {
			t.Errorf("%q (-want +got):\n%s", test.text, diff)
		}
	}
}

func TestBreakTextWidths(t *testing.T) {
	F, err := builtin.New(builtin.Courier)
	if err != nil {
		t.Fatal(err)
	}

	lines, err := BreakText(F, "aaa bbb ccc", &Options{FontSize: 10, Width: 60})
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	// "aaa bbb" has seven glyphs; the trailing space is dropped
	if lines[0].Width != 42 {
		t.Errorf("line 0 width %f, want 42", lines[0].Width)
	}
	if lines[1].Width != 18 {
		t.Errorf("line 1 width %f, want 18", lines[1].Width)
	}
}

func TestBreakTextHard(t *testing.T) {
	F, err := builtin.New(builtin.Courier)
	if err != nil {
		t.Fatal(err)
	}

	lines, err := BreakText(F, "ab\ncd", &Options{FontSize: 10, Width: 1000})
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !lines[0].Hard {
		t.Error("line 0 not marked as a hard break")
	}
	if lines[1].Hard {
		t.Error("line 1 wrongly marked as a hard break")
	}
}

func TestBreakTextTracking(t *testing.T) {
	F, err := builtin.New(builtin.Courier)
	if err != nil {
		t.Fatal(err)
	}

	// with one unit of tracking each glyph occupies seven units
	lines, err := BreakText(F, "abcdef", &Options{
		FontSize: 10,
		Tracking: 1,
		Width:    21,
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"abc", "def"}
	if diff := cmp.Diff(want, lineStrings(lines)); diff != "" {
		t.Errorf("wrong lines (-want +got):\n%s", diff)
	}
}

func TestPaginate(t *testing.T) {
	lines := make([]*Line, 10)
	for i := range lines {
		lines[i] = &Line{}
	}

	pages := Paginate(lines, 12, 50)
	if got := len(pages); got != 3 {
		t.Fatalf("got %d pages, want 3", got)
	}
	if len(pages[0]) != 4 || len(pages[1]) != 4 || len(pages[2]) != 2 {
		t.Errorf("wrong page sizes: %d, %d, %d",
			len(pages[0]), len(pages[1]), len(pages[2]))
	}

	// even if no line fits, each page takes one line
	pages = Paginate(lines, 100, 50)
	if got := len(pages); got != 10 {
		t.Errorf("got %d pages, want 10", got)
	}

	if Paginate(nil, 12, 50) != nil {
		t.Error("empty input must yield no pages")
	}
}
