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

// Package layout breaks text into lines and lines into pages.
//
// Line break opportunities are determined using the Unicode line breaking
// algorithm (UAX #14); lines are then filled greedily.  Trailing whitespace
// does not count against the line width, following the usual convention for
// flush-left text.
package layout

import (
	"unicode"

	"github.com/go-text/typesetting/segmenter"

	"github.com/pressmark/pdf/font"
)

// Line is a single laid-out line of text.
type Line struct {
	// Seq holds the glyphs of the line, without trailing whitespace.
	Seq *font.GlyphSeq

	// Width is the total advance width of Seq, including tracking.
	Width float64

	// Hard reports whether the line was ended by a mandatory break
	// character rather than by the line width.
	Hard bool
}

// Options controls line breaking.
type Options struct {
	// FontSize is the font size in text space units.
	FontSize float64

	// Tracking is extra space added after every glyph, in text space
	// units.
	Tracking float64

	// Width is the maximum line width.
	Width float64
}

// BreakText splits text into lines no wider than opt.Width.  Line break
// opportunities follow UAX #14; a single fragment wider than the line is
// broken between glyphs, so that every line makes progress.  Empty input
// yields no lines.
func BreakText(F font.Font, text string, opt *Options) ([]*Line, error) {
	if text == "" {
		return nil, nil
	}

	var seg segmenter.Segmenter
	seg.Init([]rune(text))

	var lines []*Line
	cur := &font.GlyphSeq{}

	flush := func(hard bool) {
		seq := trimTrailingSpace(cur)
		lines = append(lines, &Line{
			Seq:   seq,
			Width: seqWidth(seq, opt.Tracking),
			Hard:  hard,
		})
		cur = &font.GlyphSeq{}
	}

	iter := seg.LineIterator()
	for iter.Next() {
		line := iter.Line()

		visible, spaces := splitSegment(line.Text)
		trimmed, err := F.Typeset(string(visible), opt.FontSize)
		if err != nil {
			return nil, err
		}
		trailing, err := F.Typeset(string(spaces), opt.FontSize)
		if err != nil {
			return nil, err
		}

		// Trailing whitespace of the new fragment does not count against
		// the line width; whitespace already in cur separates words and
		// does count.
		w := seqWidth(trimmed, opt.Tracking)
		curW := seqWidth(cur, opt.Tracking)
		if len(cur.Seq) > 0 && curW+w > opt.Width {
			flush(false)
		}

		if w > opt.Width {
			// the fragment alone is too wide, break between glyphs
			for _, g := range trimmed.Seq {
				gw := g.Advance + opt.Tracking
				if len(cur.Seq) > 0 && seqWidth(cur, opt.Tracking)+gw > opt.Width {
					flush(false)
				}
				cur.Seq = append(cur.Seq, g)
			}
			cur.Seq = append(cur.Seq, trailing.Seq...)
		} else {
			cur.Seq = append(cur.Seq, trimmed.Seq...)
			cur.Seq = append(cur.Seq, trailing.Seq...)
		}

		// UAX #14 also reports a mandatory break at the end of the text;
		// only explicit break characters end a hard line here.
		if line.IsMandatoryBreak && endsWithHardBreak(line.Text) {
			flush(true)
		}
	}
	if len(cur.Seq) > 0 {
		flush(false)
	}

	return lines, nil
}

// splitSegment separates a line fragment into its visible part and the
// trailing whitespace.  Mandatory break characters are dropped; other
// trailing whitespace is normalised to spaces, so that it can be typeset
// when the line continues.
func splitSegment(rr []rune) (visible, spaces []rune) {
	end := len(rr)
	for end > 0 && isBreakSpace(rr[end-1]) {
		end--
	}
	for _, r := range rr[end:] {
		if r == ' ' || r == '\t' {
			spaces = append(spaces, ' ')
		}
	}
	return rr[:end], spaces
}

func endsWithHardBreak(rr []rune) bool {
	if len(rr) == 0 {
		return false
	}
	switch rr[len(rr)-1] {
	case '\n', '\v', '\f', '\r', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

func isBreakSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r', '\u0085', '\u2028', '\u2029':
		return true
	}
	return unicode.IsSpace(r)
}

func trimTrailingSpace(seq *font.GlyphSeq) *font.GlyphSeq {
	gg := seq.Seq
	for len(gg) > 0 {
		text := gg[len(gg)-1].Text
		if len(text) != 1 || text[0] != ' ' {
			break
		}
		gg = gg[:len(gg)-1]
	}
	return &font.GlyphSeq{Seq: gg}
}

func seqWidth(seq *font.GlyphSeq, tracking float64) float64 {
	var w float64
	for _, g := range seq.Seq {
		w += g.Advance + tracking
	}
	return w
}

// Paginate splits lines into pages.  Each page holds as many lines as fit
// into the given height at the given baseline distance, but always at least
// one, so that pagination makes progress even if a single line is taller
// than the page.
func Paginate(lines []*Line, leading, height float64) [][]*Line {
	if len(lines) == 0 {
		return nil
	}

	perPage := int(height / leading)
	if perPage < 1 {
		perPage = 1
	}

	var pages [][]*Line
	for len(lines) > perPage {
		pages = append(pages, lines[:perPage])
		lines = lines[perPage:]
	}
	return append(pages, lines)
}
