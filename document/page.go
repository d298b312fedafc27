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

package document

import (
	"errors"

	"seehuhn.de/go/geom/matrix"

	"github.com/pressmark/pdf"
	"github.com/pressmark/pdf/font"
	"github.com/pressmark/pdf/graphics"
	"github.com/pressmark/pdf/layout"
)

// Style describes how text is typeset.
type Style struct {
	Font font.Font
	Size float64

	// Leading is the baseline distance.  If zero, the font's default
	// baseline distance is used.
	Leading float64

	// Tracking is additional space between glyphs, in PDF units.
	Tracking float64
}

func (s *Style) leading() float64 {
	if s.Leading != 0 {
		return s.Leading
	}
	return s.Font.Geometry().BaseLineDistance * s.Size
}

// Page is one page of a document.  In addition to the methods below, the
// embedded [graphics.Writer] can be used to draw arbitrary content.
type Page struct {
	*graphics.Writer

	doc *Document
}

// DrawText draws a single line of text with the baseline starting at (x, y).
func (p *Page) DrawText(st *Style, x, y float64, text string) error {
	if p.Writer == nil {
		return errors.New("page already closed")
	}
	seq, err := st.Font.Typeset(text, st.Size)
	if err != nil {
		return err
	}

	w := p.Writer
	w.TextBegin()
	w.TextSetFont(st.Font, st.Size)
	if st.Tracking != 0 {
		w.TextSetCharacterSpacing(st.Tracking)
	}
	w.TextFirstLine(x, y)
	w.TextShowGlyphs(seq)
	if st.Tracking != 0 {
		w.TextSetCharacterSpacing(0)
	}
	w.TextEnd()
	return w.Err
}

// AddParagraph breaks text into lines and fills the given box with them.
// Text which does not fit is continued on new pages, in a box of the same
// size and position.  The method returns the page the paragraph ended on;
// if new pages were created, all earlier pages are closed.
func (p *Page) AddParagraph(st *Style, box *pdf.Rectangle, text string) (*Page, error) {
	if p.Writer == nil {
		return nil, errors.New("page already closed")
	}
	lines, err := layout.BreakText(st.Font, text, &layout.Options{
		FontSize: st.Size,
		Tracking: st.Tracking,
		Width:    box.Dx(),
	})
	if err != nil {
		return nil, err
	}

	leading := st.leading()
	top := box.URy - st.Font.Geometry().Ascent*st.Size

	cur := p
	for i, pageLines := range layout.Paginate(lines, leading, box.Dy()) {
		if i > 0 {
			cur, err = p.doc.AddPage()
			if err != nil {
				return nil, err
			}
		}
		w := cur.Writer
		w.TextBegin()
		w.TextSetFont(st.Font, st.Size)
		w.TextSetLeading(leading)
		if st.Tracking != 0 {
			w.TextSetCharacterSpacing(st.Tracking)
		}
		w.TextFirstLine(box.LLx, top)
		for j, line := range pageLines {
			if j > 0 {
				w.TextNextLine()
			}
			if len(line.Seq.Seq) > 0 {
				w.TextShowGlyphs(line.Seq)
			}
		}
		if st.Tracking != 0 {
			w.TextSetCharacterSpacing(0)
		}
		w.TextEnd()
		if w.Err != nil {
			return nil, w.Err
		}
	}
	return cur, nil
}

// DrawImage paints an embedded image into the rectangle with lower left
// corner (x, y) and the given width and height.
func (p *Page) DrawImage(ref pdf.Reference, x, y, width, height float64) {
	if p.Writer == nil {
		return
	}
	w := p.Writer
	w.PushGraphicsState()
	w.Transform(matrix.Matrix{width, 0, 0, height, x, y})
	w.DrawXObject(ref)
	w.PopGraphicsState()
}

// close writes the page contents to the object graph and appends the page
// to the page tree.
func (p *Page) close() error {
	if p.Writer == nil {
		return nil
	}
	err := p.Writer.Close()
	if err != nil {
		return err
	}

	contents, err := pdf.NewStream(pdf.NewDict(), p.Writer.Content.Bytes(),
		&pdf.FilterFlate{})
	if err != nil {
		return err
	}
	contentsRef := p.doc.graph.Alloc(contents)

	pageDict := pdf.NewDict().
		Set("Type", pdf.Name("Page")).
		Set("MediaBox", p.doc.paper).
		Set("Resources", p.doc.resourcesRef).
		Set("Contents", contentsRef)
	p.doc.tree.AppendPage(pageDict)

	// Disable the page, since it has been written out and cannot be
	// modified anymore.
	p.Writer = nil
	return nil
}
