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

// Package document provides a high-level interface for assembling PDF
// documents page by page.
package document

import (
	"bytes"
	"context"
	"crypto/sha256"
	"errors"
	"image"
	"io"

	"github.com/pressmark/pdf"
	"github.com/pressmark/pdf/font"
	"github.com/pressmark/pdf/font/builtin"
	"github.com/pressmark/pdf/graphics"
	pdfimage "github.com/pressmark/pdf/image"
	"github.com/pressmark/pdf/pagetree"
)

// Document assembles a PDF document.  Pages are added one at a time, and
// fonts and images are shared between all pages.  Once all content is in
// place, [Document.Finalize] writes the document to a sink.
type Document struct {
	graph *pdf.Graph
	tree  *pagetree.Writer
	res   *graphics.Resources

	catalogRef   pdf.Reference
	resourcesRef pdf.Reference
	paper        *pdf.Rectangle

	stdFonts map[string]*builtin.Font
	ttFonts  map[[sha256.Size]byte]*font.Composite
	jpegs    map[[sha256.Size]byte]pdf.Reference
	images   map[image.Image]pdf.Reference

	cur       *Page
	finalized bool
}

// New creates an empty document with the given paper size.
func New(paper *pdf.Rectangle) *Document {
	g := pdf.NewGraph()
	return &Document{
		graph:        g,
		tree:         pagetree.NewWriter(g),
		res:          graphics.NewResources(),
		catalogRef:   g.AllocRef(),
		resourcesRef: g.AllocRef(),
		paper:        paper,
		stdFonts:     make(map[string]*builtin.Font),
		ttFonts:      make(map[[sha256.Size]byte]*font.Composite),
		jpegs:        make(map[[sha256.Size]byte]pdf.Reference),
		images:       make(map[image.Image]pdf.Reference),
	}
}

// Graph gives access to the underlying object graph, for adding objects the
// high-level interface does not cover.
func (d *Document) Graph() *pdf.Graph {
	return d.graph
}

// StandardFont returns one of the built-in PDF fonts.  Each font is shared
// between all pages of the document.
func (d *Document) StandardFont(fontName string) (font.Font, error) {
	if F, ok := d.stdFonts[fontName]; ok {
		return F, nil
	}
	F, err := builtin.New(fontName)
	if err != nil {
		return nil, err
	}
	d.stdFonts[fontName] = F
	return F, nil
}

// EmbedFont prepares a TrueType or OpenType font for use in the document.
// Only the glyphs actually used are included in the output file.  Embedding
// the same font data twice returns the same font.
func (d *Document) EmbedFont(data []byte) (font.Font, error) {
	key := sha256.Sum256(data)
	if F, ok := d.ttFonts[key]; ok {
		return F, nil
	}
	F, err := font.LoadComposite(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	d.ttFonts[key] = F
	return F, nil
}

// EmbedImage stores img in the document as a flate-compressed image XObject.
// The returned reference can be drawn using [Page.DrawImage].  Embedding the
// same image value twice stores only one copy.
func (d *Document) EmbedImage(img image.Image) (pdf.Reference, error) {
	if ref, ok := d.images[img]; ok {
		return ref, nil
	}
	ref, err := pdfimage.Embed(d.graph, img)
	if err != nil {
		return 0, err
	}
	d.images[img] = ref
	return ref, nil
}

// EmbedJPEG stores JPEG data in the document without re-encoding.
// Embedding the same data twice stores only one copy.
func (d *Document) EmbedJPEG(data []byte) (pdf.Reference, error) {
	key := sha256.Sum256(data)
	if ref, ok := d.jpegs[key]; ok {
		return ref, nil
	}
	ref, err := pdfimage.EmbedJPEG(d.graph, data)
	if err != nil {
		return 0, err
	}
	d.jpegs[key] = ref
	return ref, nil
}

// AddPage appends a new page to the document and returns it for drawing.
// The previous page, if any, is closed and can no longer be modified.
func (d *Document) AddPage() (*Page, error) {
	if d.finalized {
		return nil, errors.New("document already finalized")
	}
	if d.cur != nil {
		err := d.cur.close()
		if err != nil {
			return nil, err
		}
	}
	p := &Page{
		Writer: graphics.NewWriter(d.res),
		doc:    d,
	}
	d.cur = p
	return p, nil
}

// Finalize writes the document to w.  The last page is closed, the shared
// resources are embedded, and the object graph is serialized.
//
// Finalize can be called more than once; repeated calls write byte-identical
// output.  No pages can be added after the first call.
func (d *Document) Finalize(ctx context.Context, w io.Writer, opt *pdf.FinalizeOptions) error {
	if d.cur != nil {
		err := d.cur.close()
		if err != nil {
			return err
		}
		d.cur = nil
	}
	if !d.finalized {
		err := d.res.EmbedAt(d.graph, d.resourcesRef)
		if err != nil {
			return err
		}
		pages, err := d.tree.Close()
		if err != nil {
			return err
		}
		catalog := pdf.NewDict().
			Set("Type", pdf.Name("Catalog")).
			Set("Pages", pages)
		err = d.graph.Update(d.catalogRef, catalog)
		if err != nil {
			return err
		}
		d.finalized = true
	}
	return pdf.Write(ctx, w, d.graph, d.catalogRef, opt)
}
