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

// Package pagetree assembles the page tree of a PDF document.
package pagetree

import (
	"github.com/pressmark/pdf"
)

// Writer collects the pages of a document into a page tree.  The tree
// reference is allocated up front, so that page dictionaries can point to
// their parent before the tree is complete.
type Writer struct {
	graph *pdf.Graph
	root  pdf.Reference
	kids  pdf.Array

	closed bool
}

// NewWriter creates a page tree within the given object graph.
func NewWriter(g *pdf.Graph) *Writer {
	return &Writer{
		graph: g,
		root:  g.AllocRef(),
	}
}

// Ref returns the reference to the root of the page tree, for use in the
// document catalog and in the Parent entry of page dictionaries.
func (t *Writer) Ref() pdf.Reference {
	return t.root
}

// AppendPage adds a page to the tree.  The Parent entry of the page
// dictionary is filled in by this call.
func (t *Writer) AppendPage(page *pdf.Dict) pdf.Reference {
	page.Set("Parent", t.root)
	ref := t.graph.Alloc(page)
	t.kids = append(t.kids, ref)
	return ref
}

// Close writes the page tree node.  A tree with no pages is valid and
// has Count 0.  After Close, no more pages can be appended.
func (t *Writer) Close() (pdf.Reference, error) {
	if t.closed {
		return t.root, nil
	}
	t.closed = true

	kids := t.kids
	if kids == nil {
		kids = pdf.Array{}
	}
	node := pdf.NewDict().
		Set("Type", pdf.Name("Pages")).
		Set("Kids", kids).
		Set("Count", pdf.Integer(len(t.kids)))
	err := t.graph.Update(t.root, node)
	if err != nil {
		return 0, err
	}
	return t.root, nil
}
