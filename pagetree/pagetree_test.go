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

package pagetree

import (
	"testing"

	"github.com/pressmark/pdf"
)

func TestPageTree(t *testing.T) {
	g := pdf.NewGraph()
	tree := NewWriter(g)

	var pageRefs []pdf.Reference
	for i := 0; i < 3; i++ {
		page := pdf.NewDict().Set("Type", pdf.Name("Page"))
		pageRefs = append(pageRefs, tree.AppendPage(page))
	}

	root, err := tree.Close()
	if err != nil {
		t.Fatal(err)
	}
	if root != tree.Ref() {
		t.Error("Close returned a different reference")
	}

	node := g.Get(root).(*pdf.Dict)
	if count, _ := node.Get("Count"); count != pdf.Integer(3) {
		t.Errorf("wrong Count %v", count)
	}
	kids, _ := node.Get("Kids")
	if len(kids.(pdf.Array)) != 3 {
		t.Error("wrong number of kids")
	}

	// every page must point back to the tree node
	for _, ref := range pageRefs {
		page := g.Get(ref).(*pdf.Dict)
		if parent, _ := page.Get("Parent"); parent != root {
			t.Errorf("page %d has wrong parent %v", ref, parent)
		}
	}
}

func TestEmptyPageTree(t *testing.T) {
	g := pdf.NewGraph()
	tree := NewWriter(g)
	root, err := tree.Close()
	if err != nil {
		t.Fatal(err)
	}

	node := g.Get(root).(*pdf.Dict)
	if count, _ := node.Get("Count"); count != pdf.Integer(0) {
		t.Errorf("wrong Count %v", count)
	}
	if kids, _ := node.Get("Kids"); len(kids.(pdf.Array)) != 0 {
		t.Error("empty tree has kids")
	}

	// the graph must be complete
	catalog := g.Alloc(pdf.NewDict().
		Set("Type", pdf.Name("Catalog")).
		Set("Pages", root))
	_ = catalog
}
