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

package pdf

// Graph holds the indirect objects of a document under construction.  Object
// numbers are assigned monotonically, starting at 1, and are never reused.
//
// A Graph must not be used concurrently from multiple goroutines.  Separate
// Graphs share no state.
type Graph struct {
	objects map[Reference]Object
	order   []Reference
	next    Reference
}

// NewGraph creates a new, empty object graph.
func NewGraph() *Graph {
	return &Graph{
		objects: make(map[Reference]Object),
		next:    1,
	}
}

// Alloc adds obj to the graph as an indirect object and returns the
// newly assigned reference.
func (g *Graph) Alloc(obj Object) Reference {
	ref := g.next
	g.next++
	g.objects[ref] = obj
	g.order = append(g.order, ref)
	return ref
}

// AllocRef assigns an object number without storing a value.  The value must
// be supplied via [Graph.Update] before the graph is written.  This is used
// for late-bound dictionaries, e.g. the catalog and page tree nodes.
func (g *Graph) AllocRef() Reference {
	return g.Alloc(nil)
}

// Update replaces the value of a previously allocated object.  Updating an
// object number which was never allocated is a structural error.
func (g *Graph) Update(ref Reference, obj Object) error {
	if _, ok := g.objects[ref]; !ok {
		return &StructuralError{Ref: ref, Msg: "unknown object"}
	}
	g.objects[ref] = obj
	return nil
}

// Get returns the value stored for ref, or nil if ref was never allocated or
// has no value yet.
func (g *Graph) Get(ref Reference) Object {
	return g.objects[ref]
}

// Len returns the number of allocated objects.
func (g *Graph) Len() int {
	return len(g.order)
}

// MaxRef returns the largest object number allocated so far, or 0 if the
// graph is empty.
func (g *Graph) MaxRef() Reference {
	return g.next - 1
}

// checkComplete verifies that every reference occurring in any stored value
// resolves to an allocated object which has a value.  It is called before
// any output byte is produced.
func (g *Graph) checkComplete() error {
	for _, ref := range g.order {
		obj := g.objects[ref]
		if obj == nil {
			return &StructuralError{Ref: ref, Msg: "allocated but never set"}
		}
		if err := g.checkRefs(ref, obj); err != nil {
			return err
		}
	}
	return nil
}

func (g *Graph) checkRefs(where Reference, obj Object) error {
	switch x := obj.(type) {
	case Reference:
		target, ok := g.objects[x]
		if !ok {
			return &StructuralError{
				Ref: where,
				Msg: "dangling reference to object " + Format(x),
			}
		}
		if target == nil {
			return &StructuralError{
				Ref: where,
				Msg: "reference to unset object " + Format(x),
			}
		}
	case Array:
		for _, elem := range x {
			if err := g.checkRefs(where, elem); err != nil {
				return err
			}
		}
	case *Dict:
		for _, key := range x.keys {
			if err := g.checkRefs(where, x.vals[key]); err != nil {
				return err
			}
		}
	case *Stream:
		return g.checkRefs(where, x.Dict)
	}
	return nil
}
