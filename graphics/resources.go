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

package graphics

import (
	"errors"
	"strconv"

	"github.com/pressmark/pdf"
	"github.com/pressmark/pdf/font"
)

// Resources collects the fonts and XObjects used by one or more content
// streams and assigns the resource names used in the streams.
//
// Names are assigned in order of first use, so that the resulting resource
// dictionary is deterministic.
type Resources struct {
	fonts     []font.Font
	fontNames map[font.Font]pdf.Name

	xobjects  []pdf.Reference
	xobjNames map[pdf.Reference]pdf.Name

	ref pdf.Reference
}

// NewResources creates an empty resource collection.
func NewResources() *Resources {
	return &Resources{
		fontNames: make(map[font.Font]pdf.Name),
		xobjNames: make(map[pdf.Reference]pdf.Name),
	}
}

// AddFont returns the resource name for the given font, registering the
// font on first use.
func (r *Resources) AddFont(F font.Font) pdf.Name {
	if name, ok := r.fontNames[F]; ok {
		return name
	}
	name := pdf.Name("F" + strconv.Itoa(len(r.fonts)))
	r.fonts = append(r.fonts, F)
	r.fontNames[F] = name
	return name
}

// AddXObject returns the resource name for the XObject stored under ref,
// registering it on first use.
func (r *Resources) AddXObject(ref pdf.Reference) pdf.Name {
	if name, ok := r.xobjNames[ref]; ok {
		return name
	}
	name := pdf.Name("Im" + strconv.Itoa(len(r.xobjects)))
	r.xobjects = append(r.xobjects, ref)
	r.xobjNames[ref] = name
	return name
}

// Embed writes the resource dictionary and all registered fonts to the
// graph.  Repeated calls return the same reference.
func (r *Resources) Embed(g *pdf.Graph) (pdf.Reference, error) {
	if r.ref != 0 {
		return r.ref, nil
	}
	ref := g.AllocRef()
	err := r.EmbedAt(g, ref)
	if err != nil {
		return 0, err
	}
	return ref, nil
}

// EmbedAt is like [Resources.Embed], but stores the resource dictionary
// under a previously allocated reference.  This allows content streams to
// point at the dictionary before all resources are known.
func (r *Resources) EmbedAt(g *pdf.Graph, ref pdf.Reference) error {
	if r.ref != 0 {
		if ref != r.ref {
			return errors.New("graphics: resources already embedded")
		}
		return nil
	}

	dict := pdf.NewDict()
	if len(r.fonts) > 0 {
		fontDict := pdf.NewDict()
		for _, F := range r.fonts {
			fontRef, err := F.Embed(g)
			if err != nil {
				return err
			}
			fontDict.Set(r.fontNames[F], fontRef)
		}
		dict.Set("Font", fontDict)
	}
	if len(r.xobjects) > 0 {
		xobjDict := pdf.NewDict()
		for _, ref := range r.xobjects {
			xobjDict.Set(r.xobjNames[ref], ref)
		}
		dict.Set("XObject", xobjDict)
	}

	if err := g.Update(ref, dict); err != nil {
		return err
	}
	r.ref = ref
	return nil
}
