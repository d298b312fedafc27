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
	"math"
	"sort"

	"seehuhn.de/go/dag"

	"seehuhn.de/go/postscript/cid"

	"github.com/pressmark/pdf"
)

// cidWidth associates a character identifier with a glyph width in PDF glyph
// space units (thousandths of the font size).
type cidWidth struct {
	CID   cid.CID
	Width float64
}

// encodeWidths constructs the W entry of a CIDFont dictionary.  Widths equal
// to the default width dw are omitted; runs of equal widths and runs of
// consecutive CIDs are combined to minimise the size of the entry.
// The slice ww is sorted by increasing CID.
func encodeWidths(ww []cidWidth, dw float64) pdf.Array {
	sort.Slice(ww, func(i, j int) bool { return ww[i].CID < ww[j].CID })

	g := wwGraph{ww, dw}
	ee, err := dag.ShortestPath[wwEdge, int](g, len(ww))
	if err != nil {
		// the graph always has the single-entry fallback edges
		panic(err)
	}

	var res pdf.Array
	pos := 0
	for _, e := range ee {
		switch {
		case e > 0:
			res = append(res,
				pdf.Integer(ww[pos].CID),
				pdf.Integer(ww[pos+int(e)-1].CID),
				pdf.Integer(math.Round(ww[pos].Width)))
		case e < 0:
			var wi pdf.Array
			for i := pos; i < pos+int(-e); i++ {
				wi = append(wi, pdf.Integer(math.Round(ww[i].Width)))
			}
			res = append(res, pdf.Integer(ww[pos].CID), wi)
		}
		pos = g.To(pos, e)
	}
	return res
}

// wwEdge encodes how the next run of widths is written:
//
//	e=0: the next width equals the default width, no entry needed
//	e>0: the next e CIDs share one width, written as a range
//	e<0: the next -e CIDs are consecutive, written as an array
type wwEdge int16

type wwGraph struct {
	ww []cidWidth
	dw float64
}

func (g wwGraph) AppendEdges(ee []wwEdge, v int) []wwEdge {
	ww := g.ww
	if ww[v].Width == g.dw {
		return append(ee, 0)
	}

	n := len(ww)

	// runs of CIDs with the same width
	i := v + 1
	for i < n && ww[i].Width == ww[v].Width {
		i++
	}
	if i > v+1 {
		ee = append(ee, wwEdge(i-v))
	}

	// runs of consecutive CIDs
	i = v
	for i < n && int(ww[i].CID)-int(ww[v].CID) == i-v {
		i++
		ee = append(ee, wwEdge(v-i))
	}

	return ee
}

func (g wwGraph) Length(v int, e wwEdge) int {
	// approximate output size, assuming three-digit numbers
	if e == 0 {
		return 0
	} else if e > 0 {
		return 12
	}
	return 6 + 4*int(-e)
}

func (g wwGraph) To(v int, e wwEdge) int {
	if e == 0 {
		return v + 1
	}
	step := int(e)
	if step < 0 {
		step = -step
	}
	return v + step
}
