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

// Package pdf implements the low-level machinery for writing PDF files.
//
// A document is assembled as a [Graph] of indirect objects.  Object values
// implement the [Object] interface; the concrete types mirror the PDF object
// model (booleans, numbers, strings, names, arrays, dictionaries, streams and
// references).  Once the graph is complete, [Write] serialises it in a single
// sequential pass: header, body, cross-reference section and trailer.
//
// The library only writes PDF files, it cannot read them.  Higher-level
// layers are provided by the packages [github.com/pressmark/pdf/document]
// (page-oriented document construction), [github.com/pressmark/pdf/font]
// (font embedding), and [github.com/pressmark/pdf/graphics] (content
// streams).
package pdf
