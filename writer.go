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

import (
	"context"
	"crypto/md5"
	"fmt"
	"hash"
	"io"
)

// FinalizeOptions controls how an object graph is serialised.
type FinalizeOptions struct {
	// XRefStream selects a compact cross-reference stream instead of the
	// classic cross-reference table.  Classic tables are the
	// conformance-safe default.
	XRefStream bool

	// Info is an optional document information dictionary.  It is written
	// as an indirect object and referenced from the trailer.  Note that
	// date entries make the output non-reproducible.
	Info *Dict
}

// Write serialises the object graph to sink: header, body (objects in
// allocation order), cross-reference section, trailer.  The catalog must be
// stored under root.
//
// The output is produced strictly sequentially and sink is only ever
// appended to; byte offsets for the cross-reference section are tracked
// internally.  The whole file is never buffered, only the object currently
// being written.
//
// Writing the same unmodified graph twice produces byte-identical output.
// The context is checked between objects; after a cancellation or a sink
// error the output is truncated and cannot be resumed, but Write may be
// called again from the start with a fresh sink.
func Write(ctx context.Context, sink io.Writer, g *Graph, root Reference, opt *FinalizeOptions) error {
	if opt == nil {
		opt = &FinalizeOptions{}
	}

	if g.Get(root) == nil {
		return &StructuralError{Ref: root, Msg: "missing catalog"}
	}
	if err := g.checkComplete(); err != nil {
		return err
	}

	infoRef := Reference(0)
	numObjects := g.MaxRef() + 1 // including the head free entry
	if opt.Info != nil {
		infoRef = numObjects
		numObjects++
	}

	w := &countWriter{w: sink, hash: md5.New()}

	// header
	_, err := fmt.Fprintf(w, "%%PDF-1.7\n%%\x80\x80\x80\x80\n")
	if err != nil {
		return &WriteError{Offset: w.pos, Err: err}
	}

	// body
	offsets := make(map[Reference]int64, g.Len())
	for _, ref := range g.order {
		if err := ctx.Err(); err != nil {
			return err
		}
		offsets[ref] = w.pos
		if err := writeIndirect(w, ref, g.objects[ref]); err != nil {
			return &WriteError{Ref: ref, Offset: w.pos, Err: err}
		}
	}

	// The file identifier is derived from the body bytes, so that
	// re-finalising an unmodified document is reproducible.
	sum := w.hash.Sum(nil)
	fileID := String(sum)

	trailer := NewDict().
		Set("Size", Integer(numObjects)).
		Set("Root", root)
	if infoRef != 0 {
		trailer.Set("Info", infoRef)
	}
	trailer.Set("ID", Array{fileID, fileID})

	if infoRef != 0 {
		offsets[infoRef] = w.pos
		if err := writeIndirect(w, infoRef, opt.Info); err != nil {
			return &WriteError{Ref: infoRef, Offset: w.pos, Err: err}
		}
	}

	// cross-reference section and trailer
	var xrefPos int64
	if opt.XRefStream {
		streamRef := numObjects
		numObjects++
		trailer.Set("Size", Integer(numObjects))
		xrefPos = w.pos
		offsets[streamRef] = w.pos
		err = writeXRefStream(w, offsets, streamRef, trailer)
	} else {
		xrefPos = w.pos
		err = writeXRefTable(w, offsets, numObjects, trailer)
	}
	if err != nil {
		return &WriteError{Offset: w.pos, Err: err}
	}

	_, err = fmt.Fprintf(w, "\nstartxref\n%d\n%%%%EOF\n", xrefPos)
	if err != nil {
		return &WriteError{Offset: w.pos, Err: err}
	}

	return nil
}

func writeIndirect(w io.Writer, ref Reference, obj Object) error {
	_, err := fmt.Fprintf(w, "%d 0 obj\n", ref)
	if err != nil {
		return err
	}
	err = obj.PDF(w)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, "\nendobj\n")
	return err
}

// countWriter tracks the current byte offset in the output.  The cross
// reference section depends on these offsets, so a write is only considered
// done once the underlying sink has accepted all bytes.
type countWriter struct {
	w    io.Writer
	pos  int64
	hash hash.Hash
}

func (w *countWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.pos += int64(n)
	if w.hash != nil {
		w.hash.Write(p[:n])
	}
	return n, err
}
