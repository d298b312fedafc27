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
	"bytes"
	"fmt"
	"io"
	"math/bits"
)

// writeXRefTable writes a classic cross-reference table covering object
// numbers 0 to numObjects-1, followed by the trailer dictionary.  Object 0
// is the conventional head of the free list.
func writeXRefTable(w io.Writer, offsets map[Reference]int64, numObjects Reference, trailer *Dict) error {
	_, err := fmt.Fprintf(w, "xref\n0 %d\n", numObjects)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, "0000000000 65535 f\r\n")
	if err != nil {
		return err
	}
	for i := Reference(1); i < numObjects; i++ {
		pos, ok := offsets[i]
		if ok {
			_, err = fmt.Fprintf(w, "%010d 00000 n\r\n", pos)
		} else {
			_, err = io.WriteString(w, "0000000000 65535 f\r\n")
		}
		if err != nil {
			return err
		}
	}

	_, err = io.WriteString(w, "trailer\n")
	if err != nil {
		return err
	}
	return trailer.PDF(w)
}

// writeXRefStream writes the cross-reference information as a compressed
// stream object.  The stream itself is the object streamRef and carries the
// trailer entries in its dictionary.
func writeXRefStream(w io.Writer, offsets map[Reference]int64, streamRef Reference, trailer *Dict) error {
	numObjects := streamRef + 1

	var maxPos int64
	for _, pos := range offsets {
		if pos > maxPos {
			maxPos = pos
		}
	}
	w2 := (bits.Len64(uint64(maxPos)) + 7) / 8
	if w2 < 1 {
		w2 = 1
	}

	data := &bytes.Buffer{}
	for i := Reference(0); i < numObjects; i++ {
		pos, ok := offsets[i]
		if i == 0 || !ok {
			// free entry: next free object 0, generation 65535
			data.WriteByte(0)
			encodeUint(data, 0, w2)
			encodeUint(data, 65535, 2)
			continue
		}
		data.WriteByte(1)
		encodeUint(data, uint64(pos), w2)
		encodeUint(data, 0, 2)
	}

	trailer.Set("Type", Name("XRef"))
	trailer.Set("W", Array{Integer(1), Integer(w2), Integer(2)})

	stream, err := NewStream(trailer, data.Bytes(), &FilterFlate{})
	if err != nil {
		return err
	}
	return writeIndirect(w, streamRef, stream)
}

func encodeUint(buf *bytes.Buffer, x uint64, w int) {
	for i := w - 1; i >= 0; i-- {
		buf.WriteByte(byte(x >> (i * 8)))
	}
}
