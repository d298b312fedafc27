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
	"compress/zlib"
)

// Filter encodes stream data.  Filters are applied when a stream is
// constructed, so that the exact encoded length is known before the stream's
// Length entry is written.
type Filter interface {
	// Name returns the name under which the filter is registered in the
	// PDF specification, e.g. "FlateDecode".
	Name() Name

	// Parms returns the decode parameter dictionary for the filter,
	// or nil if no parameters are needed.
	Parms() *Dict

	// Encode returns the encoded form of data.
	Encode(data []byte) ([]byte, error)
}

// FilterFlate is the Flate (zlib) compression filter.
type FilterFlate struct {
	// Predictor, Colors, BitsPerComponent and Columns correspond to the
	// entries of the same name in the stream's DecodeParms dictionary.
	// The zero value means the corresponding entry is omitted.
	Predictor        int
	Colors           int
	BitsPerComponent int
	Columns          int
}

// Name implements the [Filter] interface.
func (f *FilterFlate) Name() Name {
	return "FlateDecode"
}

// Parms implements the [Filter] interface.
func (f *FilterFlate) Parms() *Dict {
	parms := NewDict()
	if f.Predictor > 1 {
		parms.Set("Predictor", Integer(f.Predictor))
	}
	if f.Colors > 1 {
		parms.Set("Colors", Integer(f.Colors))
	}
	if f.BitsPerComponent > 0 && f.BitsPerComponent != 8 {
		parms.Set("BitsPerComponent", Integer(f.BitsPerComponent))
	}
	if f.Columns > 1 {
		parms.Set("Columns", Integer(f.Columns))
	}
	if parms.Len() == 0 {
		return nil
	}
	return parms
}

// Encode implements the [Filter] interface.
func (f *FilterFlate) Encode(data []byte) ([]byte, error) {
	if f.Predictor > 1 {
		var err error
		data, err = f.applyPredictor(data)
		if err != nil {
			return nil, err
		}
	}

	buf := &bytes.Buffer{}
	zw := zlib.NewWriter(buf)
	_, err := zw.Write(data)
	if err != nil {
		return nil, err
	}
	err = zw.Close()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// applyPredictor applies the PNG "Up" predictor (predictor 12), the only
// predictor the library emits.  This is used for image data and soft masks.
func (f *FilterFlate) applyPredictor(data []byte) ([]byte, error) {
	if f.Predictor != 12 {
		return nil, &StructuralError{
			Msg: "unsupported predictor " + Format(Integer(f.Predictor)),
		}
	}
	columns := f.Columns
	if columns < 1 {
		columns = 1
	}
	colors := f.Colors
	if colors < 1 {
		colors = 1
	}
	rowLen := columns * colors
	if len(data)%rowLen != 0 {
		return nil, &StructuralError{Msg: "predictor row length mismatch"}
	}

	numRows := len(data) / rowLen
	out := make([]byte, 0, numRows*(rowLen+1))
	prev := make([]byte, rowLen)
	for row := 0; row < numRows; row++ {
		cur := data[row*rowLen : (row+1)*rowLen]
		out = append(out, 2) // PNG "Up" filter type
		for i, b := range cur {
			out = append(out, b-prev[i])
		}
		copy(prev, cur)
	}
	return out, nil
}

// NewStream creates a stream object, applying the given filters in order.
// The Filter, DecodeParms and Length entries of dict are filled in; the
// Length entry always holds the exact encoded byte length.  If dict is nil,
// a new dictionary is created.
func NewStream(dict *Dict, data []byte, filters ...Filter) (*Stream, error) {
	if dict == nil {
		dict = NewDict()
	}

	var names Array
	var parms Array
	haveParms := false
	for _, f := range filters {
		enc, err := f.Encode(data)
		if err != nil {
			return nil, err
		}
		data = enc
		names = append(names, f.Name())
		p := f.Parms()
		parms = append(parms, p)
		if p != nil {
			haveParms = true
		}
	}

	switch len(names) {
	case 0:
		// pass
	case 1:
		dict.Set("Filter", names[0])
		if haveParms {
			dict.Set("DecodeParms", parms[0])
		}
	default:
		dict.Set("Filter", names)
		if haveParms {
			dict.Set("DecodeParms", parms)
		}
	}
	dict.Set("Length", Integer(len(data)))

	return &Stream{Dict: dict, Data: data}, nil
}
