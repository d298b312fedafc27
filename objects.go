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
	"strconv"
	"strings"
	"time"
	"unicode/utf16"
)

// Object represents a native PDF object.  The following types implement this
// interface: Bool, Integer, Real, Number, String, Name, Array, *Dict,
// *Stream, Reference, and *Rectangle.
type Object interface {
	// PDF writes the PDF file representation of the object to w.
	PDF(w io.Writer) error
}

// Bool represents a boolean value in a PDF file.
type Bool bool

// PDF implements the [Object] interface.
func (x Bool) PDF(w io.Writer) error {
	var s string
	if x {
		s = "true"
	} else {
		s = "false"
	}
	_, err := io.WriteString(w, s)
	return err
}

// Integer represents an integer constant in a PDF file.
type Integer int64

// PDF implements the [Object] interface.
func (x Integer) PDF(w io.Writer) error {
	_, err := io.WriteString(w, strconv.FormatInt(int64(x), 10))
	return err
}

// Real represents a real number in a PDF file.  The number is always written
// with a decimal point.
type Real float64

// PDF implements the [Object] interface.
func (x Real) PDF(w io.Writer) error {
	s := strconv.FormatFloat(float64(x), 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s = s + "."
	}
	_, err := io.WriteString(w, s)
	return err
}

// Number represents a numeric value in a PDF file.  Integral values are
// written without a decimal point.
type Number float64

// PDF implements the [Object] interface.
func (x Number) PDF(w io.Writer) error {
	var s string
	if i := Integer(x); Number(i) == x {
		s = strconv.FormatInt(int64(i), 10)
	} else {
		s = strconv.FormatFloat(float64(x), 'f', -1, 64)
	}
	_, err := io.WriteString(w, s)
	return err
}

// String represents a raw string in a PDF file.  The character set encoding,
// if any, is determined by the context.
type String []byte

// PDF implements the [Object] interface.
func (x String) PDF(w io.Writer) error {
	l := []byte(x)

	level := 0
	for _, c := range l {
		if c == '(' {
			level++
		} else if c == ')' {
			level--
			if level < 0 {
				break
			}
		}
	}
	balanced := level == 0

	var funny []int
	for i, c := range l {
		if c == '\r' || c == '\n' || c == '\t' {
			continue
		}
		if c < 32 || c >= 127 || c == '\\' ||
			!balanced && (c == '(' || c == ')') {
			funny = append(funny, i)
		}
	}
	n := len(l)

	buf := &bytes.Buffer{}
	if 3*len(funny) <= n {
		buf.WriteString("(")
		pos := 0
		for _, i := range funny {
			if pos < i {
				buf.Write(l[pos:i])
			}
			c := l[i]
			switch c {
			case '\b':
				buf.WriteString(`\b`)
			case '\f':
				buf.WriteString(`\f`)
			case '(':
				buf.WriteString(`\(`)
			case ')':
				buf.WriteString(`\)`)
			case '\\':
				buf.WriteString(`\\`)
			default:
				fmt.Fprintf(buf, `\%03o`, c)
			}
			pos = i + 1
		}
		if pos < n {
			buf.Write(l[pos:n])
		}
		buf.WriteString(")")
	} else {
		fmt.Fprintf(buf, "<%x>", l)
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// TextString creates a String object using the "text string" encoding,
// i.e. either the ASCII subset of PDFDocEncoding or UTF-16BE with a
// byte order mark.
func TextString(s string) String {
	isASCII := true
	for _, r := range s {
		if r < 32 || r >= 127 {
			isASCII = false
			break
		}
	}
	if isASCII {
		return String(s)
	}

	enc := utf16.Encode([]rune(s))
	buf := make([]byte, 2*len(enc)+2)
	buf[0] = 0xFE
	buf[1] = 0xFF
	for i, c := range enc {
		buf[2*i+2] = byte(c >> 8)
		buf[2*i+3] = byte(c)
	}
	return String(buf)
}

// Date creates a PDF String object encoding the given date and time.
func Date(t time.Time) String {
	s := t.Format("D:20060102150405-0700")
	k := len(s) - 2
	s = s[:k] + "'" + s[k:]
	return String(s)
}

// Name represents a name object in a PDF file.
type Name string

// PDF implements the [Object] interface.
func (x Name) PDF(w io.Writer) error {
	l := []byte(x)

	var funny []int
	for i, c := range l {
		if isSpace(c) || isDelimiter(c) || c < 0x21 || c > 0x7e || c == '#' {
			funny = append(funny, i)
		}
	}
	n := len(l)

	buf := &bytes.Buffer{}
	buf.WriteString("/")
	pos := 0
	for _, i := range funny {
		if pos < i {
			buf.Write(l[pos:i])
		}
		fmt.Fprintf(buf, "#%02x", l[i])
		pos = i + 1
	}
	if pos < n {
		buf.Write(l[pos:n])
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// Array represents an array of objects in a PDF file.
type Array []Object

// PDF implements the [Object] interface.
func (x Array) PDF(w io.Writer) error {
	_, err := io.WriteString(w, "[")
	if err != nil {
		return err
	}
	for i, val := range x {
		if i > 0 {
			_, err := io.WriteString(w, " ")
			if err != nil {
				return err
			}
		}
		if val == nil {
			_, err = io.WriteString(w, "null")
		} else {
			err = val.PDF(w)
		}
		if err != nil {
			return err
		}
	}
	_, err = io.WriteString(w, "]")
	return err
}

// Dict represents a dictionary object in a PDF file.  Keys are written in
// insertion order, so that repeated serialisation of the same dictionary
// yields identical bytes.
type Dict struct {
	keys []Name
	vals map[Name]Object
}

// NewDict creates a new, empty dictionary.
func NewDict() *Dict {
	return &Dict{vals: make(map[Name]Object)}
}

// Set adds or replaces an entry.  Replacing a value keeps the key's original
// position in the output.  Set returns the dictionary to allow chaining.
func (x *Dict) Set(key Name, val Object) *Dict {
	if _, ok := x.vals[key]; !ok {
		x.keys = append(x.keys, key)
	}
	x.vals[key] = val
	return x
}

// Get returns the value stored for the given key.
func (x *Dict) Get(key Name) (Object, bool) {
	if x == nil {
		return nil, false
	}
	val, ok := x.vals[key]
	return val, ok
}

// Delete removes an entry from the dictionary.
func (x *Dict) Delete(key Name) {
	if _, ok := x.vals[key]; !ok {
		return
	}
	delete(x.vals, key)
	for i, k := range x.keys {
		if k == key {
			x.keys = append(x.keys[:i], x.keys[i+1:]...)
			break
		}
	}
}

// Len returns the number of entries in the dictionary.
func (x *Dict) Len() int {
	if x == nil {
		return 0
	}
	return len(x.keys)
}

// Keys returns the dictionary keys in insertion order.
func (x *Dict) Keys() []Name {
	if x == nil {
		return nil
	}
	return append([]Name{}, x.keys...)
}

// PDF implements the [Object] interface.
func (x *Dict) PDF(w io.Writer) error {
	if x == nil {
		_, err := io.WriteString(w, "null")
		return err
	}

	_, err := io.WriteString(w, "<<")
	if err != nil {
		return err
	}
	for _, key := range x.keys {
		val := x.vals[key]
		if val == nil {
			continue
		}

		_, err = io.WriteString(w, "\n")
		if err != nil {
			return err
		}
		err = key.PDF(w)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, " ")
		if err != nil {
			return err
		}
		err = val.PDF(w)
		if err != nil {
			return err
		}
	}
	_, err = io.WriteString(w, "\n>>")
	return err
}

// Stream represents a stream object in a PDF file.  The dictionary's Length
// entry always equals len(Data); use [NewStream] to construct streams with
// filters applied.
type Stream struct {
	Dict *Dict
	Data []byte
}

// PDF implements the [Object] interface.
func (x *Stream) PDF(w io.Writer) error {
	err := x.Dict.PDF(w)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, "\nstream\n")
	if err != nil {
		return err
	}
	_, err = w.Write(x.Data)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, "\nendstream")
	return err
}

// Reference represents a reference to an indirect object in a PDF file.
// The zero value does not refer to any object.
type Reference uint32

// PDF implements the [Object] interface.
func (x Reference) PDF(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%d 0 R", x)
	return err
}

// Rectangle represents a PDF rectangle, given by the coordinates of two
// diagonally opposite corners.
type Rectangle struct {
	LLx, LLy, URx, URy float64
}

// PDF implements the [Object] interface.
func (x *Rectangle) PDF(w io.Writer) error {
	arr := Array{Number(x.LLx), Number(x.LLy), Number(x.URx), Number(x.URy)}
	return arr.PDF(w)
}

// Dx returns the width of the rectangle.
func (x *Rectangle) Dx() float64 { return x.URx - x.LLx }

// Dy returns the height of the rectangle.
func (x *Rectangle) Dy() float64 { return x.URy - x.LLy }

// Format serialises an object into a string, for use in error messages.
func Format(obj Object) string {
	if obj == nil {
		return "null"
	}
	buf := &bytes.Buffer{}
	err := obj.PDF(buf)
	if err != nil {
		return "<" + err.Error() + ">"
	}
	return buf.String()
}

func isSpace(c byte) bool {
	switch c {
	case 0, 9, 10, 12, 13, 32:
		return true
	}
	return false
}

func isDelimiter(c byte) bool {
	switch c {
	case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return true
	}
	return false
}
