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

import "strconv"

// StructuralError indicates that the object graph cannot be serialised to a
// valid PDF file, e.g. because of a dangling reference.  Structural errors
// are detected before any output byte is produced.
type StructuralError struct {
	Ref Reference // the object in which the problem was found, if any
	Msg string
}

func (err *StructuralError) Error() string {
	if err.Ref == 0 {
		return "pdf: " + err.Msg
	}
	return "pdf: object " + strconv.FormatUint(uint64(err.Ref), 10) + ": " + err.Msg
}

// WriteError wraps an error from the output sink.  It records which object
// was being written and the byte offset reached, for diagnosis.  After a
// WriteError the write cannot be resumed; a new attempt must start from the
// beginning against a fresh sink.
type WriteError struct {
	Ref    Reference // object being written, 0 for header/xref/trailer
	Offset int64     // byte offset in the output at the time of the error
	Err    error
}

func (err *WriteError) Error() string {
	s := "pdf: write failed at byte " + strconv.FormatInt(err.Offset, 10)
	if err.Ref != 0 {
		s += " (object " + strconv.FormatUint(uint64(err.Ref), 10) + ")"
	}
	return s + ": " + err.Err.Error()
}

func (err *WriteError) Unwrap() error {
	return err.Err
}
