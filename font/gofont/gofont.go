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

// Package gofont provides the Go font family for embedding into PDF files.
package gofont

import (
	"bytes"
	"fmt"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/pressmark/pdf/font"
)

// Font identifies individual fonts in the Go font family.
type Font int

// Constants for the available fonts in the Go font family.
const (
	Regular    Font = iota // Go Regular
	Bold                   // Go Semi Bold
	BoldItalic             // Go Semi Bold Italic
	Italic                 // Go Italic
	Mono                   // Go Mono Regular
	MonoBold               // Go Mono Semi Bold
	MonoItalic             // Go Mono Italic
)

// New returns the given Go font, ready for embedding as a composite font.
func (f Font) New() (*font.Composite, error) {
	data, ok := ttf[f]
	if !ok {
		return nil, fmt.Errorf("gofont: unknown font %d", f)
	}
	F, err := font.LoadComposite(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("gofont: %w", err)
	}
	return F, nil
}

var ttf = map[Font][]byte{
	Regular:    goregular.TTF,
	Bold:       gobold.TTF,
	BoldItalic: gobolditalic.TTF,
	Italic:     goitalic.TTF,
	Mono:       gomono.TTF,
	MonoBold:   gomonobold.TTF,
	MonoItalic: gomonoitalic.TTF,
}
