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

package image

import (
	"bytes"
	"image/color"
	"image/jpeg"

	"github.com/pressmark/pdf"
)

// EmbedJPEG writes JPEG data to the graph as an image XObject, without
// re-encoding.  The compressed data is kept as-is and marked with the
// DCTDecode filter.
func EmbedJPEG(g *pdf.Graph, data []byte) (pdf.Reference, error) {
	cfg, err := jpeg.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, err
	}

	var colorSpace pdf.Name
	switch cfg.ColorModel {
	case color.GrayModel, color.Gray16Model:
		colorSpace = "DeviceGray"
	case color.CMYKModel:
		colorSpace = "DeviceCMYK"
	default:
		colorSpace = "DeviceRGB"
	}

	dict := pdf.NewDict().
		Set("Type", pdf.Name("XObject")).
		Set("Subtype", pdf.Name("Image")).
		Set("Width", pdf.Integer(cfg.Width)).
		Set("Height", pdf.Integer(cfg.Height)).
		Set("ColorSpace", colorSpace).
		Set("BitsPerComponent", pdf.Integer(8)).
		Set("Filter", pdf.Name("DCTDecode")).
		Set("Length", pdf.Integer(len(data)))

	return g.Alloc(&pdf.Stream{Dict: dict, Data: data}), nil
}
