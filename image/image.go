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

// Package image embeds images into PDF files as image XObjects.
package image

import (
	"image"
	"io"

	_ "image/gif" // register the GIF decoder
	_ "image/png" // register the PNG decoder

	_ "golang.org/x/image/bmp"  // register the BMP decoder
	_ "golang.org/x/image/tiff" // register the TIFF decoder
	_ "golang.org/x/image/webp" // register the WebP decoder

	"github.com/pressmark/pdf"
)

// Decode reads an image from r.  In addition to the PNG, GIF and JPEG
// formats of the standard library, the BMP, TIFF and WebP formats are
// supported.
func Decode(r io.Reader) (image.Image, string, error) {
	return image.Decode(r)
}

// Embed writes img to the graph as a flate-compressed RGB image XObject and
// returns a reference to it.  If the image has an alpha channel, it is
// embedded as a separate soft mask.
func Embed(g *pdf.Graph, img image.Image) (pdf.Reference, error) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	rgb := make([]byte, 0, width*height*3)
	alpha := make([]byte, 0, width*height)
	hasAlpha := false
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, gr, b, a := img.At(x, y).RGBA()
			if a != 0xffff {
				hasAlpha = true
				// undo the alpha pre-multiplication
				if a > 0 {
					r = r * 0xffff / a
					gr = gr * 0xffff / a
					b = b * 0xffff / a
				}
			}
			rgb = append(rgb, byte(r>>8), byte(gr>>8), byte(b>>8))
			alpha = append(alpha, byte(a>>8))
		}
	}

	dict := pdf.NewDict().
		Set("Type", pdf.Name("XObject")).
		Set("Subtype", pdf.Name("Image")).
		Set("Width", pdf.Integer(width)).
		Set("Height", pdf.Integer(height)).
		Set("ColorSpace", pdf.Name("DeviceRGB")).
		Set("BitsPerComponent", pdf.Integer(8))

	if hasAlpha {
		maskDict := pdf.NewDict().
			Set("Type", pdf.Name("XObject")).
			Set("Subtype", pdf.Name("Image")).
			Set("Width", pdf.Integer(width)).
			Set("Height", pdf.Integer(height)).
			Set("ColorSpace", pdf.Name("DeviceGray")).
			Set("BitsPerComponent", pdf.Integer(8))
		mask, err := pdf.NewStream(maskDict, alpha,
			&pdf.FilterFlate{Predictor: 12, Columns: width})
		if err != nil {
			return 0, err
		}
		dict.Set("SMask", g.Alloc(mask))
	}

	stream, err := pdf.NewStream(dict, rgb,
		&pdf.FilterFlate{Predictor: 12, Colors: 3, Columns: width})
	if err != nil {
		return 0, err
	}
	return g.Alloc(stream), nil
}
