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

package document

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/pressmark/pdf"
	"github.com/pressmark/pdf/font/builtin"
)

// numPages counts the page objects in a serialized file.
func numPages(body string) int {
	return strings.Count(body, "/Type /Page\n")
}

func TestDocument(t *testing.T) {
	doc := New(A5)
	F, err := doc.StandardFont(builtin.Helvetica)
	if err != nil {
		t.Fatal(err)
	}
	page, err := doc.AddPage()
	if err != nil {
		t.Fatal(err)
	}
	style := &Style{Font: F, Size: 12}
	err = page.DrawText(style, 72, 500, "Hello, World!")
	if err != nil {
		t.Fatal(err)
	}

	buf := &bytes.Buffer{}
	err = doc.Finalize(t.Context(), buf, nil)
	if err != nil {
		t.Fatal(err)
	}
	body := buf.String()

	if !strings.HasPrefix(body, "%PDF-1.7\n") {
		t.Error("missing file header")
	}
	for _, marker := range []string{
		"/Type /Catalog\n",
		"/Type /Pages\n",
		"/Type /Page\n",
		"/BaseFont /Helvetica\n",
		"/Filter /FlateDecode\n",
		"%%EOF\n",
	} {
		if !strings.Contains(body, marker) {
			t.Errorf("missing %q in output", marker)
		}
	}
	if n := numPages(body); n != 1 {
		t.Errorf("wrong number of pages: %d", n)
	}
}

func TestFinalizeRepeatable(t *testing.T) {
	doc := New(A4)
	F, err := doc.StandardFont(builtin.Courier)
	if err != nil {
		t.Fatal(err)
	}
	page, err := doc.AddPage()
	if err != nil {
		t.Fatal(err)
	}
	err = page.DrawText(&Style{Font: F, Size: 10}, 72, 700, "test")
	if err != nil {
		t.Fatal(err)
	}

	buf1 := &bytes.Buffer{}
	if err := doc.Finalize(t.Context(), buf1, nil); err != nil {
		t.Fatal(err)
	}
	buf2 := &bytes.Buffer{}
	if err := doc.Finalize(t.Context(), buf2, nil); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf1.Bytes(), buf2.Bytes()) {
		t.Error("repeated finalize gives different output")
	}

	if _, err := doc.AddPage(); err == nil {
		t.Error("AddPage after finalize succeeded")
	}
}

func TestFontDedup(t *testing.T) {
	doc := New(A4)

	F1, err := doc.StandardFont(builtin.Helvetica)
	if err != nil {
		t.Fatal(err)
	}
	F2, err := doc.StandardFont(builtin.Helvetica)
	if err != nil {
		t.Fatal(err)
	}
	if F1 != F2 {
		t.Error("standard font embedded twice")
	}
	F3, err := doc.StandardFont(builtin.HelveticaBold)
	if err != nil {
		t.Fatal(err)
	}
	if F1 == F3 {
		t.Error("different standard fonts conflated")
	}

	G1, err := doc.EmbedFont(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	G2, err := doc.EmbedFont(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	if G1 != G2 {
		t.Error("font data embedded twice")
	}
}

func TestParagraphFlow(t *testing.T) {
	doc := New(A4)
	F, err := doc.StandardFont(builtin.Courier)
	if err != nil {
		t.Fatal(err)
	}
	page, err := doc.AddPage()
	if err != nil {
		t.Fatal(err)
	}

	// At size 10, Courier glyphs are 6 units wide, so "aa " runs fill one
	// 18 unit line each.  With leading 12 only two lines fit into the box.
	style := &Style{Font: F, Size: 10, Leading: 12}
	box := &pdf.Rectangle{LLx: 72, LLy: 72, URx: 92, URy: 99}
	text := strings.TrimSpace(strings.Repeat("aa ", 5))
	last, err := page.AddParagraph(style, box, text)
	if err != nil {
		t.Fatal(err)
	}
	if last == page {
		t.Error("overflowing paragraph did not start a new page")
	}

	// the first page is closed now
	err = page.DrawText(style, 72, 500, "x")
	if err == nil {
		t.Error("drawing on a closed page succeeded")
	}

	buf := &bytes.Buffer{}
	if err := doc.Finalize(t.Context(), buf, nil); err != nil {
		t.Fatal(err)
	}
	if n := numPages(buf.String()); n != 3 {
		t.Errorf("wrong number of pages: %d", n)
	}
}

func TestShortParagraph(t *testing.T) {
	doc := New(A4)
	F, err := doc.StandardFont(builtin.Helvetica)
	if err != nil {
		t.Fatal(err)
	}
	page, err := doc.AddPage()
	if err != nil {
		t.Fatal(err)
	}
	box := &pdf.Rectangle{LLx: 72, LLy: 72, URx: 540, URy: 720}
	last, err := page.AddParagraph(&Style{Font: F, Size: 12}, box, "just one line")
	if err != nil {
		t.Fatal(err)
	}
	if last != page {
		t.Error("short paragraph moved to a new page")
	}
}

func TestImages(t *testing.T) {
	doc := New(A4)

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	ref1, err := doc.EmbedImage(img)
	if err != nil {
		t.Fatal(err)
	}
	ref2, err := doc.EmbedImage(img)
	if err != nil {
		t.Fatal(err)
	}
	if ref1 != ref2 {
		t.Error("image embedded twice")
	}

	jbuf := &bytes.Buffer{}
	if err := jpeg.Encode(jbuf, img, nil); err != nil {
		t.Fatal(err)
	}
	jref1, err := doc.EmbedJPEG(jbuf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	jref2, err := doc.EmbedJPEG(jbuf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if jref1 != jref2 {
		t.Error("JPEG data embedded twice")
	}

	page, err := doc.AddPage()
	if err != nil {
		t.Fatal(err)
	}
	page.DrawImage(ref1, 72, 600, 100, 100)
	page.DrawImage(jref1, 72, 400, 100, 100)

	buf := &bytes.Buffer{}
	if err := doc.Finalize(t.Context(), buf, nil); err != nil {
		t.Fatal(err)
	}
	body := buf.String()
	if !strings.Contains(body, "/Subtype /Image\n") {
		t.Error("missing image XObject")
	}
	if !strings.Contains(body, "/XObject <<") {
		t.Error("missing XObject resource dictionary")
	}
	if !strings.Contains(body, "/Filter /DCTDecode\n") {
		t.Error("missing DCT-encoded image")
	}
}

func TestEmptyDocument(t *testing.T) {
	doc := New(Letter)
	buf := &bytes.Buffer{}
	if err := doc.Finalize(t.Context(), buf, nil); err != nil {
		t.Fatal(err)
	}
	body := buf.String()
	if numPages(body) != 0 {
		t.Error("empty document has pages")
	}
	if !strings.Contains(body, "/Count 0\n") {
		t.Error("missing empty page tree")
	}
}

func TestCompositeText(t *testing.T) {
	doc := New(A4)
	F, err := doc.EmbedFont(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	page, err := doc.AddPage()
	if err != nil {
		t.Fatal(err)
	}
	err = page.DrawText(&Style{Font: F, Size: 12}, 72, 700, "Grüße")
	if err != nil {
		t.Fatal(err)
	}

	buf := &bytes.Buffer{}
	if err := doc.Finalize(t.Context(), buf, nil); err != nil {
		t.Fatal(err)
	}
	body := buf.String()
	if !strings.Contains(body, "/Subtype /Type0\n") {
		t.Error("missing composite font dictionary")
	}
	if !strings.Contains(body, "/Encoding /Identity-H\n") {
		t.Error("missing Identity-H encoding")
	}
}
