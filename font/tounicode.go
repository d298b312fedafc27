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

package font

// https://adobe-type-tools.github.io/font-tech-notes/pdfs/5099.CMapResources.pdf
// https://www.adobe.com/content/dam/acom/en/devnet/acrobat/pdfs/5411.ToUnicode.pdf

import (
	"bytes"
	"fmt"
	"sort"
	"text/template"
	"unicode/utf16"

	"github.com/pressmark/pdf"
)

// cidMapping describes the unicode text corresponding to a character code in
// a composite font.
type cidMapping struct {
	Code uint16
	Text []rune
}

// toUnicodeStream builds the ToUnicode CMap stream for a composite font with
// two-byte character codes.  This modifies mm.
func toUnicodeStream(mm []cidMapping) (*pdf.Stream, error) {
	data := &toUnicodeData{
		Registry:   "Adobe",
		Ordering:   "UCS",
		Supplement: 0,
		CodeSpace:  []string{"<0000><FFFF>"},
	}

	sort.Slice(mm, func(i, j int) bool { return mm[i].Code < mm[j].Code })

	// Mappings where consecutive codes map to consecutive code points can be
	// merged into a single bfrange entry.
	canDeltaRange := make([]bool, len(mm))
	var prevDelta int
	var prevCode uint16
	for i, m := range mm {
		delta := int(m.Text[0]) - int(m.Code)
		if i > 0 {
			canDeltaRange[i] = delta == prevDelta &&
				len(m.Text) == 1 && m.Code == prevCode+1
		}
		prevDelta = delta
		prevCode = m.Code
	}

	pos := 0
	for pos < len(mm) {
		next := pos + 1
		for next < len(mm) && canDeltaRange[next] {
			next++
		}
		if next > pos+1 {
			from := mm[pos].Code
			to := mm[next-1].Code
			data.Ranges = append(data.Ranges, bfRange{
				From:     []byte{byte(from >> 8), byte(from)},
				To:       []byte{byte(to >> 8), byte(to)},
				FromText: [][]rune{mm[pos].Text},
			})
			pos = next
			continue
		}

		code := mm[pos].Code
		data.Chars = append(data.Chars, bfChar{
			Code: []byte{byte(code >> 8), byte(code)},
			Text: mm[pos].Text,
		})
		pos++
	}

	buf := &bytes.Buffer{}
	err := toUnicodeTmpl.Execute(buf, data)
	if err != nil {
		return nil, err
	}
	return pdf.NewStream(nil, buf.Bytes(), &pdf.FilterFlate{})
}

type toUnicodeData struct {
	Registry   string
	Ordering   string
	Supplement int
	CodeSpace  []string
	Chars      []bfChar
	Ranges     []bfRange
}

type bfChar struct {
	Code []byte
	Text []rune
}

func (bfc bfChar) String() string {
	return fmt.Sprintf("<%02X> <%02X>", bfc.Code, utf16BE(bfc.Text))
}

type bfRange struct {
	From, To []byte
	FromText [][]rune
}

func (bfr bfRange) String() string {
	return fmt.Sprintf("<%02X> <%02X> <%02X>",
		bfr.From, bfr.To, utf16BE(bfr.FromText[0]))
}

func utf16BE(rr []rune) []byte {
	var buf []byte
	for _, x := range utf16.Encode(rr) {
		buf = append(buf, byte(x>>8), byte(x))
	}
	return buf
}

const chunkSize = 100

func charChunks(x []bfChar) [][]bfChar {
	var res [][]bfChar
	for len(x) >= chunkSize {
		res = append(res, x[:chunkSize])
		x = x[chunkSize:]
	}
	if len(x) > 0 {
		res = append(res, x)
	}
	return res
}

func rangeChunks(x []bfRange) [][]bfRange {
	var res [][]bfRange
	for len(x) >= chunkSize {
		res = append(res, x[:chunkSize])
		x = x[chunkSize:]
	}
	if len(x) > 0 {
		res = append(res, x)
	}
	return res
}

func formatPDFString(s string) (string, error) {
	return pdf.Format(pdf.String(s)), nil
}

func formatPDFName(s string) (string, error) {
	return pdf.Format(pdf.Name(s)), nil
}

var toUnicodeTmpl = template.Must(template.New("CMap").Funcs(template.FuncMap{
	"PDFString":   formatPDFString,
	"PDFName":     formatPDFName,
	"charChunks":  charChunks,
	"rangeChunks": rangeChunks,
}).Parse(
	`/CIDInit /ProcSet findresource begin
12 dict begin
begincmap
/CIDSystemInfo 3 dict dup begin
/Registry {{PDFString .Registry}} def
/Ordering {{PDFString .Ordering}} def
/Supplement {{.Supplement}} def
end def
/CMapName {{printf "%s-%s-%03d" .Registry .Ordering .Supplement | PDFName}} def
/CMapType 2 def
/WMode 0 def
{{len .CodeSpace}} begincodespacerange
{{range .CodeSpace -}}
{{.}}
{{end -}}
endcodespacerange
{{range charChunks .Chars -}}
{{len .}} beginbfchar
{{range . -}}
{{.}}
{{end -}}
endbfchar
{{end -}}
{{range rangeChunks .Ranges -}}
{{len .}} beginbfrange
{{range . -}}
{{.}}
{{end -}}
endbfrange
{{end -}}
endcmap
CMapName currentdict /CMap defineresource pop
end
end
`))
