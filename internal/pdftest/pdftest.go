// Package pdftest writes small synthetic PDF files for tests.
package pdftest

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
)

// Page is a single page with a MediaBox of Width x Height points and a raw
// content stream. CropBox, when set, holds llx lly urx ury. Annots are raw
// annotation dictionaries, each written as its own object.
type Page struct {
	Width   float64
	Height  float64
	Content string
	CropBox []float64
	Annots  []string
}

// WithCropBox trims the visible area to width x height, centered on the
// MediaBox like a print bleed.
func (p Page) WithCropBox(width, height float64) Page {
	dx, dy := (p.Width-width)/2, (p.Height-height)/2
	p.CropBox = []float64{dx, dy, dx + width, dy + height}
	return p
}

func (p Page) WithAnnots(annots ...string) Page {
	p.Annots = append(append([]string(nil), p.Annots...), annots...)
	return p
}

// SquareAnnot is a square annotation with interior color ic and border
// color c, given as PDF arrays such as "[1 0 0]". flags is the /F entry.
func SquareAnnot(c, ic string, flags int) string {
	return fmt.Sprintf("<< /Type /Annot /Subtype /Square /Rect [10 10 60 60] /F %d /C %s /IC %s >>", flags, c, ic)
}

// MonochromePage has a black rectangle over its lower left quarter.
func MonochromePage(width, height float64) Page {
	return Page{
		Width:   width,
		Height:  height,
		Content: fmt.Sprintf("0 g 0 0 %s %s re f", num(width/2), num(height/2)),
	}
}

// ColorPage is white except for a red square in the lower left corner.
func ColorPage(width, height float64) Page {
	return Page{
		Width:   width,
		Height:  height,
		Content: "1 0 0 rg 0 0 40 40 re f",
	}
}

func BlankPage(width, height float64) Page {
	return Page{Width: width, Height: height}
}

// Build serializes pages into a PDF with a valid cross reference table.
func Build(pages []Page) []byte {
	// objects 1 and 2 are the catalog and the page tree
	next := 3
	pageNums := make([]int, len(pages))
	contentNums := make([]int, len(pages))
	annotNums := make([][]int, len(pages))
	for i, p := range pages {
		pageNums[i], contentNums[i] = next, next+1
		next += 2
		for range p.Annots {
			annotNums[i] = append(annotNums[i], next)
			next++
		}
	}

	var buf bytes.Buffer
	offsets := make([]int, next)

	object := func(n int, body string) {
		offsets[n] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", n, body)
	}

	buf.WriteString("%PDF-1.4\n")

	object(1, "<< /Type /Catalog /Pages 2 0 R >>")
	object(2, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", refs(pageNums), len(pages)))

	for i, p := range pages {
		var extra bytes.Buffer
		if len(p.CropBox) == 4 {
			fmt.Fprintf(&extra, " /CropBox [%s %s %s %s]", num(p.CropBox[0]), num(p.CropBox[1]), num(p.CropBox[2]), num(p.CropBox[3]))
		}
		if len(annotNums[i]) > 0 {
			fmt.Fprintf(&extra, " /Annots [%s]", refs(annotNums[i]))
		}

		object(pageNums[i], fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %s %s]%s /Resources << >> /Contents %d 0 R >>",
			num(p.Width), num(p.Height), extra.String(), contentNums[i]))
		object(contentNums[i], fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(p.Content), p.Content))
		for j, annot := range p.Annots {
			object(annotNums[i][j], annot)
		}
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", next)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets[1:] {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", next, xref)

	return buf.Bytes()
}

func refs(nums []int) string {
	var b bytes.Buffer
	for i, n := range nums {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d 0 R", n)
	}
	return b.String()
}

func Write(path string, pages ...Page) error {
	if err := os.WriteFile(path, Build(pages), 0644); err != nil {
		return fmt.Errorf("failed to write test PDF: %w", err)
	}
	return nil
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
