package analyzer_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kpauljoseph/pdfstat/internal/paper"
	"github.com/kpauljoseph/pdfstat/internal/pdf"
	"github.com/kpauljoseph/pdfstat/internal/pdftest"
	"github.com/kpauljoseph/pdfstat/internal/report"
)

var _ = Describe("Analyzer on rendered PDFs", Label("integration"), Ordered, func() {
	var (
		tempDir string
		ctx     context.Context
	)

	BeforeAll(func() {
		var err error
		tempDir, err = os.MkdirTemp("", "pdfstat-acceptance-*")
		Expect(err).NotTo(HaveOccurred())
		ctx = context.Background()
	})

	AfterAll(func() {
		Expect(os.RemoveAll(tempDir)).To(Succeed())
	})

	fitzOpener := func() *pdf.FitzOpener {
		return pdf.NewFitzOpener(pdf.UnitZoomDPI, analyzerTestLogger())
	}

	It("should classify a gray A4 page as monochrome A4", func() {
		path := filepath.Join(tempDir, "gray-a4.pdf")
		Expect(pdftest.Write(path, pdftest.MonochromePage(a4WidthPt, a4HeightPt))).To(Succeed())

		rep, err := newAnalyzer(fitzOpener()).Analyze(ctx, path)
		Expect(err).NotTo(HaveOccurred())
		Expect(rep.NumPages).To(Equal(1))
		Expect(rep.BWStat[paper.A4]).To(Equal(&report.Bucket{Count: 1, Pages: []int{1}}))
		expectEmptyExcept(rep, map[string]bool{"bw/A4": true})
	})

	It("should classify a mixed document by color and size", func() {
		path := filepath.Join(tempDir, "mixed.pdf")
		Expect(pdftest.Write(path,
			pdftest.ColorPage(a4WidthPt, a4HeightPt),
			pdftest.BlankPage(a4WidthPt, a4HeightPt),
			pdftest.ColorPage(otherWidthPt, otherHeightPt),
		)).To(Succeed())

		By("Analyzing the document")
		rep, err := newAnalyzer(fitzOpener()).Analyze(ctx, path)
		Expect(err).NotTo(HaveOccurred())

		By("Verifying each page landed in its bucket")
		Expect(rep.NumPages).To(Equal(3))
		Expect(rep.ColorStat[paper.A4].Pages).To(Equal([]int{1}))
		Expect(rep.BWStat[paper.A4].Pages).To(Equal([]int{2}))
		Expect(rep.ColorStat[paper.Other].Pages).To(Equal([]int{3}))
		expectEmptyExcept(rep, map[string]bool{"color/A4": true, "bw/A4": true, "color/Other": true})
	})

	It("should size pages with bleed by their crop box", func() {
		path := filepath.Join(tempDir, "bleed.pdf")
		Expect(pdftest.Write(path,
			pdftest.MonochromePage(700, 950).WithCropBox(a4WidthPt, a4HeightPt),
		)).To(Succeed())

		pages, err := newAnalyzer(fitzOpener()).Classify(ctx, path)
		Expect(err).NotTo(HaveOccurred())
		Expect(pages).To(HaveLen(1))
		Expect(pages[0].Size.Width).To(Equal(210.0))
		Expect(pages[0].Size.Height).To(Equal(297.0))
		Expect(pages[0].Format).To(Equal("A4"))
	})

	It("should count a page whose only color is an annotation as color", func() {
		path := filepath.Join(tempDir, "markup.pdf")
		Expect(pdftest.Write(path,
			pdftest.BlankPage(a4WidthPt, a4HeightPt).WithAnnots(pdftest.SquareAnnot("[0 0 0]", "[1 0 0]", 4)),
			pdftest.BlankPage(a4WidthPt, a4HeightPt),
		)).To(Succeed())

		rep, err := newAnalyzer(fitzOpener()).Analyze(ctx, path)
		Expect(err).NotTo(HaveOccurred())
		Expect(rep.ColorStat[paper.A4].Pages).To(Equal([]int{1}))
		Expect(rep.BWStat[paper.A4].Pages).To(Equal([]int{2}))
	})

	It("should produce byte identical reports on repeated runs", func() {
		path := filepath.Join(tempDir, "repeat.pdf")
		Expect(pdftest.Write(path,
			pdftest.MonochromePage(a4HeightPt, a4WidthPt),
			pdftest.ColorPage(841.89, 1190.55),
		)).To(Succeed())

		encode := func() []byte {
			rep, err := newAnalyzer(fitzOpener()).Analyze(ctx, path)
			Expect(err).NotTo(HaveOccurred())
			var buf bytes.Buffer
			Expect(rep.WriteJSON(&buf)).To(Succeed())
			return buf.Bytes()
		}

		first := encode()
		Expect(encode()).To(Equal(first))
	})

	It("should fail without a report when the file is not a PDF", func() {
		path := filepath.Join(tempDir, "junk.pdf")
		Expect(os.WriteFile(path, []byte("junk"), 0644)).To(Succeed())

		rep, err := newAnalyzer(fitzOpener()).Analyze(ctx, path)
		Expect(rep).To(BeNil())
		Expect(pdf.IsOpenError(err)).To(BeTrue())
	})
})
