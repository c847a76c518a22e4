package pdf

import (
	"fmt"
	"image"

	"github.com/gen2brain/go-fitz"

	"github.com/kpauljoseph/pdfstat/pkg/logger"
)

// UnitZoomDPI renders one device pixel per PDF point.
const UnitZoomDPI = 72.0

// FitzOpener opens documents with MuPDF for rendering. Page sizes and
// annotations come from pdfcpu, which keeps fractional points; when pdfcpu
// rejects the file MuPDF bounds are used and annotations are not inspected.
type FitzOpener struct {
	dpi    float64
	logger *logger.Logger
}

func NewFitzOpener(dpi float64, logger *logger.Logger) *FitzOpener {
	if dpi <= 0 {
		dpi = UnitZoomDPI
	}
	return &FitzOpener{dpi: dpi, logger: logger}
}

func (o *FitzOpener) Open(path string) (Document, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}

	fd := &fitzDocument{doc: doc, dpi: o.dpi, logger: o.logger}

	info, err := readPageInfo(path)
	switch {
	case err != nil:
		o.logger.Debug("pdfcpu could not read %s, using MuPDF bounds: %v", path, err)
	case info.pageCount() != doc.NumPage():
		o.logger.Debug("pdfcpu reports %d pages but MuPDF reports %d, using MuPDF bounds", info.pageCount(), doc.NumPage())
	default:
		fd.info = info
	}

	return fd, nil
}

type fitzDocument struct {
	doc    *fitz.Document
	info   *pageInfo
	dpi    float64
	logger *logger.Logger
}

func (d *fitzDocument) NumPage() int {
	return d.doc.NumPage()
}

// PageSize returns the visible page size, the CropBox, which is also the
// area MuPDF renders.
func (d *fitzDocument) PageSize(index int) (float64, float64, error) {
	if d.info != nil {
		dim := d.info.sizes[index]
		return dim.Width, dim.Height, nil
	}

	bounds, err := d.doc.Bound(index)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get bounds for page %d: %w", index+1, err)
	}
	return float64(bounds.Dx()), float64(bounds.Dy()), nil
}

func (d *fitzDocument) RenderPage(index int) (image.Image, error) {
	img, err := d.doc.ImageDPI(index, d.dpi)
	if err != nil {
		return nil, fmt.Errorf("failed to render page %d: %w", index+1, err)
	}
	return img, nil
}

// HasColorAnnotations reports visible annotations with a chromatic /C or /IC
// entry. MuPDF renders page contents only, so these are checked separately.
func (d *fitzDocument) HasColorAnnotations(index int) (bool, error) {
	if d.info == nil {
		return false, nil
	}
	return d.info.hasColorAnnotations(index)
}

func (d *fitzDocument) Close() error {
	return d.doc.Close()
}
