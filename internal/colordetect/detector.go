package colordetect

import (
	"image"

	"github.com/kpauljoseph/pdfstat/pkg/logger"
)

type Renderer interface {
	RenderPage(index int) (image.Image, error)
}

// AnnotationInspector is implemented by renderers that do not draw
// annotations and can report their colors instead.
type AnnotationInspector interface {
	HasColorAnnotations(index int) (bool, error)
}

type Detector struct {
	logger *logger.Logger
}

func NewDetector(logger *logger.Logger) *Detector {
	return &Detector{logger: logger}
}

// PageIsColor renders the page at index and scans it for chromatic pixels.
// A page that fails to render is reported as color.
func (d *Detector) PageIsColor(r Renderer, index int) bool {
	img, err := r.RenderPage(index)
	if err != nil {
		d.logger.Warn("Rendering page %d failed, counting it as color: %v", index+1, err)
		return true
	}

	pix := FromImage(img)
	d.logger.Trace("Page %d rendered: %dx%d, %d channels", index+1, pix.Width, pix.Height, pix.Channels)

	if IsColor(pix) {
		return true
	}
	if pix.Channels < 3 {
		return false
	}

	inspector, ok := r.(AnnotationInspector)
	if !ok {
		return false
	}
	hasColor, err := inspector.HasColorAnnotations(index)
	if err != nil {
		d.logger.Debug("Could not inspect annotations of page %d: %v", index+1, err)
		return false
	}
	if hasColor {
		d.logger.Debug("Page %d has color annotations", index+1)
	}
	return hasColor
}
