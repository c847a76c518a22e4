package pdf

import (
	"image"
)

// Document is an open PDF. Page indexes are zero based.
type Document interface {
	NumPage() int
	PageSize(index int) (widthPt, heightPt float64, err error)
	RenderPage(index int) (image.Image, error)
	Close() error
}

type Opener interface {
	Open(path string) (Document, error)
}
