package colordetect

import (
	"image"
	"image/draw"
)

// Pixmap is an interleaved pixel buffer with Channels samples per pixel.
type Pixmap struct {
	Width    int
	Height   int
	Channels int
	Samples  []byte
}

// FromImage exposes the pixel buffer of img without copying when the layout
// is already tightly packed. Grayscale images yield a single channel; color
// images yield RGBA, where the alpha sample is never inspected.
func FromImage(img image.Image) Pixmap {
	bounds := img.Bounds()
	switch src := img.(type) {
	case *image.Gray:
		return packed(bounds, 1, src.Pix, src.Stride)
	case *image.RGBA:
		return packed(bounds, 4, src.Pix, src.Stride)
	case *image.NRGBA:
		return packed(bounds, 4, src.Pix, src.Stride)
	}

	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	return packed(rgba.Bounds(), 4, rgba.Pix, rgba.Stride)
}

func packed(bounds image.Rectangle, channels int, pix []byte, stride int) Pixmap {
	width, height := bounds.Dx(), bounds.Dy()
	rowLen := width * channels

	if stride == rowLen {
		return Pixmap{Width: width, Height: height, Channels: channels, Samples: pix[:rowLen*height]}
	}

	samples := make([]byte, 0, rowLen*height)
	for y := 0; y < height; y++ {
		samples = append(samples, pix[y*stride:y*stride+rowLen]...)
	}
	return Pixmap{Width: width, Height: height, Channels: channels, Samples: samples}
}

// IsColor reports whether any pixel has differing red, green and blue
// samples. Pixmaps with fewer than three channels carry no color.
func IsColor(p Pixmap) bool {
	if p.Channels < 3 {
		return false
	}
	for i := 0; i+2 < len(p.Samples); i += p.Channels {
		r, g, b := p.Samples[i], p.Samples[i+1], p.Samples[i+2]
		if r != g || g != b {
			return true
		}
	}
	return false
}
