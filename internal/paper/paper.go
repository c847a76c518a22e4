package paper

import (
	"math"

	"github.com/kpauljoseph/pdfstat/pkg/models"
)

const (
	MMPerPoint = 25.4 / 72

	DefaultToleranceMM = 2.0

	// absorbs float noise so that a difference of exactly the tolerance matches
	epsilon = 1e-9
)

type Format string

const (
	A0    Format = "A0"
	A1    Format = "A1"
	A2    Format = "A2"
	A3    Format = "A3"
	A4    Format = "A4"
	Other Format = "Other"
)

// Standard is a named format with its canonical portrait size in millimeters.
type Standard struct {
	Format Format
	Width  float64
	Height float64
}

var standards = []Standard{
	{Format: A0, Width: 841, Height: 1189},
	{Format: A1, Width: 594, Height: 841},
	{Format: A2, Width: 420, Height: 594},
	{Format: A3, Width: 297, Height: 420},
	{Format: A4, Width: 210, Height: 297},
}

// Standards returns a copy of the canonical table in match order.
func Standards() []Standard {
	return append([]Standard(nil), standards...)
}

// MatchOrder is the order in which canonical sizes are tried.
func MatchOrder() []Format {
	return []Format{A0, A1, A2, A3, A4}
}

// DisplayOrder is the order formats are listed in a printed report.
func DisplayOrder() []Format {
	return []Format{A4, A3, A2, A1, A0, Other}
}

// AllFormats lists every bucket label, standard formats first.
func AllFormats() []Format {
	return append(MatchOrder(), Other)
}

func PointsToMM(widthPt, heightPt float64) models.PageDimensions {
	return models.PageDimensions{
		Width:  roundTenth(widthPt * MMPerPoint),
		Height: roundTenth(heightPt * MMPerPoint),
	}
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

type Classifier struct {
	table     []Standard
	tolerance float64
}

func NewClassifier(table []Standard, toleranceMM float64) *Classifier {
	return &Classifier{
		table:     append([]Standard(nil), table...),
		tolerance: toleranceMM,
	}
}

func DefaultClassifier() *Classifier {
	return NewClassifier(standards, DefaultToleranceMM)
}

func (c *Classifier) Tolerance() float64 {
	return c.tolerance
}

// Classify returns the first standard format whose canonical size matches
// the given size in either orientation, or Other.
func (c *Classifier) Classify(size models.PageDimensions) Format {
	for _, std := range c.table {
		if c.matches(size.Width, size.Height, std.Width, std.Height) ||
			c.matches(size.Width, size.Height, std.Height, std.Width) {
			return std.Format
		}
	}
	return Other
}

func (c *Classifier) matches(width, height, refWidth, refHeight float64) bool {
	return math.Abs(width-refWidth) <= c.tolerance+epsilon &&
		math.Abs(height-refHeight) <= c.tolerance+epsilon
}
