package models

// PageDimensions is a page size in millimeters, rounded to one decimal place.
type PageDimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type PageClassification struct {
	PageNum int            `json:"page"`
	Size    PageDimensions `json:"size_mm"`
	IsColor bool           `json:"is_color"`
	Format  string         `json:"format"`
}
