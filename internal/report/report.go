package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kpauljoseph/pdfstat/internal/paper"
	"github.com/kpauljoseph/pdfstat/pkg/models"
)

type Bucket struct {
	Count int   `json:"count"`
	Pages []int `json:"pages"`
}

// Stat maps every format label to its bucket.
type Stat map[paper.Format]*Bucket

type Report struct {
	NumPages  int  `json:"numPages"`
	ColorStat Stat `json:"colorStat"`
	BWStat    Stat `json:"bwStat"`
}

func newStat() Stat {
	stat := make(Stat, len(paper.AllFormats()))
	for _, format := range paper.AllFormats() {
		stat[format] = &Bucket{Pages: []int{}}
	}
	return stat
}

// New returns a report for numPages pages with every bucket empty.
func New(numPages int) *Report {
	return &Report{
		NumPages:  numPages,
		ColorStat: newStat(),
		BWStat:    newStat(),
	}
}

// Add files a classified page into its bucket. Pages must be added in
// ascending order.
func (r *Report) Add(page models.PageClassification) error {
	stat := r.BWStat
	if page.IsColor {
		stat = r.ColorStat
	}

	bucket, ok := stat[paper.Format(page.Format)]
	if !ok {
		return fmt.Errorf("unknown paper format %q for page %d", page.Format, page.PageNum)
	}

	if n := len(bucket.Pages); n > 0 && bucket.Pages[n-1] >= page.PageNum {
		return fmt.Errorf("page %d added after page %d", page.PageNum, bucket.Pages[n-1])
	}

	bucket.Count++
	bucket.Pages = append(bucket.Pages, page.PageNum)
	return nil
}

// Total is the sum of all bucket counts.
func (r *Report) Total() int {
	total := 0
	for _, stat := range []Stat{r.ColorStat, r.BWStat} {
		for _, bucket := range stat {
			total += bucket.Count
		}
	}
	return total
}

func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

// WriteText prints the numbered listing: page total, then the non-empty
// formats of color and monochrome pages in display order.
func (r *Report) WriteText(w io.Writer) error {
	var b strings.Builder

	fmt.Fprintf(&b, "1. Total pages: %d\n", r.NumPages)
	b.WriteString("2. Color pages:\n")
	writeStat(&b, r.ColorStat)
	b.WriteString("3. Monochrome pages:\n")
	writeStat(&b, r.BWStat)

	_, err := io.WriteString(w, b.String())
	return err
}

func writeStat(b *strings.Builder, stat Stat) {
	for _, format := range paper.DisplayOrder() {
		bucket := stat[format]
		if bucket == nil || bucket.Count == 0 {
			continue
		}

		pages := make([]string, len(bucket.Pages))
		for i, p := range bucket.Pages {
			pages[i] = strconv.Itoa(p)
		}
		fmt.Fprintf(b, "%s — %d (%s)\n", format, bucket.Count, strings.Join(pages, ", "))
	}
}
