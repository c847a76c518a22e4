package analyzer

import (
	"context"
	"fmt"

	"github.com/kpauljoseph/pdfstat/internal/colordetect"
	"github.com/kpauljoseph/pdfstat/internal/paper"
	"github.com/kpauljoseph/pdfstat/internal/pdf"
	"github.com/kpauljoseph/pdfstat/internal/report"
	"github.com/kpauljoseph/pdfstat/pkg/logger"
	"github.com/kpauljoseph/pdfstat/pkg/models"
)

type Analyzer struct {
	opener     pdf.Opener
	classifier *paper.Classifier
	detector   *colordetect.Detector
	logger     *logger.Logger
}

func New(opener pdf.Opener, classifier *paper.Classifier, detector *colordetect.Detector, logger *logger.Logger) *Analyzer {
	return &Analyzer{
		opener:     opener,
		classifier: classifier,
		detector:   detector,
		logger:     logger,
	}
}

// Analyze classifies every page of the PDF at path and aggregates the
// result. No report is returned if the document cannot be opened or ctx is
// cancelled part way.
func (a *Analyzer) Analyze(ctx context.Context, path string) (*report.Report, error) {
	pages, err := a.Classify(ctx, path)
	if err != nil {
		return nil, err
	}

	rep := report.New(len(pages))
	for _, page := range pages {
		if err := rep.Add(page); err != nil {
			return nil, fmt.Errorf("failed to build report: %w", err)
		}
	}

	a.logger.Debug("Analysis of %s complete: %d pages", path, rep.NumPages)
	return rep, nil
}

// Classify returns one classification per page in document order.
func (a *Analyzer) Classify(ctx context.Context, path string) ([]models.PageClassification, error) {
	a.logger.Info("Analyzing PDF: %s", path)

	doc, err := a.opener.Open(path)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	numPages := doc.NumPage()
	pages := make([]models.PageClassification, 0, numPages)

	for i := 0; i < numPages; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		pages = append(pages, a.classifyPage(doc, i))
	}

	return pages, nil
}

func (a *Analyzer) classifyPage(doc pdf.Document, index int) models.PageClassification {
	widthPt, heightPt, err := doc.PageSize(index)
	if err != nil {
		a.logger.Warn("Could not read size of page %d: %v", index+1, err)
		widthPt, heightPt = 0, 0
	}

	size := paper.PointsToMM(widthPt, heightPt)
	isColor := a.detector.PageIsColor(doc, index)
	format := a.classifier.Classify(size)

	a.logger.Debug("Page %d: %.1f x %.1f mm, format %s, color %t", index+1, size.Width, size.Height, format, isColor)

	return models.PageClassification{
		PageNum: index + 1,
		Size:    size,
		IsColor: isColor,
		Format:  string(format),
	}
}
