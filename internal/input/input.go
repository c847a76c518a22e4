package input

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"

	"github.com/kpauljoseph/pdfstat/internal/pdf"
)

const pdfMIME = "application/pdf"

// Resolve returns the absolute path of a readable PDF file. The file type is
// detected from its content, not its extension.
func Resolve(path string) (string, error) {
	if path == "" {
		return "", errors.New("no PDF file given")
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return "", &pdf.OpenError{Path: absPath, Err: err}
	}
	if info.IsDir() {
		return "", &pdf.OpenError{Path: absPath, Err: errors.New("is a directory")}
	}

	mtype, err := mimetype.DetectFile(absPath)
	if err != nil {
		return "", &pdf.OpenError{Path: absPath, Err: fmt.Errorf("failed to detect file type: %w", err)}
	}
	if !mtype.Is(pdfMIME) {
		return "", &pdf.OpenError{Path: absPath, Err: fmt.Errorf("unsupported file type %s", mtype.String())}
	}

	return absPath, nil
}
