package pdf

import (
	"errors"
	"fmt"
)

// OpenError reports a file that could not be opened or parsed as a PDF.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("failed to open PDF %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

func IsOpenError(err error) bool {
	var openErr *OpenError
	return errors.As(err, &openErr)
}
