package types

import (
	"errors"
	"fmt"
)

var (
	// ErrNotPDF rejects uploads before any extraction work is done.
	ErrNotPDF = errors.New("only PDF files are accepted")

	// ErrFileTooLarge rejects uploads over the configured size limit.
	ErrFileTooLarge = errors.New("file exceeds the size limit")

	// ErrNoText means a PDF produced no usable text from either the
	// embedded text layer or OCR.
	ErrNoText = errors.New("no extractable text")

	// ErrNotFound is the soft miss for deleting an unknown document.
	ErrNotFound = errors.New("document not found")
)

// ExtractionError reports a per-file extraction failure. The batch
// upload flow surfaces it to the user and keeps processing the
// remaining files.
type ExtractionError struct {
	File string
	Err  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction failed for %s: %v", e.File, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}
