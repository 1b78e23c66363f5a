package ingestion

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedFormat is returned when a document is neither PDF, DOCX, HTML nor plain text.
	ErrUnsupportedFormat = errors.New("unsupported file format. Please upload a PDF or DOCX file")
	// ErrEmptyDocument is returned when a source carries no bytes at all.
	ErrEmptyDocument = errors.New("document is empty")
)

// ParseError is returned when a document of a known format cannot be read.
// Its message is safe to show to end users; the cause is kept for logs.
type ParseError struct {
	Format Format
	Source string
	Cause  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Failed to parse %s file. Please ensure it's a valid resume document.", e.Format.Label())
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// SizeError indicates a document larger than the configured limit.
type SizeError struct {
	Size  int64
	Limit int64
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("document is %d bytes, limit is %d", e.Size, e.Limit)
}
