// Package ingestion turns resume documents (PDF, DOCX, HTML, plain text) into cleaned text
// ready for the line-oriented parser.
package ingestion

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/jonathan/resume-importer/internal/parsing"
)

// Source is one document to ingest. Data is the raw content; Name drives format detection.
type Source struct {
	Name        string
	ContentType string
	Data        []byte
	URL         string
}

// Options controls size limits, URL fetching and logging.
type Options struct {
	MaxFileSize  int64
	UseBrowser   bool
	FetchTimeout time.Duration
	Logger       *slog.Logger
}

func (o *Options) logger() *slog.Logger {
	if o == nil || o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}

// Document is the cleaned text of a source with its metadata.
type Document struct {
	Text     string
	Metadata *Metadata
}

// Lines returns the normalized line sequence of the document.
func (d *Document) Lines() []string {
	return parsing.SplitLines(d.Text)
}

// ExtractText detects the format of src and returns its cleaned text.
func ExtractText(ctx context.Context, src Source, opts *Options) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(src.Data) == 0 {
		return nil, ErrEmptyDocument
	}
	if opts != nil && opts.MaxFileSize > 0 && int64(len(src.Data)) > opts.MaxFileSize {
		return nil, &SizeError{Size: int64(len(src.Data)), Limit: opts.MaxFileSize}
	}

	format := Detect(src.Name, src.ContentType)
	if format == FormatUnknown {
		format = sniff(src.Data)
	}

	var (
		raw string
		err error
	)
	switch format {
	case FormatPDF:
		raw, err = extractPDF(src.Data)
	case FormatDOCX:
		raw, err = extractDOCX(src.Data)
	case FormatHTML:
		raw, err = ExtractHTMLText(decodeText(src.Data))
	case FormatMarkdown:
		raw = stripMarkdown(decodeText(src.Data))
	case FormatText:
		raw = decodeText(src.Data)
	default:
		return nil, fmt.Errorf("%s: %w", src.Name, ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, &ParseError{Format: format, Source: src.Name, Cause: err}
	}

	text := CleanText(raw)
	meta := NewMetadata(src.Name, format, src.Data)
	meta.URL = src.URL
	meta.LineCount = len(parsing.SplitLines(text))

	opts.logger().Debug("extracted text",
		"source", src.Name,
		"format", string(format),
		"bytes", meta.Bytes,
		"lines", meta.LineCount)

	return &Document{Text: text, Metadata: meta}, nil
}

// FromFile reads a document from disk and extracts its text.
func FromFile(ctx context.Context, path string, opts *Options) (*Document, error) {
	if opts != nil && opts.MaxFileSize > 0 {
		if info, err := os.Stat(path); err == nil && info.Size() > opts.MaxFileSize {
			return nil, &SizeError{Size: info.Size(), Limit: opts.MaxFileSize}
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %w", err)
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	doc, err := ExtractText(ctx, Source{Name: filepath.Base(path), Data: data}, opts)
	if err != nil {
		return nil, err
	}
	doc.Metadata.Source = path
	return doc, nil
}
