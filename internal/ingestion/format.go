package ingestion

import (
	"bytes"
	"mime"
	"path/filepath"
	"strings"
)

// Format identifies the container a resume arrived in.
type Format string

const (
	FormatPDF      Format = "pdf"
	FormatDOCX     Format = "docx"
	FormatHTML     Format = "html"
	FormatText     Format = "txt"
	FormatMarkdown Format = "md"
	FormatUnknown  Format = ""
)

// Label returns the user-facing name of the format.
func (f Format) Label() string {
	switch f {
	case FormatPDF:
		return "PDF"
	case FormatDOCX:
		return "DOCX"
	case FormatHTML:
		return "HTML"
	case FormatText:
		return "text"
	case FormatMarkdown:
		return "Markdown"
	default:
		return "unknown"
	}
}

var extensionFormats = map[string]Format{
	".pdf":      FormatPDF,
	".docx":     FormatDOCX,
	".html":     FormatHTML,
	".htm":      FormatHTML,
	".txt":      FormatText,
	".text":     FormatText,
	".md":       FormatMarkdown,
	".markdown": FormatMarkdown,
}

var mediaTypeFormats = map[string]Format{
	"application/pdf": FormatPDF,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": FormatDOCX,
	"text/html":     FormatHTML,
	"text/plain":    FormatText,
	"text/markdown": FormatMarkdown,
}

// Detect picks a format from the file name, falling back to the content type.
func Detect(name, contentType string) Format {
	if f, ok := extensionFormats[strings.ToLower(filepath.Ext(name))]; ok {
		return f
	}
	if contentType == "" {
		return FormatUnknown
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return FormatUnknown
	}
	return mediaTypeFormats[mediaType]
}

// sniff recognizes the binary formats by their magic bytes.
func sniff(data []byte) Format {
	switch {
	case bytes.HasPrefix(data, []byte("%PDF-")):
		return FormatPDF
	case bytes.HasPrefix(data, []byte("PK\x03\x04")):
		return FormatDOCX
	default:
		return FormatUnknown
	}
}
