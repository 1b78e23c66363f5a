package ingestion

import (
	"context"
	"fmt"
	"net/url"
	"path"

	"github.com/jonathan/resume-importer/internal/fetch"
)

var (
	// ErrHTTPRequestFailed is returned when the document cannot be downloaded
	ErrHTTPRequestFailed = fmt.Errorf("HTTP request failed")
)

// FromURL fetches a resume from a URL and extracts its text.
// Share links for Google Docs, Drive, Dropbox and GitHub are resolved to direct downloads.
// If UseBrowser is set and an HTML page yields too little text, the page is rendered
// in a headless browser and extracted again.
func FromURL(ctx context.Context, urlStr string, opts *Options) (*Document, error) {
	log := opts.logger()

	fetchOpts := fetch.DefaultOptions()
	if opts != nil {
		if opts.FetchTimeout > 0 {
			fetchOpts.Timeout = opts.FetchTimeout
		}
		if opts.MaxFileSize > 0 {
			fetchOpts.MaxBytes = opts.MaxFileSize
		}
	}

	log.Debug("fetching resume", "url", urlStr, "host", string(fetch.DetectHost(urlStr)))

	result, err := fetch.URL(ctx, urlStr, fetchOpts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
	}
	log.Debug("fetched document", "url", result.URL, "bytes", len(result.Body), "content_type", result.ContentType)

	src := Source{
		Name:        nameFromURL(result.URL),
		ContentType: result.ContentType,
		Data:        result.Body,
		URL:         urlStr,
	}
	doc, err := ExtractText(ctx, src, opts)
	if err != nil {
		return nil, err
	}
	doc.Metadata.Source = urlStr

	if doc.Metadata.Format != FormatHTML || opts == nil || !opts.UseBrowser || !fetch.ShouldUseBrowser(doc.Text) {
		return doc, nil
	}

	log.Debug("content too short, falling back to browser rendering",
		"chars", len(doc.Text), "min", fetch.MinContentLength)

	rendered, err := fetch.WithBrowser(ctx, urlStr, opts.FetchTimeout, log)
	if err != nil {
		// Keep the HTTP content if the browser fails
		log.Warn("browser rendering failed, using HTTP content", "url", urlStr, "error", err)
		return doc, nil
	}

	src.Data = []byte(rendered)
	renderedDoc, err := ExtractText(ctx, src, opts)
	if err != nil {
		log.Warn("browser content extraction failed", "url", urlStr, "error", err)
		return doc, nil
	}
	renderedDoc.Metadata.Source = urlStr
	renderedDoc.Metadata.Rendered = true
	return renderedDoc, nil
}

// nameFromURL uses the last path segment so extension-based detection works for direct links.
func nameFromURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	base := path.Base(u.Path)
	if base == "." || base == "/" {
		return u.Host
	}
	return base
}
