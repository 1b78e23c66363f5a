// Package importer orchestrates a resume import: acquire text, segment it, and optionally validate the result.
package importer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jonathan/resume-importer/internal/config"
	"github.com/jonathan/resume-importer/internal/ingestion"
	"github.com/jonathan/resume-importer/internal/parsing"
	"github.com/jonathan/resume-importer/internal/schemas"
	"github.com/jonathan/resume-importer/internal/types"
	"golang.org/x/sync/errgroup"
)

// Source identifies one document to import. Exactly one of Path, URL or Data is used,
// checked in that order. Name labels in-memory uploads and drives their format detection.
type Source struct {
	Path        string
	URL         string
	Name        string
	ContentType string
	Data        []byte
}

// Label is a human-readable identifier for logs and output file names.
func (s Source) Label() string {
	switch {
	case s.Path != "":
		return s.Path
	case s.URL != "":
		return s.URL
	case s.Name != "":
		return s.Name
	default:
		return "(inline)"
	}
}

// Result is the outcome of importing one source.
type Result struct {
	Source   string              `json:"source"`
	Resume   *types.Resume       `json:"resume,omitempty"`
	Metadata *ingestion.Metadata `json:"metadata,omitempty"`
	Duration time.Duration       `json:"-"`
	Err      error               `json:"-"`
}

// Options configures an Importer.
type Options struct {
	Concurrency int
	Validate    bool
	FailFast    bool
	Ingestion   ingestion.Options
	Logger      *slog.Logger
}

// Importer runs imports. It holds no per-import state and is safe for concurrent use.
type Importer struct {
	opts   Options
	logger *slog.Logger
}

// New creates an Importer.
func New(opts Options) *Importer {
	if opts.Concurrency <= 0 {
		opts.Concurrency = config.DefaultConcurrency
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	opts.Ingestion.Logger = logger
	return &Importer{opts: opts, logger: logger}
}

// NewFromConfig creates an Importer from the application configuration.
func NewFromConfig(cfg config.Config, logger *slog.Logger) *Importer {
	return New(Options{
		Concurrency: cfg.Concurrency,
		Validate:    cfg.ValidateOutput,
		FailFast:    cfg.FailFast,
		Ingestion: ingestion.Options{
			MaxFileSize:  cfg.MaxFileSize,
			UseBrowser:   cfg.UseBrowser,
			FetchTimeout: time.Duration(cfg.FetchTimeout),
		},
		Logger: logger,
	})
}

// Import acquires the text of src, parses it and validates the result when enabled.
func (im *Importer) Import(ctx context.Context, src Source) (*Result, error) {
	start := time.Now()
	label := src.Label()

	doc, err := im.acquire(ctx, src)
	if err != nil {
		im.logger.Warn("import failed", "source", label, "error", err)
		return nil, err
	}

	resume := parsing.Parse(doc.Text)

	if im.opts.Validate {
		if err := validate(resume); err != nil {
			im.logger.Warn("imported resume failed validation", "source", label, "error", err)
			return nil, &ValidationError{Source: label, Cause: err}
		}
	}

	res := &Result{
		Source:   label,
		Resume:   resume,
		Metadata: doc.Metadata,
		Duration: time.Since(start),
	}
	im.logger.Info("imported resume",
		"source", label,
		"format", string(doc.Metadata.Format),
		"work", len(resume.WorkExperiences),
		"education", len(resume.Educations),
		"projects", len(resume.Projects),
		"duration", res.Duration)
	return res, nil
}

// ImportText parses already-extracted text. Used by the plain-text API endpoint.
func (im *Importer) ImportText(ctx context.Context, name, text string) (*Result, error) {
	return im.Import(ctx, Source{Name: name, ContentType: "text/plain", Data: []byte(text)})
}

// ImportAll imports every source with at most Concurrency imports in flight.
// Results are returned in input order. A failed source records its error in Result.Err;
// with FailFast the first failure cancels the remaining imports and is returned.
func (im *Importer) ImportAll(ctx context.Context, sources []Source) ([]*Result, error) {
	results := make([]*Result, len(sources))
	err := im.ImportEach(ctx, sources, func(i int, res *Result) {
		results[i] = res
	})
	return results, err
}

// ImportEach is ImportAll with a callback invoked as each import finishes, in completion order.
// Calls to fn are serialized; i is the index of the source in sources.
func (im *Importer) ImportEach(ctx context.Context, sources []Source, fn func(i int, res *Result)) error {
	var mu sync.Mutex
	report := func(i int, res *Result) {
		mu.Lock()
		defer mu.Unlock()
		fn(i, res)
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(im.opts.Concurrency)

	for i, src := range sources {
		g.Go(func() error {
			res, err := im.Import(gCtx, src)
			if err != nil {
				report(i, &Result{Source: src.Label(), Err: err})
				if im.opts.FailFast {
					return fmt.Errorf("%s: %w", src.Label(), err)
				}
				return nil
			}
			report(i, res)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

func (im *Importer) acquire(ctx context.Context, src Source) (*ingestion.Document, error) {
	opts := &im.opts.Ingestion
	switch {
	case src.Path != "":
		return ingestion.FromFile(ctx, src.Path, opts)
	case src.URL != "":
		return ingestion.FromURL(ctx, src.URL, opts)
	case len(src.Data) > 0:
		return ingestion.ExtractText(ctx, ingestion.Source{
			Name:        src.Name,
			ContentType: src.ContentType,
			Data:        src.Data,
		}, opts)
	default:
		return nil, ingestion.ErrEmptyDocument
	}
}

func validate(r *types.Resume) error {
	return errors.Join(r.Validate(), schemas.ValidateResume(r))
}

// Failed returns the results that carry an error.
func Failed(results []*Result) []*Result {
	var failed []*Result
	for _, r := range results {
		if r != nil && r.Err != nil {
			failed = append(failed, r)
		}
	}
	return failed
}
