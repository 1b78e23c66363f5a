package server

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/jonathan/resume-importer/internal/importer"
	"github.com/jonathan/resume-importer/internal/ingestion"
	"github.com/jonathan/resume-importer/internal/types"
)

// maxMultipartMemory is held in memory while parsing a form; larger parts spill to disk.
const maxMultipartMemory = 32 << 20

// maxBatchFiles caps the number of documents in one batch upload.
const maxBatchFiles = 20

// ImportTextRequest represents the request body for /import/text
type ImportTextRequest struct {
	Text string `json:"text" validate:"required"`
	Name string `json:"name,omitempty" validate:"omitempty,max=255"`
}

// ImportResponse is the body of a successful import.
type ImportResponse struct {
	ID       string              `json:"id"`
	Resume   *types.Resume       `json:"resume"`
	Metadata *ingestion.Metadata `json:"metadata"`
}

// BatchEvent is the payload of one "result" event on /import/batch.
type BatchEvent struct {
	Index  int    `json:"index"`
	Source string `json:"source"`
	*ImportResponse
	Status int    `json:"status,omitempty"`
	Error  string `json:"error,omitempty"`
}

func newImportResponse(res *importer.Result) ImportResponse {
	return ImportResponse{
		ID:       res.Metadata.ID.String(),
		Resume:   res.Resume,
		Metadata: res.Metadata,
	}
}

// handleImport imports one document, uploaded as the multipart field "file"
// or referenced by the form field "url".
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload+multipartOverhead)
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		s.failResponse(w, r, formError(err))
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	var src importer.Source
	if fh := firstFile(r.MultipartForm, "file"); fh != nil {
		data, err := readUpload(fh, s.maxUpload)
		if err != nil {
			s.failResponse(w, r, err)
			return
		}
		src = importer.Source{Name: fh.Filename, ContentType: fh.Header.Get("Content-Type"), Data: data}
	} else if u := strings.TrimSpace(r.FormValue("url")); u != "" {
		src = importer.Source{URL: u}
	} else {
		s.failResponse(w, r, &ErrValidation{Field: "file", Message: "a file upload or url is required"})
		return
	}

	res, err := s.importer.Import(r.Context(), src)
	if err != nil {
		s.failResponse(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, newImportResponse(res))
}

// handleImportText parses pasted resume text.
func (s *Server) handleImportText(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)

	var req ImportTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			s.failResponse(w, r, err)
			return
		}
		s.failResponse(w, r, &ErrValidation{Field: "body", Message: "invalid JSON"})
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.failResponse(w, r, extractValidationErrors(err))
		return
	}

	name := req.Name
	if name == "" {
		name = "pasted.txt"
	}
	res, err := s.importer.ImportText(r.Context(), name, req.Text)
	if err != nil {
		s.failResponse(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, newImportResponse(res))
}

// handleImportBatch imports every multipart "file" part concurrently and streams
// one "result" event per document as it finishes, then a "complete" event.
func (s *Server) handleImportBatch(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBatchFiles*s.maxUpload+multipartOverhead)
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		s.failResponse(w, r, formError(err))
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	files := r.MultipartForm.File["file"]
	switch {
	case len(files) == 0:
		s.failResponse(w, r, &ErrValidation{Field: "file", Message: "at least one file is required"})
		return
	case len(files) > maxBatchFiles:
		s.failResponse(w, r, &ErrValidation{Field: "file", Message: "too many files"})
		return
	}

	sources := make([]importer.Source, 0, len(files))
	for _, fh := range files {
		data, err := readUpload(fh, s.maxUpload)
		if err != nil {
			s.failResponse(w, r, err)
			return
		}
		sources = append(sources, importer.Source{Name: fh.Filename, ContentType: fh.Header.Get("Content-Type"), Data: data})
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.failResponse(w, r, err)
		return
	}

	failed := 0
	err = s.importer.ImportEach(r.Context(), sources, func(i int, res *importer.Result) {
		event := BatchEvent{Index: i, Source: res.Source}
		if res.Err != nil {
			failed++
			event.Status = HTTPStatus(res.Err)
			event.Error = errorMessage(res.Err)
		} else {
			resp := newImportResponse(res)
			event.ImportResponse = &resp
		}
		if err := sse.WriteEvent("result", event); err != nil {
			s.logger.Warn("failed to write batch event", "index", i, "error", err)
		}
	})
	if err != nil {
		sse.WriteError(errorMessage(err))
		return
	}
	sse.WriteComplete(len(sources), failed)
}

// formError classifies a multipart parsing failure.
func formError(err error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return err
	}
	return &ErrValidation{Field: "body", Message: "expected multipart/form-data"}
}

func firstFile(form *multipart.Form, field string) *multipart.FileHeader {
	if form == nil || len(form.File[field]) == 0 {
		return nil
	}
	return form.File[field][0]
}

// readUpload reads one uploaded part, rejecting it before reading when it exceeds limit.
func readUpload(fh *multipart.FileHeader, limit int64) ([]byte, error) {
	if fh.Size > limit {
		return nil, &ingestion.SizeError{Size: fh.Size, Limit: limit}
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data := make([]byte, fh.Size)
	if _, err := io.ReadFull(f, data); err != nil {
		return nil, err
	}
	return data, nil
}
