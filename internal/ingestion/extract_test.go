package ingestion

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const documentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>
<w:p><w:r><w:t>jane@example.com</w:t><w:tab/><w:t>555-123-4567</w:t></w:r></w:p>
<w:p><w:r><w:t xml:space="preserve">Experience</w:t></w:r></w:p>
<w:p><w:r><w:t>Acme </w:t></w:r><w:r><w:t>Corp</w:t></w:r></w:p>
<w:p><w:pPr><w:numPr><w:ilvl w:val="0"/><w:numId w:val="1"/></w:numPr></w:pPr><w:r><w:t>Shipped V2</w:t></w:r></w:p>
<w:p><w:r><w:t>Line one</w:t><w:br/><w:t>Line two</w:t></w:r></w:p>
<w:p></w:p>
</w:body>
</w:document>`

func buildDOCX(t *testing.T, parts map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range parts {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		want        Format
	}{
		{"resume.pdf", "", FormatPDF},
		{"Resume.DOCX", "", FormatDOCX},
		{"cv.htm", "", FormatHTML},
		{"notes.md", "", FormatMarkdown},
		{"cv.txt", "application/octet-stream", FormatText},
		{"export", "application/pdf", FormatPDF},
		{"export", "application/vnd.openxmlformats-officedocument.wordprocessingml.document", FormatDOCX},
		{"page", "text/html; charset=utf-8", FormatHTML},
		{"resume.doc", "", FormatUnknown},
		{"blob", "bogus;;", FormatUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name+"|"+tt.contentType, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.name, tt.contentType))
		})
	}
}

func TestExtractText_DOCX(t *testing.T) {
	data := buildDOCX(t, map[string]string{"word/document.xml": documentXML})

	doc, err := ExtractText(context.Background(), Source{Name: "resume.docx", Data: data}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Jane Doe",
		"jane@example.com 555-123-4567",
		"Experience",
		"Acme Corp",
		"• Shipped V2",
		"Line one",
		"Line two",
	}, doc.Lines())
	assert.Equal(t, FormatDOCX, doc.Metadata.Format)
	assert.Equal(t, 7, doc.Metadata.LineCount)
}

func TestExtractText_DOCXSniffedWithoutName(t *testing.T) {
	data := buildDOCX(t, map[string]string{"word/document.xml": documentXML})

	doc, err := ExtractText(context.Background(), Source{Name: "upload", Data: data}, nil)
	require.NoError(t, err)
	assert.Equal(t, FormatDOCX, doc.Metadata.Format)
}

func TestExtractText_DOCXMissingBody(t *testing.T) {
	data := buildDOCX(t, map[string]string{"word/styles.xml": "<w:styles/>"})

	_, err := ExtractText(context.Background(), Source{Name: "resume.docx", Data: data}, nil)
	require.Error(t, err)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "Failed to parse DOCX file. Please ensure it's a valid resume document.", err.Error())
	assert.Contains(t, parseErr.Unwrap().Error(), "no document.xml")
}

func TestExtractText_CorruptPDF(t *testing.T) {
	_, err := ExtractText(context.Background(), Source{Name: "resume.pdf", Data: []byte("%PDF-1.4 garbage")}, nil)
	require.Error(t, err)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, FormatPDF, parseErr.Format)
	assert.Equal(t, "Failed to parse PDF file. Please ensure it's a valid resume document.", err.Error())
}

func TestExtractText_HTML(t *testing.T) {
	html := `<html><head><style>p { color: red }</style><script>var x = 1;</script></head>
<body>
  <h1>Jane   Doe</h1>
  <p>jane@example.com<br>Seattle, WA</p>
  <h2>Experience</h2>
  <div>Acme Corp</div>
  <ul>
    <li>Shipped
        V2</li>
    <li>Mentored engineers</li>
  </ul>
</body></html>`

	doc, err := ExtractText(context.Background(), Source{Name: "cv.html", Data: []byte(html)}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Jane Doe",
		"jane@example.com",
		"Seattle, WA",
		"Experience",
		"Acme Corp",
		"• Shipped V2",
		"• Mentored engineers",
	}, doc.Lines())
}

func TestExtractText_PlainAndMarkdown(t *testing.T) {
	doc, err := ExtractText(context.Background(), Source{Name: "cv.txt", Data: []byte("Jane Doe\r\n\r\nExperience  \r\n")}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\n\nExperience", doc.Text)

	doc, err = ExtractText(context.Background(), Source{Name: "cv.md", Data: []byte("# Jane Doe\n## Skills\n- **Go**")}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Jane Doe", "Skills", "- Go"}, doc.Lines())
}

func TestExtractText_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := ExtractText(ctx, Source{Name: "resume.doc", Data: []byte("legacy")}, nil)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.Contains(t, err.Error(), "Please upload a PDF or DOCX file")

	_, err = ExtractText(ctx, Source{Name: "resume.txt"}, nil)
	assert.ErrorIs(t, err, ErrEmptyDocument)

	_, err = ExtractText(ctx, Source{Name: "resume.txt", Data: []byte("0123456789")}, &Options{MaxFileSize: 4})
	var sizeErr *SizeError
	require.ErrorAs(t, err, &sizeErr)
	assert.Equal(t, int64(10), sizeErr.Size)

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = ExtractText(canceled, Source{Name: "resume.txt", Data: []byte("x")}, nil)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("Jane Doe\nExperience\nAcme"), 0644))

	doc, err := FromFile(context.Background(), path, &Options{MaxFileSize: 1024})
	require.NoError(t, err)
	assert.Equal(t, path, doc.Metadata.Source)
	assert.Equal(t, 3, doc.Metadata.LineCount)

	_, err = FromFile(context.Background(), filepath.Join(t.TempDir(), "missing.txt"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")

	_, err = FromFile(context.Background(), path, &Options{MaxFileSize: 4})
	var sizeErr *SizeError
	assert.ErrorAs(t, err, &sizeErr)
}

func TestFromURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/resume.txt":
			w.Header().Set("Content-Type", "text/plain")
			_, _ = w.Write([]byte("Jane Doe\njane@example.com"))
		case "/cv":
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<body><p>Jane Doe</p><p>Experience</p></body>"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	doc, err := FromURL(context.Background(), server.URL+"/resume.txt", nil)
	require.NoError(t, err)
	assert.Equal(t, FormatText, doc.Metadata.Format)
	assert.Equal(t, server.URL+"/resume.txt", doc.Metadata.URL)
	assert.Equal(t, server.URL+"/resume.txt", doc.Metadata.Source)

	doc, err = FromURL(context.Background(), server.URL+"/cv", &Options{})
	require.NoError(t, err)
	assert.Equal(t, FormatHTML, doc.Metadata.Format)
	assert.Equal(t, []string{"Jane Doe", "Experience"}, doc.Lines())
	assert.False(t, doc.Metadata.Rendered)

	_, err = FromURL(context.Background(), server.URL+"/missing", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHTTPRequestFailed)
	assert.True(t, strings.Contains(err.Error(), "404"))
}
