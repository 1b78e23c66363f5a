package importer

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-importer/internal/config"
	"github.com/jonathan/resume-importer/internal/ingestion"
	"github.com/jonathan/resume-importer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const janeDoe = `Jane Doe
jane@example.com | 555-123-4567
Experience
Acme Corp
Senior Engineer
2019 - 2022
• Shipped V2 of the platform
Skills
Python, Go`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestImport_File(t *testing.T) {
	path := writeFile(t, t.TempDir(), "jane.txt", janeDoe)
	im := New(Options{Validate: true})

	res, err := im.Import(context.Background(), Source{Path: path})
	require.NoError(t, err)

	assert.Equal(t, path, res.Source)
	assert.Equal(t, "Jane Doe", res.Resume.Profile.Name)
	assert.Equal(t, "Acme Corp", res.Resume.WorkExperiences[0].Company)
	assert.Equal(t, ingestion.FormatText, res.Metadata.Format)
	assert.Len(t, res.Resume.Educations, 1)
}

func TestImportText(t *testing.T) {
	im := New(Options{})

	res, err := im.ImportText(context.Background(), "paste", janeDoe)
	require.NoError(t, err)
	assert.Equal(t, "paste", res.Source)
	assert.Equal(t, []types.FeaturedSkill{{Skill: "Python", Rating: 4}}, res.Resume.Skills.FeaturedSkills)
}

func TestImport_Errors(t *testing.T) {
	im := New(Options{Ingestion: ingestion.Options{MaxFileSize: 8}})
	ctx := context.Background()

	_, err := im.Import(ctx, Source{})
	assert.ErrorIs(t, err, ingestion.ErrEmptyDocument)

	_, err = im.Import(ctx, Source{Name: "cv.txt", Data: []byte(janeDoe)})
	var sizeErr *ingestion.SizeError
	assert.ErrorAs(t, err, &sizeErr)

	_, err = im.Import(ctx, Source{Name: "cv.odt", Data: []byte("x")})
	assert.ErrorIs(t, err, ingestion.ErrUnsupportedFormat)
}

func TestImportAll_PreservesOrderAndCollectsErrors(t *testing.T) {
	dir := t.TempDir()
	sources := []Source{
		{Path: writeFile(t, dir, "a.txt", "Alice\nExperience\nA Co")},
		{Path: filepath.Join(dir, "missing.txt")},
		{Path: writeFile(t, dir, "b.txt", "Bob\nExperience\nB Co")},
		{Name: "c.txt", Data: []byte("Carol")},
	}

	im := New(Options{Concurrency: 2})
	results, err := im.ImportAll(context.Background(), sources)
	require.NoError(t, err)
	require.Len(t, results, 4)

	assert.Equal(t, "Alice", results[0].Resume.Profile.Name)
	assert.Error(t, results[1].Err)
	assert.Nil(t, results[1].Resume)
	assert.Equal(t, "Bob", results[2].Resume.Profile.Name)
	assert.Equal(t, "Carol", results[3].Resume.Profile.Name)

	failed := Failed(results)
	require.Len(t, failed, 1)
	assert.Equal(t, sources[1].Path, failed[0].Source)
}

func TestImportAll_FailFast(t *testing.T) {
	dir := t.TempDir()
	sources := []Source{
		{Path: filepath.Join(dir, "missing.txt")},
	}

	im := New(Options{Concurrency: 1, FailFast: true})
	_, err := im.ImportAll(context.Background(), sources)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.txt")
}

func TestImportAll_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	im := New(Options{})
	results, err := im.ImportAll(ctx, []Source{{Name: "a.txt", Data: []byte("Alice")}})
	assert.True(t, errors.Is(err, context.Canceled))
	require.Len(t, results, 1)
	assert.ErrorIs(t, results[0].Err, context.Canceled)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, validate(types.NewResume()))

	r := types.NewResume()
	r.Educations = nil
	err := validate(r)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Educations")
	assert.Contains(t, err.Error(), "educations")
}

func TestNewFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.ValidateOutput = true
	cfg.MaxFileSize = 123

	im := NewFromConfig(cfg, nil)
	assert.Equal(t, config.DefaultConcurrency, im.opts.Concurrency)
	assert.True(t, im.opts.Validate)
	assert.Equal(t, int64(123), im.opts.Ingestion.MaxFileSize)
	assert.NotNil(t, im.opts.Ingestion.Logger)
}

func TestOutputNames(t *testing.T) {
	results := []*Result{
		{Source: "/tmp/a/resume.pdf"},
		{Source: "/tmp/b/resume.docx"},
		{Source: "https://jsmith.dev/cv.html"},
		{Source: "https://jsmith.dev/"},
		nil,
	}
	assert.Equal(t, []string{"resume", "resume-2", "cv", "jsmith", "resume-3"}, OutputNames(results))
}

func TestOutputNames_SuffixNeverCollidesWithRealStem(t *testing.T) {
	results := []*Result{
		{Source: "a.pdf"},
		{Source: "dir/a.pdf"},
		{Source: "a-2.docx"},
		{Source: "other/a.pdf"},
	}
	names := OutputNames(results)
	assert.Equal(t, []string{"a", "a-2", "a-2-2", "a-3"}, names)

	unique := make(map[string]bool)
	for _, n := range names {
		unique[n] = true
	}
	assert.Len(t, unique, len(names))
}

func TestWriteOutput(t *testing.T) {
	im := New(Options{})
	res, err := im.ImportText(context.Background(), "paste.txt", janeDoe)
	require.NoError(t, err)

	outDir := filepath.Join(t.TempDir(), "out")
	path, err := WriteOutput(outDir, "jane", res, true)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outDir, "jane.resume.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded types.Resume
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *res.Resume, decoded)

	_, err = os.Stat(filepath.Join(outDir, "jane.meta.json"))
	assert.NoError(t, err)
}

func TestImportEach_ReportsEverySource(t *testing.T) {
	sources := []Source{
		{Name: "a.txt", Data: []byte("Alice")},
		{Name: "b.odt", Data: []byte("Bob")},
		{Name: "c.txt", Data: []byte("Carol")},
	}

	seen := make(map[int]*Result)
	im := New(Options{Concurrency: 3})
	err := im.ImportEach(context.Background(), sources, func(i int, res *Result) {
		seen[i] = res
	})
	require.NoError(t, err)
	require.Len(t, seen, 3)

	assert.Equal(t, "Alice", seen[0].Resume.Profile.Name)
	assert.ErrorIs(t, seen[1].Err, ingestion.ErrUnsupportedFormat)
	assert.Equal(t, "Carol", seen[2].Resume.Profile.Name)
}
