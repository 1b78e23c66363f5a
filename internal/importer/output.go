package importer

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// MarshalResume renders a resume as JSON, indented when pretty is set.
func MarshalResume(res *Result, pretty bool) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if pretty {
		data, err = json.MarshalIndent(res.Resume, "", "  ")
	} else {
		data, err = json.Marshal(res.Resume)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to marshal resume: %w", err)
	}
	return data, nil
}

// WriteOutput writes <name>.resume.json and <name>.meta.json into outDir and returns the resume path.
func WriteOutput(outDir, name string, res *Result, pretty bool) (string, error) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	data, err := MarshalResume(res, pretty)
	if err != nil {
		return "", err
	}
	resumePath := filepath.Join(outDir, name+".resume.json")
	if err := os.WriteFile(resumePath, append(data, '\n'), 0644); err != nil {
		return "", fmt.Errorf("failed to write resume file: %w", err)
	}

	if res.Metadata != nil {
		metaJSON, err := res.Metadata.ToJSON()
		if err != nil {
			return "", err
		}
		metaPath := filepath.Join(outDir, name+".meta.json")
		if err := os.WriteFile(metaPath, append(metaJSON, '\n'), 0644); err != nil {
			return "", fmt.Errorf("failed to write metadata file: %w", err)
		}
	}

	return resumePath, nil
}

// OutputNames derives a file stem per result: the source base name without extension,
// suffixed with -2, -3... until it differs from every name already assigned.
func OutputNames(results []*Result) []string {
	names := make([]string, len(results))
	taken := make(map[string]bool)
	for i, r := range results {
		stem := "resume"
		if r != nil {
			stem = stemOf(r.Source)
		}
		name := stem
		for n := 2; taken[name]; n++ {
			name = fmt.Sprintf("%s-%d", stem, n)
		}
		taken[name] = true
		names[i] = name
	}
	return names
}

func stemOf(source string) string {
	base := source
	if u, err := url.Parse(source); err == nil && u.Scheme != "" && u.Host != "" {
		base = path.Base(u.Path)
		if base == "." || base == "/" {
			base = u.Host
		}
	} else {
		base = filepath.Base(source)
	}
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" || stem == "." {
		return "resume"
	}
	return stem
}
