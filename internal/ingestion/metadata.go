package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Metadata contains metadata about an ingested resume document
type Metadata struct {
	ID        uuid.UUID `json:"id"`
	Source    string    `json:"source"`        // File path, upload name or URL
	URL       string    `json:"url,omitempty"` // Set when fetched over HTTP
	Format    Format    `json:"format"`
	Timestamp string    `json:"timestamp"`          // RFC3339 format
	Hash      string    `json:"hash"`               // SHA256 hex digest of the raw bytes
	Bytes     int       `json:"bytes"`              // Raw document size
	LineCount int       `json:"line_count"`         // Non-blank lines after cleaning
	Rendered  bool      `json:"rendered,omitempty"` // Text came from a headless browser render
}

// NewMetadata creates a new Metadata instance with a fresh id and the current timestamp
func NewMetadata(source string, format Format, raw []byte) *Metadata {
	return &Metadata{
		ID:        uuid.New(),
		Source:    source,
		Format:    format,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Hash:      computeHash(raw),
		Bytes:     len(raw),
	}
}

// computeHash computes SHA256 hash of content and returns hex string
func computeHash(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// ToJSON marshals Metadata to pretty-printed JSON
func (m *Metadata) ToJSON() ([]byte, error) {
	jsonBytes, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata to JSON: %w", err)
	}
	return jsonBytes, nil
}
