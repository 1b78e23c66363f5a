// Package schemas holds the JSON Schema documents shipped with the importer.
package schemas

import _ "embed"

// Resume is the JSON Schema for an imported resume.
//
//go:embed resume.schema.json
var Resume []byte
