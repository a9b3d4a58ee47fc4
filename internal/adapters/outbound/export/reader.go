// Package export reads healthcheck export files from disk.
package export

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/comnam90/vdc-vault-readiness-sub000/internal/domain"
)

const schemaURL = "vaultcheck://healthcheck-export.schema.json"

//go:embed schema.json
var schemaSource string

// utf8BOM prefixes exports written by some Windows tooling.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// FileReader implements domain.ExportReader for JSON files.
type FileReader struct {
	schema *jsonschema.Schema
}

// New creates a FileReader with the embedded export schema compiled.
func New() (*FileReader, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, strings.NewReader(schemaSource)); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return &FileReader{schema: schema}, nil
}

// Read loads path and returns the decoded JSON root. It fails on invalid JSON
// and on documents that are not healthcheck exports.
func (r *FileReader) Read(ctx context.Context, path string) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return r.Decode(data)
}

// Decode parses raw export bytes.
func (r *FileReader) Decode(data []byte) (any, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	var root any
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if err := r.schema.Validate(root); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnrecognizedExport, err)
	}
	return root, nil
}
