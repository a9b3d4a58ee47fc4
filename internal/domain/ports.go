package domain

import (
	"context"
	"errors"
)

// ErrUnrecognizedExport is returned when a file parses as JSON but does not
// look like a healthcheck export.
var ErrUnrecognizedExport = errors.New("not a recognized healthcheck export")

// ExportReader loads a healthcheck export and returns its decoded JSON root.
type ExportReader interface {
	Read(ctx context.Context, path string) (any, error)
}

// ConfigLoader loads thresholds for the directory an export lives in.
type ConfigLoader interface {
	Load(dir string) (Thresholds, error)
}

// RunHistory persists a short record of each analysis run.
type RunHistory interface {
	Save(dir string, entry RunEntry) error
	Load(dir string) ([]RunEntry, error)
}

// RunEntry is one line of analysis history.
type RunEntry struct {
	Timestamp  string `json:"timestamp"`
	Source     string `json:"source"`
	Verdict    Status `json:"verdict"`
	Failures   int    `json:"failures"`
	Warnings   int    `json:"warnings"`
	DataErrors int    `json:"data_errors"`
}
