package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/comnam90/vdc-vault-readiness-sub000/internal/domain"
)

// FileName is the thresholds file looked up next to an export.
const FileName = ".vaultcheck.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .vaultcheck.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// fileConfig mirrors the YAML file. Pointer fields distinguish "not set"
// from zero values so partial files only override what they name.
type fileConfig struct {
	MinimumVersion       *string  `yaml:"minimum_version"`
	MinimumRetentionDays *int     `yaml:"minimum_retention_days"`
	DisallowedJobTypes   []string `yaml:"disallowed_job_types"`
}

// Load reads .vaultcheck.yaml from dir.
// Returns DefaultThresholds if the file does not exist.
func (l *YAMLLoader) Load(dir string) (domain.Thresholds, error) {
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultThresholds(), nil
		}
		return domain.Thresholds{}, err
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return domain.Thresholds{}, fmt.Errorf("parsing %s: %w", FileName, err)
	}

	th := merge(domain.DefaultThresholds(), fc)
	if err := th.Validate(); err != nil {
		return domain.Thresholds{}, fmt.Errorf("invalid %s: %w", FileName, err)
	}
	return th, nil
}

// merge overlays explicit file values on top of the defaults.
// An explicit disallowed_job_types list replaces the default list entirely.
func merge(base domain.Thresholds, fc fileConfig) domain.Thresholds {
	if fc.MinimumVersion != nil {
		base.MinimumVersion = *fc.MinimumVersion
	}
	if fc.MinimumRetentionDays != nil {
		base.MinimumRetentionDays = *fc.MinimumRetentionDays
	}
	if fc.DisallowedJobTypes != nil {
		base.DisallowedJobTypes = fc.DisallowedJobTypes
	}
	return base
}
