package domain

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

const (
	DefaultMinimumVersion       = "12.1.2"
	DefaultMinimumRetentionDays = 30
)

// DefaultDisallowedJobTypes are job-type substrings that cannot target the vault.
var DefaultDisallowedJobTypes = []string{"Tape", "Cloud Director", "File to Tape"}

// Thresholds holds the compatibility floors the rules are evaluated against.
// It is read-only for the lifetime of a run.
type Thresholds struct {
	MinimumVersion       string   `yaml:"minimum_version"        json:"minimum_version"        validate:"required"`
	MinimumRetentionDays int      `yaml:"minimum_retention_days" json:"minimum_retention_days" validate:"gte=1,lte=36500"`
	DisallowedJobTypes   []string `yaml:"disallowed_job_types"   json:"disallowed_job_types"   validate:"dive,required"`
}

// DefaultThresholds returns the built-in vault compatibility floors.
func DefaultThresholds() Thresholds {
	types := make([]string, len(DefaultDisallowedJobTypes))
	copy(types, DefaultDisallowedJobTypes)
	return Thresholds{
		MinimumVersion:       DefaultMinimumVersion,
		MinimumRetentionDays: DefaultMinimumRetentionDays,
		DisallowedJobTypes:   types,
	}
}

var (
	versionPattern = regexp.MustCompile(`^\d+(\.\d+)*$`)
	validate       = validator.New(validator.WithRequiredStructEnabled())
)

// Validate checks the thresholds and returns a descriptive error.
func (t Thresholds) Validate() error {
	if err := validate.Struct(t); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%s failed %q check (got %v)", fe.Namespace(), fe.Tag(), fe.Value())
		}
		return err
	}
	if !versionPattern.MatchString(t.MinimumVersion) {
		return fmt.Errorf("minimum_version %q is not a dotted numeric version", t.MinimumVersion)
	}
	return nil
}
