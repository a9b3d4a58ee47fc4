package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comnam90/vdc-vault-readiness-sub000/internal/domain"
)

func TestDefaultThresholds(t *testing.T) {
	th := domain.DefaultThresholds()
	assert.Equal(t, "12.1.2", th.MinimumVersion)
	assert.Equal(t, 30, th.MinimumRetentionDays)
	assert.Equal(t, []string{"Tape", "Cloud Director", "File to Tape"}, th.DisallowedJobTypes)
	require.NoError(t, th.Validate())
}

func TestDefaultThresholds_ReturnsFreshSlice(t *testing.T) {
	th := domain.DefaultThresholds()
	th.DisallowedJobTypes[0] = "changed"
	assert.Equal(t, "Tape", domain.DefaultThresholds().DisallowedJobTypes[0])
}

func TestThresholds_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.Thresholds)
		wantErr string
	}{
		{"empty version", func(th *domain.Thresholds) { th.MinimumVersion = "" }, "required"},
		{"non numeric version", func(th *domain.Thresholds) { th.MinimumVersion = "12.x" }, "dotted numeric"},
		{"zero retention", func(th *domain.Thresholds) { th.MinimumRetentionDays = 0 }, "gte"},
		{"absurd retention", func(th *domain.Thresholds) { th.MinimumRetentionDays = 50000 }, "lte"},
		{"blank job type", func(th *domain.Thresholds) { th.DisallowedJobTypes = []string{"Tape", ""} }, "required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := domain.DefaultThresholds()
			tt.mutate(&th)
			err := th.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestThresholds_ValidateAcceptsEmptyJobTypeList(t *testing.T) {
	th := domain.DefaultThresholds()
	th.DisallowedJobTypes = nil
	assert.NoError(t, th.Validate())
}
