package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/comnam90/vdc-vault-readiness-sub000/internal/domain"
	"github.com/comnam90/vdc-vault-readiness-sub000/internal/domain/rules"
)

func TestIsVersionAtLeast(t *testing.T) {
	tests := []struct {
		version, minimum string
		want             bool
	}{
		{"12.1.2", "12.1.2", true},
		{"12.1.2.456", "12.1.2", true},
		{"12.1", "12.1.0", true},
		{"12.1.1.56", "12.1.2", false},
		{"13.0.0.4967", "12.1.2", true},
		{"12.10", "12.9", true},
		{"11.0.1.1261", "12.1.2", false},
		{"", "12.1.2", false},
		{"abc", "0", true},
	}
	for _, tt := range tests {
		t.Run(tt.version+">="+tt.minimum, func(t *testing.T) {
			assert.Equal(t, tt.want, rules.IsVersionAtLeast(tt.version, tt.minimum))
		})
	}
}

func TestIsVersionAtLeast_Reflexive(t *testing.T) {
	for _, v := range []string{"1", "12.1.2", "12.3.1.1139", "0.0"} {
		assert.True(t, rules.IsVersionAtLeast(v, v), v)
	}
}

func TestIsVersionAtLeast_Antisymmetric(t *testing.T) {
	pairs := [][2]string{{"12.1.2", "12.1.3"}, {"12", "13.0.1"}, {"12.0.0.1", "12.0.0.2"}}
	for _, p := range pairs {
		a, b := p[0], p[1]
		assert.False(t, rules.IsVersionAtLeast(a, b) && rules.IsVersionAtLeast(b, a), "%s vs %s", a, b)
	}
}

func TestVersionRule(t *testing.T) {
	th := domain.DefaultThresholds()

	t.Run("all servers current", func(t *testing.T) {
		ds := domain.NewNormalizedDataset()
		ds.BackupServers = []domain.BackupServer{{Name: "vbr-01", Version: "12.3.1.1139"}}
		assert.Equal(t, domain.StatusPass, resultFor(ds, th, rules.RuleVersion).Status)
	})

	t.Run("one server behind", func(t *testing.T) {
		ds := domain.NewNormalizedDataset()
		ds.BackupServers = []domain.BackupServer{
			{Name: "vbr-01", Version: "12.3.1.1139"},
			{Name: "vbr-02", Version: "12.0.0.1420"},
		}
		r := resultFor(ds, th, rules.RuleVersion)
		assert.Equal(t, domain.StatusFail, r.Status)
		assert.Equal(t, []string{"vbr-02 (12.0.0.1420)"}, r.AffectedItems)
	})

	t.Run("threshold from config", func(t *testing.T) {
		ds := domain.NewNormalizedDataset()
		ds.BackupServers = []domain.BackupServer{{Name: "vbr-01", Version: "12.3.1"}}
		custom := th
		custom.MinimumVersion = "13"
		assert.Equal(t, domain.StatusFail, resultFor(ds, custom, rules.RuleVersion).Status)
	})
}
