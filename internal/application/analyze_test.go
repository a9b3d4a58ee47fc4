package application_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comnam90/vdc-vault-readiness-sub000/internal/application"
	"github.com/comnam90/vdc-vault-readiness-sub000/internal/domain"
	"github.com/comnam90/vdc-vault-readiness-sub000/internal/domain/rules"
)

func statuses(a domain.Analysis) map[string]domain.Status {
	out := make(map[string]domain.Status, len(a.Validations))
	for _, v := range a.Validations {
		out[v.RuleID] = v.Status
	}
	return out
}

func TestAnalyze_StructurallyAbsentInputNeverFails(t *testing.T) {
	inputs := map[string]any{
		"nil":               nil,
		"string":            "hello",
		"array":             []any{1.0, 2.0},
		"no sections":       map[string]any{},
		"sections not map":  map[string]any{"Sections": "nope"},
		"empty sections":    map[string]any{"Sections": map[string]any{}},
		"licenses not list": map[string]any{"Sections": map[string]any{}, "Licenses": "Enterprise"},
	}

	for name, root := range inputs {
		t.Run(name, func(t *testing.T) {
			a := application.Analyze(root, domain.DefaultThresholds())
			require.NotNil(t, a.Dataset)
			assert.Empty(t, a.Dataset.DataErrors)
			assert.Empty(t, a.Dataset.Jobs)
			assert.Len(t, a.Validations, len(rules.Catalog()))
		})
	}
}

func TestAnalyze_ReadsSectionsAndLicenses(t *testing.T) {
	root := map[string]any{
		"Sections": map[string]any{
			domain.SectionBackupServer: map[string]any{
				"Headers": []any{"Version", "Name"},
				"Rows":    []any{[]any{"12.3.1.1139", "VBR01"}},
			},
			domain.SectionJobInfo: map[string]any{
				"Headers": []any{"JobName", "JobType", "Encrypted", "RepoName", "RetainDays"},
				"Rows": []any{
					[]any{"Payroll", "VMware Backup", "True", "Repo", "14"},
					[]any{"Broken", nil, "True", "Repo", "30"},
				},
			},
		},
		"Licenses": []any{map[string]any{"Edition": "Community"}},
	}

	a := application.Analyze(root, domain.DefaultThresholds())

	require.Len(t, a.Dataset.BackupServers, 1)
	require.Len(t, a.Dataset.Jobs, 1)
	assert.Equal(t, 14, *a.Dataset.Jobs[0].RetainDays)
	require.Len(t, a.Dataset.DataErrors, 1)
	assert.Equal(t, "JobType", a.Dataset.DataErrors[0].Field)

	s := statuses(a)
	assert.Equal(t, domain.StatusPass, s[rules.RuleVersion])
	assert.Equal(t, domain.StatusInfo, s[rules.RuleLicenseEdition])
	assert.Equal(t, domain.StatusWarning, s[rules.RuleRetentionPeriod])
}

func TestAnalyze_IsPure(t *testing.T) {
	root := map[string]any{
		"Sections": map[string]any{
			domain.SectionJobInfo: map[string]any{
				"Headers": []any{"JobName", "JobType", "Encrypted", "RepoName"},
				"Rows":    []any{[]any{" Payroll ", "Backup", "False", "Repo"}},
			},
		},
	}

	first := application.Analyze(root, domain.DefaultThresholds())
	second := application.Analyze(root, domain.DefaultThresholds())

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated analysis differs (-first +second):\n%s", diff)
	}
	row := root["Sections"].(map[string]any)[domain.SectionJobInfo].(map[string]any)["Rows"].([]any)[0].([]any)
	assert.Equal(t, " Payroll ", row[0], "input must not be mutated")
}

func TestSummarize_NilDataset(t *testing.T) {
	s := application.Summarize(nil, domain.DefaultThresholds())
	assert.Equal(t, 30, s.RetentionDays)
	assert.Nil(t, s.TotalSourceDataTB)
}
