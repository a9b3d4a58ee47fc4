package rules_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comnam90/vdc-vault-readiness-sub000/internal/domain"
	"github.com/comnam90/vdc-vault-readiness-sub000/internal/domain/rules"
)

func TestValidate_OneResultPerRuleInCatalogOrder(t *testing.T) {
	results := rules.Validate(domain.NewNormalizedDataset(), domain.DefaultThresholds())
	catalog := rules.Catalog()

	require.Len(t, results, len(catalog))
	require.Len(t, catalog, 11)

	seen := make(map[string]bool)
	for i, r := range results {
		assert.Equal(t, catalog[i].ID, r.RuleID)
		assert.Equal(t, catalog[i].Title, r.Title)
		assert.NotEmpty(t, r.Message, r.RuleID)
		assert.NotNil(t, r.AffectedItems, r.RuleID)
		assert.False(t, seen[r.RuleID], "duplicate rule id %s", r.RuleID)
		seen[r.RuleID] = true
	}
}

func TestValidate_EmptyDataset(t *testing.T) {
	results := rules.Validate(nil, domain.DefaultThresholds())

	for _, r := range results {
		if r.RuleID == rules.RuleVersion {
			assert.Equal(t, domain.StatusFail, r.Status, "no server means the version cannot be verified")
			continue
		}
		assert.Equal(t, domain.StatusPass, r.Status, r.RuleID)
		assert.Empty(t, r.AffectedItems, r.RuleID)
	}
}

func TestValidate_IsDeterministic(t *testing.T) {
	ds := domain.NewNormalizedDataset()
	ds.BackupServers = []domain.BackupServer{{Name: "vbr", Version: "12.0"}}
	ds.Sobrs = []domain.Sobr{tieredSobr("S")}
	ds.CapacityExtents = []domain.CapacityExtent{moveExtent("S", 14)}
	ds.Jobs = []domain.Job{job("Payroll", "S", 30)}

	first := rules.Validate(ds, domain.DefaultThresholds())
	second := rules.Validate(ds, domain.DefaultThresholds())

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("results differ between runs (-first +second):\n%s", diff)
	}
}

func TestCatalog_ReturnsCopy(t *testing.T) {
	c := rules.Catalog()
	c[0].ID = "changed"
	assert.Equal(t, rules.RuleVersion, rules.Catalog()[0].ID)
}
