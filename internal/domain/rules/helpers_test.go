package rules_test

import (
	"github.com/comnam90/vdc-vault-readiness-sub000/internal/domain"
	"github.com/comnam90/vdc-vault-readiness-sub000/internal/domain/rules"
)

func intPtr(v int) *int { return &v }

func boolPtr(v bool) *bool { return &v }

func strPtr(v string) *string { return &v }

// resultFor runs the full battery and returns the result for one rule.
func resultFor(ds *domain.NormalizedDataset, th domain.Thresholds, id string) domain.ValidationResult {
	for _, r := range rules.Validate(ds, th) {
		if r.RuleID == id {
			return r
		}
	}
	panic("rule not found: " + id)
}

func tieredSobr(name string) domain.Sobr {
	return domain.Sobr{Name: name, EnableCapacityTier: true}
}

func moveExtent(sobr string, movePeriod int) domain.CapacityExtent {
	return domain.CapacityExtent{
		Name:              sobr + "-cap",
		SobrName:          sobr,
		EncryptionEnabled: true,
		MoveModeEnabled:   boolPtr(true),
		MovePeriodDays:    intPtr(movePeriod),
	}
}

func job(name, repo string, retain int) domain.Job {
	return domain.Job{
		JobName:    name,
		JobType:    "Backup",
		Encrypted:  true,
		RepoName:   repo,
		RetainDays: intPtr(retain),
	}
}
