// Package rules evaluates a normalized dataset against the vault compatibility
// rules. Each rule is an independent pure function producing one verdict.
package rules

import "github.com/comnam90/vdc-vault-readiness-sub000/internal/domain"

const (
	RuleVersion                  = "vbr-version"
	RuleGlobalEncryption         = "global-encryption"
	RuleJobEncryption            = "job-encryption"
	RuleWorkloadSupport          = "workload-support"
	RuleAgentWorkload            = "agent-workload"
	RuleLicenseEdition           = "license-edition"
	RuleRetentionPeriod          = "retention-period"
	RuleCapacityTierEncryption   = "capacity-tier-encryption"
	RuleCapacityTierImmutability = "capacity-tier-immutability"
	RuleArchiveTierEdition       = "archive-tier-edition"
	RuleCapacityTierResidency    = "capacity-tier-residency"
)

// CheckFunc evaluates one rule.
type CheckFunc func(ds *domain.NormalizedDataset, th domain.Thresholds) domain.ValidationResult

// Rule is one entry of the fixed battery.
type Rule struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	Check CheckFunc `json:"-"`
}

var catalog = []Rule{
	{ID: RuleVersion, Title: "Backup Server Version", Check: checkVersion},
	{ID: RuleGlobalEncryption, Title: "Global Encryption", Check: checkGlobalEncryption},
	{ID: RuleJobEncryption, Title: "Job Encryption", Check: checkJobEncryption},
	{ID: RuleWorkloadSupport, Title: "Supported Workloads", Check: checkWorkloadSupport},
	{ID: RuleAgentWorkload, Title: "Agent Workloads", Check: checkAgentWorkload},
	{ID: RuleLicenseEdition, Title: "License Edition", Check: checkLicenseEdition},
	{ID: RuleRetentionPeriod, Title: "Retention Period", Check: checkRetention},
	{ID: RuleCapacityTierEncryption, Title: "Capacity Tier Encryption", Check: checkCapacityTierEncryption},
	{ID: RuleCapacityTierImmutability, Title: "Capacity Tier Immutability", Check: checkCapacityTierImmutability},
	{ID: RuleArchiveTierEdition, Title: "Archive Tier Edition", Check: checkArchiveTierEdition},
	{ID: RuleCapacityTierResidency, Title: "Capacity Tier Residency", Check: checkResidency},
}

// Catalog returns a copy of the rule battery in evaluation order.
func Catalog() []Rule {
	out := make([]Rule, len(catalog))
	copy(out, catalog)
	return out
}

// Validate runs every rule and returns one result per rule, in catalog order.
// A nil dataset is treated as empty.
func Validate(ds *domain.NormalizedDataset, th domain.Thresholds) []domain.ValidationResult {
	if ds == nil {
		ds = domain.NewNormalizedDataset()
	}
	results := make([]domain.ValidationResult, 0, len(catalog))
	for _, rule := range catalog {
		res := rule.Check(ds, th)
		res.RuleID = rule.ID
		res.Title = rule.Title
		if res.AffectedItems == nil {
			res.AffectedItems = []string{}
		}
		results = append(results, res)
	}
	return results
}

func pass(msg string) domain.ValidationResult {
	return domain.ValidationResult{Status: domain.StatusPass, Message: msg}
}

func verdict(status domain.Status, msg string, items []string) domain.ValidationResult {
	return domain.ValidationResult{Status: status, Message: msg, AffectedItems: items}
}
