package rules

import (
	"fmt"
	"strings"

	"github.com/comnam90/vdc-vault-readiness-sub000/internal/domain"
)

func checkGlobalEncryption(ds *domain.NormalizedDataset, _ domain.Thresholds) domain.ValidationResult {
	var off []string
	for _, s := range ds.SecuritySummary {
		if !s.BackupFileEncryptionEnabled {
			off = append(off, "Backup file encryption")
		}
		if !s.ConfigBackupEncryptionEnabled {
			off = append(off, "Configuration backup encryption")
		}
	}
	if len(off) > 0 {
		return verdict(domain.StatusWarning,
			"Global encryption is not fully enabled; enable it before sending backups to the vault", off)
	}
	return pass("Global encryption settings are enabled")
}

func checkJobEncryption(ds *domain.NormalizedDataset, _ domain.Thresholds) domain.ValidationResult {
	tiered := capacityTierSobrs(ds)

	var unencrypted []string
	var onPlainRepo int
	for _, j := range ds.Jobs {
		if j.Encrypted {
			continue
		}
		unencrypted = append(unencrypted, j.JobName)
		if _, ok := tiered[j.RepoName]; !ok {
			onPlainRepo++
		}
	}

	switch {
	case len(unencrypted) == 0:
		return pass("All jobs have encryption enabled")
	case onPlainRepo > 0:
		return verdict(domain.StatusFail,
			fmt.Sprintf("%d job(s) are not encrypted; %d of them do not target a capacity-tier SOBR", len(unencrypted), onPlainRepo),
			unencrypted)
	default:
		return verdict(domain.StatusWarning,
			fmt.Sprintf("%d job(s) are not encrypted but target capacity-tier SOBRs; encryption is assumed at the SOBR layer", len(unencrypted)),
			unencrypted)
	}
}

func checkWorkloadSupport(ds *domain.NormalizedDataset, th domain.Thresholds) domain.ValidationResult {
	var matched []string
	for _, j := range ds.Jobs {
		if containsAnyFold(j.JobType, th.DisallowedJobTypes) {
			matched = append(matched, fmt.Sprintf("%s (%s)", j.JobName, j.JobType))
		}
	}
	if len(matched) > 0 {
		return verdict(domain.StatusFail,
			fmt.Sprintf("%d job(s) use workload types the vault does not support", len(matched)), matched)
	}
	return pass("All job types are supported")
}

func checkAgentWorkload(ds *domain.NormalizedDataset, _ domain.Thresholds) domain.ValidationResult {
	var agents []string
	for _, j := range ds.Jobs {
		if containsFold(j.JobType, "agent") {
			agents = append(agents, fmt.Sprintf("%s (%s)", j.JobName, j.JobType))
		}
	}
	if len(agents) > 0 {
		return verdict(domain.StatusWarning,
			fmt.Sprintf("%d agent job(s) found; confirm the agents can reach the vault directly", len(agents)), agents)
	}
	return pass("No agent workloads found")
}

func checkLicenseEdition(ds *domain.NormalizedDataset, _ domain.Thresholds) domain.ValidationResult {
	var free []string
	for _, l := range ds.Licenses {
		if containsFold(l.Edition, "community") || containsFold(l.Edition, "free") {
			free = append(free, l.Edition)
		}
	}
	if len(free) > 0 {
		return verdict(domain.StatusInfo,
			"Community or free edition detected; a paid edition is needed to use the vault", free)
	}
	return pass("License edition supports the vault")
}

func checkRetention(ds *domain.NormalizedDataset, th domain.Thresholds) domain.ValidationResult {
	floor := th.MinimumRetentionDays

	var short []string
	for _, j := range ds.Jobs {
		if j.RetainDays == nil || *j.RetainDays >= floor {
			continue
		}
		short = append(short, fmt.Sprintf("%s: %d days (%d short of %d)", j.JobName, *j.RetainDays, floor-*j.RetainDays, floor))
	}
	if len(short) > 0 {
		return verdict(domain.StatusWarning,
			fmt.Sprintf("%d job(s) retain backups for less than %d days; the vault bills a %d-day minimum", len(short), floor, floor),
			short)
	}
	return pass(fmt.Sprintf("All jobs retain backups for at least %d days", floor))
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func containsAnyFold(s string, substrs []string) bool {
	for _, sub := range substrs {
		if sub != "" && containsFold(s, sub) {
			return true
		}
	}
	return false
}
