// Package normalize coerces parsed export records into the strict domain snapshot.
//
// Each section is processed in row order. A row whose required fields do not
// all coerce is dropped and leaves exactly one DataError naming the first
// failing field; optional fields that are absent or unparsable become nil.
package normalize

import "github.com/comnam90/vdc-vault-readiness-sub000/internal/domain"

// Normalize builds a NormalizedDataset from parsed section records and the
// raw license value. A non-array license value yields no licenses.
func Normalize(records map[string][]domain.Record, licenses any) *domain.NormalizedDataset {
	ds := domain.NewNormalizedDataset()

	ds.BackupServers = normalizeRows(ds, domain.SectionBackupServer, records[domain.SectionBackupServer], backupServer)
	ds.SecuritySummary = normalizeRows(ds, domain.SectionSecuritySummary, records[domain.SectionSecuritySummary], securitySummary)
	ds.Jobs = normalizeRows(ds, domain.SectionJobInfo, records[domain.SectionJobInfo], job)
	ds.Licenses = normalizeLicenses(ds, licenses)
	ds.JobSessions = normalizeRows(ds, domain.SectionJobSessions, records[domain.SectionJobSessions], jobSession)
	ds.Sobrs = normalizeRows(ds, domain.SectionSobr, records[domain.SectionSobr], sobr)
	ds.CapacityExtents = normalizeRows(ds, domain.SectionCapacityExtents, records[domain.SectionCapacityExtents], capacityExtent)
	ds.ArchiveExtents = normalizeRows(ds, domain.SectionArchiveExtents, records[domain.SectionArchiveExtents], archiveExtent)
	ds.PerformanceExtents = normalizeRows(ds, domain.SectionExtents, records[domain.SectionExtents], performanceExtent)
	ds.Repositories = normalizeRows(ds, domain.SectionRepositories, records[domain.SectionRepositories], repository)

	return ds
}

func normalizeRows[T any](ds *domain.NormalizedDataset, name string, rows []domain.Record, build func(*rowReader) T) []T {
	out := make([]T, 0, len(rows))
	for i, rec := range rows {
		r := &rowReader{section: name, index: i, rec: rec}
		v := build(r)
		if r.failed != nil {
			ds.DataErrors = append(ds.DataErrors, *r.failed)
			continue
		}
		out = append(out, v)
	}
	return out
}

func normalizeLicenses(ds *domain.NormalizedDataset, raw any) []domain.License {
	items, ok := raw.([]any)
	if !ok {
		return []domain.License{}
	}

	rows := make([]domain.Record, len(items))
	for i, item := range items {
		if obj, ok := item.(map[string]any); ok {
			rows[i] = obj
		}
	}
	return normalizeRows(ds, domain.SectionLicenses, rows, license)
}

// Field order inside each builder is the check order; composite literal
// elements are evaluated left to right.

func backupServer(r *rowReader) domain.BackupServer {
	return domain.BackupServer{
		Version: r.requiredString("Version"),
		Name:    r.requiredString("Name"),
	}
}

func securitySummary(r *rowReader) domain.SecuritySummary {
	return domain.SecuritySummary{
		BackupFileEncryptionEnabled:   r.requiredBool("BackupFileEncryptionEnabled"),
		ConfigBackupEncryptionEnabled: r.requiredBool("ConfigBackupEncryptionEnabled"),
	}
}

func job(r *rowReader) domain.Job {
	return domain.Job{
		JobName:      r.requiredString("JobName"),
		JobType:      r.requiredString("JobType"),
		Encrypted:    r.requiredBool("Encrypted"),
		RepoName:     r.requiredString("RepoName"),
		RetainDays:   r.optionalInt("RetainDays"),
		SourceSizeGB: r.optionalFloat("SourceSizeGB"),
		GfsEnabled:   r.optionalBool("GfsEnabled"),
		GfsDetails:   r.optionalString("GfsDetails"),
	}
}

func license(r *rowReader) domain.License {
	return domain.License{
		Edition:           r.requiredString("Edition"),
		Status:            r.optionalString("Status"),
		ExpirationDate:    r.optionalString("ExpirationDate"),
		LicensedInstances: r.optionalInt("LicensedInstances"),
	}
}

func jobSession(r *rowReader) domain.JobSession {
	return domain.JobSession{
		JobName:       r.requiredString("JobName"),
		AvgChangeRate: r.optionalFloat("AvgChangeRate"),
		SuccessRate:   r.optionalFloat("SuccessRate"),
		SessionCount:  r.optionalInt("SessionCount"),
		MaxDataSizeGB: r.optionalFloat("MaxDataSizeGB"),
	}
}

func sobr(r *rowReader) domain.Sobr {
	return domain.Sobr{
		Name:               r.requiredString("Name"),
		EnableCapacityTier: r.requiredBool("EnableCapacityTier"),
		ArchiveTierEnabled: r.requiredBool("ArchiveTierEnabled"),
		CapacityTierCopy:   r.optionalBool("CapacityTierCopy"),
		CapacityTierMove:   r.optionalBool("CapacityTierMove"),
		ExtentCount:        r.optionalInt("ExtentCount"),
	}
}

func capacityExtent(r *rowReader) domain.CapacityExtent {
	return domain.CapacityExtent{
		Name:              r.requiredString("Name"),
		SobrName:          r.requiredString("SobrName"),
		EncryptionEnabled: r.requiredBool("EncryptionEnabled"),
		ImmutableEnabled:  r.requiredBool("ImmutableEnabled"),
		ImmutablePeriod:   r.optionalInt("ImmutablePeriod"),
		CopyModeEnabled:   r.optionalBool("CopyModeEnabled"),
		MoveModeEnabled:   r.optionalBool("MoveModeEnabled"),
		MovePeriodDays:    r.optionalInt("MovePeriodDays"),
	}
}

// archiveExtent prefers OffloadPeriod and falls back to the legacy
// RetentionPeriod column. Errors name OffloadPeriod either way.
func archiveExtent(r *rowReader) domain.ArchiveExtent {
	return domain.ArchiveExtent{
		Name:               r.requiredString("Name"),
		SobrName:           r.requiredString("SobrName"),
		ArchiveTierEnabled: r.requiredBool("ArchiveTierEnabled"),
		OffloadPeriod:      r.checkedInt("OffloadPeriod", "OffloadPeriod", "RetentionPeriod"),
		ImmutableEnabled:   r.optionalBool("ImmutableEnabled"),
	}
}

func performanceExtent(r *rowReader) domain.PerformanceExtent {
	return domain.PerformanceExtent{
		Name:                  r.requiredString("Name"),
		SobrName:              r.requiredString("SobrName"),
		Type:                  r.requiredString("Type"),
		TotalSpaceTB:          r.optionalFloat("TotalSpaceTB"),
		FreeSpaceTB:           r.optionalFloat("FreeSpaceTB"),
		ImmutabilitySupported: r.optionalBool("ImmutabilitySupported"),
	}
}

func repository(r *rowReader) domain.Repository {
	return domain.Repository{
		Name:                  r.requiredString("Name"),
		Type:                  r.requiredString("Type"),
		TotalSpaceTB:          r.optionalFloat("TotalSpaceTB"),
		FreeSpaceTB:           r.optionalFloat("FreeSpaceTB"),
		ImmutabilitySupported: r.optionalBool("ImmutabilitySupported"),
	}
}
