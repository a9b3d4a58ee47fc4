package rules

import (
	"fmt"

	"github.com/comnam90/vdc-vault-readiness-sub000/internal/domain"
)

// capacityTierSobrs indexes SOBRs with a capacity tier by name.
func capacityTierSobrs(ds *domain.NormalizedDataset) map[string]domain.Sobr {
	out := make(map[string]domain.Sobr)
	for _, s := range ds.Sobrs {
		if s.EnableCapacityTier {
			out[s.Name] = s
		}
	}
	return out
}

func capacityExtentsBySobr(ds *domain.NormalizedDataset) map[string][]domain.CapacityExtent {
	out := make(map[string][]domain.CapacityExtent)
	for _, e := range ds.CapacityExtents {
		out[e.SobrName] = append(out[e.SobrName], e)
	}
	return out
}

func archiveExtentsBySobr(ds *domain.NormalizedDataset) map[string][]domain.ArchiveExtent {
	out := make(map[string][]domain.ArchiveExtent)
	for _, e := range ds.ArchiveExtents {
		out[e.SobrName] = append(out[e.SobrName], e)
	}
	return out
}

// sobrsMissingCapacityData lists capacity-tier SOBRs with no capacity extent rows.
func sobrsMissingCapacityData(ds *domain.NormalizedDataset) []string {
	extents := capacityExtentsBySobr(ds)
	var missing []string
	for _, s := range ds.Sobrs {
		if s.EnableCapacityTier && len(extents[s.Name]) == 0 {
			missing = append(missing, s.Name)
		}
	}
	return missing
}

func missingDataItem(sobr, tier string) string {
	return fmt.Sprintf("%s: %s tier enabled but no extent data in export", sobr, tier)
}

func checkCapacityTierEncryption(ds *domain.NormalizedDataset, _ domain.Thresholds) domain.ValidationResult {
	var items []string
	for _, e := range ds.CapacityExtents {
		if !e.EncryptionEnabled {
			items = append(items, fmt.Sprintf("%s (%s)", e.Name, e.SobrName))
		}
	}
	for _, name := range sobrsMissingCapacityData(ds) {
		items = append(items, missingDataItem(name, "capacity"))
	}

	if len(items) > 0 {
		return verdict(domain.StatusWarning,
			"Capacity tier encryption is disabled or could not be verified", items)
	}
	if len(ds.CapacityExtents) == 0 {
		return pass("No capacity tier extents configured")
	}
	return pass("All capacity tier extents are encrypted")
}

func checkCapacityTierImmutability(ds *domain.NormalizedDataset, _ domain.Thresholds) domain.ValidationResult {
	var items []string
	for _, e := range ds.CapacityExtents {
		if !e.ImmutableEnabled {
			items = append(items, fmt.Sprintf("%s (%s)", e.Name, e.SobrName))
		}
	}
	for _, name := range sobrsMissingCapacityData(ds) {
		items = append(items, missingDataItem(name, "capacity"))
	}

	if len(items) > 0 {
		return verdict(domain.StatusWarning,
			"Capacity tier immutability is disabled or could not be verified", items)
	}
	if len(ds.CapacityExtents) == 0 {
		return pass("No capacity tier extents configured")
	}
	return pass("All capacity tier extents are immutable")
}

func checkArchiveTierEdition(ds *domain.NormalizedDataset, _ domain.Thresholds) domain.ValidationResult {
	archives := archiveExtentsBySobr(ds)

	var items []string
	for _, e := range ds.ArchiveExtents {
		if e.ArchiveTierEnabled {
			items = append(items, fmt.Sprintf("%s (%s)", e.Name, e.SobrName))
		}
	}
	for _, s := range ds.Sobrs {
		if s.ArchiveTierEnabled && len(archives[s.Name]) == 0 {
			items = append(items, missingDataItem(s.Name, "archive"))
		}
	}

	if len(items) > 0 {
		return verdict(domain.StatusWarning,
			"Archive tier is in use or could not be verified; the vault edition must include archive support", items)
	}
	return pass("No archive tier in use")
}
