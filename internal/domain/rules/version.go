package rules

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/comnam90/vdc-vault-readiness-sub000/internal/domain"
)

// IsVersionAtLeast compares dotted versions component-wise. Missing or
// non-numeric components count as 0, so "12.1" equals "12.1.0".
func IsVersionAtLeast(version, minimum string) bool {
	v := versionParts(version)
	m := versionParts(minimum)

	n := max(len(v), len(m))
	for i := range n {
		a, b := partAt(v, i), partAt(m, i)
		if a != b {
			return a > b
		}
	}
	return true
}

func versionParts(s string) []int {
	fields := strings.Split(strings.TrimSpace(s), ".")
	parts := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			n = 0
		}
		parts[i] = n
	}
	return parts
}

func partAt(parts []int, i int) int {
	if i < len(parts) {
		return parts[i]
	}
	return 0
}

func checkVersion(ds *domain.NormalizedDataset, th domain.Thresholds) domain.ValidationResult {
	if len(ds.BackupServers) == 0 {
		return verdict(domain.StatusFail,
			"No backup server found in the export; version cannot be verified", nil)
	}

	var below []string
	for _, s := range ds.BackupServers {
		if !IsVersionAtLeast(s.Version, th.MinimumVersion) {
			below = append(below, fmt.Sprintf("%s (%s)", s.Name, s.Version))
		}
	}
	if len(below) > 0 {
		return verdict(domain.StatusFail,
			fmt.Sprintf("%d backup server(s) below the minimum version %s", len(below), th.MinimumVersion),
			below)
	}
	return pass(fmt.Sprintf("All backup servers run %s or later", th.MinimumVersion))
}
