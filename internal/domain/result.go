package domain

// Status is the verdict of a single compliance rule.
type Status string

const (
	StatusPass    Status = "pass"
	StatusFail    Status = "fail"
	StatusWarning Status = "warning"
	StatusInfo    Status = "info"
)

// ValidationResult is one rule's verdict over a dataset.
type ValidationResult struct {
	RuleID        string   `json:"rule_id"`
	Title         string   `json:"title"`
	Status        Status   `json:"status"`
	Message       string   `json:"message"`
	AffectedItems []string `json:"affected_items"`
}

func severityRank(s Status) int {
	switch s {
	case StatusFail:
		return 3
	case StatusWarning:
		return 2
	case StatusInfo:
		return 1
	default:
		return 0
	}
}

// VerdictFor returns the worst status across results. An empty slice is a pass.
func VerdictFor(results []ValidationResult) Status {
	worst := StatusPass
	for _, r := range results {
		if severityRank(r.Status) > severityRank(worst) {
			worst = r.Status
		}
	}
	return worst
}

// CountByStatus tallies results per status.
func CountByStatus(results []ValidationResult) map[Status]int {
	counts := map[Status]int{
		StatusPass:    0,
		StatusFail:    0,
		StatusWarning: 0,
		StatusInfo:    0,
	}
	for _, r := range results {
		counts[r.Status]++
	}
	return counts
}

// GfsCounts holds parsed weekly/monthly/yearly GFS retention points.
type GfsCounts struct {
	Weekly  *int `json:"weekly"`
	Monthly *int `json:"monthly"`
	Yearly  *int `json:"yearly"`
}

// CalculatorSummary carries the sizing inputs derived from jobs and sessions.
// Nil figures are unknown, not zero.
type CalculatorSummary struct {
	TotalSourceDataTB      *float64  `json:"total_source_data_tb"`
	DailyChangeRatePercent *float64  `json:"daily_change_rate_percent"`
	ImmutabilityDays       int       `json:"immutability_days"`
	RetentionDays          int       `json:"retention_days"`
	OriginalRetentionDays  *int      `json:"original_retention_days"`
	Gfs                    GfsCounts `json:"gfs"`
}

// Report is an analysis plus everything the outer surfaces display alongside it.
type Report struct {
	Source   string            `json:"source"`
	Verdict  Status            `json:"verdict"`
	Analysis Analysis          `json:"analysis"`
	Summary  CalculatorSummary `json:"summary"`
}
