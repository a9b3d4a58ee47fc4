// Package calculator derives sizing inputs from normalized jobs and sessions.
// Every figure is nil when no input carries a value for it.
package calculator

import (
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/comnam90/vdc-vault-readiness-sub000/internal/domain"
)

const gbPerTB = 1024

// TotalSourceDataTB sums job source sizes in TB. Nil when no job has a size.
func TotalSourceDataTB(jobs []domain.Job) *float64 {
	var sizes []float64
	for _, j := range jobs {
		if j.SourceSizeGB != nil {
			sizes = append(sizes, *j.SourceSizeGB)
		}
	}
	if len(sizes) == 0 {
		return nil
	}
	tb := floats.Sum(sizes) / gbPerTB
	return &tb
}

// WeightedChangeRate averages session change rates weighted by job size.
// Sessions match jobs by exact name; the first matching session wins.
func WeightedChangeRate(jobs []domain.Job, sessions []domain.JobSession) *float64 {
	byName := make(map[string]domain.JobSession, len(sessions))
	for _, s := range sessions {
		if _, seen := byName[s.JobName]; !seen {
			byName[s.JobName] = s
		}
	}

	var rates, weights []float64
	for _, j := range jobs {
		if j.SourceSizeGB == nil || *j.SourceSizeGB <= 0 {
			continue
		}
		s, ok := byName[j.JobName]
		if !ok || s.AvgChangeRate == nil {
			continue
		}
		rates = append(rates, *s.AvgChangeRate)
		weights = append(weights, *j.SourceSizeGB)
	}
	if len(rates) == 0 {
		return nil
	}
	rate := stat.Mean(rates, weights)
	return &rate
}

// MaxRetention returns the longest defined job retention.
func MaxRetention(jobs []domain.Job) *int {
	var best *int
	for _, j := range jobs {
		if j.RetainDays == nil {
			continue
		}
		if best == nil || *j.RetainDays > *best {
			v := *j.RetainDays
			best = &v
		}
	}
	return best
}

// ParseGfsDetails parses "Weekly:N,Monthly:N,Yearly:N". Keys are case
// insensitive and may appear in any order or not at all. Unknown keys and
// non-numeric values are ignored for that key only.
func ParseGfsDetails(details string) domain.GfsCounts {
	var out domain.GfsCounts
	for _, part := range strings.Split(details, ",") {
		key, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			continue
		}
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "weekly":
			out.Weekly = &n
		case "monthly":
			out.Monthly = &n
		case "yearly":
			out.Yearly = &n
		}
	}
	return out
}

// MaxGfs returns the per-tier maximum across jobs. Jobs without GFS details,
// or with blank ones, are ignored.
func MaxGfs(jobs []domain.Job) domain.GfsCounts {
	var out domain.GfsCounts
	for _, j := range jobs {
		if j.GfsDetails == nil || strings.TrimSpace(*j.GfsDetails) == "" {
			continue
		}
		g := ParseGfsDetails(*j.GfsDetails)
		out.Weekly = maxPtr(out.Weekly, g.Weekly)
		out.Monthly = maxPtr(out.Monthly, g.Monthly)
		out.Yearly = maxPtr(out.Yearly, g.Yearly)
	}
	return out
}

func maxPtr(a, b *int) *int {
	switch {
	case b == nil:
		return a
	case a == nil || *b > *a:
		v := *b
		return &v
	default:
		return a
	}
}

// Summarize assembles the sizing summary. RetentionDays is clamped to the
// immutability floor; OriginalRetentionDays keeps the unclamped figure.
func Summarize(jobs []domain.Job, sessions []domain.JobSession, th domain.Thresholds) domain.CalculatorSummary {
	floor := th.MinimumRetentionDays
	raw := MaxRetention(jobs)

	retention := floor
	if raw != nil && *raw > floor {
		retention = *raw
	}

	return domain.CalculatorSummary{
		TotalSourceDataTB:      TotalSourceDataTB(jobs),
		DailyChangeRatePercent: WeightedChangeRate(jobs, sessions),
		ImmutabilityDays:       floor,
		RetentionDays:          retention,
		OriginalRetentionDays:  raw,
		Gfs:                    MaxGfs(jobs),
	}
}
