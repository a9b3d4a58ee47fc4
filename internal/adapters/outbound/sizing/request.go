// Package sizing maps a calculator summary onto the capacity-estimation
// service's request payload. It does not call the service.
package sizing

import "github.com/comnam90/vdc-vault-readiness-sub000/internal/domain"

// Workload identifies the vault storage target to the estimation service.
const Workload = "vdc-vault"

// Request is the capacity-estimation payload. Unknown figures are omitted.
type Request struct {
	Workload          string   `json:"workload"`
	ProductVersion    string   `json:"productVersion,omitempty"`
	JobCount          int      `json:"jobCount"`
	SourceTB          *float64 `json:"sourceTB,omitempty"`
	ChangeRatePercent *float64 `json:"changeRatePercent,omitempty"`
	RetentionDays     int      `json:"retentionDays"`
	ImmutabilityDays  int      `json:"immutabilityDays"`
	Gfs               *Gfs     `json:"gfs,omitempty"`
}

// Gfs carries the longest GFS chain per tier.
type Gfs struct {
	Weekly  *int `json:"weekly,omitempty"`
	Monthly *int `json:"monthly,omitempty"`
	Yearly  *int `json:"yearly,omitempty"`
}

// BuildRequest builds the payload from a summary, the number of jobs and the
// backup server version.
func BuildRequest(summary domain.CalculatorSummary, jobCount int, version string) Request {
	req := Request{
		Workload:          Workload,
		ProductVersion:    version,
		JobCount:          jobCount,
		SourceTB:          summary.TotalSourceDataTB,
		ChangeRatePercent: summary.DailyChangeRatePercent,
		RetentionDays:     summary.RetentionDays,
		ImmutabilityDays:  summary.ImmutabilityDays,
	}
	g := summary.Gfs
	if g.Weekly != nil || g.Monthly != nil || g.Yearly != nil {
		req.Gfs = &Gfs{Weekly: g.Weekly, Monthly: g.Monthly, Yearly: g.Yearly}
	}
	return req
}

// Complete reports whether the figures the estimate depends on are known.
func (r Request) Complete() bool {
	return r.SourceTB != nil && r.ChangeRatePercent != nil
}

// FromReport builds the payload for an analyzed export, taking the version
// from the first backup server.
func FromReport(report *domain.Report) Request {
	ds := report.Analysis.Dataset
	if ds == nil {
		ds = domain.NewNormalizedDataset()
	}
	var version string
	if len(ds.BackupServers) > 0 {
		version = ds.BackupServers[0].Version
	}
	return BuildRequest(report.Summary, len(ds.Jobs), version)
}
