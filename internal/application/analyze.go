package application

import (
	"github.com/comnam90/vdc-vault-readiness-sub000/internal/domain"
	"github.com/comnam90/vdc-vault-readiness-sub000/internal/domain/calculator"
	"github.com/comnam90/vdc-vault-readiness-sub000/internal/domain/normalize"
	"github.com/comnam90/vdc-vault-readiness-sub000/internal/domain/rules"
	"github.com/comnam90/vdc-vault-readiness-sub000/internal/domain/section"
)

// Analyze runs the pure pipeline over a decoded export root:
// parse sections -> normalize -> validate.
// Structurally absent input degrades to empty collections; it never fails.
func Analyze(root any, th domain.Thresholds) domain.Analysis {
	obj, _ := root.(map[string]any)

	sections, _ := obj["Sections"].(map[string]any)
	records := section.ParseAll(sections, domain.KnownSections)

	ds := normalize.Normalize(records, obj[domain.SectionLicenses])

	return domain.Analysis{
		Dataset:     ds,
		Validations: rules.Validate(ds, th),
	}
}

// Summarize derives the sizing summary for a normalized dataset.
func Summarize(ds *domain.NormalizedDataset, th domain.Thresholds) domain.CalculatorSummary {
	if ds == nil {
		ds = domain.NewNormalizedDataset()
	}
	return calculator.Summarize(ds.Jobs, ds.JobSessions, th)
}
