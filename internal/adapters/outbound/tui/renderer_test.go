package tui_test

import (
	"strings"
	"testing"

	"github.com/comnam90/vdc-vault-readiness-sub000/internal/adapters/outbound/tui"
	"github.com/comnam90/vdc-vault-readiness-sub000/internal/domain"
	"github.com/comnam90/vdc-vault-readiness-sub000/internal/domain/rules"
	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func sampleReport() *domain.Report {
	ds := domain.NewNormalizedDataset()
	ds.DataErrors = []domain.DataError{
		{Section: domain.SectionJobInfo, RowIndex: 2, Field: "JobType", Reason: "missing required value"},
	}
	validations := []domain.ValidationResult{
		{RuleID: rules.RuleVersion, Title: "VBR Version", Status: domain.StatusPass, Message: "All servers run 12.1.2 or later", AffectedItems: []string{}},
		{RuleID: rules.RuleJobEncryption, Title: "Job Encryption", Status: domain.StatusFail, Message: "2 jobs are not encrypted", AffectedItems: []string{"Payroll", "Files"}},
	}
	return &domain.Report{
		Source:   "/tmp/exports/acme.json",
		Verdict:  domain.VerdictFor(validations),
		Analysis: domain.Analysis{Dataset: ds, Validations: validations},
	}
}

func TestRenderReport_ContainsVerdictAndSource(t *testing.T) {
	output := tui.RenderReport(sampleReport())
	assert.Contains(t, output, "Not ready")
	assert.Contains(t, output, "acme.json")
	assert.NotContains(t, output, "/tmp/exports")
}

func TestRenderReport_ContainsRuleTitlesAndMessages(t *testing.T) {
	output := tui.RenderReport(sampleReport())
	assert.Contains(t, output, "VBR Version")
	assert.Contains(t, output, "Job Encryption")
	assert.Contains(t, output, "2 jobs are not encrypted")
}

func TestRenderReport_ListsAffectedItems(t *testing.T) {
	output := tui.RenderReport(sampleReport())
	assert.Contains(t, output, "Payroll")
	assert.Contains(t, output, "Files")
}

func TestRenderReport_StatusIndicators(t *testing.T) {
	output := tui.RenderReport(sampleReport())
	assert.Contains(t, output, "✓")
	assert.Contains(t, output, "✗")
}

func TestRenderReport_TallyLine(t *testing.T) {
	output := tui.RenderReport(sampleReport())
	assert.Contains(t, output, "1 pass · 0 info · 0 warning · 1 fail")
}

func TestRenderReport_CapsAffectedItems(t *testing.T) {
	report := sampleReport()
	items := make([]string, 11)
	for i := range items {
		items[i] = "job-" + string(rune('a'+i))
	}
	report.Analysis.Validations[1].AffectedItems = items

	output := tui.RenderReport(report)
	assert.Contains(t, output, "job-h")
	assert.NotContains(t, output, "job-i")
	assert.Contains(t, output, "+3 more")
}

func TestRenderReport_IncludesDataErrors(t *testing.T) {
	output := tui.RenderReport(sampleReport())
	assert.Contains(t, output, "Data Errors")
	assert.Contains(t, output, "JobType:")
}

func TestRenderReport_NilDatasetSkipsDataErrors(t *testing.T) {
	report := sampleReport()
	report.Analysis.Dataset = nil
	output := tui.RenderReport(report)
	assert.NotContains(t, output, "Data Errors")
}

func TestRenderSummary_KnownValues(t *testing.T) {
	output := tui.RenderSummary(domain.CalculatorSummary{
		TotalSourceDataTB:      floatPtr(1.5),
		DailyChangeRatePercent: floatPtr(4),
		ImmutabilityDays:       30,
		RetentionDays:          30,
		OriginalRetentionDays:  intPtr(14),
		Gfs:                    domain.GfsCounts{Weekly: intPtr(8)},
	})
	assert.Contains(t, output, "1.50 TB")
	assert.Contains(t, output, "4.00 %")
	assert.Contains(t, output, "raised from 14 days")
	assert.Contains(t, output, "8")
}

func TestRenderSummary_UnknownValues(t *testing.T) {
	output := tui.RenderSummary(domain.CalculatorSummary{ImmutabilityDays: 30, RetentionDays: 30})
	assert.Contains(t, output, "unknown")
	assert.Contains(t, output, "no job retention found")
}

func TestRenderHistory_Empty(t *testing.T) {
	output := tui.RenderHistory(nil)
	assert.Contains(t, output, "No analysis history found.")
}

func TestRenderHistory_Entries(t *testing.T) {
	output := tui.RenderHistory([]domain.RunEntry{
		{Timestamp: "2026-03-01T10:00:00Z", Source: "acme.json", Verdict: domain.StatusFail, Failures: 2, Warnings: 1, DataErrors: 3},
	})
	assert.Contains(t, output, "2026-03-01")
	assert.NotContains(t, output, "10:00:00")
	assert.Contains(t, output, "acme.json")
	assert.Contains(t, output, "2 fail · 1 warn · 3 data errors")
}

func TestRenderRules_ListsCatalogInOrder(t *testing.T) {
	output := tui.RenderRules(rules.Catalog())
	first := strings.Index(output, rules.RuleVersion)
	last := strings.Index(output, rules.RuleCapacityTierResidency)
	assert.GreaterOrEqual(t, first, 0)
	assert.Greater(t, last, first)
}
