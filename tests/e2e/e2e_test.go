package e2e_test

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comnam90/vdc-vault-readiness-sub000/internal/domain"
	"github.com/comnam90/vdc-vault-readiness-sub000/internal/domain/rules"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build binary before running tests
	dir, err := os.MkdirTemp("", "vaultcheck-e2e")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	binaryPath = filepath.Join(dir, "vaultcheck")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/vaultcheck")
	if out, err := cmd.CombinedOutput(); err != nil {
		panic("build failed: " + string(out))
	}

	os.Exit(m.Run())
}

func fixturePath(name string) string {
	abs, _ := filepath.Abs(filepath.Join("../../testdata/healthcheck", name))
	return abs
}

// run executes the binary and returns stdout, stderr and the exit code.
func run(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
	}
	return stdout.String(), stderr.String(), exitCode
}

func statusByRule(report domain.Report) map[string]domain.Status {
	out := make(map[string]domain.Status, len(report.Analysis.Validations))
	for _, v := range report.Analysis.Validations {
		out[v.RuleID] = v.Status
	}
	return out
}

// --- Analyze Tests ---

func TestE2E_AnalyzeCompliant(t *testing.T) {
	out, _, code := run(t, "analyze", fixturePath("compliant.json"), "--no-history")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Ready for the vault")
	assert.Contains(t, out, "No data errors.")
}

func TestE2E_AnalyzeJSON(t *testing.T) {
	out, _, code := run(t, "analyze", fixturePath("non_compliant.json"), "--json", "--no-history")
	assert.Equal(t, 0, code)

	var report domain.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, domain.StatusFail, report.Verdict)
	assert.Len(t, report.Analysis.Validations, len(rules.Catalog()))
	assert.Len(t, report.Analysis.Dataset.DataErrors, 4)

	statuses := statusByRule(report)
	assert.Equal(t, domain.StatusFail, statuses[rules.RuleVersion])
	assert.Equal(t, domain.StatusFail, statuses[rules.RuleJobEncryption])
	assert.Equal(t, domain.StatusInfo, statuses[rules.RuleLicenseEdition])
	assert.Equal(t, domain.StatusWarning, statuses[rules.RuleCapacityTierResidency])
}

func TestE2E_AnalyzeCI(t *testing.T) {
	_, stderr, code := run(t, "analyze", fixturePath("non_compliant.json"), "--ci", "--no-history")
	assert.Equal(t, 1, code, "should exit 1 when a rule fails")
	assert.Contains(t, stderr, "not vault-ready")

	_, _, code = run(t, "analyze", fixturePath("compliant.json"), "--ci", "--no-history")
	assert.Equal(t, 0, code)
}

func TestE2E_AnalyzeInvalidInput(t *testing.T) {
	_, stderr, code := run(t, "analyze", fixturePath("invalid.json"), "--no-history")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "invalid JSON")

	_, stderr, code = run(t, "analyze", fixturePath("not_export.json"), "--no-history")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "not a recognized healthcheck export")
}

func TestE2E_AnalyzeVerboseLogsToStderr(t *testing.T) {
	out, stderr, code := run(t, "analyze", fixturePath("compliant.json"), "--json", "--no-history", "--verbose")
	assert.Equal(t, 0, code)
	assert.Contains(t, stderr, "analysis complete")

	var report domain.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report), "logs must not leak into stdout")
}

func TestE2E_AnalyzeRecordsHistory(t *testing.T) {
	data, err := os.ReadFile(fixturePath("compliant.json"))
	require.NoError(t, err)
	dir := t.TempDir()
	export := filepath.Join(dir, "acme.json")
	require.NoError(t, os.WriteFile(export, data, 0644))

	_, _, code := run(t, "analyze", export)
	require.Equal(t, 0, code)
	_, _, code = run(t, "analyze", export)
	require.Equal(t, 0, code)

	out, _, code := run(t, "history", dir, "--json")
	assert.Equal(t, 0, code)

	var entries []domain.RunEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	assert.Len(t, entries, 2)
}

// --- Summary Tests ---

func TestE2E_Summary(t *testing.T) {
	out, _, code := run(t, "summary", fixturePath("compliant.json"), "--json")
	assert.Equal(t, 0, code)

	var summary domain.CalculatorSummary
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	require.NotNil(t, summary.TotalSourceDataTB)
	assert.InDelta(t, 1.0, *summary.TotalSourceDataTB, 1e-9)
	assert.Equal(t, 60, summary.RetentionDays)
}

// --- Rules / Init / Version ---

func TestE2E_Rules(t *testing.T) {
	out, _, code := run(t, "rules")
	assert.Equal(t, 0, code)
	for _, r := range rules.Catalog() {
		assert.Contains(t, out, r.ID)
	}
}

func TestE2E_Init(t *testing.T) {
	dir := t.TempDir()
	out, _, code := run(t, "init", dir)
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Created .vaultcheck.yaml")
	assert.FileExists(t, filepath.Join(dir, ".vaultcheck.yaml"))
}

func TestE2E_Version(t *testing.T) {
	out, _, code := run(t, "version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "vaultcheck")
}
