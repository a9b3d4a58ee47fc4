package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/comnam90/vdc-vault-readiness-sub000/internal/domain"
	"github.com/comnam90/vdc-vault-readiness-sub000/internal/domain/rules"
)

// ── warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#60A5FA") // soft blue
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	statusColors = map[domain.Status]lipgloss.Color{
		domain.StatusPass:    success,
		domain.StatusInfo:    info,
		domain.StatusWarning: warning,
		domain.StatusFail:    danger,
	}

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	ruleNameStyle = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// maxAffectedShown caps the affected items listed under one rule.
const maxAffectedShown = 8

var verdictLabels = map[domain.Status]string{
	domain.StatusPass:    "Ready for the vault",
	domain.StatusInfo:    "Ready, with notes",
	domain.StatusWarning: "Ready, with warnings",
	domain.StatusFail:    "Not ready",
}

// RenderReport renders one analysis report as a styled terminal string.
func RenderReport(report *domain.Report) string {
	var b strings.Builder

	// ── Header ──
	title := headerStyle.Render("vaultcheck")
	subtitle := dimStyle.Render(filepath.Base(report.Source))
	verdictStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(statusColor(report.Verdict)).
		Render(verdictLabels[report.Verdict])

	counts := domain.CountByStatus(report.Analysis.Validations)
	tally := dimStyle.Render(fmt.Sprintf("%d pass · %d info · %d warning · %d fail",
		counts[domain.StatusPass], counts[domain.StatusInfo], counts[domain.StatusWarning], counts[domain.StatusFail]))

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + verdictStyled + "\n" + tally))
	b.WriteString("\n\n")

	// ── Rules ──
	for _, r := range report.Analysis.Validations {
		renderResult(&b, r)
	}

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n")

	// ── Data errors ──
	if report.Analysis.Dataset != nil {
		b.WriteString(RenderDataErrors(report.Analysis.Dataset.DataErrors))
	}

	b.WriteString("\n")
	return b.String()
}

func renderResult(b *strings.Builder, r domain.ValidationResult) {
	icon := lipgloss.NewStyle().Foreground(statusColor(r.Status)).Render(statusIcon(r.Status))
	name := ruleNameStyle.Render(padRight(r.Title, 28))
	status := lipgloss.NewStyle().Foreground(statusColor(r.Status)).Render(string(r.Status))

	fmt.Fprintf(b, "  %s %s %s\n", icon, name, status)
	fmt.Fprintf(b, "      %s\n", dimStyle.Render(r.Message))

	for i, item := range r.AffectedItems {
		if i == maxAffectedShown {
			fmt.Fprintf(b, "        %s\n", faintStyle.Render(fmt.Sprintf("+%d more", len(r.AffectedItems)-maxAffectedShown)))
			break
		}
		fmt.Fprintf(b, "        %s %s\n", faintStyle.Render("·"), item)
	}
}

func statusIcon(s domain.Status) string {
	switch s {
	case domain.StatusPass:
		return "✓"
	case domain.StatusFail:
		return "✗"
	case domain.StatusWarning:
		return "!"
	default:
		return "i"
	}
}

func statusColor(s domain.Status) lipgloss.Color {
	if c, ok := statusColors[s]; ok {
		return c
	}
	return fg
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// RenderSummary formats the sizing summary.
func RenderSummary(summary domain.CalculatorSummary) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Sizing Summary") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	row := func(label, value string) {
		fmt.Fprintf(&b, "  %s %s\n", dimStyle.Render(padRight(label, 28)), value)
	}

	row("Total source data", formatFloat(summary.TotalSourceDataTB, "%.2f TB"))
	row("Daily change rate", formatFloat(summary.DailyChangeRatePercent, "%.2f %%"))
	row("Immutability", fmt.Sprintf("%d days", summary.ImmutabilityDays))

	retention := fmt.Sprintf("%d days", summary.RetentionDays)
	if summary.OriginalRetentionDays == nil {
		retention += "  " + faintStyle.Render("(no job retention found)")
	} else if *summary.OriginalRetentionDays != summary.RetentionDays {
		retention += "  " + faintStyle.Render(fmt.Sprintf("(raised from %d days)", *summary.OriginalRetentionDays))
	}
	row("Retention", retention)

	row("GFS weekly", formatInt(summary.Gfs.Weekly))
	row("GFS monthly", formatInt(summary.Gfs.Monthly))
	row("GFS yearly", formatInt(summary.Gfs.Yearly))

	b.WriteString("\n")
	return b.String()
}

func formatFloat(v *float64, format string) string {
	if v == nil {
		return faintStyle.Render("unknown")
	}
	return fmt.Sprintf(format, *v)
}

func formatInt(v *int) string {
	if v == nil {
		return faintStyle.Render("—")
	}
	return fmt.Sprintf("%d", *v)
}

// RenderHistory formats analysis history for terminal output.
func RenderHistory(entries []domain.RunEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No analysis history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Analysis History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for _, e := range entries {
		ts := e.Timestamp
		if len(ts) > 10 {
			ts = ts[:10]
		}
		verdict := lipgloss.NewStyle().Foreground(statusColor(e.Verdict)).Render(padRight(string(e.Verdict), 8))
		fmt.Fprintf(&b, "  %s  %s  %s  %s\n",
			dimStyle.Render(ts),
			verdict,
			dimStyle.Render(fmt.Sprintf("%d fail · %d warn · %d data errors", e.Failures, e.Warnings, e.DataErrors)),
			e.Source,
		)
	}

	return b.String()
}

// RenderRules lists the rule battery in evaluation order.
func RenderRules(catalog []rules.Rule) string {
	var b strings.Builder
	b.WriteString("\n")
	for i, r := range catalog {
		fmt.Fprintf(&b, "  %s %s %s\n", faintStyle.Render(fmt.Sprintf("%2d", i+1)), passStyle.Render(padRight(r.ID, 30)), r.Title)
	}
	b.WriteString("\n")
	return b.String()
}
