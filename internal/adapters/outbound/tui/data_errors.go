package tui

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/camelcase"

	"github.com/comnam90/vdc-vault-readiness-sub000/internal/domain"
)

var (
	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	warningItemStyle   = lipgloss.NewStyle().Foreground(warning)
	fieldStyle         = lipgloss.NewStyle().Foreground(info)
	hintStyle          = lipgloss.NewStyle().Foreground(dim).Italic(true)
)

// RenderDataErrors lists rows dropped during normalization, grouped by
// section in the order the sections were first seen.
func RenderDataErrors(errs []domain.DataError) string {
	var b strings.Builder
	b.WriteString("\n")

	if len(errs) == 0 {
		fmt.Fprintf(&b, "  %s %s\n", passStyle.Render("✓"), dimStyle.Render("No data errors."))
		return b.String()
	}

	var order []string
	groups := make(map[string][]domain.DataError)
	for _, e := range errs {
		if _, ok := groups[e.Section]; !ok {
			order = append(order, e.Section)
		}
		groups[e.Section] = append(groups[e.Section], e)
	}

	fmt.Fprintf(&b, "  %s %s\n",
		sectionHeaderStyle.Render("Data Errors"),
		dimStyle.Render(fmt.Sprintf("(%d rows dropped)", len(errs))),
	)

	for _, name := range order {
		group := groups[name]
		b.WriteString("\n")
		fmt.Fprintf(&b, "    %s %s\n",
			titleStyle.Render(SectionTitle(name)),
			dimStyle.Render(fmt.Sprintf("(%d)", len(group))),
		)
		for _, e := range group {
			fmt.Fprintf(&b, "      %s row %d  %s %s\n",
				warningItemStyle.Render("●"),
				e.RowIndex,
				fieldStyle.Render(e.Field+":"),
				e.Reason,
			)
		}
	}

	b.WriteString("\n")
	b.WriteString("  " + hintStyle.Render("Dropped rows are excluded from every rule and from the sizing summary."))
	b.WriteString("\n")
	return b.String()
}

// SectionTitle turns a section key into a heading:
// "jobSessionSummaryByJob" -> "Job Session Summary By Job", "SOBR" -> "SOBR".
func SectionTitle(key string) string {
	words := camelcase.Split(key)
	for i, w := range words {
		r := []rune(w)
		if len(r) > 0 {
			r[0] = unicode.ToUpper(r[0])
		}
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
