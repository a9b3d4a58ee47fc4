package rules

import (
	"fmt"

	"github.com/comnam90/vdc-vault-readiness-sub000/internal/domain"
	"github.com/comnam90/vdc-vault-readiness-sub000/internal/domain/calculator"
)

// tierWindow describes when data reaches a SOBR's capacity tier and how long
// it is pinned there.
type tierWindow struct {
	// arrivalDay is the backup age at which data lands on capacity tier.
	arrivalDay int
	// immutablePeriod is the longest lock across immutable extents.
	immutablePeriod int
	// archiveTrigger is the age at which data is offloaded to archive tier,
	// nil when the SOBR's archive tier is off or no active archive extent
	// has a known offload period.
	archiveTrigger *int
}

func windowFor(sobr domain.Sobr, extents []domain.CapacityExtent, archives []domain.ArchiveExtent) tierWindow {
	var w tierWindow

	// Copy mode lands data immediately, whatever the move period says.
	copyMode := false
	var movePeriod *int
	for _, e := range extents {
		if isTrue(e.CopyModeEnabled) {
			copyMode = true
		}
		if isTrue(e.MoveModeEnabled) && e.MovePeriodDays != nil {
			if movePeriod == nil || *e.MovePeriodDays < *movePeriod {
				p := *e.MovePeriodDays
				movePeriod = &p
			}
		}
		if e.ImmutableEnabled && e.ImmutablePeriod != nil && *e.ImmutablePeriod > w.immutablePeriod {
			w.immutablePeriod = *e.ImmutablePeriod
		}
	}
	if !copyMode && movePeriod != nil {
		w.arrivalDay = *movePeriod
	}

	if !sobr.ArchiveTierEnabled {
		return w
	}

	var offload *int
	for _, a := range archives {
		if !a.ArchiveTierEnabled || a.OffloadPeriod == nil {
			continue
		}
		if offload == nil || *a.OffloadPeriod < *offload {
			p := *a.OffloadPeriod
			offload = &p
		}
	}
	if offload != nil {
		trigger := max(*offload, w.immutablePeriod)
		w.archiveTrigger = &trigger
	}

	return w
}

type residencyTally struct {
	items    []string
	extended int
	archived int
}

// evaluate checks one retention window of days for a labelled restore point.
// capped reports that days was shortened by archive offload.
func (t *residencyTally) evaluate(label string, days int, capped bool, w tierWindow, floor int) {
	if days <= w.arrivalDay {
		return
	}
	residency := days - w.arrivalDay
	if residency >= floor {
		return
	}

	effective := max(residency, w.immutablePeriod)
	switch {
	case capped:
		t.archived++
		t.items = append(t.items, fmt.Sprintf(
			"%s: archived after %d days, leaving %d days on capacity tier (minimum %d)",
			label, days, residency, floor))
	case effective >= floor:
		t.extended++
		t.items = append(t.items, fmt.Sprintf(
			"%s: %d days on capacity tier, extended to %d days by immutability (extra storage cost)",
			label, residency, effective))
	default:
		t.items = append(t.items, fmt.Sprintf(
			"%s: %d days on capacity tier, below the %d-day minimum",
			label, residency, floor))
	}
}

type gfsTier struct {
	name       string
	count      *int
	daysPerPit int
}

func checkResidency(ds *domain.NormalizedDataset, th domain.Thresholds) domain.ValidationResult {
	floor := th.MinimumRetentionDays
	extents := capacityExtentsBySobr(ds)
	archives := archiveExtentsBySobr(ds)

	tally := &residencyTally{}
	var missing []string
	tiered := 0

	for _, s := range ds.Sobrs {
		if !s.EnableCapacityTier {
			continue
		}
		tiered++
		if len(extents[s.Name]) == 0 {
			missing = append(missing, missingDataItem(s.Name, "capacity"))
			continue
		}

		w := windowFor(s, extents[s.Name], archives[s.Name])
		for _, j := range ds.Jobs {
			if j.RepoName != s.Name {
				continue
			}
			if j.RetainDays != nil {
				tally.evaluate(fmt.Sprintf("%s (%s)", j.JobName, s.Name), *j.RetainDays, false, w, floor)
			}
			if !isTrue(j.GfsEnabled) || j.GfsDetails == nil {
				continue
			}

			gfs := calculator.ParseGfsDetails(*j.GfsDetails)
			for _, tier := range []gfsTier{
				{name: "weekly", count: gfs.Weekly, daysPerPit: 7},
				{name: "monthly", count: gfs.Monthly, daysPerPit: 30},
				{name: "yearly", count: gfs.Yearly, daysPerPit: 365},
			} {
				if tier.count == nil {
					continue
				}
				days := *tier.count * tier.daysPerPit
				capped := false
				if w.archiveTrigger != nil && *w.archiveTrigger < days {
					days = *w.archiveTrigger
					capped = true
				}
				label := fmt.Sprintf("%s %s GFS (%s)", j.JobName, tier.name, s.Name)
				tally.evaluate(label, days, capped, w, floor)
			}
		}
	}

	items := append(missing, tally.items...)
	switch {
	case tiered == 0:
		return pass("No capacity tier configured")
	case len(items) == 0:
		return pass(fmt.Sprintf("All data reaching capacity tier stays for at least %d days", floor))
	}

	msg := fmt.Sprintf("%d restore point window(s) stay on capacity tier for less than %d days", len(tally.items), floor)
	if tally.extended > 0 {
		msg += fmt.Sprintf("; immutability extends %d of them at extra storage cost", tally.extended)
	}
	if tally.archived > 0 {
		msg += fmt.Sprintf("; %d are archived before the minimum", tally.archived)
	}
	if len(missing) > 0 {
		msg += fmt.Sprintf("; %d SOBR(s) lack capacity extent data", len(missing))
	}
	return verdict(domain.StatusWarning, msg, items)
}

func isTrue(b *bool) bool {
	return b != nil && *b
}
