package ecourts

import (
	"strings"
	"time"
)

// FormatCaseStatus formats the case-details block shown after a CNR search.
// Pending cases lead with their stage and court; disposed cases with their
// decision date. Fields the portal did not provide display as N/A.
func FormatCaseStatus(r *CaseStatusRecord) string {
	var b strings.Builder
	b.WriteString("--- Case Details ---\n")
	b.WriteString(detail("CNR", r.CNR))
	b.WriteString(detail("Case Type", r.CaseType))
	b.WriteString(detail("Petitioner", r.Petitioner))
	b.WriteString(detail("Respondent", r.Respondent))

	status := r.Status
	if status == "" {
		status = "Unknown (layout may have changed)"
	}
	b.WriteString(detail("Status", status))

	switch {
	case !r.NextHearing.IsZero():
		b.WriteString(detail("Case Stage", r.Stage))
		b.WriteString(detail("Court / Judge", r.CourtJudge))
		b.WriteString(detail("Next Hearing", r.NextHearing.String()))
	case !r.DecisionDate.IsZero():
		b.WriteString(detail("Decision Date", r.DecisionDate.String()))
	}

	b.WriteString("---------------------")
	return b.String()
}

// FormatListingNotice reports whether the case is listed for hearing today
// or tomorrow, relative to the given date.
func FormatListingNotice(r *CaseStatusRecord, today time.Time) string {
	if r.NextHearing.IsZero() {
		return "No next hearing date found (likely disposed)."
	}
	if !r.NextHearing.Parsed {
		return "Could not parse the next hearing date: " + r.NextHearing.Raw
	}

	hearing := dateOnly(r.NextHearing.Value)
	day := dateOnly(today)
	tomorrow := day.AddDate(0, 0, 1)

	switch {
	case hearing.Equal(day) || hearing.Equal(tomorrow):
		lines := []string{
			"CASE IS LISTED!",
			"Listing date: " + r.NextHearing.String(),
		}
		if r.Stage != "" {
			lines = append(lines, "Purpose: "+r.Stage)
		}
		return strings.Join(lines, "\n")
	case hearing.After(tomorrow):
		return "The case is not listed for a hearing today or tomorrow.\n" +
			"Next scheduled hearing: " + r.NextHearing.String()
	default:
		return "The case is not listed for a hearing today or tomorrow (past date)."
	}
}

func detail(label, value string) string {
	if value == "" {
		value = "N/A"
	}
	return label + ": " + value + "\n"
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
