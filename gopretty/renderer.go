// Package gopretty renders captured records as human-readable text tables.
package gopretty

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rjoshi/ecourts"
)

// Ensure Renderer implements ecourts.DocumentRenderer at compile time.
var _ ecourts.DocumentRenderer = (*Renderer)(nil)

// pageSize caps rows per rendered page; the header row repeats on every
// page, so long cause lists stay readable when printed.
const pageSize = 40

// Renderer renders records as rounded-style text tables.
type Renderer struct{}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderCauseList renders the cause-list summary table. Zero records render
// a header-only table.
func (r *Renderer) RenderCauseList(records []*ecourts.CaseRecord) (string, error) {
	t := newTable()
	t.AppendHeader(table.Row{"Sr No", "Case Number", "Parties", "Purpose", "Stage"})
	for _, rec := range records {
		t.AppendRow(table.Row{rec.SerialNo, rec.CaseNumber, rec.Parties, rec.Purpose, rec.Stage})
	}
	return t.Render(), nil
}

// RenderCaseStatus renders the case-status summary: a details table followed
// by the hearing history when the case has one.
func (r *Renderer) RenderCaseStatus(rec *ecourts.CaseStatusRecord) (string, error) {
	t := newTable()
	t.AppendHeader(table.Row{"Field", "Value"})
	t.AppendRow(table.Row{"CNR", rec.CNR})
	appendDetail(t, "Case Type", rec.CaseType)
	appendDetail(t, "Filing Number", rec.FilingNumber)
	appendDate(t, "Filing Date", rec.FilingDate)
	appendDetail(t, "Registration Number", rec.RegistrationNumber)
	appendDate(t, "Registration Date", rec.RegistrationDate)
	appendDetail(t, "Petitioner", rec.Petitioner)
	appendDetail(t, "Respondent", rec.Respondent)
	appendDetail(t, "Status", rec.Status)
	appendDetail(t, "Stage", rec.Stage)
	appendDetail(t, "Court and Judge", rec.CourtJudge)
	appendDate(t, "Next Hearing Date", rec.NextHearing)
	appendDate(t, "Decision Date", rec.DecisionDate)
	finalOrder := "No"
	if rec.HasFinalOrder {
		finalOrder = "Yes"
	}
	t.AppendRow(table.Row{"Final Order", finalOrder})

	var b strings.Builder
	b.WriteString(t.Render())

	if len(rec.Hearings) > 0 {
		h := newTable()
		h.AppendHeader(table.Row{"Hearing Date", "Purpose"})
		for _, entry := range rec.Hearings {
			h.AppendRow(table.Row{entry.Date.String(), entry.Purpose})
		}
		b.WriteString("\n\n")
		b.WriteString(h.Render())
	}
	return b.String(), nil
}

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetPageSize(pageSize)
	return t
}

func appendDetail(t table.Writer, field, value string) {
	if value == "" {
		return
	}
	t.AppendRow(table.Row{field, value})
}

func appendDate(t table.Writer, field string, d ecourts.CaseDate) {
	if d.IsZero() {
		return
	}
	t.AppendRow(table.Row{field, d.String()})
}
