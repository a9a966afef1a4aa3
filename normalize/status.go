package normalize

import "github.com/rjoshi/ecourts"

// Label synonyms for the case-details tables, keyed by normalized label.
var (
	caseTypeLabels     = []string{"case type"}
	filingNumberLabels = []string{"filing number", "filing no"}
	filingDateLabels   = []string{"filing date", "date of filing"}
	regNumberLabels    = []string{"registration number", "registration no"}
	regDateLabels      = []string{"registration date", "date of registration"}
	petitionerLabels   = []string{"petitioner", "petitioner name", "petitioner and advocate"}
	respondentLabels   = []string{"respondent", "respondent name", "respondent and advocate"}
	caseStatusLabels   = []string{"case status"}
	stageLabels        = []string{"case stage", "stage of case"}
	courtJudgeLabels   = []string{"court number and judge", "court and judge", "coram"}
	nextHearingLabels  = []string{"next hearing date", "next date", "next date of hearing"}
	decisionDateLabels = []string{"decision date", "date of decision"}
)

// History-table header synonyms. The business date is preferred over the
// listed hearing date when both columns are present.
var (
	businessDateHeaders = []string{"business on date", "business date"}
	hearingDateHeaders  = []string{"hearing date", "date"}
	hearingPurposeHeads = []string{"purpose of hearing", "purpose"}
)

// CaseStatus normalizes the tables of one CNR result page into a case-status
// record.
//
// Detail tables are scanned as label/value pairs: first cell is the label,
// second the value, rows with fewer than two cells are skipped, labels match
// in any order, unknown labels are ignored. The CNR is echoed from the
// query, never re-derived from the page. Hearing history preserves source
// order, which is chronological upstream; it is never re-sorted.
//
// Status derivation follows the portal's semantics: a next hearing date
// means the case is pending; otherwise a decision date means disposed, with
// an explicit case-status label taking precedence over the literal
// "Disposed"; with neither date the status is left empty.
func CaseStatus(cnr string, details []*ecourts.Table, history, orders *ecourts.Table) *ecourts.CaseStatusRecord {
	r := &ecourts.CaseStatusRecord{CNR: cnr, Hearings: []ecourts.HearingEntry{}}

	var explicitStatus string
	for _, t := range details {
		if t == nil {
			continue
		}
		for _, row := range t.Rows {
			if len(row) < 2 {
				continue
			}
			label := normalizeKey(row[0])
			value := cellAt(row, 1)
			if value == "" {
				continue
			}
			switch {
			case matchesAny(label, caseTypeLabels):
				r.CaseType = value
			case matchesAny(label, filingNumberLabels):
				r.FilingNumber = value
			case matchesAny(label, filingDateLabels):
				r.FilingDate = ParseDate(value)
			case matchesAny(label, regNumberLabels):
				r.RegistrationNumber = value
			case matchesAny(label, regDateLabels):
				r.RegistrationDate = ParseDate(value)
			case matchesAny(label, petitionerLabels):
				r.Petitioner = value
			case matchesAny(label, respondentLabels):
				r.Respondent = value
			case matchesAny(label, caseStatusLabels):
				explicitStatus = value
			case matchesAny(label, stageLabels):
				r.Stage = value
			case matchesAny(label, courtJudgeLabels):
				r.CourtJudge = value
			case matchesAny(label, nextHearingLabels):
				r.NextHearing = ParseDate(value)
			case matchesAny(label, decisionDateLabels):
				r.DecisionDate = ParseDate(value)
			}
		}
	}

	switch {
	case !r.NextHearing.IsZero():
		r.Status = "Pending"
	case !r.DecisionDate.IsZero():
		r.Status = explicitStatus
		if r.Status == "" {
			r.Status = "Disposed"
		}
	}

	r.Hearings = hearingHistory(history)
	r.HasFinalOrder = orders != nil && len(orders.Rows) > 0
	return r
}

// hearingHistory maps the history table to date/purpose entries in source
// order. A table without a recognizable header yields no entries.
func hearingHistory(t *ecourts.Table) []ecourts.HearingEntry {
	entries := []ecourts.HearingEntry{}
	if t == nil || t.Header == nil {
		return entries
	}

	dateCol := findColumn(t.Header, businessDateHeaders)
	if dateCol < 0 {
		dateCol = findColumn(t.Header, hearingDateHeaders)
	}
	purposeCol := findColumn(t.Header, hearingPurposeHeads)
	if dateCol < 0 && purposeCol < 0 {
		return entries
	}

	for _, row := range t.Rows {
		date := cellAt(row, dateCol)
		purpose := cellAt(row, purposeCol)
		if date == "" && purpose == "" {
			continue
		}
		entries = append(entries, ecourts.HearingEntry{
			Date:    ParseDate(date),
			Purpose: purpose,
		})
	}
	return entries
}

func findColumn(header []string, synonyms []string) int {
	for i, h := range header {
		if matchesAny(normalizeKey(h), synonyms) {
			return i
		}
	}
	return -1
}
