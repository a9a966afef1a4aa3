// Package normalize maps raw extracted table rows into canonical case
// records. Header and label matching is driven by static synonym tables so
// that accommodating new portal spellings never touches the mapping logic.
package normalize

import (
	"strings"

	"github.com/rjoshi/ecourts"
)

// Header synonyms per cause-list field, matched case-insensitively after
// whitespace normalization and trailing-punctuation trim.
var (
	caseNumberHeaders = []string{"case no", "case number", "case num", "case no/year"}
	partiesHeaders    = []string{"party", "parties", "party name", "petitioner vs respondent", "petitioner versus respondent"}
	purposeHeaders    = []string{"purpose", "purpose of hearing", "purpose of listing"}
	stageHeaders      = []string{"stage", "case stage", "stage of case", "status"}
)

// CauseListResult is the outcome of normalizing one cause-list table.
type CauseListResult struct {
	Records []*ecourts.CaseRecord

	// Dropped counts rows discarded for lacking a resolvable case number.
	// Retained plus dropped always equals rows in.
	Dropped int
}

// CauseList normalizes an extracted cause-list table into case records.
//
// Column positions are learned from the header row via the synonym tables.
// An unmatched non-identity column degrades to an empty field with the row
// retained; a row whose case number cannot be resolved is dropped and
// counted, never retained as partial. Serial numbers are assigned by 1-based
// position in the retained sequence, not copied from the source, so gaps
// from dropped rows never surface.
//
// When the table has no header row at all, non-identity fields map to
// nothing and the case number falls back to the second cell (portal lists
// lead with a serial column), or the first on single-cell rows.
func CauseList(t *ecourts.Table) *CauseListResult {
	res := &CauseListResult{Records: []*ecourts.CaseRecord{}}
	if t == nil {
		return res
	}

	cols := mapColumns(t.Header)
	for _, row := range t.Rows {
		num := cellAt(row, cols.caseNumber)
		if num == "" && t.Header == nil {
			num = identityFallback(row)
		}
		if num == "" {
			res.Dropped++
			continue
		}
		res.Records = append(res.Records, &ecourts.CaseRecord{
			CaseNumber: num,
			Parties:    cellAt(row, cols.parties),
			Purpose:    cellAt(row, cols.purpose),
			Stage:      cellAt(row, cols.stage),
			SerialNo:   len(res.Records) + 1,
		})
	}
	return res
}

type columnMap struct {
	caseNumber int
	parties    int
	purpose    int
	stage      int
}

func mapColumns(header []string) columnMap {
	cols := columnMap{caseNumber: -1, parties: -1, purpose: -1, stage: -1}
	for i, h := range header {
		key := normalizeKey(h)
		switch {
		case cols.caseNumber < 0 && matchesAny(key, caseNumberHeaders):
			cols.caseNumber = i
		case cols.parties < 0 && matchesAny(key, partiesHeaders):
			cols.parties = i
		case cols.purpose < 0 && matchesAny(key, purposeHeaders):
			cols.purpose = i
		case cols.stage < 0 && matchesAny(key, stageHeaders):
			cols.stage = i
		}
	}
	return cols
}

func identityFallback(row ecourts.RawRow) string {
	if len(row) >= 2 {
		return strings.TrimSpace(row[1])
	}
	if len(row) == 1 {
		return strings.TrimSpace(row[0])
	}
	return ""
}

func cellAt(row ecourts.RawRow, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// normalizeKey lowercases, collapses whitespace runs, and trims trailing
// colons and periods, so "Case No.:" and "case no" compare equal.
func normalizeKey(s string) string {
	s = strings.Join(strings.Fields(strings.ToLower(s)), " ")
	return strings.TrimRight(s, ":. ")
}

func matchesAny(key string, synonyms []string) bool {
	for _, s := range synonyms {
		if key == s {
			return true
		}
	}
	return false
}
