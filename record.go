package ecourts

import (
	"encoding/json"
	"time"
)

// CaseDate is a calendar date as the portal printed it. Value carries the
// canonical date when parsing succeeded; Raw always preserves the source
// text, so an unparsable date survives serialization round-trips instead of
// being dropped.
type CaseDate struct {
	Value  time.Time
	Raw    string
	Parsed bool
}

// IsZero reports whether the date carries no information at all.
func (d CaseDate) IsZero() bool {
	return !d.Parsed && d.Raw == ""
}

// String returns the canonical date when parsed, otherwise the raw source
// text.
func (d CaseDate) String() string {
	if d.Parsed {
		return d.Value.Format("2006-01-02")
	}
	return d.Raw
}

type caseDateJSON struct {
	Value  string `json:"value,omitempty"`
	Raw    string `json:"raw"`
	Parsed bool   `json:"parsed"`
}

// MarshalJSON encodes the date with its raw source text and parse flag.
// Value is omitted when parsing failed.
func (d CaseDate) MarshalJSON() ([]byte, error) {
	out := caseDateJSON{Raw: d.Raw, Parsed: d.Parsed}
	if d.Parsed {
		out.Value = d.Value.Format("2006-01-02")
	}
	return json.Marshal(out)
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (d *CaseDate) UnmarshalJSON(data []byte) error {
	var in caseDateJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	d.Raw = in.Raw
	d.Parsed = in.Parsed
	d.Value = time.Time{}
	if in.Parsed && in.Value != "" {
		t, err := time.Parse("2006-01-02", in.Value)
		if err != nil {
			return err
		}
		d.Value = t
	}
	return nil
}

// CaseRecord is one normalized cause-list entry.
type CaseRecord struct {
	CaseNumber string `json:"caseNumber"`
	Parties    string `json:"parties"`
	Purpose    string `json:"purpose"`
	Stage      string `json:"stage"`

	// SerialNo is the 1-based position in the retained sequence. It is
	// reassigned during normalization, never copied from the source.
	SerialNo int `json:"serialNo"`
}

// Validate returns an error if the record contains invalid fields.
// Case number is the record's identity; an identity-less record has no
// downstream use.
func (r *CaseRecord) Validate() error {
	if r.CaseNumber == "" {
		return Errorf(EINVALID, "case number required")
	}
	return nil
}

// HearingEntry is one row of a case's hearing history.
type HearingEntry struct {
	Date    CaseDate `json:"date"`
	Purpose string   `json:"purpose"`
}

// CaseStatusRecord is the normalized result of a CNR search.
// Hearings preserve source order, which is chronological upstream.
type CaseStatusRecord struct {
	// CNR is exactly the queried identifier, echoed, never re-derived from
	// the page.
	CNR                string         `json:"cnr"`
	CaseType           string         `json:"caseType"`
	FilingNumber       string         `json:"filingNumber"`
	FilingDate         CaseDate       `json:"filingDate"`
	RegistrationNumber string         `json:"registrationNumber"`
	RegistrationDate   CaseDate       `json:"registrationDate"`
	Petitioner         string         `json:"petitioner"`
	Respondent         string         `json:"respondent"`
	Status             string         `json:"status"`
	Stage              string         `json:"stage"`
	CourtJudge         string         `json:"courtJudge"`
	NextHearing        CaseDate       `json:"nextHearing"`
	DecisionDate       CaseDate       `json:"decisionDate"`
	Hearings           []HearingEntry `json:"hearings"`
	HasFinalOrder      bool           `json:"hasFinalOrder"`
}

// Validate returns an error if the record contains invalid fields.
func (r *CaseStatusRecord) Validate() error {
	if r.CNR == "" {
		return Errorf(EINVALID, "case status CNR required")
	}
	return nil
}
