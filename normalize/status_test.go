package normalize_test

import (
	"testing"
	"time"

	"github.com/rjoshi/ecourts"
	"github.com/rjoshi/ecourts/normalize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func detailsTable(rows ...ecourts.RawRow) *ecourts.Table {
	return &ecourts.Table{Rows: rows}
}

func TestCaseStatus(t *testing.T) {
	t.Parallel()

	t.Run("maps label value pairs in any order", func(t *testing.T) {
		t.Parallel()

		details := detailsTable(
			ecourts.RawRow{"Respondent", "Union of India"},
			ecourts.RawRow{"Case Type", "W.P.(C)"},
			ecourts.RawRow{"Registration Number", "456/2023"},
			ecourts.RawRow{"Registration Date", "02-03-2023"},
			ecourts.RawRow{"Filing Number", "9981/2023"},
			ecourts.RawRow{"Filing Date", "01-03-2023"},
			ecourts.RawRow{"Petitioner", "Meena Devi"},
		)

		r := normalize.CaseStatus("DLHC010012342024", []*ecourts.Table{details}, nil, nil)

		assert.Equal(t, "W.P.(C)", r.CaseType)
		assert.Equal(t, "9981/2023", r.FilingNumber)
		assert.Equal(t, time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC), r.FilingDate.Value)
		assert.Equal(t, "456/2023", r.RegistrationNumber)
		assert.Equal(t, time.Date(2023, time.March, 2, 0, 0, 0, 0, time.UTC), r.RegistrationDate.Value)
		assert.Equal(t, "Meena Devi", r.Petitioner)
		assert.Equal(t, "Union of India", r.Respondent)
	})

	t.Run("echoes the queried CNR, never re-derives it", func(t *testing.T) {
		t.Parallel()

		details := detailsTable(ecourts.RawRow{"CNR Number", "SOMETHINGELSE999"})

		r := normalize.CaseStatus("DLHC010012342024", []*ecourts.Table{details}, nil, nil)

		assert.Equal(t, "DLHC010012342024", r.CNR)
	})

	t.Run("next hearing date means pending", func(t *testing.T) {
		t.Parallel()

		details := detailsTable(
			ecourts.RawRow{"Next Hearing Date", "3rd September 2024"},
			ecourts.RawRow{"Case Stage", "Arguments"},
			ecourts.RawRow{"Court Number and Judge", "Court 12"},
		)

		r := normalize.CaseStatus("DLHC010012342024", []*ecourts.Table{details}, nil, nil)

		assert.Equal(t, "Pending", r.Status)
		assert.Equal(t, "Arguments", r.Stage)
		assert.Equal(t, "Court 12", r.CourtJudge)
		assert.True(t, r.NextHearing.Parsed)
	})

	t.Run("decision date without explicit status means disposed", func(t *testing.T) {
		t.Parallel()

		details := detailsTable(ecourts.RawRow{"Decision Date", "15-03-2023"})

		r := normalize.CaseStatus("DLHC010012342024", []*ecourts.Table{details}, nil, nil)

		assert.Equal(t, "Disposed", r.Status)
	})

	t.Run("explicit status label wins for decided cases", func(t *testing.T) {
		t.Parallel()

		details := detailsTable(
			ecourts.RawRow{"Case Status", "Dismissed"},
			ecourts.RawRow{"Decision Date", "15-03-2023"},
		)

		r := normalize.CaseStatus("DLHC010012342024", []*ecourts.Table{details}, nil, nil)

		assert.Equal(t, "Dismissed", r.Status)
	})

	t.Run("no dates leaves status empty", func(t *testing.T) {
		t.Parallel()

		details := detailsTable(ecourts.RawRow{"Case Type", "CRL.A"})

		r := normalize.CaseStatus("DLHC010012342024", []*ecourts.Table{details}, nil, nil)

		assert.Empty(t, r.Status)
	})

	t.Run("skips rows with fewer than two cells and unknown labels", func(t *testing.T) {
		t.Parallel()

		details := detailsTable(
			ecourts.RawRow{"Orphan Label"},
			ecourts.RawRow{"Some Banner Text", ""},
			ecourts.RawRow{"Unknown Label", "ignored"},
			ecourts.RawRow{"Case Type", "CRL.A"},
		)

		r := normalize.CaseStatus("DLHC010012342024", []*ecourts.Table{details}, nil, nil)

		assert.Equal(t, "CRL.A", r.CaseType)
	})

	t.Run("labels match with trailing colons", func(t *testing.T) {
		t.Parallel()

		details := detailsTable(ecourts.RawRow{"Case Type :", "CRL.A"})

		r := normalize.CaseStatus("DLHC010012342024", []*ecourts.Table{details}, nil, nil)

		assert.Equal(t, "CRL.A", r.CaseType)
	})

	t.Run("scans several detail tables", func(t *testing.T) {
		t.Parallel()

		first := detailsTable(ecourts.RawRow{"Case Type", "CRL.A"})
		second := detailsTable(ecourts.RawRow{"Petitioner", "State"})

		r := normalize.CaseStatus("DLHC010012342024", []*ecourts.Table{first, second}, nil, nil)

		assert.Equal(t, "CRL.A", r.CaseType)
		assert.Equal(t, "State", r.Petitioner)
	})
}

func TestCaseStatus_HearingHistory(t *testing.T) {
	t.Parallel()

	t.Run("preserves source order", func(t *testing.T) {
		t.Parallel()

		history := &ecourts.Table{
			Header: []string{"Judge", "Business on Date", "Hearing Date", "Purpose of hearing"},
			Rows: []ecourts.RawRow{
				{"Judge Sharma", "05-01-2024", "12-02-2024", "Notice"},
				{"Judge Sharma", "12-02-2024", "03-09-2024", "Evidence"},
			},
		}

		r := normalize.CaseStatus("DLHC010012342024", nil, history, nil)

		require.Len(t, r.Hearings, 2)
		assert.Equal(t, time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC), r.Hearings[0].Date.Value)
		assert.Equal(t, "Notice", r.Hearings[0].Purpose)
		assert.Equal(t, time.Date(2024, time.February, 12, 0, 0, 0, 0, time.UTC), r.Hearings[1].Date.Value)
		assert.Equal(t, "Evidence", r.Hearings[1].Purpose)
	})

	t.Run("falls back to hearing date column", func(t *testing.T) {
		t.Parallel()

		history := &ecourts.Table{
			Header: []string{"Hearing Date", "Purpose"},
			Rows:   []ecourts.RawRow{{"12-02-2024", "Notice"}},
		}

		r := normalize.CaseStatus("DLHC010012342024", nil, history, nil)

		require.Len(t, r.Hearings, 1)
		assert.Equal(t, time.Date(2024, time.February, 12, 0, 0, 0, 0, time.UTC), r.Hearings[0].Date.Value)
	})

	t.Run("unparsable hearing date keeps raw text with flag", func(t *testing.T) {
		t.Parallel()

		history := &ecourts.Table{
			Header: []string{"Hearing Date", "Purpose"},
			Rows:   []ecourts.RawRow{{"32/13/2024", "Evidence"}},
		}

		r := normalize.CaseStatus("DLHC010012342024", nil, history, nil)

		require.Len(t, r.Hearings, 1)
		assert.False(t, r.Hearings[0].Date.Parsed)
		assert.Equal(t, "32/13/2024", r.Hearings[0].Date.Raw)
	})

	t.Run("unrecognizable history header yields no entries", func(t *testing.T) {
		t.Parallel()

		history := &ecourts.Table{
			Header: []string{"One", "Two"},
			Rows:   []ecourts.RawRow{{"a", "b"}},
		}

		r := normalize.CaseStatus("DLHC010012342024", nil, history, nil)

		assert.Empty(t, r.Hearings)
	})

	t.Run("nil history yields no entries", func(t *testing.T) {
		t.Parallel()

		r := normalize.CaseStatus("DLHC010012342024", nil, nil, nil)

		assert.NotNil(t, r.Hearings)
		assert.Empty(t, r.Hearings)
	})
}

func TestCaseStatus_FinalOrders(t *testing.T) {
	t.Parallel()

	t.Run("orders table with rows sets the flag", func(t *testing.T) {
		t.Parallel()

		orders := &ecourts.Table{
			Header: []string{"Order Number", "Order Date", "Order Details"},
			Rows:   []ecourts.RawRow{{"1", "15-03-2023", "Final Order"}},
		}

		r := normalize.CaseStatus("DLHC010012342024", nil, nil, orders)

		assert.True(t, r.HasFinalOrder)
	})

	t.Run("empty or missing orders table leaves the flag unset", func(t *testing.T) {
		t.Parallel()

		empty := &ecourts.Table{Header: []string{"Order Number"}}

		assert.False(t, normalize.CaseStatus("X", nil, nil, empty).HasFinalOrder)
		assert.False(t, normalize.CaseStatus("X", nil, nil, nil).HasFinalOrder)
	})
}
