package normalize

import (
	"regexp"
	"strings"
	"time"

	"github.com/rjoshi/ecourts"
)

// The portal prints dates day-first. Layouts are tried in order; the first
// that parses wins.
var dateLayouts = []string{
	"02-01-2006",
	"02/01/2006",
	"2-1-2006",
	"2/1/2006",
	"2 January 2006",
	"2 Jan 2006",
}

// Matches ordinal day suffixes ("3rd", "21st") without touching month names.
var ordinalSuffix = regexp.MustCompile(`\b(\d{1,2})(?:st|nd|rd|th)\b`)

// ParseDate parses the portal's day-first date text into a CaseDate.
// Ordinal suffixes are stripped first, so "3rd September 2024" parses.
// Unparsable input keeps the raw text with Parsed false; the human retains
// the information either way.
func ParseDate(raw string) ecourts.CaseDate {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ecourts.CaseDate{}
	}

	cleaned := ordinalSuffix.ReplaceAllString(trimmed, "$1")
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return ecourts.CaseDate{Value: t, Raw: trimmed, Parsed: true}
		}
	}
	return ecourts.CaseDate{Raw: trimmed, Parsed: false}
}
