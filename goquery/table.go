// Package goquery implements result-table extraction from captured portal
// HTML using the goquery library.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rjoshi/ecourts"
)

// Ensure Extractor implements the interface.
var _ ecourts.TableExtractor = (*Extractor)(nil)

// Extractor parses result tables out of captured HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses the first table matching marker.
// Returns ENOTFOUND when the marker selects nothing; a matched table with
// zero data rows is a valid empty result, not an error.
func (e *Extractor) Extract(html, marker string) (*ecourts.Table, error) {
	tables, err := e.ExtractAll(html, marker)
	if err != nil {
		return nil, err
	}
	return tables[0], nil
}

// ExtractAll parses every table matching marker, in document order.
// Returns ENOTFOUND when the marker selects nothing.
func (e *Extractor) ExtractAll(html, marker string) ([]*ecourts.Table, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, ecourts.Errorf(ecourts.EINVALID, "failed to parse HTML: %v", err)
	}

	// Interactive and styling payloads are reduced to visible text only.
	doc.Find("script, style, noscript").Remove()

	sel := doc.Find(marker)
	if sel.Length() == 0 {
		return nil, ecourts.Errorf(ecourts.ENOTFOUND, "results marker %q not found", marker)
	}

	var tables []*ecourts.Table
	sel.Each(func(_ int, table *goquery.Selection) {
		tables = append(tables, parseTable(table))
	})
	return tables, nil
}

// Present reports whether marker selects anything in html.
func (e *Extractor) Present(html, marker string) bool {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return false
	}
	return doc.Find(marker).Length() > 0
}

// parseTable reads one table element into a header and data rows.
//
// The header is the first row consisting of th cells only. Every later row
// with data cells becomes a RawRow; label cells in mixed th/td rows are kept
// so label/value tables survive either rendering. All-blank rows are
// dropped, and rows shorter than the header are padded to its width.
func parseTable(table *goquery.Selection) *ecourts.Table {
	t := &ecourts.Table{}

	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		// Rows of nested tables belong to their own table.
		if closest := row.Closest("table"); closest.Length() == 0 || closest.Get(0) != table.Get(0) {
			return
		}

		ths := row.ChildrenFiltered("th")
		tds := row.ChildrenFiltered("td")

		if t.Header == nil && len(t.Rows) == 0 && ths.Length() > 0 && tds.Length() == 0 {
			t.Header = cellTexts(ths)
			return
		}
		if tds.Length() == 0 {
			return
		}

		cells := cellTexts(row.ChildrenFiltered("th, td"))
		if allBlank(cells) {
			return
		}
		for t.Header != nil && len(cells) < len(t.Header) {
			cells = append(cells, "")
		}
		t.Rows = append(t.Rows, cells)
	})

	return t
}

func cellTexts(cells *goquery.Selection) []string {
	var texts []string
	cells.Each(func(_ int, cell *goquery.Selection) {
		texts = append(texts, collapseWhitespace(cell.Text()))
	})
	return texts
}

// collapseWhitespace trims and reduces inner whitespace runs to single
// spaces.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func allBlank(cells []string) bool {
	for _, c := range cells {
		if c != "" {
			return false
		}
	}
	return true
}
