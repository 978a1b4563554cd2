package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/marsnap"
)

var _ marsnap.FactsExtractor = (*FactsExtractor)(nil)

// FactsExtractor reads the Mars/Earth comparison table of the facts target.
type FactsExtractor struct {
	target marsnap.FactsTarget
}

// NewFactsExtractor creates a FactsExtractor for the given target.
func NewFactsExtractor(target marsnap.FactsTarget) *FactsExtractor {
	return &FactsExtractor{target: target}
}

// ExtractFacts relabels the first matching table to marsnap.FactsColumns.
//
// Header rows (inside thead, or made only of th cells) are checked against
// the target's expected headers and skipped. Every other row is a data row
// and must have exactly one cell per column. Returns nil when no table is
// found, a header does not match, a row has the wrong number of cells, or
// the table has no data rows.
func (e *FactsExtractor) ExtractFacts(html string) *marsnap.FactsTable {
	doc, ok := parseDocument(html)
	if !ok {
		return nil
	}

	table := doc.Find(e.target.Table).First()
	if table.Length() == 0 {
		return nil
	}

	var rows []marsnap.FactRow
	valid := true
	table.Find("tr").EachWithBreak(func(_ int, tr *goquery.Selection) bool {
		cells := tr.ChildrenFiltered("th, td")
		if cells.Length() == 0 {
			return true
		}
		if isHeaderRow(tr, cells) {
			valid = len(rows) == 0 && e.headerMatches(cells)
			return valid
		}
		if cells.Length() != len(marsnap.FactsColumns) {
			valid = false
			return false
		}
		texts := cellTexts(cells)
		rows = append(rows, marsnap.FactRow{
			Description: texts[0],
			Mars:        texts[1],
			Earth:       texts[2],
		})
		return true
	})

	if !valid || len(rows) == 0 {
		return nil
	}
	return &marsnap.FactsTable{Rows: rows}
}

// headerMatches reports whether a header row has one cell per column and
// each cell contains the corresponding expected header. Extra expected
// headers reject the row.
func (e *FactsExtractor) headerMatches(cells *goquery.Selection) bool {
	if cells.Length() != len(marsnap.FactsColumns) {
		return false
	}
	// Expecting more headers than columns can never match.
	if len(e.target.ExpectedHeaders) > len(marsnap.FactsColumns) {
		return false
	}
	texts := cellTexts(cells)
	for i, want := range e.target.ExpectedHeaders {
		if want == "" {
			continue
		}
		if !strings.Contains(strings.ToLower(texts[i]), strings.ToLower(want)) {
			return false
		}
	}
	return true
}

// isHeaderRow reports whether tr belongs to thead or holds only th cells.
func isHeaderRow(tr, cells *goquery.Selection) bool {
	if tr.ParentsFiltered("thead").Length() > 0 {
		return true
	}
	return cells.Length() == cells.Filter("th").Length()
}

func cellTexts(cells *goquery.Selection) []string {
	return cells.Map(func(_ int, cell *goquery.Selection) string {
		return strings.TrimSpace(cell.Text())
	})
}
