// Package goquery extracts salary table rows from HTML using goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/qualoffer"
)

// DefaultTableID identifies the salary table on the source page.
const DefaultTableID = "salaries-table"

// Ensure TableExtractor implements qualoffer.Extractor at compile time.
var _ qualoffer.Extractor = (*TableExtractor)(nil)

// TableExtractor finds the table with a given id and returns its rows.
type TableExtractor struct {
	tableID string
}

// Option configures a TableExtractor.
type Option func(*TableExtractor)

// WithTableID sets the id of the table to extract.
// Defaults to DefaultTableID.
func WithTableID(id string) Option {
	return func(e *TableExtractor) {
		e.tableID = id
	}
}

// NewTableExtractor creates a new TableExtractor.
func NewTableExtractor(opts ...Option) *TableExtractor {
	e := &TableExtractor{tableID: DefaultTableID}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns every tr element of the salary table in document order,
// including rows nested in thead or tbody.
func (e *TableExtractor) Extract(html string) ([]qualoffer.Row, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, qualoffer.Errorf(qualoffer.EINVALID, "failed to parse HTML: %v", err)
	}

	// Attribute selector so ids containing CSS metacharacters still match.
	table := doc.Find(`table[id="` + e.tableID + `"]`).First()
	if table.Length() == 0 {
		return nil, qualoffer.Errorf(qualoffer.ENOTFOUND, "no data with expected format found: table %q missing", e.tableID)
	}

	trs := table.Find("tr")
	if trs.Length() == 0 {
		return nil, qualoffer.Errorf(qualoffer.ENOTFOUND, "no data with expected format found: table %q has no rows", e.tableID)
	}

	rows := make([]qualoffer.Row, 0, trs.Length())
	trs.Each(func(_ int, sel *goquery.Selection) {
		rows = append(rows, &Row{sel: sel})
	})
	return rows, nil
}

// Ensure Row implements qualoffer.Row at compile time.
var _ qualoffer.Row = (*Row)(nil)

// Row is a table row backed by a goquery selection.
type Row struct {
	sel *goquery.Selection
}

// Field returns the untrimmed text of the first element matching selector.
func (r *Row) Field(selector string) *string {
	match := r.sel.Find(selector).First()
	if match.Length() == 0 {
		return nil
	}
	text := match.Text()
	return &text
}
