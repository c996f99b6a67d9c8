package qualoffer

// Column selectors identifying the four fields of a salary table row.
const (
	ColumnName   = ".player-name"
	ColumnSalary = ".player-salary"
	ColumnLevel  = ".player-level"
	ColumnYear   = ".player-year"
)

// Row is a single row of the salary table.
type Row interface {
	// Field returns the text of the first element in the row matching
	// selector, or nil when the row has no such element.
	Field(selector string) *string
}

// Extractor locates the salary table in an HTML page and returns its rows.
type Extractor interface {
	// Extract parses html and returns the table rows in document order.
	// Returns ENOTFOUND when the table is missing or has no rows.
	Extract(html string) ([]Row, error)
}
