// Package gopretty renders run results as terminal tables using go-pretty.
package gopretty

import (
	"context"
	"io"
	"strconv"

	"github.com/fwojciec/qualoffer"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Ensure Reporter implements qualoffer.Reporter at compile time.
var _ qualoffer.Reporter = (*Reporter)(nil)

// Reporter prints the dataset summary and offer as tables.
type Reporter struct {
	w     io.Writer
	style table.Style
}

// Option configures a Reporter.
type Option func(*Reporter)

// WithStyle sets the table style. Defaults to table.StyleRounded.
func WithStyle(style table.Style) Option {
	return func(r *Reporter) {
		r.style = style
	}
}

// NewReporter creates a Reporter writing to w.
func NewReporter(w io.Writer, opts ...Option) *Reporter {
	r := &Reporter{w: w, style: table.StyleRounded}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Reporter) newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(r.style)
	t.SetOutputMirror(r.w)
	return t
}

// WriteSummary prints the dataset info table.
func (r *Reporter) WriteSummary(ctx context.Context, summary qualoffer.DatasetSummary) error {
	t := r.newTable()
	t.AppendHeader(table.Row{"Dataset Info", "Value"})
	t.AppendRows([]table.Row{
		{"Number of records in original dataset", strconv.Itoa(summary.Total)},
		{"Number of valid salary records in dataset", strconv.Itoa(summary.Valid)},
		{"Number of records lost to formatting errors", strconv.Itoa(summary.Rejected)},
	})
	t.Render()
	return nil
}

// WriteBadRecords prints nothing; bad records only appear in audit files
// and as the rejected count.
func (r *Reporter) WriteBadRecords(ctx context.Context, records []qualoffer.BadRecord) error {
	return nil
}

// WriteOffer prints the offer as a single-cell table.
func (r *Reporter) WriteOffer(ctx context.Context, offer *qualoffer.Offer) error {
	t := r.newTable()
	t.AppendHeader(table.Row{"Upcoming Qualifying Offer Value"})
	t.AppendRow(table.Row{offer.Display()})
	t.Render()
	return nil
}
