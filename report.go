package qualoffer

import (
	"context"
	"time"
)

// DatasetSummary describes the data quality of one run.
// Valid + Rejected always equals Total.
type DatasetSummary struct {
	RunID        string
	SourceURL    string
	SourceDigest string
	GeneratedAt  time.Time

	Total    int
	Valid    int
	Rejected int
}

// Summarize returns the dataset counts for p.
func Summarize(p *Partition) DatasetSummary {
	return DatasetSummary{
		Total:    p.Total(),
		Valid:    len(p.Salaries),
		Rejected: len(p.BadRecords),
	}
}

// Reporter presents the results of a run.
// Implementations may render to a terminal or persist audit artifacts.
type Reporter interface {
	// WriteSummary reports the dataset counts.
	WriteSummary(ctx context.Context, summary DatasetSummary) error

	// WriteBadRecords reports the rejected records in source order.
	WriteBadRecords(ctx context.Context, records []BadRecord) error

	// WriteOffer reports the computed qualifying offer.
	WriteOffer(ctx context.Context, offer *Offer) error
}
