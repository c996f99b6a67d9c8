package etl

import (
	"context"

	"github.com/fwojciec/qualoffer"
)

// Ensure MultiReporter implements qualoffer.Reporter at compile time.
var _ qualoffer.Reporter = MultiReporter(nil)

// MultiReporter forwards each report to every reporter in order and stops
// at the first error.
type MultiReporter []qualoffer.Reporter

func (m MultiReporter) WriteSummary(ctx context.Context, summary qualoffer.DatasetSummary) error {
	for _, r := range m {
		if err := r.WriteSummary(ctx, summary); err != nil {
			return err
		}
	}
	return nil
}

func (m MultiReporter) WriteBadRecords(ctx context.Context, records []qualoffer.BadRecord) error {
	for _, r := range m {
		if err := r.WriteBadRecords(ctx, records); err != nil {
			return err
		}
	}
	return nil
}

func (m MultiReporter) WriteOffer(ctx context.Context, offer *qualoffer.Offer) error {
	for _, r := range m {
		if err := r.WriteOffer(ctx, offer); err != nil {
			return err
		}
	}
	return nil
}
