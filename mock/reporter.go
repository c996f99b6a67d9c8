package mock

import (
	"context"

	"github.com/fwojciec/qualoffer"
)

var _ qualoffer.Reporter = (*Reporter)(nil)

// Reporter is a mock implementation of qualoffer.Reporter.
type Reporter struct {
	WriteSummaryFn    func(ctx context.Context, summary qualoffer.DatasetSummary) error
	WriteBadRecordsFn func(ctx context.Context, records []qualoffer.BadRecord) error
	WriteOfferFn      func(ctx context.Context, offer *qualoffer.Offer) error
}

func (r *Reporter) WriteSummary(ctx context.Context, summary qualoffer.DatasetSummary) error {
	return r.WriteSummaryFn(ctx, summary)
}

func (r *Reporter) WriteBadRecords(ctx context.Context, records []qualoffer.BadRecord) error {
	return r.WriteBadRecordsFn(ctx, records)
}

func (r *Reporter) WriteOffer(ctx context.Context, offer *qualoffer.Offer) error {
	return r.WriteOfferFn(ctx, offer)
}
