package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/qualoffer"
)

// Ensure LoggingReporter implements qualoffer.Reporter.
var _ qualoffer.Reporter = (*LoggingReporter)(nil)

// LoggingReporter wraps a Reporter with logging.
type LoggingReporter struct {
	next   qualoffer.Reporter
	logger *slog.Logger
}

// NewLoggingReporter creates a new LoggingReporter.
func NewLoggingReporter(next qualoffer.Reporter, logger *slog.Logger) *LoggingReporter {
	return &LoggingReporter{next: next, logger: logger}
}

// WriteSummary delegates to the wrapped reporter and logs the dataset counts.
func (r *LoggingReporter) WriteSummary(ctx context.Context, summary qualoffer.DatasetSummary) (err error) {
	defer func(begin time.Time) {
		r.logger.Info("report summary",
			"run", summary.RunID,
			"total", summary.Total,
			"valid", summary.Valid,
			"rejected", summary.Rejected,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.WriteSummary(ctx, summary)
}

// WriteBadRecords delegates to the wrapped reporter and logs the record count.
func (r *LoggingReporter) WriteBadRecords(ctx context.Context, records []qualoffer.BadRecord) (err error) {
	defer func(begin time.Time) {
		r.logger.Info("report bad records",
			"count", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.WriteBadRecords(ctx, records)
}

// WriteOffer delegates to the wrapped reporter and logs the offer.
func (r *LoggingReporter) WriteOffer(ctx context.Context, offer *qualoffer.Offer) (err error) {
	defer func(begin time.Time) {
		r.logger.Info("report offer",
			"value", offer.Display(),
			"count", offer.Count,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.WriteOffer(ctx, offer)
}
