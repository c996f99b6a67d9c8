package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/qualoffer"
)

// Ensure LoggingExtractor implements qualoffer.Extractor.
var _ qualoffer.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next   qualoffer.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next qualoffer.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the row count.
func (e *LoggingExtractor) Extract(html string) (rows []qualoffer.Row, err error) {
	defer func(begin time.Time) {
		e.logger.Info("extract",
			"bytes", len(html),
			"rows", len(rows),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html)
}
