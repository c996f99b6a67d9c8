// Package fs writes audit artifacts for a qualifying offer run.
package fs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/qualoffer"
)

// TimestampLayout is the timestamp embedded in artifact file names.
const TimestampLayout = "2006-01-02-15:04:05.000000"

// Ensure AuditWriter implements qualoffer.Reporter at compile time.
var _ qualoffer.Reporter = (*AuditWriter)(nil)

// AuditWriter persists the dataset summary and bad records as timestamped
// files in a directory. Files are opened for append, written once, and
// closed.
type AuditWriter struct {
	dir string
	now func() time.Time
}

// Option configures an AuditWriter.
type Option func(*AuditWriter)

// WithClock sets the clock used to timestamp file names.
func WithClock(now func() time.Time) Option {
	return func(w *AuditWriter) {
		w.now = now
	}
}

// NewAuditWriter creates a new AuditWriter that writes to dir.
func NewAuditWriter(dir string, opts ...Option) *AuditWriter {
	w := &AuditWriter{dir: dir, now: time.Now}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// DatasetInfoPath returns the summary file path for a run at t.
func (w *AuditWriter) DatasetInfoPath(t time.Time) string {
	return filepath.Join(w.dir, "data-set-info-"+t.Format(TimestampLayout)+".txt")
}

// BadRecordsPath returns the bad records file path for a run at t.
func (w *AuditWriter) BadRecordsPath(t time.Time) string {
	return filepath.Join(w.dir, "bad-data-"+t.Format(TimestampLayout)+".json")
}

// FormatDatasetInfo formats the summary as the plain text audit body.
func FormatDatasetInfo(s qualoffer.DatasetSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Number of records in original dataset: %d\n", s.Total)
	fmt.Fprintf(&b, "Number of valid salary records in dataset: %d\n", s.Valid)
	fmt.Fprintf(&b, "Number of records lost to formatting errors: %d\n", s.Rejected)
	if s.RunID != "" {
		fmt.Fprintf(&b, "Run ID: %s\n", s.RunID)
	}
	if s.SourceURL != "" {
		fmt.Fprintf(&b, "Source: %s\n", s.SourceURL)
	}
	if s.SourceDigest != "" {
		fmt.Fprintf(&b, "Source digest: %s\n", s.SourceDigest)
	}
	return b.String()
}

// WriteSummary appends the dataset info file.
func (w *AuditWriter) WriteSummary(ctx context.Context, summary qualoffer.DatasetSummary) error {
	return w.appendFile(w.DatasetInfoPath(w.now()), []byte(FormatDatasetInfo(summary)))
}

// WriteBadRecords appends the bad records as a single JSON array line.
// Absent fields are written as null.
func (w *AuditWriter) WriteBadRecords(ctx context.Context, records []qualoffer.BadRecord) error {
	if records == nil {
		records = []qualoffer.BadRecord{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return qualoffer.Errorf(qualoffer.EINTERNAL, "failed to encode bad records: %v", err)
	}
	return w.appendFile(w.BadRecordsPath(w.now()), append(data, '\n'))
}

// WriteOffer is a no-op; the offer is displayed, not audited.
func (w *AuditWriter) WriteOffer(ctx context.Context, offer *qualoffer.Offer) error {
	return nil
}

func (w *AuditWriter) appendFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadBadRecords reads a bad records file. Files appended more than once
// hold several arrays; their records are returned in file order.
func ReadBadRecords(path string) ([]qualoffer.BadRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records := []qualoffer.BadRecord{}
	dec := json.NewDecoder(f)
	for {
		var batch []qualoffer.BadRecord
		if err := dec.Decode(&batch); errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, qualoffer.Errorf(qualoffer.EINVALID, "malformed bad records file %s: %v", path, err)
		}
		records = append(records, batch...)
	}
	return records, nil
}
