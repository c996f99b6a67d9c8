package etl_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/qualoffer"
	"github.com/fwojciec/qualoffer/etl"
	"github.com/fwojciec/qualoffer/goquery"
	"github.com/fwojciec/qualoffer/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoRowPage = `<table id="salaries-table">
<tr><td class="player-name">Valid, Player</td><td class="player-salary">$1,234,567</td><td class="player-year">2016</td><td class="player-level">MLB</td></tr>
<tr><td class="player-name">Minor, Player</td><td class="player-salary">$45,000</td><td class="player-year">2016</td><td class="player-level">MiLB</td></tr>
</table>`

// recorder is a mock reporter that remembers what it was given.
type recorder struct {
	calls   []string
	summary qualoffer.DatasetSummary
	bad     []qualoffer.BadRecord
	offer   *qualoffer.Offer
}

func (r *recorder) reporter() *mock.Reporter {
	return &mock.Reporter{
		WriteSummaryFn: func(_ context.Context, s qualoffer.DatasetSummary) error {
			r.calls = append(r.calls, "summary")
			r.summary = s
			return nil
		},
		WriteBadRecordsFn: func(_ context.Context, records []qualoffer.BadRecord) error {
			r.calls = append(r.calls, "bad")
			r.bad = records
			return nil
		},
		WriteOfferFn: func(_ context.Context, o *qualoffer.Offer) error {
			r.calls = append(r.calls, "offer")
			r.offer = o
			return nil
		},
	}
}

func staticLoader(url, html string) *mock.Loader {
	return &mock.Loader{
		LoadFn: func(_ context.Context, target string) (*qualoffer.Source, error) {
			return &qualoffer.Source{URL: url, HTML: html}, nil
		},
	}
}

func TestPipeline_Run(t *testing.T) {
	t.Parallel()

	t.Run("classifies rows and reports the offer", func(t *testing.T) {
		t.Parallel()

		rec := &recorder{}
		now := time.Date(2016, 11, 1, 12, 0, 0, 0, time.UTC)
		p := &etl.Pipeline{
			Loader:    staticLoader("https://example.com/data.html", twoRowPage),
			Extractor: goquery.NewTableExtractor(),
			Reporter:  rec.reporter(),
			Now:       func() time.Time { return now },
			NewRunID:  func() string { return "run-1" },
		}

		res, err := p.Run(context.Background(), "")

		require.NoError(t, err)
		assert.Equal(t, []qualoffer.Salary{1234567}, res.Partition.Salaries)
		require.Len(t, res.Partition.BadRecords, 1)
		assert.Equal(t, "Minor, Player", *res.Partition.BadRecords[0].PlayerName)

		assert.Equal(t, 2, res.Summary.Total)
		assert.Equal(t, 1, res.Summary.Valid)
		assert.Equal(t, 1, res.Summary.Rejected)
		assert.Equal(t, "run-1", res.Summary.RunID)
		assert.Equal(t, "https://example.com/data.html", res.Summary.SourceURL)
		assert.Equal(t, qualoffer.Digest(twoRowPage), res.Summary.SourceDigest)
		assert.Equal(t, now, res.Summary.GeneratedAt)

		require.NotNil(t, res.Offer)
		assert.InDelta(t, 1234567.0, res.Offer.Value, 1e-9)
		assert.Equal(t, 1, res.Offer.Count)

		assert.Equal(t, []string{"bad", "summary", "offer"}, rec.calls)
		assert.Equal(t, res.Summary, rec.summary)
		assert.Equal(t, res.Partition.BadRecords, rec.bad)
		assert.Same(t, res.Offer, rec.offer)
	})

	t.Run("passes target to loader", func(t *testing.T) {
		t.Parallel()

		var got string
		rec := &recorder{}
		p := &etl.Pipeline{
			Loader: &mock.Loader{
				LoadFn: func(_ context.Context, target string) (*qualoffer.Source, error) {
					got = target
					return &qualoffer.Source{URL: target, HTML: twoRowPage}, nil
				},
			},
			Extractor: goquery.NewTableExtractor(),
			Reporter:  rec.reporter(),
		}

		_, err := p.Run(context.Background(), "https://mirror.example.com")

		require.NoError(t, err)
		assert.Equal(t, "https://mirror.example.com", got)
	})

	t.Run("uses custom offer size", func(t *testing.T) {
		t.Parallel()

		var b strings.Builder
		b.WriteString(`<table id="salaries-table">`)
		for _, s := range []string{"$100", "$200", "$300"} {
			b.WriteString(`<tr><td class="player-salary">` + s + `</td><td class="player-level">MLB</td><td class="player-year">2016</td></tr>`)
		}
		b.WriteString(`</table>`)

		rec := &recorder{}
		p := &etl.Pipeline{
			Loader:    staticLoader("u", b.String()),
			Extractor: goquery.NewTableExtractor(),
			Reporter:  rec.reporter(),
			OfferSize: 2,
		}

		res, err := p.Run(context.Background(), "")

		require.NoError(t, err)
		assert.InDelta(t, 250.0, res.Offer.Value, 1e-9)
		assert.Equal(t, 2, res.Offer.Count)
	})

	t.Run("stops when loading fails", func(t *testing.T) {
		t.Parallel()

		rec := &recorder{}
		p := &etl.Pipeline{
			Loader: &mock.Loader{
				LoadFn: func(_ context.Context, _ string) (*qualoffer.Source, error) {
					return nil, qualoffer.Errorf(qualoffer.EUNAVAILABLE, "down")
				},
			},
			Extractor: goquery.NewTableExtractor(),
			Reporter:  rec.reporter(),
		}

		res, err := p.Run(context.Background(), "")

		require.Error(t, err)
		assert.Equal(t, qualoffer.EUNAVAILABLE, qualoffer.ErrorCode(err))
		assert.Nil(t, res.Source)
		assert.Empty(t, rec.calls)
	})

	t.Run("stops when the table is missing", func(t *testing.T) {
		t.Parallel()

		rec := &recorder{}
		p := &etl.Pipeline{
			Loader:    staticLoader("u", "<html><body></body></html>"),
			Extractor: goquery.NewTableExtractor(),
			Reporter:  rec.reporter(),
		}

		res, err := p.Run(context.Background(), "")

		require.Error(t, err)
		assert.Equal(t, qualoffer.ENOTFOUND, qualoffer.ErrorCode(err))
		assert.Nil(t, res.Partition)
		assert.Empty(t, rec.calls)
	})

	t.Run("reports data quality but no offer without valid salaries", func(t *testing.T) {
		t.Parallel()

		html := `<table id="salaries-table"><tr><td class="player-salary">n/a</td><td class="player-level">MLB</td><td class="player-year">2016</td></tr></table>`
		rec := &recorder{}
		p := &etl.Pipeline{
			Loader:    staticLoader("u", html),
			Extractor: goquery.NewTableExtractor(),
			Reporter:  rec.reporter(),
		}

		res, err := p.Run(context.Background(), "")

		require.Error(t, err)
		assert.Equal(t, qualoffer.ENOTFOUND, qualoffer.ErrorCode(err))
		assert.Nil(t, res.Offer)
		assert.Equal(t, 1, res.Summary.Rejected)
		assert.Equal(t, []string{"bad", "summary"}, rec.calls)
	})

	t.Run("wraps reporter errors", func(t *testing.T) {
		t.Parallel()

		rec := &recorder{}
		reporter := rec.reporter()
		reporter.WriteBadRecordsFn = func(context.Context, []qualoffer.BadRecord) error {
			return errors.New("disk full")
		}
		p := &etl.Pipeline{
			Loader:    staticLoader("u", twoRowPage),
			Extractor: goquery.NewTableExtractor(),
			Reporter:  reporter,
		}

		_, err := p.Run(context.Background(), "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "report bad records")
		assert.Contains(t, err.Error(), "disk full")
	})

	t.Run("generates a run id by default", func(t *testing.T) {
		t.Parallel()

		rec := &recorder{}
		p := &etl.Pipeline{
			Loader:    staticLoader("u", twoRowPage),
			Extractor: goquery.NewTableExtractor(),
			Reporter:  rec.reporter(),
		}

		res, err := p.Run(context.Background(), "")

		require.NoError(t, err)
		assert.Len(t, res.Summary.RunID, 36)
		assert.False(t, res.Summary.GeneratedAt.IsZero())
	})
}
