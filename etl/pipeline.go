package etl

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/qualoffer"
	"github.com/google/uuid"
)

// Pipeline computes the qualifying offer from a salary page.
type Pipeline struct {
	Loader    qualoffer.Loader
	Extractor qualoffer.Extractor
	Reporter  qualoffer.Reporter

	// OfferSize is the number of top salaries to average.
	// Zero means qualoffer.QualifyingOfferSize.
	OfferSize int

	// Now and NewRunID are overridable for tests.
	Now      func() time.Time
	NewRunID func() string
}

// Result holds everything a run produced. Fields are filled in pipeline
// order, so a failed run still carries the stages that completed.
type Result struct {
	Source    *qualoffer.Source
	Partition *qualoffer.Partition
	Summary   qualoffer.DatasetSummary
	Offer     *qualoffer.Offer
}

// Run loads target (or the default source), classifies every table row,
// reports bad records and the dataset summary, then computes and reports
// the offer. Any halting error stops the run; no partial offer is reported.
func (p *Pipeline) Run(ctx context.Context, target string) (*Result, error) {
	res := &Result{}

	src, err := p.Loader.Load(ctx, target)
	if err != nil {
		return res, err
	}
	res.Source = src

	rows, err := p.Extractor.Extract(src.HTML)
	if err != nil {
		return res, err
	}

	res.Partition = qualoffer.ClassifyAll(qualoffer.ReadRecords(rows))
	res.Summary = qualoffer.Summarize(res.Partition)
	res.Summary.RunID = p.runID()
	res.Summary.SourceURL = src.URL
	res.Summary.SourceDigest = qualoffer.Digest(src.HTML)
	res.Summary.GeneratedAt = p.now()

	if err := p.Reporter.WriteBadRecords(ctx, res.Partition.BadRecords); err != nil {
		return res, fmt.Errorf("report bad records: %w", err)
	}
	if err := p.Reporter.WriteSummary(ctx, res.Summary); err != nil {
		return res, fmt.Errorf("report dataset summary: %w", err)
	}

	offer, err := qualoffer.ComputeOffer(res.Partition.Salaries, p.offerSize())
	if err != nil {
		return res, err
	}
	res.Offer = offer

	if err := p.Reporter.WriteOffer(ctx, offer); err != nil {
		return res, fmt.Errorf("report offer: %w", err)
	}

	return res, nil
}

func (p *Pipeline) offerSize() int {
	if p.OfferSize == 0 {
		return qualoffer.QualifyingOfferSize
	}
	return p.OfferSize
}

func (p *Pipeline) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}

func (p *Pipeline) runID() string {
	if p.NewRunID != nil {
		return p.NewRunID()
	}
	return uuid.NewString()
}
