package mock

import "github.com/fwojciec/qualoffer"

var _ qualoffer.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of qualoffer.Extractor.
type Extractor struct {
	ExtractFn func(html string) ([]qualoffer.Row, error)
}

func (e *Extractor) Extract(html string) ([]qualoffer.Row, error) {
	return e.ExtractFn(html)
}
