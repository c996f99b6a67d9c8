package mock

import (
	"context"

	"github.com/fwojciec/qualoffer"
)

var _ qualoffer.Loader = (*Loader)(nil)

// Loader is a mock implementation of qualoffer.Loader.
type Loader struct {
	LoadFn func(ctx context.Context, target string) (*qualoffer.Source, error)
}

func (l *Loader) Load(ctx context.Context, target string) (*qualoffer.Source, error) {
	return l.LoadFn(ctx, target)
}
