// Package etl runs the qualifying offer pipeline: it loads the salary page,
// extracts and classifies its rows, reports data quality, and computes the
// offer.
package etl

import (
	"context"
	"net/url"

	"github.com/fwojciec/qualoffer"
)

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

// Ensure Loader implements qualoffer.Loader at compile time.
var _ qualoffer.Loader = (*Loader)(nil)

// Loader fetches a requested URL and falls back to DefaultURL exactly once
// when the requested URL is malformed or cannot be fetched. There are no
// other retries.
type Loader struct {
	Fetcher    qualoffer.Fetcher
	DefaultURL string

	// Logf, if set, is told why a requested URL was abandoned.
	Logf LogFunc
}

// NewLoader returns a Loader for fetcher with the standard default URL.
func NewLoader(fetcher qualoffer.Fetcher) *Loader {
	return &Loader{Fetcher: fetcher, DefaultURL: qualoffer.DefaultSourceURL}
}

// Load returns the page at target, or the default page when target is empty
// or unusable. Returns EUNAVAILABLE when the default page cannot be fetched.
func (l *Loader) Load(ctx context.Context, target string) (*qualoffer.Source, error) {
	if target == "" {
		return l.loadDefault(ctx)
	}

	if err := ValidateURL(target); err != nil {
		l.logf("Defaulting URL due to error with value provided: %s", qualoffer.ErrorMessage(err))
		return l.loadDefault(ctx)
	}

	html, err := l.Fetcher.Fetch(ctx, target)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		l.logf("Defaulting URL due to error with value provided: %v", err)
		return l.loadDefault(ctx)
	}

	return &qualoffer.Source{URL: target, HTML: html}, nil
}

func (l *Loader) loadDefault(ctx context.Context) (*qualoffer.Source, error) {
	html, err := l.Fetcher.Fetch(ctx, l.DefaultURL)
	if err != nil {
		return nil, qualoffer.Errorf(qualoffer.EUNAVAILABLE, "Failure fetching data from %s with error: %v", l.DefaultURL, err)
	}
	return &qualoffer.Source{URL: l.DefaultURL, HTML: html}, nil
}

func (l *Loader) logf(format string, args ...any) {
	if l.Logf != nil {
		l.Logf(format, args...)
	}
}

// ValidateURL returns EINVALID unless raw is an absolute http or https URL.
func ValidateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return qualoffer.Errorf(qualoffer.EINVALID, "invalid URL %q: %v", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return qualoffer.Errorf(qualoffer.EINVALID, "unsupported URL scheme in %q", raw)
	}
	if u.Host == "" {
		return qualoffer.Errorf(qualoffer.EINVALID, "URL %q has no host", raw)
	}
	return nil
}
