package qualoffer

import "context"

// Fetcher retrieves raw HTML from a URL with a single request.
type Fetcher interface {
	// Fetch performs one GET against url and returns the response body.
	// Non-success status codes are errors.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)
}

// Source is the salary page that was actually loaded.
type Source struct {
	// URL is the location the HTML was retrieved from. It differs from the
	// requested location when the loader fell back to the default.
	URL string

	// HTML is the raw page body.
	HTML string
}

// Loader obtains the salary page from a requested location, falling back to
// a default location when the requested one cannot be used.
type Loader interface {
	// Load fetches target, or the default location when target is empty or
	// cannot be retrieved. Returns EUNAVAILABLE when the default location
	// also fails.
	Load(ctx context.Context, target string) (*Source, error)
}
