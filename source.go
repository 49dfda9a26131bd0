package icondeck

import "context"

// IconRef identifies a located icon before its markup has been fetched.
type IconRef struct {
	Name     string
	Category string
	Path     string
	RawURL   string
}

// Source locates icon files in a repository. Implementations hide the
// lookup mechanism: an index manifest, a hosting API, or directory-listing
// HTML.
type Source interface {
	// Name identifies the strategy, for logging and run reporting.
	Name() string

	// List returns refs for every icon file the strategy can locate.
	// An empty result with a nil error means the strategy found nothing
	// and the caller should try the next one.
	List(ctx context.Context, repo Repo) ([]IconRef, error)
}

// Fetcher retrieves raw file content from URLs.
type Fetcher interface {
	// Fetch returns the body at url.
	// Non-success HTTP statuses are errors.
	Fetch(ctx context.Context, url string) (body string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// ListingParser extracts SVG file URLs from directory-listing HTML.
type ListingParser interface {
	// ExtractSVGLinks returns absolute URLs for anchors whose href ends
	// in .svg, resolved against baseURL, in document order. Links leaving
	// the listing host are ignored.
	ExtractSVGLinks(html string, baseURL string) ([]string, error)
}

// DomainLimiter provides per-domain rate limiting for raw file fetches.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
