package http

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"path"

	"github.com/fwojciec/icondeck"
	"golang.org/x/net/html/charset"
)

// Ensure ListingSource implements icondeck.Source at compile time.
var _ icondeck.Source = (*ListingSource)(nil)

// ListingSource discovers icons by fetching each folder's directory-listing
// HTML and pattern-matching anchor hrefs. It is the last-resort strategy,
// for icon sets served by plain file servers with autoindexing.
type ListingSource struct {
	client *http.Client
	parser icondeck.ListingParser
}

// NewListingSource creates a new ListingSource with the given HTTP client
// and listing parser. If client is nil, http.DefaultClient is used.
func NewListingSource(client *http.Client, parser icondeck.ListingParser) *ListingSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &ListingSource{client: client, parser: parser}
}

// Name implements icondeck.Source.
func (s *ListingSource) Name() string { return "dir-listing" }

// List fetches each folder's listing page and extracts SVG links. Folders
// that fail to fetch or parse are skipped; the strategy errors only when
// every folder failed.
func (s *ListingSource) List(ctx context.Context, repo icondeck.Repo) ([]icondeck.IconRef, error) {
	if err := repo.Validate(); err != nil {
		return nil, err
	}

	folders := repo.FolderList()
	refs := make([]icondeck.IconRef, 0)
	var lastErr error
	failed := 0

	for _, folder := range folders {
		listingURL := repo.ListingURL(folder)

		page, err := s.fetchListing(ctx, listingURL)
		if err != nil {
			lastErr = err
			failed++
			continue
		}

		links, err := s.parser.ExtractSVGLinks(page, listingURL)
		if err != nil {
			lastErr = err
			failed++
			continue
		}

		for _, link := range links {
			name := fileName(link)
			if name == "" {
				continue
			}
			refs = append(refs, icondeck.IconRef{
				Name:     iconName(name),
				Category: folder,
				Path:     path.Join(folder, name),
				RawURL:   link,
			})
		}
	}

	if len(refs) == 0 && failed == len(folders) && lastErr != nil {
		return nil, lastErr
	}
	return refs, nil
}

// fetchListing retrieves a listing page, normalizing its charset to UTF-8.
// Old file servers still emit ISO-8859-1 listings.
func (s *ListingSource) fetchListing(ctx context.Context, listingURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, listingURL, nil)
	if err != nil {
		return "", icondeck.Errorf(icondeck.EINVALID, "creating request for %s: %v", listingURL, err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", icondeck.Errorf(icondeck.EUNAVAILABLE, "fetch %s: %v", listingURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", icondeck.Errorf(icondeck.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, listingURL)
	}

	reader, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", icondeck.Errorf(icondeck.EINVALID, "charset detection for %s: %v", listingURL, err)
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return "", icondeck.Errorf(icondeck.EUNAVAILABLE, "reading %s: %v", listingURL, err)
	}
	return string(body), nil
}

// fileName extracts the file name from a resolved link URL.
func fileName(link string) string {
	u, err := url.Parse(link)
	if err != nil {
		return ""
	}
	return path.Base(u.Path)
}
