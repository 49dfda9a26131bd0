// Package goquery provides directory-listing HTML parsing using CSS selectors.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/icondeck"
)

// Ensure ListingParser implements icondeck.ListingParser at compile time.
var _ icondeck.ListingParser = (*ListingParser)(nil)

// ListingParser extracts SVG file links from directory-listing HTML.
// It handles the listing pages produced by plain file servers (Apache,
// nginx autoindex, GitHub Pages directory dumps) without caring about
// their surrounding markup.
type ListingParser struct{}

// NewListingParser creates a new ListingParser.
func NewListingParser() *ListingParser {
	return &ListingParser{}
}

// ExtractSVGLinks parses listing HTML and returns resolved URLs for anchors
// whose href ends in .svg, in document order. Links resolving outside the
// listing host are ignored, as are duplicate hrefs.
func (p *ListingParser) ExtractSVGLinks(html string, baseURL string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, icondeck.Errorf(icondeck.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, icondeck.Errorf(icondeck.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]bool)
	var links []string

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if !strings.HasSuffix(strings.ToLower(href), ".svg") {
			return
		}

		resolved := resolveURL(base, href)
		if resolved == "" {
			return
		}
		if !isSameHost(base, resolved) {
			return
		}
		if seen[resolved] {
			return
		}
		seen[resolved] = true
		links = append(links, resolved)
	})

	return links, nil
}

// resolveURL resolves a relative href against the listing URL.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}

// isSameHost checks if the resolved URL stays on the listing host.
func isSameHost(base *url.URL, resolved string) bool {
	u, err := url.Parse(resolved)
	if err != nil {
		return false
	}
	return u.Host == base.Host
}
