package mock

import "github.com/fwojciec/icondeck"

var _ icondeck.ListingParser = (*ListingParser)(nil)

// ListingParser is a mock implementation of icondeck.ListingParser.
type ListingParser struct {
	ExtractSVGLinksFn func(html string, baseURL string) ([]string, error)
}

func (p *ListingParser) ExtractSVGLinks(html string, baseURL string) ([]string, error) {
	return p.ExtractSVGLinksFn(html, baseURL)
}
