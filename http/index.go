package http

import (
	"context"
	"net/http"

	"github.com/fwojciec/icondeck"
)

// Ensure IndexSource implements icondeck.Source at compile time.
var _ icondeck.Source = (*IndexSource)(nil)

// IndexSource discovers icons from a pre-generated index manifest hosted
// alongside the icon files. It is the fastest strategy: one request
// replaces per-folder lookups.
type IndexSource struct {
	client *http.Client
}

// NewIndexSource creates a new IndexSource with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewIndexSource(client *http.Client) *IndexSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &IndexSource{client: client}
}

// Name implements icondeck.Source.
func (s *IndexSource) Name() string { return "index" }

// List fetches and decodes the manifest, mapping entries to refs.
// A missing manifest is EUNAVAILABLE; malformed JSON is EINVALID. Either
// way the pipeline falls through to the next strategy.
func (s *IndexSource) List(ctx context.Context, repo icondeck.Repo) ([]icondeck.IconRef, error) {
	if err := repo.Validate(); err != nil {
		return nil, err
	}

	body, err := fetchBytes(ctx, s.client, repo.RawURL(icondeck.IndexFileName))
	if err != nil {
		return nil, err
	}

	idx, err := icondeck.DecodeIndex(body)
	if err != nil {
		return nil, err
	}

	refs := make([]icondeck.IconRef, 0, len(idx.Icons))
	for _, e := range idx.Icons {
		refs = append(refs, icondeck.IconRef{
			Name:     e.Name,
			Category: e.Category,
			Path:     e.Path,
			RawURL:   repo.RawURL(e.Path),
		})
	}
	return refs, nil
}
