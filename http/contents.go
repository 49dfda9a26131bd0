package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"path"

	"github.com/fwojciec/icondeck"
)

// contentsAPIBaseURL is the default hosting API endpoint.
const contentsAPIBaseURL = "https://api.github.com"

// Ensure ContentsSource implements icondeck.Source at compile time.
var _ icondeck.Source = (*ContentsSource)(nil)

// contentsEntry mirrors one element of the hosting API's directory
// contents response.
type contentsEntry struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	DownloadURL string `json:"download_url"`
}

// ContentsSource discovers icons through the repository hosting API,
// querying directory contents for each configured folder and keeping
// files with an SVG extension.
type ContentsSource struct {
	client  *http.Client
	baseURL string
}

// ContentsOption configures a ContentsSource.
type ContentsOption func(*ContentsSource)

// WithBaseURL overrides the hosting API endpoint. Used in tests.
func WithBaseURL(u string) ContentsOption {
	return func(s *ContentsSource) {
		s.baseURL = u
	}
}

// NewContentsSource creates a new ContentsSource with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewContentsSource(client *http.Client, opts ...ContentsOption) *ContentsSource {
	if client == nil {
		client = http.DefaultClient
	}
	s := &ContentsSource{
		client:  client,
		baseURL: contentsAPIBaseURL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name implements icondeck.Source.
func (s *ContentsSource) Name() string { return "contents-api" }

// List queries the contents API per folder. A failing folder is skipped
// so one missing directory doesn't hide the others; the strategy errors
// only when every folder failed.
func (s *ContentsSource) List(ctx context.Context, repo icondeck.Repo) ([]icondeck.IconRef, error) {
	if err := repo.Validate(); err != nil {
		return nil, err
	}

	folders := repo.FolderList()
	refs := make([]icondeck.IconRef, 0)
	var lastErr error
	failed := 0

	for _, folder := range folders {
		u := fmt.Sprintf("%s/repos/%s/%s/contents/%s?ref=%s",
			s.baseURL, repo.Owner, repo.Name, folder, repo.BranchName())

		body, err := fetchBytes(ctx, s.client, u)
		if err != nil {
			lastErr = err
			failed++
			continue
		}

		var entries []contentsEntry
		if err := json.Unmarshal(body, &entries); err != nil {
			lastErr = icondeck.Errorf(icondeck.EINVALID, "malformed contents response for %s: %v", folder, err)
			failed++
			continue
		}

		for _, e := range entries {
			if e.Type != "file" || !isSVGFile(e.Name) {
				continue
			}
			filePath := path.Join(folder, e.Name)
			rawURL := e.DownloadURL
			if rawURL == "" {
				rawURL = repo.RawURL(filePath)
			}
			refs = append(refs, icondeck.IconRef{
				Name:     iconName(e.Name),
				Category: folder,
				Path:     filePath,
				RawURL:   rawURL,
			})
		}
	}

	if len(refs) == 0 && failed == len(folders) && lastErr != nil {
		return nil, lastErr
	}
	return refs, nil
}
