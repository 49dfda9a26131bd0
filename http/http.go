package http

import (
	"context"
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/fwojciec/icondeck"
)

// fetchBytes performs a GET and returns the response body.
// Transport failures and non-success statuses map to EUNAVAILABLE so the
// pipeline can fall through to the next strategy.
func fetchBytes(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, icondeck.Errorf(icondeck.EINVALID, "creating request for %s: %v", url, err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)
	req.Header.Set("Accept", "application/json, text/html;q=0.9, */*;q=0.8")

	resp, err := client.Do(req)
	if err != nil {
		return nil, icondeck.Errorf(icondeck.EUNAVAILABLE, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, icondeck.Errorf(icondeck.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, icondeck.Errorf(icondeck.EUNAVAILABLE, "reading %s: %v", url, err)
	}
	return body, nil
}

// iconName derives an icon name from a file name or URL path:
// the base name with the extension removed.
func iconName(file string) string {
	base := path.Base(file)
	return strings.TrimSuffix(base, path.Ext(base))
}

// isSVGFile reports whether a file name has an SVG extension.
func isSVGFile(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".svg")
}
