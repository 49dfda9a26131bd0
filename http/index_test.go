package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/icondeck"
	iconhttp "github.com/fwojciec/icondeck/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexSource_List(t *testing.T) {
	t.Parallel()

	t.Run("maps manifest entries to refs", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/"+icondeck.IndexFileName {
				http.NotFound(w, r)
				return
			}
			_, _ = w.Write([]byte(`{
				"count": 2,
				"icons": [
					{"name": "bell", "category": "grey", "path": "grey/bell.svg"},
					{"name": "arrow-up", "category": "blue-default", "path": "blue-default/arrow-up.svg"}
				]
			}`))
		}))
		defer server.Close()

		source := iconhttp.NewIndexSource(nil)
		repo := icondeck.Repo{BaseURL: server.URL}

		refs, err := source.List(context.Background(), repo)

		require.NoError(t, err)
		require.Len(t, refs, 2)
		assert.Equal(t, "bell", refs[0].Name)
		assert.Equal(t, "grey", refs[0].Category)
		assert.Equal(t, "grey/bell.svg", refs[0].Path)
		assert.Equal(t, server.URL+"/grey/bell.svg", refs[0].RawURL)
		assert.Equal(t, "arrow-up", refs[1].Name)
	})

	t.Run("missing manifest returns EUNAVAILABLE", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.NotFoundHandler())
		defer server.Close()

		source := iconhttp.NewIndexSource(nil)
		_, err := source.List(context.Background(), icondeck.Repo{BaseURL: server.URL})

		assert.Equal(t, icondeck.EUNAVAILABLE, icondeck.ErrorCode(err))
	})

	t.Run("malformed manifest returns EINVALID", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>definitely not json</html>"))
		}))
		defer server.Close()

		source := iconhttp.NewIndexSource(nil)
		_, err := source.List(context.Background(), icondeck.Repo{BaseURL: server.URL})

		assert.Equal(t, icondeck.EINVALID, icondeck.ErrorCode(err))
	})

	t.Run("unconfigured repository returns ENOTCONFIGURED", func(t *testing.T) {
		t.Parallel()

		source := iconhttp.NewIndexSource(nil)
		_, err := source.List(context.Background(), icondeck.Repo{})

		assert.Equal(t, icondeck.ENOTCONFIGURED, icondeck.ErrorCode(err))
	})

	t.Run("empty manifest yields no refs and no error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"count":0,"icons":[]}`))
		}))
		defer server.Close()

		source := iconhttp.NewIndexSource(nil)
		refs, err := source.List(context.Background(), icondeck.Repo{BaseURL: server.URL})

		require.NoError(t, err)
		assert.Empty(t, refs)
	})
}
