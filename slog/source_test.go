package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/icondeck"
	"github.com/fwojciec/icondeck/mock"
	deckslog "github.com/fwojciec/icondeck/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSource_List(t *testing.T) {
	t.Parallel()

	t.Run("logs strategy name and ref count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Source{
			NameFn: "contents-api",
			ListFn: func(ctx context.Context, repo icondeck.Repo) ([]icondeck.IconRef, error) {
				return []icondeck.IconRef{
					{Name: "bell", Category: "grey", Path: "grey/bell.svg"},
				}, nil
			},
		}

		source := deckslog.NewLoggingSource(inner, logger)
		refs, err := source.List(context.Background(), icondeck.Repo{Owner: "acme", Name: "icons"})

		require.NoError(t, err)
		assert.Len(t, refs, 1)
		output := buf.String()
		assert.Contains(t, output, "discovery")
		assert.Contains(t, output, "strategy=contents-api")
		assert.Contains(t, output, "count=1")
	})

	t.Run("logs failures from the wrapped source", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Source{
			NameFn: "index",
			ListFn: func(ctx context.Context, repo icondeck.Repo) ([]icondeck.IconRef, error) {
				return nil, icondeck.Errorf(icondeck.EUNAVAILABLE, "HTTP 404")
			},
		}

		source := deckslog.NewLoggingSource(inner, logger)
		_, err := source.List(context.Background(), icondeck.Repo{Owner: "acme", Name: "icons"})

		require.Error(t, err)
		assert.Contains(t, buf.String(), "strategy=index")
	})

	t.Run("name delegates to the wrapped source", func(t *testing.T) {
		t.Parallel()

		source := deckslog.NewLoggingSource(&mock.Source{NameFn: "dir-listing"}, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
		assert.Equal(t, "dir-listing", source.Name())
	})
}
