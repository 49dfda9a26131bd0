package icondeck_test

import (
	"testing"
	"time"

	"github.com/fwojciec/icondeck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildIndex(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	idx := icondeck.BuildIndex(testCollection(), "run-1", now)

	assert.Equal(t, now, idx.GeneratedAt)
	assert.Equal(t, "run-1", idx.RunID)
	assert.Equal(t, 3, idx.Count)
	assert.NotEmpty(t, idx.Checksum)
	require.Len(t, idx.Icons, 3)
	assert.Equal(t, "arrow-up", idx.Icons[0].Name)
	assert.Equal(t, "blue-default", idx.Icons[0].Category)
	assert.Equal(t, "blue-default/arrow-up.svg", idx.Icons[0].Path)
	assert.Equal(t, icondeck.ContentHash("<svg/>"), idx.Icons[0].Hash)
}

func TestIndexRoundTrip(t *testing.T) {
	t.Parallel()

	icons := testCollection()
	idx := icondeck.BuildIndex(icons, "run-1", time.Now())

	data, err := icondeck.EncodeIndex(idx)
	require.NoError(t, err)

	decoded, err := icondeck.DecodeIndex(data)
	require.NoError(t, err)

	// Name, category, and path survive the round trip; SVG markup is
	// never embedded in the manifest.
	require.Len(t, decoded.Icons, len(icons))
	for i, entry := range decoded.Icons {
		assert.Equal(t, icons[i].Name, entry.Name)
		assert.Equal(t, icons[i].Category, entry.Category)
		assert.Equal(t, icons[i].Path, entry.Path)
	}
	assert.NotContains(t, string(data), "<svg")
	assert.Equal(t, idx.Checksum, decoded.Checksum)
}

func TestDecodeIndex(t *testing.T) {
	t.Parallel()

	t.Run("malformed JSON returns EINVALID", func(t *testing.T) {
		t.Parallel()

		_, err := icondeck.DecodeIndex([]byte("{not json"))
		assert.Equal(t, icondeck.EINVALID, icondeck.ErrorCode(err))
	})

	t.Run("entry without a path returns EINVALID", func(t *testing.T) {
		t.Parallel()

		_, err := icondeck.DecodeIndex([]byte(`{"icons":[{"name":"bell","category":"grey"}]}`))
		assert.Equal(t, icondeck.EINVALID, icondeck.ErrorCode(err))
	})

	t.Run("empty manifest decodes cleanly", func(t *testing.T) {
		t.Parallel()

		idx, err := icondeck.DecodeIndex([]byte(`{"count":0,"icons":[]}`))
		require.NoError(t, err)
		assert.Empty(t, idx.Icons)
	})
}

func TestContentHash(t *testing.T) {
	t.Parallel()

	assert.Equal(t, icondeck.ContentHash("<svg/>"), icondeck.ContentHash("<svg/>"))
	assert.NotEqual(t, icondeck.ContentHash("<svg/>"), icondeck.ContentHash("<svg></svg>"))
}
