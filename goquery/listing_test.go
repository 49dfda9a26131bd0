package goquery_test

import (
	"testing"

	"github.com/fwojciec/icondeck"
	"github.com/fwojciec/icondeck/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListingParser_ExtractSVGLinks(t *testing.T) {
	t.Parallel()

	t.Run("extracts svg anchors in document order", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><pre>
			<a href="../">Parent Directory</a>
			<a href="bell.svg">bell.svg</a>
			<a href="arrow-up.svg">arrow-up.svg</a>
			<a href="README.md">README.md</a>
		</pre></body></html>`

		parser := goquery.NewListingParser()
		links, err := parser.ExtractSVGLinks(html, "https://icons.example.com/grey/")

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://icons.example.com/grey/bell.svg",
			"https://icons.example.com/grey/arrow-up.svg",
		}, links)
	})

	t.Run("matches the extension case-insensitively", func(t *testing.T) {
		t.Parallel()

		html := `<a href="Bell.SVG">Bell.SVG</a>`

		parser := goquery.NewListingParser()
		links, err := parser.ExtractSVGLinks(html, "https://icons.example.com/grey/")

		require.NoError(t, err)
		assert.Equal(t, []string{"https://icons.example.com/grey/Bell.SVG"}, links)
	})

	t.Run("deduplicates repeated hrefs", func(t *testing.T) {
		t.Parallel()

		// Apache listings link each file from both the icon and the name column.
		html := `
			<a href="bell.svg"><img src="/icons/image2.gif"></a>
			<a href="bell.svg">bell.svg</a>`

		parser := goquery.NewListingParser()
		links, err := parser.ExtractSVGLinks(html, "https://icons.example.com/grey/")

		require.NoError(t, err)
		assert.Len(t, links, 1)
	})

	t.Run("ignores links leaving the listing host", func(t *testing.T) {
		t.Parallel()

		html := `
			<a href="https://cdn.example.org/bell.svg">bell.svg</a>
			<a href="local.svg">local.svg</a>`

		parser := goquery.NewListingParser()
		links, err := parser.ExtractSVGLinks(html, "https://icons.example.com/grey/")

		require.NoError(t, err)
		assert.Equal(t, []string{"https://icons.example.com/grey/local.svg"}, links)
	})

	t.Run("resolves absolute paths against the host", func(t *testing.T) {
		t.Parallel()

		html := `<a href="/grey/bell.svg">bell.svg</a>`

		parser := goquery.NewListingParser()
		links, err := parser.ExtractSVGLinks(html, "https://icons.example.com/grey/")

		require.NoError(t, err)
		assert.Equal(t, []string{"https://icons.example.com/grey/bell.svg"}, links)
	})

	t.Run("no anchors yields no links", func(t *testing.T) {
		t.Parallel()

		parser := goquery.NewListingParser()
		links, err := parser.ExtractSVGLinks("<html><body>empty</body></html>", "https://icons.example.com/")

		require.NoError(t, err)
		assert.Empty(t, links)
	})

	t.Run("invalid base URL returns EINVALID", func(t *testing.T) {
		t.Parallel()

		parser := goquery.NewListingParser()
		_, err := parser.ExtractSVGLinks("<a href=\"bell.svg\">x</a>", "://not-a-url")

		assert.Equal(t, icondeck.EINVALID, icondeck.ErrorCode(err))
	})
}
