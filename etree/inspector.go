// Package etree provides SVG markup inspection using XML parsing.
package etree

import (
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/icondeck"
)

// Ensure Inspector implements icondeck.Inspector at compile time.
var _ icondeck.Inspector = (*Inspector)(nil)

// Inspector validates icon markup and extracts display metadata.
type Inspector struct{}

// NewInspector creates a new Inspector.
func NewInspector() *Inspector {
	return &Inspector{}
}

// Inspect parses SVG markup and returns its metadata. The root element
// must be svg; anything else is rejected with EINVALID so the discovery
// pipeline can drop files that are not icons (error pages, redirects
// saved as files, and the like).
func (i *Inspector) Inspect(svg string) (*icondeck.SVGInfo, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(svg); err != nil {
		return nil, icondeck.Errorf(icondeck.EINVALID, "malformed SVG: %v", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, icondeck.Errorf(icondeck.EINVALID, "empty SVG document")
	}
	if root.Tag != "svg" {
		return nil, icondeck.Errorf(icondeck.EINVALID, "root element is %q, not svg", root.Tag)
	}

	info := &icondeck.SVGInfo{
		ViewBox: root.SelectAttrValue("viewBox", ""),
		Width:   root.SelectAttrValue("width", ""),
		Height:  root.SelectAttrValue("height", ""),
	}
	if title := root.SelectElement("title"); title != nil {
		info.Title = strings.TrimSpace(title.Text())
	}

	return info, nil
}
