package icondeck

// SVGInfo holds display metadata extracted from icon markup.
type SVGInfo struct {
	Title   string `json:"title,omitempty"`
	ViewBox string `json:"viewBox,omitempty"`
	Width   string `json:"width,omitempty"`
	Height  string `json:"height,omitempty"`
}

// Inspector validates SVG markup and extracts display metadata.
// The discovery pipeline uses it to drop files that are not well-formed
// SVG documents.
type Inspector interface {
	// Inspect parses markup and returns its metadata.
	// Returns EINVALID if the markup is not a well-formed SVG document.
	Inspect(svg string) (*SVGInfo, error)
}
