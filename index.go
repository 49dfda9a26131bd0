package icondeck

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
)

// IndexFileName is the manifest looked up by the index discovery strategy,
// relative to the repository root.
const IndexFileName = "icons-index.json"

// IndexEntry describes one icon in the manifest. SVG markup is not
// embedded; consumers re-fetch the file at Path.
type IndexEntry struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Path     string `json:"path"`
	Hash     string `json:"hash,omitempty"`
}

// Index is a pre-generated manifest of icon records used to skip live
// discovery.
type Index struct {
	GeneratedAt time.Time    `json:"generatedAt"`
	RunID       string       `json:"runId,omitempty"`
	Count       int          `json:"count"`
	Checksum    string       `json:"checksum,omitempty"`
	Icons       []IndexEntry `json:"icons"`
}

// Validate returns an error if any entry is missing required fields.
func (idx *Index) Validate() error {
	for _, e := range idx.Icons {
		if e.Name == "" || e.Path == "" {
			return Errorf(EINVALID, "index entry requires name and path")
		}
	}
	return nil
}

// IndexStore persists index manifests.
type IndexStore interface {
	// Write serializes and stores the manifest, replacing any previous one.
	Write(ctx context.Context, idx *Index) error

	// Read loads the stored manifest.
	// Returns ENOTFOUND if no manifest exists.
	Read(ctx context.Context) (*Index, error)
}

// BuildIndex creates a manifest from a collection. Per-entry hashes and the
// collection checksum cover the SVG markup, so a regenerated index changes
// only when the icons do.
func BuildIndex(icons Collection, runID string, now time.Time) *Index {
	digest := xxhash.New()
	entries := make([]IndexEntry, 0, len(icons))
	for _, icon := range icons {
		_, _ = digest.WriteString(icon.Path)
		_, _ = digest.WriteString(icon.SVG)
		entries = append(entries, IndexEntry{
			Name:     icon.Name,
			Category: icon.Category,
			Path:     icon.Path,
			Hash:     ContentHash(icon.SVG),
		})
	}
	return &Index{
		GeneratedAt: now.UTC(),
		RunID:       runID,
		Count:       len(entries),
		Checksum:    fmt.Sprintf("%x", digest.Sum64()),
		Icons:       entries,
	}
}

// ContentHash returns the xxhash of content as a hex string.
func ContentHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}

// EncodeIndex serializes a manifest as indented JSON.
func EncodeIndex(idx *Index) ([]byte, error) {
	data, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return nil, Errorf(EINTERNAL, "encoding index: %v", err)
	}
	return append(data, '\n'), nil
}

// DecodeIndex parses a manifest. Malformed JSON or invalid entries return
// EINVALID.
func DecodeIndex(data []byte) (*Index, error) {
	var idx Index
	if err := json.Unmarshal(data, &idx); err != nil {
		return nil, Errorf(EINVALID, "malformed index: %v", err)
	}
	if err := idx.Validate(); err != nil {
		return nil, err
	}
	return &idx, nil
}
