// Package fs provides file-based storage for icon index manifests.
package fs

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fwojciec/icondeck"
)

// Ensure IndexStore implements icondeck.IndexStore at compile time.
var _ icondeck.IndexStore = (*IndexStore)(nil)

// IndexStore reads and writes the index manifest as a JSON file.
type IndexStore struct {
	path string
}

// NewIndexStore creates a store backed by the given file path. When path
// names a directory, the manifest is stored under its default file name
// inside that directory.
func NewIndexStore(path string) *IndexStore {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, icondeck.IndexFileName)
	}
	return &IndexStore{path: path}
}

// Path returns the file path the store reads and writes.
func (s *IndexStore) Path() string {
	return s.path
}

// Write persists the index manifest. The write goes through a temp file in
// the same directory followed by a rename, so a reader never observes a
// partially written manifest.
func (s *IndexStore) Write(ctx context.Context, idx *icondeck.Index) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := idx.Validate(); err != nil {
		return err
	}

	data, err := icondeck.EncodeIndex(idx)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), s.path)
}

// Read loads the index manifest from disk. A missing file returns ENOTFOUND;
// a file that does not parse as a valid manifest returns EINVALID.
func (s *IndexStore) Read(ctx context.Context) (*icondeck.Index, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, icondeck.Errorf(icondeck.ENOTFOUND, "Index file not found: %s", s.path)
		}
		return nil, err
	}

	return icondeck.DecodeIndex(data)
}
