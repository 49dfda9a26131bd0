package mock

import (
	"context"

	"github.com/fwojciec/icondeck"
)

var _ icondeck.IndexStore = (*IndexStore)(nil)

// IndexStore is a mock implementation of icondeck.IndexStore.
type IndexStore struct {
	WriteFn func(ctx context.Context, idx *icondeck.Index) error
	ReadFn  func(ctx context.Context) (*icondeck.Index, error)
}

func (s *IndexStore) Write(ctx context.Context, idx *icondeck.Index) error {
	return s.WriteFn(ctx, idx)
}

func (s *IndexStore) Read(ctx context.Context) (*icondeck.Index, error) {
	return s.ReadFn(ctx)
}
