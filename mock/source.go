package mock

import (
	"context"

	"github.com/fwojciec/icondeck"
)

var _ icondeck.Source = (*Source)(nil)

// Source is a mock implementation of icondeck.Source.
type Source struct {
	NameFn string
	ListFn func(ctx context.Context, repo icondeck.Repo) ([]icondeck.IconRef, error)
}

func (s *Source) Name() string {
	if s.NameFn == "" {
		return "mock"
	}
	return s.NameFn
}

func (s *Source) List(ctx context.Context, repo icondeck.Repo) ([]icondeck.IconRef, error) {
	return s.ListFn(ctx, repo)
}
