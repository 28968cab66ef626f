package mock

import (
	"context"

	"github.com/fwojciec/pageconv"
)

var _ pageconv.SourceLister = (*SourceLister)(nil)

// SourceLister is a mock implementation of pageconv.SourceLister.
type SourceLister struct {
	ListSourcesFn func(ctx context.Context, location string) ([]string, error)
}

func (s *SourceLister) ListSources(ctx context.Context, location string) ([]string, error) {
	return s.ListSourcesFn(ctx, location)
}
