package mock

import (
	"context"

	"github.com/fwojciec/pageconv"
)

var _ pageconv.Loader = (*Loader)(nil)

// Loader is a mock implementation of pageconv.Loader.
type Loader struct {
	LoadFn func(ctx context.Context, name string) ([]byte, error)
}

func (l *Loader) Load(ctx context.Context, name string) ([]byte, error) {
	return l.LoadFn(ctx, name)
}
