package mock

import (
	"context"

	"github.com/fwojciec/pageconv"
)

var _ pageconv.SchemaRegistry = (*SchemaRegistry)(nil)

// SchemaRegistry is a mock implementation of pageconv.SchemaRegistry.
type SchemaRegistry struct {
	DeclareSchemaFn  func(ctx context.Context, group *pageconv.FieldGroup) (bool, error)
	FindFieldGroupFn func(ctx context.Context, key string) (*pageconv.FieldGroup, error)
}

func (r *SchemaRegistry) DeclareSchema(ctx context.Context, group *pageconv.FieldGroup) (bool, error) {
	return r.DeclareSchemaFn(ctx, group)
}

func (r *SchemaRegistry) FindFieldGroup(ctx context.Context, key string) (*pageconv.FieldGroup, error) {
	return r.FindFieldGroupFn(ctx, key)
}
