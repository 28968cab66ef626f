package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pageconv"
)

// Ensure LoggingSchemaRegistry implements pageconv.SchemaRegistry.
var _ pageconv.SchemaRegistry = (*LoggingSchemaRegistry)(nil)

// LoggingSchemaRegistry wraps a SchemaRegistry with logging.
type LoggingSchemaRegistry struct {
	next   pageconv.SchemaRegistry
	logger *slog.Logger
}

// NewLoggingSchemaRegistry creates a new LoggingSchemaRegistry.
func NewLoggingSchemaRegistry(next pageconv.SchemaRegistry, logger *slog.Logger) *LoggingSchemaRegistry {
	return &LoggingSchemaRegistry{next: next, logger: logger}
}

// DeclareSchema delegates to the wrapped registry and logs whether the group
// was newly declared.
func (r *LoggingSchemaRegistry) DeclareSchema(ctx context.Context, group *pageconv.FieldGroup) (declared bool, err error) {
	defer func(begin time.Time) {
		r.logger.Info("schema declared",
			"key", group.Key,
			"type", string(group.ContentType),
			"rows", group.RowCount,
			"declared", declared,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.DeclareSchema(ctx, group)
}

// FindFieldGroup delegates to the wrapped registry.
func (r *LoggingSchemaRegistry) FindFieldGroup(ctx context.Context, key string) (*pageconv.FieldGroup, error) {
	return r.next.FindFieldGroup(ctx, key)
}
