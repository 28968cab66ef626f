package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fwojciec/pageconv"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Compile-time interface verification.
var _ pageconv.SchemaRegistry = (*SchemaRegistry)(nil)

// DefaultSchemaCacheSize is the number of declared group keys remembered in
// memory before the registry falls back to the database.
const DefaultSchemaCacheSize = 256

// SchemaRegistry implements pageconv.SchemaRegistry using SQLite.
// Keys known to be declared are cached so repeated declarations during a
// batch skip the database.
type SchemaRegistry struct {
	db       *DB
	declared *lru.Cache[string, struct{}]
}

// NewSchemaRegistry creates a new SchemaRegistry.
func NewSchemaRegistry(db *DB) *SchemaRegistry {
	// lru.New only fails for a non-positive size.
	cache, _ := lru.New[string, struct{}](DefaultSchemaCacheSize)
	return &SchemaRegistry{db: db, declared: cache}
}

// DeclareSchema stores the field group unless its key is already declared.
// The first declaration of a key wins; later ones are no-ops.
func (r *SchemaRegistry) DeclareSchema(ctx context.Context, group *pageconv.FieldGroup) (bool, error) {
	if err := group.Validate(); err != nil {
		return false, err
	}
	if r.declared.Contains(group.Key) {
		return false, nil
	}

	definition, err := json.Marshal(group)
	if err != nil {
		return false, fmt.Errorf("failed to encode field group %s: %w", group.Key, err)
	}

	result, err := r.db.ExecContext(ctx, `
		INSERT INTO field_groups (key, title, content_type, row_count, definition, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (key) DO NOTHING
	`, group.Key, group.Title, string(group.ContentType), group.RowCount, string(definition),
		time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return false, err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	r.declared.Add(group.Key, struct{}{})

	return n > 0, nil
}

// FindFieldGroup retrieves a declared field group by key.
func (r *SchemaRegistry) FindFieldGroup(ctx context.Context, key string) (*pageconv.FieldGroup, error) {
	var definition string
	err := r.db.QueryRowContext(ctx, "SELECT definition FROM field_groups WHERE key = ?", key).Scan(&definition)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pageconv.Errorf(pageconv.ENOTFOUND, "field group %s not found", key)
	}
	if err != nil {
		return nil, err
	}

	var group pageconv.FieldGroup
	if err := json.Unmarshal([]byte(definition), &group); err != nil {
		return nil, fmt.Errorf("failed to decode field group %s: %w", key, err)
	}
	return &group, nil
}
