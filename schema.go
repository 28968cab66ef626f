package pageconv

import "context"

// FieldGroup is the schema declaration of a content type's fields.
// It is built from a Catalog and handed to a SchemaRegistry.
type FieldGroup struct {
	Key         string      `json:"key" yaml:"key"`
	Title       string      `json:"title" yaml:"title"`
	ContentType ContentType `json:"contentType" yaml:"content_type"`
	RowCount    int         `json:"rowCount" yaml:"row_count"`
	Fields      []Field     `json:"fields" yaml:"fields"`
}

// Validate returns an error if the field group contains invalid fields.
func (g *FieldGroup) Validate() error {
	if g.Key == "" {
		return Errorf(EINVALID, "field group key required")
	}
	if !g.ContentType.Valid() {
		return Errorf(EINVALID, "field group content type %q invalid", g.ContentType)
	}
	if len(g.Fields) == 0 {
		return Errorf(EINVALID, "field group %s has no fields", g.Key)
	}
	return nil
}

// SchemaRegistry stores declared field groups.
type SchemaRegistry interface {
	// DeclareSchema registers the field group unless a group with the same
	// key already exists. Redeclaring is a no-op and reports declared=false.
	DeclareSchema(ctx context.Context, group *FieldGroup) (declared bool, err error)

	// FindFieldGroup retrieves a declared field group by key.
	// Returns ENOTFOUND if the group was never declared.
	FindFieldGroup(ctx context.Context, key string) (*FieldGroup, error)
}
