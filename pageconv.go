// Package pageconv converts exported word-processor HTML documents into
// content records with a fixed, per-content-type field layout.
//
// A document is extracted into a ParsedDocument (title, intro, sections and
// FAQ pairs), mapped onto the Catalog of its content type and written to a
// RecordStore after the catalog's FieldGroup is declared with a
// SchemaRegistry.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, slog/).
package pageconv
