package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/fwojciec/pageconv"
	"gopkg.in/yaml.v3"
)

// Exporter writes records and their field values as YAML files with atomic
// update semantics. Files are saved to a temporary directory, then moved
// into place on Commit. A temporary directory left by an earlier run is
// cleared before the first Save.
type Exporter struct {
	baseDir string
	name    string
	started bool
}

// NewExporter creates a new Exporter.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewExporter(baseDir, name string) *Exporter {
	return &Exporter{
		baseDir: baseDir,
		name:    name,
	}
}

func (e *Exporter) tempDir() string {
	return filepath.Join(e.baseDir, e.name+".tmp")
}

func (e *Exporter) finalDir() string {
	return filepath.Join(e.baseDir, e.name)
}

// Save writes one record to <type>/<slug>.yaml in the temporary directory.
func (e *Exporter) Save(ctx context.Context, record *pageconv.Record, fields []pageconv.FieldWrite) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := FormatRecord(record, fields)
	if err != nil {
		return err
	}

	if err := e.start(); err != nil {
		return err
	}

	fullPath := filepath.Join(e.tempDir(), RecordPath(record))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(fullPath, data, 0644)
}

// start empties the temporary directory once per export.
func (e *Exporter) start() error {
	if e.started {
		return nil
	}
	if err := os.RemoveAll(e.tempDir()); err != nil {
		return err
	}
	if err := os.MkdirAll(e.tempDir(), 0755); err != nil {
		return err
	}
	e.started = true
	return nil
}

// Commit replaces the output directory with the saved files. Committing
// without any Save leaves an empty output directory.
func (e *Exporter) Commit() error {
	if err := e.start(); err != nil {
		return err
	}
	e.started = false

	// Remove existing final directory if present
	if err := os.RemoveAll(e.finalDir()); err != nil {
		return err
	}

	// Atomically rename temp to final
	return os.Rename(e.tempDir(), e.finalDir())
}

// Abort discards the saved files.
func (e *Exporter) Abort() error {
	e.started = false
	return os.RemoveAll(e.tempDir())
}

// RecordPath returns the relative export path of a record:
// <type>/<title-slug>-<id prefix>.yaml.
func RecordPath(record *pageconv.Record) string {
	id := record.ID
	if len(id) > 8 {
		id = id[:8]
	}
	slug := slugify(record.Title)
	if slug == "" {
		slug = "untitled"
	}
	return filepath.Join(string(record.Type), slug+"-"+id+".yaml")
}

func slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// FormatRecord encodes a record and its field values as YAML. Field and
// sub-field order is preserved.
func FormatRecord(record *pageconv.Record, fields []pageconv.FieldWrite) ([]byte, error) {
	fieldSeq := &yaml.Node{Kind: yaml.SequenceNode}
	for _, w := range fields {
		value, err := valueNode(w.Value)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", w.Key, err)
		}
		fieldSeq.Content = append(fieldSeq.Content, mapping(
			"key", scalar(w.Key),
			"name", scalar(w.Name),
			"value", value,
		))
	}

	doc := mapping(
		"id", scalar(record.ID),
		"type", scalar(string(record.Type)),
		"title", scalar(record.Title),
		"status", scalar(record.Status),
		"source", scalar(record.SourceName),
		"source_hash", scalar(record.SourceHash),
		"created", scalar(record.CreatedAt.UTC().Format(time.RFC3339)),
		"fields", fieldSeq,
	)

	return yaml.Marshal(doc)
}

func valueNode(v pageconv.Value) (*yaml.Node, error) {
	switch v := v.(type) {
	case pageconv.Text:
		return scalar(string(v)), nil
	case pageconv.Media:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(int(v))}, nil
	case pageconv.Group:
		n := &yaml.Node{Kind: yaml.MappingNode}
		for _, sv := range v {
			child, err := valueNode(sv.Value)
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, scalar(sv.Name), child)
		}
		return n, nil
	}
	return nil, fmt.Errorf("unsupported value type %T", v)
}

func scalar(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

// mapping builds a mapping node from alternating keys and value nodes.
func mapping(pairs ...any) *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode}
	for i := 0; i+1 < len(pairs); i += 2 {
		n.Content = append(n.Content, scalar(pairs[i].(string)), pairs[i+1].(*yaml.Node))
	}
	return n
}
