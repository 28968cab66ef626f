package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/pageconv"
	main "github.com/fwojciec/pageconv/cmd/pageconv"
	"github.com/fwojciec/pageconv/convert"
	"github.com/fwojciec/pageconv/goquery"
	"github.com/fwojciec/pageconv/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDeps(stdout, stderr *bytes.Buffer) *main.Dependencies {
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
	}
}

func TestConvertCmd_Run(t *testing.T) {
	t.Parallel()

	pages := map[string]string{
		"https://example.com/plumbing": plumbingHTML,
		"https://example.com/roofing":  roofingHTML,
	}

	newConverter := func(writes *int) *convert.Converter {
		return &convert.Converter{
			Loader: &mock.Loader{
				LoadFn: func(_ context.Context, name string) ([]byte, error) {
					html, ok := pages[name]
					if !ok {
						return nil, pageconv.Errorf(pageconv.ENOTFOUND, "document %s not found", name)
					}
					return []byte(html), nil
				},
			},
			Extractor: goquery.NewExtractor(),
			Schemas: &mock.SchemaRegistry{
				DeclareSchemaFn: func(context.Context, *pageconv.FieldGroup) (bool, error) {
					return true, nil
				},
			},
			Records: &mock.RecordStore{
				CreateRecordFn: func(_ context.Context, r *pageconv.Record) error {
					r.ID = "rec-" + r.Title
					return nil
				},
				WriteFieldFn: func(context.Context, string, pageconv.FieldWrite) error {
					*writes++
					return nil
				},
			},
		}
	}

	t.Run("expands sitemap sources", func(t *testing.T) {
		t.Parallel()

		var writes int
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Converter = newConverter(&writes)
		deps.Sources = &mock.SourceLister{
			ListSourcesFn: func(_ context.Context, location string) ([]string, error) {
				assert.Equal(t, "https://example.com/sitemap.xml", location)
				return []string{"https://example.com/plumbing", "https://example.com/roofing"}, nil
			},
		}

		cmd := &main.ConvertCmd{Type: "services", From: []string{"https://example.com/sitemap.xml"}}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Processing 2 HTML file(s) as Service Pages")
		assert.Contains(t, stdout.String(), "rec-Plumbing")
		assert.Contains(t, stdout.String(), "rec-Roofing")
		assert.Contains(t, stdout.String(), "Successfully processed 2 HTML file(s).")
		// 5 top-level fields each, plus 2 rows and 1 row.
		assert.Equal(t, 13, writes)
		assert.Empty(t, stderr.String())
	})

	t.Run("reports failures and returns an error", func(t *testing.T) {
		t.Parallel()

		var writes int
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Converter = newConverter(&writes)

		cmd := &main.ConvertCmd{Type: "services", Files: []string{"https://example.com/gone", "https://example.com/roofing"}}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stdout.String(), "Successfully processed 1 HTML file(s).")
		assert.Contains(t, stderr.String(), "skip https://example.com/gone: document https://example.com/gone not found")
	})

	t.Run("fails when source listing fails", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Sources = &mock.SourceLister{
			ListSourcesFn: func(context.Context, string) ([]string, error) {
				return nil, pageconv.Errorf(pageconv.ENOTFOUND, "sitemap not found")
			},
		}

		cmd := &main.ConvertCmd{Type: "services", From: []string{"https://example.com/sitemap.xml"}}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, pageconv.ENOTFOUND, pageconv.ErrorCode(err))
		assert.Contains(t, stderr.String(), "sitemap not found")
		assert.Empty(t, stdout.String())
	})

	t.Run("requires at least one file", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		cmd := &main.ConvertCmd{Type: "services"}
		err := cmd.Run(newDeps(stdout, stderr))

		require.Error(t, err)
		assert.Equal(t, pageconv.EINVALID, pageconv.ErrorCode(err))
		assert.Contains(t, stderr.String(), "no HTML files given")
	})
}

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists records with ID, type, title and source", func(t *testing.T) {
		t.Parallel()

		var gotFilter pageconv.RecordFilter
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Records = &mock.RecordStore{
			FindRecordsFn: func(_ context.Context, filter pageconv.RecordFilter) ([]*pageconv.Record, error) {
				gotFilter = filter
				return []*pageconv.Record{
					{ID: "rec-1", Type: pageconv.ContentBuyersGuide, Title: "Water Heaters", SourceName: "heaters.html", CreatedAt: time.Now()},
				}, nil
			},
		}

		cmd := &main.ListCmd{Type: "buyers-guide", Limit: 10}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "rec-1  buyers_guide  Water Heaters  heaters.html\n", stdout.String())
		require.NotNil(t, gotFilter.Type)
		assert.Equal(t, pageconv.ContentBuyersGuide, *gotFilter.Type)
		assert.Equal(t, 10, gotFilter.Limit)
	})

	t.Run("shows helpful message when no records exist", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Records = &mock.RecordStore{
			FindRecordsFn: func(context.Context, pageconv.RecordFilter) ([]*pageconv.Record, error) {
				return []*pageconv.Record{}, nil
			},
		}

		err := (&main.ListCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No records found")
	})

	t.Run("returns error when FindRecords fails", func(t *testing.T) {
		t.Parallel()

		dbErr := errors.New("database connection failed")
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Records = &mock.RecordStore{
			FindRecordsFn: func(context.Context, pageconv.RecordFilter) ([]*pageconv.Record, error) {
				return nil, dbErr
			},
		}

		err := (&main.ListCmd{}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, dbErr, err)
		assert.Contains(t, stderr.String(), "error: database connection failed")
	})
}

func TestDeleteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("reports missing record", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Records = &mock.RecordStore{
			FindRecordByIDFn: func(_ context.Context, id string) (*pageconv.Record, error) {
				return nil, pageconv.Errorf(pageconv.ENOTFOUND, "record %s not found", id)
			},
		}

		err := (&main.DeleteCmd{ID: "nope", Force: true}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, pageconv.ENOTFOUND, pageconv.ErrorCode(err))
		assert.Contains(t, stderr.String(), `record "nope" not found`)
	})

	t.Run("deletes existing record", func(t *testing.T) {
		t.Parallel()

		var deleted string
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Records = &mock.RecordStore{
			FindRecordByIDFn: func(_ context.Context, id string) (*pageconv.Record, error) {
				return &pageconv.Record{ID: id, Title: "Plumbing"}, nil
			},
			DeleteRecordFn: func(_ context.Context, id string) error {
				deleted = id
				return nil
			},
		}

		err := (&main.DeleteCmd{ID: "rec-1", Force: true}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "rec-1", deleted)
		assert.Contains(t, stdout.String(), `Deleted record "Plumbing" (rec-1)`)
	})
}

func TestSchemaCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints buyers guide group as YAML", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := (&main.SchemaCmd{Type: "buyers_guide", Format: "yaml"}).Run(newDeps(stdout, stderr))

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "key: group_6807e16816080")
		assert.Contains(t, stdout.String(), "row_count: 23")
		assert.Contains(t, stdout.String(), "name: bullet_5")
	})

	t.Run("looks up a declared group by key", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Schemas = &mock.SchemaRegistry{
			FindFieldGroupFn: func(_ context.Context, key string) (*pageconv.FieldGroup, error) {
				return nil, pageconv.Errorf(pageconv.ENOTFOUND, "field group %s not found", key)
			},
		}

		err := (&main.SchemaCmd{Key: "group_x", Format: "yaml"}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error: field group group_x not found")
		assert.Empty(t, stdout.String())
	})

	t.Run("rejects negative row count", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := (&main.SchemaCmd{Type: "services", Rows: -1}).Run(newDeps(stdout, stderr))

		require.Error(t, err)
		assert.Equal(t, pageconv.EINVALID, pageconv.ErrorCode(err))
	})
}

func TestShowCmd_Run(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	deps := newDeps(stdout, stderr)
	deps.Records = &mock.RecordStore{
		FindRecordByIDFn: func(_ context.Context, id string) (*pageconv.Record, error) {
			return &pageconv.Record{ID: id, Type: pageconv.ContentService, Title: "Plumbing"}, nil
		},
		FindFieldsFn: func(context.Context, string) ([]pageconv.FieldWrite, error) {
			return []pageconv.FieldWrite{
				{Key: "field_63e531e72812b", Name: "service_name", Value: pageconv.Text("Plumbing")},
				{Key: "field_64d3d2265cb9a", Name: "icon", Value: pageconv.NoMedia},
			}, nil
		},
	}

	err := (&main.ShowCmd{ID: "rec-1", Format: "json"}).Run(deps)

	require.NoError(t, err)
	out := stdout.String()
	assert.Contains(t, out, `"id": "rec-1"`)
	assert.Contains(t, out, `"name": "service_name"`)
	assert.Contains(t, out, `"value": 0`)
}
