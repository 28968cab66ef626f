// Package convert orchestrates document conversion: loading, extraction,
// field mapping, schema declaration and record storage.
package convert

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/pageconv"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency processes one document at a time.
const DefaultConcurrency = 1

// Converter converts source documents into stored records.
type Converter struct {
	Loader      pageconv.Loader
	Extractor   pageconv.Extractor
	Schemas     pageconv.SchemaRegistry
	Records     pageconv.RecordStore
	Concurrency int

	// DryRun stops ConvertAll after mapping; nothing is declared or stored.
	DryRun bool
}

// Plan is the outcome of the pure stages of a conversion: everything needed
// to store a record, computed without touching the registry or store.
type Plan struct {
	Name        string
	ContentType pageconv.ContentType
	SourceHash  string
	Document    *pageconv.ParsedDocument
	Catalog     *pageconv.Catalog
	Writes      []pageconv.FieldWrite
}

// Result holds the outcome of a batch conversion. Plans and Records are
// indexed like the input names; entries of failed documents are nil.
type Result struct {
	Processed int
	Plans     []*Plan
	Records   []*pageconv.Record
	Failures  []Failure
}

// Failure records why one document could not be converted.
// RecordID is set when a partial record was left behind.
type Failure struct {
	Name     string
	RecordID string
	Err      error
}

// ProgressEvent reports progress during a batch conversion.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Name      string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting conversion progress.
type ProgressFunc func(event ProgressEvent)

// HashSource returns the hex xxHash of a source document.
func HashSource(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}

// Plan loads, extracts and maps one document.
func (c *Converter) Plan(ctx context.Context, name string, ct pageconv.ContentType) (*Plan, error) {
	adapter, err := pageconv.AdapterFor(ct)
	if err != nil {
		return nil, err
	}

	data, err := c.Loader.Load(ctx, name)
	if err != nil {
		return nil, err
	}

	doc, err := c.Extractor.Extract(data, ct)
	if err != nil {
		return nil, err
	}

	cat := adapter.Catalog(len(doc.Sections))
	writes, err := pageconv.MapFields(doc, cat)
	if err != nil {
		return nil, err
	}

	return &Plan{
		Name:        name,
		ContentType: ct,
		SourceHash:  HashSource(data),
		Document:    doc,
		Catalog:     cat,
		Writes:      writes,
	}, nil
}

// Apply declares the plan's field group, creates the record and writes every
// field in order. A failed write leaves the record with the fields written
// so far.
func (c *Converter) Apply(ctx context.Context, plan *Plan) (*pageconv.Record, error) {
	if _, err := c.Schemas.DeclareSchema(ctx, plan.Catalog.FieldGroup()); err != nil {
		return nil, fmt.Errorf("declare schema: %w", err)
	}

	record := &pageconv.Record{
		Type:       plan.ContentType,
		Title:      plan.Document.Title,
		Status:     pageconv.StatusPublish,
		SourceName: plan.Name,
		SourceHash: plan.SourceHash,
	}
	if err := c.Records.CreateRecord(ctx, record); err != nil {
		return nil, fmt.Errorf("create record: %w", err)
	}

	for _, w := range plan.Writes {
		if err := c.Records.WriteField(ctx, record.ID, w); err != nil {
			return record, fmt.Errorf("write field %s (%s): %w", w.Name, w.Key, err)
		}
	}

	return record, nil
}

// Convert runs the whole pipeline for one document.
func (c *Converter) Convert(ctx context.Context, name string, ct pageconv.ContentType) (*pageconv.Record, error) {
	plan, err := c.Plan(ctx, name, ct)
	if err != nil {
		return nil, err
	}
	return c.Apply(ctx, plan)
}

// convertResult holds the outcome of processing a single document.
type convertResult struct {
	position int
	plan     *Plan
	record   *pageconv.Record
	err      error
}

// ConvertAll converts every named document. A failing document never stops
// the batch; it is reported in Result.Failures in input order. The returned
// error is non-nil only for an invalid content type.
func (c *Converter) ConvertAll(ctx context.Context, names []string, ct pageconv.ContentType, progress ProgressFunc) (*Result, error) {
	if _, err := pageconv.AdapterFor(ct); err != nil {
		return nil, err
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	total := len(names)
	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	resultCh := make(chan convertResult, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, name := range names {
			g.Go(func() error {
				resultCh <- c.process(gctx, i, name, ct)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results in order
	results := make([]convertResult, total)
	var completed atomic.Int64
	for result := range resultCh {
		completed.Add(1)
		results[result.position] = result

		if progress == nil {
			continue
		}
		event := ProgressEvent{
			Type:      ProgressCompleted,
			Completed: int(completed.Load()),
			Total:     total,
			Name:      names[result.position],
		}
		if result.err != nil {
			event.Type = ProgressFailed
			event.Error = result.err
		}
		progress(event)
	}

	out := &Result{
		Plans:   make([]*Plan, total),
		Records: make([]*pageconv.Record, total),
	}
	for i, result := range results {
		if result.err != nil {
			f := Failure{Name: names[i], Err: result.err}
			if result.record != nil {
				f.RecordID = result.record.ID
			}
			out.Failures = append(out.Failures, f)
			continue
		}
		out.Processed++
		out.Plans[i] = result.plan
		out.Records[i] = result.record
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
		})
	}

	return out, nil
}

func (c *Converter) process(ctx context.Context, position int, name string, ct pageconv.ContentType) convertResult {
	result := convertResult{position: position}

	result.plan, result.err = c.Plan(ctx, name, ct)
	if result.err != nil || c.DryRun {
		return result
	}

	result.record, result.err = c.Apply(ctx, result.plan)
	return result
}
