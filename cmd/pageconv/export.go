package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/pageconv"
	"github.com/fwojciec/pageconv/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	var filter pageconv.RecordFilter
	if c.Type != "" {
		ct, err := pageconv.ParseContentType(c.Type)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pageconv.ErrorMessage(err))
			return err
		}
		filter.Type = &ct
	}

	records, err := deps.Records.FindRecords(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pageconv.ErrorMessage(err))
		return err
	}

	dir := filepath.Clean(c.Dir)
	exporter := fs.NewExporter(filepath.Dir(dir), filepath.Base(dir))
	for _, r := range records {
		fields, err := deps.Records.FindFields(deps.Ctx, r.ID)
		if err == nil {
			err = exporter.Save(deps.Ctx, r, fields)
		}
		if err != nil {
			_ = exporter.Abort()
			fmt.Fprintf(deps.Stderr, "error: record %s: %s\n", r.ID, pageconv.ErrorMessage(err))
			return err
		}
	}

	if err := exporter.Commit(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d record(s) to %s\n", len(records), dir)
	return nil
}
