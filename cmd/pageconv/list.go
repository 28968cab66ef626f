package main

import (
	"fmt"

	"github.com/fwojciec/pageconv"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := pageconv.RecordFilter{Limit: c.Limit}
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

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No records found. Use 'pageconv convert' to create some.")
		return nil
	}

	for _, r := range records {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n", r.ID, r.Type, r.Title, r.SourceName)
	}

	return nil
}
