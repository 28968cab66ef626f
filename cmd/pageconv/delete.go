package main

import (
	"fmt"

	"github.com/fwojciec/pageconv"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return pageconv.Errorf(pageconv.EINVALID, "use --force to confirm deletion")
	}

	record, err := deps.Records.FindRecordByID(deps.Ctx, c.ID)
	if pageconv.ErrorCode(err) == pageconv.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: record %q not found. Use 'pageconv list' to see available records.\n", c.ID)
		return err
	} else if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pageconv.ErrorMessage(err))
		return err
	}

	if err := deps.Records.DeleteRecord(deps.Ctx, record.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pageconv.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted record %q (%s)\n", record.Title, record.ID)
	return nil
}
