package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/pageconv"
	"github.com/fwojciec/pageconv/fs"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	record, err := deps.Records.FindRecordByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pageconv.ErrorMessage(err))
		return err
	}

	fields, err := deps.Records.FindFields(deps.Ctx, record.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pageconv.ErrorMessage(err))
		return err
	}

	var data []byte
	switch c.Format {
	case "json":
		data, err = json.MarshalIndent(struct {
			*pageconv.Record
			Fields []pageconv.FieldWrite `json:"fields"`
		}{record, fields}, "", "  ")
		data = append(data, '\n')
	default:
		data, err = fs.FormatRecord(record, fields)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	_, err = deps.Stdout.Write(data)
	return err
}
