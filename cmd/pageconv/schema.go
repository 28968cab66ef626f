package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/pageconv"
	"gopkg.in/yaml.v3"
)

// Run executes the schema command.
func (c *SchemaCmd) Run(deps *Dependencies) error {
	group, err := c.fieldGroup(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pageconv.ErrorMessage(err))
		return err
	}

	var data []byte
	switch c.Format {
	case "json":
		data, err = json.MarshalIndent(group, "", "  ")
		data = append(data, '\n')
	default:
		data, err = yaml.Marshal(group)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	_, err = deps.Stdout.Write(data)
	return err
}

// fieldGroup returns the declared group named by --key, or the catalog group
// of --type built for --rows sections.
func (c *SchemaCmd) fieldGroup(deps *Dependencies) (*pageconv.FieldGroup, error) {
	if c.Key != "" {
		return deps.Schemas.FindFieldGroup(deps.Ctx, c.Key)
	}

	ct, err := pageconv.ParseContentType(c.Type)
	if err != nil {
		return nil, err
	}
	if c.Rows < 0 {
		return nil, pageconv.Errorf(pageconv.EINVALID, "row count must not be negative")
	}
	cat, err := pageconv.CatalogFor(ct, c.Rows)
	if err != nil {
		return nil, err
	}
	return cat.FieldGroup(), nil
}
