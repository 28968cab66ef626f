package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/pageconv"
	"github.com/fwojciec/pageconv/convert"
)

// planOutput is the dry-run view of one conversion.
type planOutput struct {
	Name       string                `json:"name"`
	Type       pageconv.ContentType  `json:"type"`
	GroupKey   string                `json:"groupKey"`
	SourceHash string                `json:"sourceHash"`
	Title      string                `json:"title"`
	Sections   int                   `json:"sections"`
	FAQs       int                   `json:"faqs"`
	Writes     []pageconv.FieldWrite `json:"writes"`
}

// Run executes the convert command.
func (c *ConvertCmd) Run(deps *Dependencies) error {
	ct, err := pageconv.ParseContentType(c.Type)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pageconv.ErrorMessage(err))
		return err
	}

	names := append([]string(nil), c.Files...)
	for _, location := range c.From {
		listed, err := deps.Sources.ListSources(deps.Ctx, location)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", location, pageconv.ErrorMessage(err))
			return err
		}
		names = append(names, listed...)
	}

	if len(names) == 0 {
		fmt.Fprintln(deps.Stderr, "error: no HTML files given. Pass files or use --from with a directory or sitemap URL.")
		return pageconv.Errorf(pageconv.EINVALID, "no HTML files given")
	}

	// Dry runs keep stdout for the JSON plans.
	status := deps.Stdout
	if c.DryRun {
		status = deps.Stderr
	}

	fmt.Fprintf(status, "Processing %d HTML file(s) as %s\n", len(names), ct.Label())

	result, err := deps.Converter.ConvertAll(deps.Ctx, names, ct, nil)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pageconv.ErrorMessage(err))
		return err
	}

	for _, f := range result.Failures {
		if f.RecordID != "" {
			fmt.Fprintf(deps.Stderr, "  skip %s: %s (partial record %s)\n", f.Name, pageconv.ErrorMessage(f.Err), f.RecordID)
			continue
		}
		fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", f.Name, pageconv.ErrorMessage(f.Err))
	}

	if c.DryRun {
		if err := printPlans(deps, result); err != nil {
			return err
		}
	} else {
		for _, r := range result.Records {
			if r == nil {
				continue
			}
			fmt.Fprintf(deps.Stdout, "  %s  %s  %s\n", r.ID, r.Title, r.SourceName)
		}
	}

	fmt.Fprintf(status, "Successfully processed %d HTML file(s).\n", result.Processed)

	if n := len(result.Failures); n > 0 {
		return pageconv.Errorf(pageconv.EINVALID, "%d of %d file(s) failed", n, len(names))
	}
	return nil
}

func printPlans(deps *Dependencies, result *convert.Result) error {
	out := make([]planOutput, 0, result.Processed)
	for _, p := range result.Plans {
		if p == nil {
			continue
		}
		out = append(out, planOutput{
			Name:       p.Name,
			Type:       p.ContentType,
			GroupKey:   p.Catalog.GroupKey,
			SourceHash: p.SourceHash,
			Title:      p.Document.Title,
			Sections:   len(p.Document.Sections),
			FAQs:       len(p.Document.FAQs),
			Writes:     p.Writes,
		})
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}
	return nil
}
