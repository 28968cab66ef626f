package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/pageconv"
	"github.com/fwojciec/pageconv/convert"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Converter *convert.Converter
	Sources   pageconv.SourceLister
	Schemas   pageconv.SchemaRegistry
	Records   pageconv.RecordStore
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log every pipeline stage to stderr"`

	Convert ConvertCmd `cmd:"" help:"Convert HTML documents into content records"`
	Schema  SchemaCmd  `cmd:"" help:"Print the field group of a content type"`
	List    ListCmd    `cmd:"" help:"List converted records"`
	Show    ShowCmd    `cmd:"" help:"Show a record and its field values"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a record and its field values"`
	Export  ExportCmd  `cmd:"" help:"Export records as YAML files"`
}

// ConvertCmd is the "convert" subcommand.
type ConvertCmd struct {
	Files       []string      `arg:"" optional:"" help:"HTML files or URLs to convert"`
	Type        string        `short:"t" default:"services" help:"Content type: services, buyers_guide or near-me"`
	From        []string      `short:"f" help:"Directory or sitemap URL to take documents from (repeatable)"`
	DryRun      bool          `short:"n" name:"dry-run" help:"Print the field writes without storing anything"`
	Concurrency int           `short:"c" default:"1" env:"PAGECONV_CONCURRENCY" help:"Documents converted at once"`
	Timeout     time.Duration `default:"10s" env:"PAGECONV_TIMEOUT" help:"Timeout for loading a URL"`
	Rate        float64       `default:"0" env:"PAGECONV_RATE" help:"Maximum URL loads per second (0 for no limit)"`
}

// SchemaCmd is the "schema" subcommand.
type SchemaCmd struct {
	Type   string `short:"t" default:"services" help:"Content type: services, buyers_guide or near-me"`
	Rows   int    `short:"r" default:"1" help:"Section count the field group is built for"`
	Key    string `short:"k" help:"Print a declared field group by key instead"`
	Format string `default:"yaml" enum:"yaml,json" help:"Output format (yaml, json)"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Type  string `short:"t" help:"Only list records of this content type"`
	Limit int    `short:"l" default:"0" help:"Maximum number of records (0 for all)"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID     string `arg:"" help:"Record ID"`
	Format string `default:"yaml" enum:"yaml,json" help:"Output format (yaml, json)"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Record ID"`
	Force bool   `help:"Confirm deletion"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Dir  string `arg:"" help:"Output directory (replaced on success)"`
	Type string `short:"t" help:"Only export records of this content type"`
}
