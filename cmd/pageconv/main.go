package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pageconv"
	"github.com/fwojciec/pageconv/convert"
	"github.com/fwojciec/pageconv/fs"
	"github.com/fwojciec/pageconv/goquery"
	pchttp "github.com/fwojciec/pageconv/http"
	pcslog "github.com/fwojciec/pageconv/slog"
	"github.com/fwojciec/pageconv/sqlite"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()

	// A missing .env is fine; variables may come from the environment.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	Schemas pageconv.SchemaRegistry
	Records pageconv.RecordStore
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pageconv"),
		kong.Description("Convert exported HTML documents into content records."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pageconv --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	command := strings.Fields(kongCtx.Command())[0]

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Printing a catalog field group or a dry run needs no storage.
	needsDB := true
	switch command {
	case "schema":
		needsDB = cli.Schema.Key != ""
	case "convert":
		needsDB = !cli.Convert.DryRun
	}
	if needsDB {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set PAGECONV_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		m.Schemas = sqlite.NewSchemaRegistry(m.DB)
		m.Records = sqlite.NewRecordStore(m.DB)
		deps.Schemas = pcslog.NewLoggingSchemaRegistry(m.Schemas, deps.Logger)
		deps.Records = pcslog.NewLoggingRecordStore(m.Records, deps.Logger)
	}

	if command == "convert" {
		c := cli.Convert
		web := pchttp.NewLoader(
			pchttp.WithTimeout(c.Timeout),
			pchttp.WithRateLimit(c.Rate),
		)
		loader := NewSourceLoader(fs.NewLoader(), web)

		deps.Sources = NewSourceLister(fs.NewDirLister(), pchttp.NewSitemapLister(nil))
		deps.Converter = &convert.Converter{
			Loader:      pcslog.NewLoggingLoader(loader, deps.Logger),
			Extractor:   pcslog.NewLoggingExtractor(goquery.NewExtractor(), deps.Logger),
			Schemas:     deps.Schemas,
			Records:     deps.Records,
			Concurrency: c.Concurrency,
			DryRun:      c.DryRun,
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("PAGECONV_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "pageconv.db"
	}
	dir := filepath.Join(home, ".pageconv")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "pageconv.db")
}
