package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/drugstock/drugstock"
	"github.com/drugstock/drugstock/fs"
	"github.com/drugstock/drugstock/goquery"
	dshttp "github.com/drugstock/drugstock/http"
	"github.com/drugstock/drugstock/rod"
	dsslog "github.com/drugstock/drugstock/slog"
	"github.com/drugstock/drugstock/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database, opened when --db is set.
	DB *sqlite.DB

	// Fetcher used by the fetch command. Closed by Close.
	Fetcher drugstock.Fetcher
}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	var firstErr error
	if m.Fetcher != nil {
		firstErr = m.Fetcher.Close()
	}
	if m.DB != nil {
		if err := m.DB.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("drugstock"),
		kong.Description("Extract product, price and drugstore stock from a pharmacy product page."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Without arguments the default fetch command still owes stdout a
	// record, so usage goes to stderr.
	if len(args) == 0 {
		parser.Stdout = stderr
		_, _ = parser.Parse([]string{"--help"})
		return failRecord(stdout, "fetch", fmt.Errorf("no URL specified. Run 'drugstock --help' to see usage"))
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Extractor = dsslog.NewLoggingExtractor(goquery.NewExtractor(), deps.Logger)

	defer m.Close()

	if cli.DB != "" {
		m.DB = sqlite.NewDB(cli.DB)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintln(stderr, "Hint: Set DRUGSTOCK_DB or --db to a writable path")
			return failRecord(stdout, cmd, fmt.Errorf("failed to open database at %q: %w", cli.DB, err))
		}
		deps.Snapshots = sqlite.NewSnapshotService(m.DB)
	}

	if cli.Output != "" {
		deps.Output = fs.NewWriter(cli.Output)
	}

	if cmd == "fetch" {
		fetcher, err := m.newFetcher(&cli.Fetch)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --render")
			return failRecord(stdout, cmd, fmt.Errorf("failed to start browser: %w", err))
		}
		m.Fetcher = fetcher
		deps.Fetcher = dsslog.NewLoggingFetcher(fetcher, deps.Logger)
	}

	return kongCtx.Run(deps)
}

// newFetcher returns the fetcher selected by the fetch command flags, unless
// one was set on Main beforehand.
func (m *Main) newFetcher(c *FetchCmd) (drugstock.Fetcher, error) {
	if m.Fetcher != nil {
		return m.Fetcher, nil
	}

	if c.Render {
		opts := []rod.Option{rod.WithFetchTimeout(c.Timeout)}
		if c.UserAgent != "" {
			opts = append(opts, rod.WithUserAgent(c.UserAgent))
		}
		return rod.NewFetcher(opts...)
	}

	return dshttp.NewFetcher(dshttp.Config{
		UserAgent:   c.UserAgent,
		Timeout:     c.Timeout,
		MaxBodySize: c.MaxBodySize,
	}), nil
}

// failRecord prints err as an error record when cmd is one of the commands
// that always emit exactly one JSON document, then returns err.
func failRecord(stdout io.Writer, cmd string, err error) error {
	if cmd == "fetch" || cmd == "parse" {
		_ = drugstock.WriteRecord(stdout, drugstock.ErrorRecord(err))
	}
	return err
}
