package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/drugstock/drugstock"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Fetcher   drugstock.Fetcher
	Extractor drugstock.Extractor
	Snapshots drugstock.SnapshotService
	Output    drugstock.RecordWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB      string `name:"db" env:"DRUGSTOCK_DB" help:"SQLite database for extraction history (disabled when empty)"`
	Output  string `short:"o" help:"Also write the JSON document to this file"`
	Verbose bool   `short:"v" help:"Log fetch and extraction details to stderr"`

	Fetch   FetchCmd   `cmd:"" default:"withargs" help:"Fetch a product page and print its JSON record (default)"`
	Parse   ParseCmd   `cmd:"" help:"Extract a product from a saved HTML file"`
	History HistoryCmd `cmd:"" help:"List stored snapshots for a product"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	URL         string        `arg:"" help:"Product page URL"`
	Timeout     time.Duration `default:"10s" help:"Request timeout"`
	Render      bool          `help:"Render the page in headless Chrome before extracting"`
	UserAgent   string        `name:"user-agent" help:"Override the User-Agent header"`
	MaxBodySize int64         `name:"max-body-size" default:"10485760" help:"Fail when the decoded page exceeds this many bytes (0 disables the limit)"`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	File      string `arg:"" help:"HTML file to extract from"`
	SourceURL string `name:"source-url" help:"URL recorded in history (defaults to a file:// URL)"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	ProductID string `arg:"" name:"product-id" help:"Product ID"`
	Limit     int    `short:"n" default:"20" help:"Maximum number of snapshots to list"`
}
