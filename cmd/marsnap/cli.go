package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/marsnap"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Scraper   marsnap.Scraper
	Snapshots marsnap.SnapshotService
	Writer    marsnap.SnapshotWriter
	Converter marsnap.Converter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log every page load and field outcome to stderr"`

	Scrape ScrapeCmd `cmd:"" help:"Visit every target and print a snapshot"`
	List   ListCmd   `cmd:"" help:"List saved snapshots, newest first"`
	Show   ShowCmd   `cmd:"" help:"Print a saved snapshot"`
	Delete DeleteCmd `cmd:"" help:"Delete a saved snapshot"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	Config      string         `short:"c" type:"path" help:"YAML file overriding the built-in selector table"`
	Timeout     time.Duration  `short:"t" default:"2m" help:"Deadline for the whole run"`
	Pacing      *time.Duration `help:"Minimum interval between gallery sub-page visits, 0 disables (overrides config)"`
	Save        bool           `short:"s" help:"Store the snapshot in the database"`
	Out         string         `short:"o" type:"path" help:"Export snapshot.json, snapshot.md and facts.html under this directory"`
	Format      string         `short:"f" enum:"json,markdown,table" default:"json" help:"Output format (json, markdown, table)"`
	FactsHTML   bool           `name:"facts-html" help:"Print only the facts table as an HTML fragment"`
	ShowBrowser bool           `help:"Run Chrome with a visible window"`
	BrowserBin  string         `type:"path" help:"Chrome or Chromium binary to use"`
	NoSandbox   bool           `help:"Disable the Chrome sandbox (containers running as root)"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Limit int `short:"n" default:"20" help:"Maximum number of snapshots to list"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID     string `arg:"" help:"Snapshot ID, or 'latest'"`
	Format string `short:"f" enum:"json,markdown,table" default:"table" help:"Output format (json, markdown, table)"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Snapshot ID"`
	Force bool   `help:"Confirm deletion"`
}
