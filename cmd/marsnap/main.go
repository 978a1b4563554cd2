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
	"github.com/fwojciec/marsnap"
	"github.com/fwojciec/marsnap/fs"
	"github.com/fwojciec/marsnap/goquery"
	"github.com/fwojciec/marsnap/htmltomarkdown"
	marshttp "github.com/fwojciec/marsnap/http"
	"github.com/fwojciec/marsnap/rod"
	"github.com/fwojciec/marsnap/scrape"
	marsslog "github.com/fwojciec/marsnap/slog"
	"github.com/fwojciec/marsnap/sqlite"
	"github.com/fwojciec/marsnap/yaml"
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
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing. When Scraper is set, no browser is
	// launched.
	Snapshots marsnap.SnapshotService
	Scraper   marsnap.Scraper
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
		Ctx:       ctx,
		Stdout:    stdout,
		Stderr:    stderr,
		Converter: htmltomarkdown.NewConverter(),
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("marsnap"),
		kong.Description("Capture a snapshot of the latest Mars news, images and facts"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'marsnap --help' to see available commands")
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

	deps.Logger = newLogger(cli.Verbose, stderr)

	if cmd != "scrape" || cli.Scrape.Save {
		if err := m.openSnapshots(stderr); err != nil {
			return err
		}
		defer m.Close()
		deps.Snapshots = m.Snapshots
	}

	if cmd == "scrape" {
		if cli.Scrape.Out != "" {
			deps.Writer = fs.NewWriter(cli.Scrape.Out, deps.Converter)
		}

		deps.Scraper = m.Scraper
		if deps.Scraper == nil {
			scraper, cleanup, err := newScraper(&cli.Scrape, deps.Logger)
			if err != nil {
				fmt.Fprintf(stderr, "error: %s\n", marsnap.ErrorMessage(err))
				return err
			}
			defer cleanup()
			deps.Scraper = scraper
		}
	}

	return kongCtx.Run(deps)
}

// openSnapshots opens the database unless a SnapshotService was injected.
func (m *Main) openSnapshots(stderr io.Writer) error {
	if m.Snapshots != nil {
		return nil
	}
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set MARSNAP_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	m.Snapshots = sqlite.NewSnapshotService(m.DB)
	return nil
}

// Targets returns the selector table for a run: the built-in defaults, or
// the config file when one is given, with command-line overrides applied.
func (c *ScrapeCmd) Targets() (marsnap.Targets, error) {
	targets := marsnap.DefaultTargets()
	if c.Config != "" {
		var err error
		if targets, err = yaml.LoadTargets(c.Config); err != nil {
			return marsnap.Targets{}, err
		}
	}
	if c.Pacing != nil {
		targets.Gallery.Pacing = *c.Pacing
	}
	return targets, nil
}

// newScraper wires the browser, fetcher and extractors for one run.
// The returned cleanup releases the HTTP fetcher.
func newScraper(c *ScrapeCmd, logger *slog.Logger) (*scrape.Scraper, func(), error) {
	targets, err := c.Targets()
	if err != nil {
		return nil, nil, err
	}

	image, err := goquery.NewImageExtractor(targets.Image)
	if err != nil {
		return nil, nil, err
	}
	gallery, err := goquery.NewGalleryExtractor(targets.Gallery)
	if err != nil {
		return nil, nil, err
	}
	gallery.Pacer = scrape.NewPacer(targets.Gallery.Pacing)
	gallery.Logger = logger

	launcher := rod.NewLauncher(
		rod.WithHeadless(!c.ShowBrowser),
		rod.WithNoSandbox(c.NoSandbox),
		rod.WithBin(c.BrowserBin),
	)
	fetcher := marshttp.NewFetcher()

	scraper := &scrape.Scraper{
		Launcher: marsslog.NewLoggingLauncher(launcher, logger),
		Fetcher:  marsslog.NewLoggingFetcher(fetcher, logger),
		News:     goquery.NewNewsExtractor(targets.News),
		Image:    image,
		Facts:    goquery.NewFactsExtractor(targets.Facts),
		Gallery:  gallery,
		Targets:  targets,
		Logger:   logger,
	}
	return scraper, func() { _ = fetcher.Close() }, nil
}

// newLogger returns a text logger on stderr when verbose, otherwise a
// logger that discards everything.
func newLogger(verbose bool, stderr io.Writer) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func defaultDBPath() string {
	if path := os.Getenv("MARSNAP_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "marsnap.db"
	}
	dir := filepath.Join(home, ".marsnap")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "marsnap.db")
}
