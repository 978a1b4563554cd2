// Package rod implements marsnap.Browser with Chrome driven through go-rod.
package rod

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/marsnap"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultNavigationTimeout bounds a single navigation or click.
const DefaultNavigationTimeout = 30 * time.Second

// DefaultWaitTimeout bounds an element wait that sets no timeout of its own.
const DefaultWaitTimeout = 5 * time.Second

// Ensure Launcher implements marsnap.Launcher at compile time.
var _ marsnap.Launcher = (*Launcher)(nil)

// Launcher starts Chrome and opens the page a Browser drives.
type Launcher struct {
	headless          bool
	noSandbox         bool
	bin               string
	navigationTimeout time.Duration
	waitTimeout       time.Duration
}

// Option configures a Launcher.
type Option func(*Launcher)

// WithHeadless sets whether Chrome runs without a window. Defaults to true.
func WithHeadless(enable bool) Option {
	return func(l *Launcher) {
		l.headless = enable
	}
}

// WithNoSandbox disables the Chrome sandbox, needed when running as root
// inside containers.
func WithNoSandbox(enable bool) Option {
	return func(l *Launcher) {
		l.noSandbox = enable
	}
}

// WithBin sets the Chrome binary. By default rod finds or downloads one.
func WithBin(path string) Option {
	return func(l *Launcher) {
		l.bin = path
	}
}

// WithNavigationTimeout sets the timeout of a single navigation or click.
// Defaults to DefaultNavigationTimeout (30s) if not specified.
func WithNavigationTimeout(d time.Duration) Option {
	return func(l *Launcher) {
		l.navigationTimeout = d
	}
}

// WithWaitTimeout sets the timeout used by element waits without one.
// Defaults to DefaultWaitTimeout (5s) if not specified.
func WithWaitTimeout(d time.Duration) Option {
	return func(l *Launcher) {
		l.waitTimeout = d
	}
}

// NewLauncher creates a new Launcher.
func NewLauncher(opts ...Option) *Launcher {
	l := &Launcher{
		headless:          true,
		navigationTimeout: DefaultNavigationTimeout,
		waitTimeout:       DefaultWaitTimeout,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Launch starts a browser with stability flags and opens a blank page.
// Returns EUNAVAILABLE if Chrome cannot be found, started or attached to.
// Close must be called on the returned Browser.
func (l *Launcher) Launch(ctx context.Context) (marsnap.Browser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lnchr := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		NoSandbox(l.noSandbox).
		Headless(l.headless)
	if l.bin != "" {
		lnchr = lnchr.Bin(l.bin)
	}

	u, err := lnchr.Launch()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", marsnap.Errorf(marsnap.EUNAVAILABLE, "launching browser"), err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		lnchr.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("%w: %w", marsnap.Errorf(marsnap.EUNAVAILABLE, "connecting to browser"), err)
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		_ = browser.Close()
		lnchr.Kill()
		return nil, fmt.Errorf("%w: %w", marsnap.Errorf(marsnap.EUNAVAILABLE, "opening page"), err)
	}

	return &Browser{
		browser:           browser,
		launcher:          lnchr,
		page:              page,
		navigationTimeout: l.navigationTimeout,
		waitTimeout:       l.waitTimeout,
	}, nil
}
