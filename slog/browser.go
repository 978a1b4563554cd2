package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/marsnap"
)

// Ensure LoggingBrowser implements marsnap.Browser.
var _ marsnap.Browser = (*LoggingBrowser)(nil)

// LoggingBrowser wraps a Browser with logging.
type LoggingBrowser struct {
	next   marsnap.Browser
	logger *slog.Logger
}

// NewLoggingBrowser creates a new LoggingBrowser.
func NewLoggingBrowser(next marsnap.Browser, logger *slog.Logger) *LoggingBrowser {
	return &LoggingBrowser{next: next, logger: logger}
}

// Load logs the navigation and delegates to the wrapped browser.
func (b *LoggingBrowser) Load(ctx context.Context, url string, wait marsnap.WaitCondition) (html string, err error) {
	defer func(begin time.Time) {
		b.logger.Info("load",
			"url", url,
			"wait", waitAttr(wait),
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return b.next.Load(ctx, url, wait)
}

// Click logs the interaction and delegates to the wrapped browser.
func (b *LoggingBrowser) Click(ctx context.Context, selector string, index int, wait marsnap.WaitCondition) (html string, err error) {
	defer func(begin time.Time) {
		b.logger.Info("click",
			"selector", selector,
			"index", index,
			"wait", waitAttr(wait),
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return b.next.Click(ctx, selector, index, wait)
}

// Close logs and delegates to the wrapped browser.
func (b *LoggingBrowser) Close() (err error) {
	defer func() {
		b.logger.Debug("close browser", "err", err)
	}()
	return b.next.Close()
}

// Ensure LoggingLauncher implements marsnap.Launcher.
var _ marsnap.Launcher = (*LoggingLauncher)(nil)

// LoggingLauncher wraps a Launcher so that launched browsers log too.
type LoggingLauncher struct {
	next   marsnap.Launcher
	logger *slog.Logger
}

// NewLoggingLauncher creates a new LoggingLauncher.
func NewLoggingLauncher(next marsnap.Launcher, logger *slog.Logger) *LoggingLauncher {
	return &LoggingLauncher{next: next, logger: logger}
}

// Launch logs the launch and wraps the browser in a LoggingBrowser.
func (l *LoggingLauncher) Launch(ctx context.Context) (marsnap.Browser, error) {
	begin := time.Now()
	browser, err := l.next.Launch(ctx)
	l.logger.Info("launch browser",
		"duration", time.Since(begin),
		"err", err,
	)
	if err != nil {
		return nil, err
	}
	return NewLoggingBrowser(browser, l.logger), nil
}

func waitAttr(wait marsnap.WaitCondition) string {
	switch {
	case wait.Selector != "":
		return wait.Selector + " " + wait.Timeout.String()
	case wait.Delay > 0:
		return "delay " + wait.Delay.String()
	}
	return "none"
}
