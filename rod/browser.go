package rod

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/fwojciec/marsnap"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Browser implements marsnap.Browser at compile time.
var _ marsnap.Browser = (*Browser)(nil)

// Browser drives a single Chrome page. Every Load and Click moves the same
// page, so a Browser is not safe for concurrent use.
type Browser struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	page     *rod.Page
	closed   atomic.Bool

	navigationTimeout time.Duration
	waitTimeout       time.Duration
}

// Load navigates the page to url, applies wait and returns the rendered HTML.
func (b *Browser) Load(ctx context.Context, url string, wait marsnap.WaitCondition) (string, error) {
	if b.closed.Load() {
		return "", marsnap.Errorf(marsnap.EINVALID, "browser closed")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	nctx, cancel := context.WithTimeout(ctx, b.navigationTimeout)
	defer cancel()
	page := b.page.Context(nctx)

	if err := page.Navigate(url); err != nil {
		return "", unavailable(err, "navigating to %s", url)
	}
	if err := page.WaitLoad(); err != nil {
		return "", unavailable(err, "loading %s", url)
	}

	return b.settle(ctx, wait)
}

// Click activates the index-th element matching selector, applies wait and
// returns the rendered HTML. A missing or unclickable element is ENOTFOUND.
func (b *Browser) Click(ctx context.Context, selector string, index int, wait marsnap.WaitCondition) (string, error) {
	if b.closed.Load() {
		return "", marsnap.Errorf(marsnap.EINVALID, "browser closed")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	nctx, cancel := context.WithTimeout(ctx, b.navigationTimeout)
	defer cancel()
	page := b.page.Context(nctx)

	// Elements does not wait, so a missing control is reported immediately.
	elements, err := page.Elements(selector)
	if err != nil {
		return "", unavailable(err, "querying %q", selector)
	}
	if index < 0 || index >= len(elements) {
		return "", marsnap.Errorf(marsnap.ENOTFOUND, "no element %d matching %q (found %d)", index, selector, len(elements))
	}

	// rod retries a covered or disabled element until its context ends, so
	// the click gets the wait timeout rather than the navigation timeout.
	cctx, ccancel := context.WithTimeout(nctx, b.waitTimeout)
	defer ccancel()
	if err := elements[index].Context(cctx).Click(proto.InputMouseButtonLeft, 1); err != nil {
		if isNotClickable(err) || (cctx.Err() != nil && ctx.Err() == nil) {
			return "", marsnap.Errorf(marsnap.ENOTFOUND, "element %d matching %q is not clickable: %v", index, selector, err)
		}
		return "", unavailable(err, "clicking %q", selector)
	}

	return b.settle(ctx, wait)
}

// Close releases browser resources. Close is safe to call multiple times.
func (b *Browser) Close() error {
	if !b.closed.CompareAndSwap(false, true) {
		return nil
	}

	err := b.browser.Close()
	b.launcher.Kill()
	return err
}

// LauncherPID returns the process ID of the browser launcher.
// This method exists for testing purposes to verify proper cleanup.
func (b *Browser) LauncherPID() int {
	return b.launcher.PID()
}

// settle applies wait and reads the current page.
func (b *Browser) settle(ctx context.Context, wait marsnap.WaitCondition) (string, error) {
	if err := b.wait(ctx, wait); err != nil {
		return "", err
	}

	html, err := b.page.Context(ctx).HTML()
	if err != nil {
		return "", unavailable(err, "reading page")
	}
	return html, nil
}

// wait blocks until wait is satisfied or gives up. Giving up is not an
// error; only cancellation of ctx is.
func (b *Browser) wait(ctx context.Context, wait marsnap.WaitCondition) error {
	switch {
	case wait.Selector != "":
		timeout := wait.Timeout
		if timeout <= 0 {
			timeout = b.waitTimeout
		}
		wctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		_, _ = b.page.Context(wctx).Element(wait.Selector)
		return ctx.Err()

	case wait.Delay > 0:
		timer := time.NewTimer(wait.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			return nil
		}
	}
	return nil
}

// unavailable marks err as a navigation failure while keeping it
// inspectable with errors.Is.
func unavailable(err error, format string, args ...any) error {
	return fmt.Errorf("%w: %w", marsnap.Errorf(marsnap.EUNAVAILABLE, format, args...), err)
}

// isNotClickable reports whether err means the element exists in the
// document but cannot be interacted with.
func isNotClickable(err error) bool {
	var (
		notInteractable *rod.NotInteractableError
		invisible       *rod.InvisibleShapeError
		covered         *rod.CoveredError
		noPointer       *rod.NoPointerEventsError
		notFound        *rod.ObjectNotFoundError
	)
	return errors.As(err, &notInteractable) ||
		errors.As(err, &invisible) ||
		errors.As(err, &covered) ||
		errors.As(err, &noPointer) ||
		errors.As(err, &notFound)
}
