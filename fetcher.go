package marsnap

import (
	"context"
	"time"
)

// WaitCondition describes what Browser waits for after a navigation or
// interaction before reading the page. The zero value does not wait.
type WaitCondition struct {
	// Selector, when set, waits up to Timeout for a matching element.
	Selector string        `yaml:"selector"`
	Timeout  time.Duration `yaml:"timeout"`

	// Delay, when set and Selector is empty, waits a fixed duration.
	Delay time.Duration `yaml:"delay"`
}

// WaitFor returns a condition waiting up to timeout for selector.
func WaitFor(selector string, timeout time.Duration) WaitCondition {
	return WaitCondition{Selector: selector, Timeout: timeout}
}

// WaitDelay returns a condition that waits a fixed duration.
func WaitDelay(d time.Duration) WaitCondition {
	return WaitCondition{Delay: d}
}

// Browser drives a single browser page. Every call transitions the same
// page, so a Browser must not be used from more than one goroutine.
type Browser interface {
	// Load navigates to url, applies wait and returns the rendered HTML.
	// An unsatisfied wait is not an error: the markup available when the
	// wait gives up is returned. Navigation failures return EUNAVAILABLE.
	Load(ctx context.Context, url string, wait WaitCondition) (html string, err error)

	// Click activates the index-th element matching selector on the
	// current page, applies wait and returns the rendered HTML.
	// Returns ENOTFOUND if there is no such element.
	Click(ctx context.Context, selector string, index int, wait WaitCondition) (html string, err error)

	// Close releases browser resources. Close is safe to call multiple times.
	Close() error
}

// Launcher acquires a Browser. Failures return EUNAVAILABLE.
type Launcher interface {
	Launch(ctx context.Context) (Browser, error)
}

// Fetcher retrieves a page without browser state, for targets that do not
// need JavaScript rendering.
type Fetcher interface {
	// Fetch retrieves the HTML of url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the Fetcher.
	Close() error
}

// Pacer spaces out successive navigations to the same site.
type Pacer interface {
	// Wait blocks until the next navigation is allowed.
	// Returns an error if the context is canceled first.
	Wait(ctx context.Context) error
}
