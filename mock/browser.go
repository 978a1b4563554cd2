package mock

import (
	"context"

	"github.com/fwojciec/marsnap"
)

var _ marsnap.Browser = (*Browser)(nil)

// Browser is a mock implementation of marsnap.Browser.
type Browser struct {
	LoadFn  func(ctx context.Context, url string, wait marsnap.WaitCondition) (string, error)
	ClickFn func(ctx context.Context, selector string, index int, wait marsnap.WaitCondition) (string, error)
	CloseFn func() error
}

func (b *Browser) Load(ctx context.Context, url string, wait marsnap.WaitCondition) (string, error) {
	return b.LoadFn(ctx, url, wait)
}

func (b *Browser) Click(ctx context.Context, selector string, index int, wait marsnap.WaitCondition) (string, error) {
	return b.ClickFn(ctx, selector, index, wait)
}

func (b *Browser) Close() error {
	return b.CloseFn()
}

var _ marsnap.Launcher = (*Launcher)(nil)

// Launcher is a mock implementation of marsnap.Launcher.
type Launcher struct {
	LaunchFn func(ctx context.Context) (marsnap.Browser, error)
}

func (l *Launcher) Launch(ctx context.Context) (marsnap.Browser, error) {
	return l.LaunchFn(ctx)
}

var _ marsnap.Pacer = (*Pacer)(nil)

// Pacer is a mock implementation of marsnap.Pacer.
type Pacer struct {
	WaitFn func(ctx context.Context) error
}

func (p *Pacer) Wait(ctx context.Context) error {
	return p.WaitFn(ctx)
}
