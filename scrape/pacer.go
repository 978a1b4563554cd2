package scrape

import (
	"context"
	"time"

	"github.com/fwojciec/marsnap"
	"golang.org/x/time/rate"
)

var _ marsnap.Pacer = (*Pacer)(nil)

// Pacer enforces a minimum interval between navigations using a token
// bucket with a burst of 1. The first Wait returns immediately.
type Pacer struct {
	limiter *rate.Limiter
}

// NewPacer creates a Pacer allowing one navigation per interval.
// A zero interval never blocks.
func NewPacer(interval time.Duration) *Pacer {
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	return &Pacer{limiter: rate.NewLimiter(limit, 1)}
}

// Wait blocks until the next navigation is allowed.
// Returns an error if the context is canceled before the wait completes.
func (p *Pacer) Wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}
