// Package periodic is a janitor which sweeps expired data on interval.
package periodic

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sparkdate/spark/internal/janitor"
	"github.com/sparkdate/spark/internal/storage"
)

var log = logrus.WithField("layer", "janitor").WithField("package", "periodic")

// Cleaner removes expired in-memory entries.
type Cleaner interface {
	Cleanup() int
}

type periodic struct {
	s        storage.Storage
	c        Cleaner
	interval time.Duration

	mu      sync.Mutex
	lastErr error

	now func() time.Time
}

// New returns janitor.Janitor which sweeps storage and c every interval.
func New(s storage.Storage, c Cleaner, interval time.Duration) janitor.Janitor {
	return &periodic{
		s:        s,
		c:        c,
		interval: interval,
		now:      time.Now,
	}
}

// Name ...
func (p *periodic) Name() string {
	return "janitor"
}

// Ping returns the error of the last sweep.
func (p *periodic) Ping(_ context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.lastErr
}

// Run sweeps until ctx is done.
func (p *periodic) Run(ctx context.Context) error {
	t := time.NewTicker(p.interval)
	defer t.Stop()

	for {
		p.setLastErr(p.sweep(ctx))

		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
		}
	}
}

func (p *periodic) setLastErr(err error) {
	if err != nil {
		log.WithError(err).Error("failed to sweep")
	}

	p.mu.Lock()
	p.lastErr = err
	p.mu.Unlock()
}

func (p *periodic) sweep(ctx context.Context) error {
	if n := p.c.Cleanup(); n > 0 {
		log.WithField("count", n).Debug("discovery sessions expired")
	}

	n, err := p.s.DeleteExpired(ctx, p.now().UTC())
	if err != nil {
		return fmt.Errorf("failed to delete expired: %w", err)
	}

	if n > 0 {
		log.WithField("count", n).Info("expired sessions and auth codes deleted")
	}

	return nil
}
