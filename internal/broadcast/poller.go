package broadcast

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// Poller re-runs resolution on a fixed interval so cache state and notifier
// events stay fresh even when no viewer is hitting the HTTP surface.
type Poller struct {
	resolver *Resolver
	interval time.Duration
}

func NewPoller(resolver *Resolver, interval time.Duration) *Poller {
	return &Poller{resolver: resolver, interval: interval}
}

// Run blocks until ctx is done. Resolution failures are logged and the next
// tick tries again; the cache keeps its last good value in between.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := p.resolver.ResolveCurrent(ctx); err != nil {
				log.Warn().Err(err).Msg("scheduled resolution poll failed")
			}
		}
	}
}
