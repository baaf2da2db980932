package broadcast

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/courtside-live/courtside/internal/cache"
	"github.com/courtside-live/courtside/internal/model"
	"github.com/courtside-live/courtside/internal/platform"
)

// Resolver decides which broadcast, if any, viewers should see right now by
// reconciling the platform's active and upcoming views against the clock.
type Resolver struct {
	client   platform.Client
	cache    cache.LiveURL
	notifier Notifier

	liveWindow time.Duration
	now        func() time.Time
}

// ResolverOption adjusts policy knobs on a Resolver.
type ResolverOption func(*Resolver)

// WithResolverLiveWindow overrides the starting-soon window.
func WithResolverLiveWindow(d time.Duration) ResolverOption {
	return func(r *Resolver) { r.liveWindow = d }
}

// WithResolverNotifier attaches an event publisher for live-URL transitions.
func WithResolverNotifier(n Notifier) ResolverOption {
	return func(r *Resolver) { r.notifier = n }
}

func NewResolver(client platform.Client, liveURL cache.LiveURL, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		client:     client,
		cache:      liveURL,
		liveWindow: DefaultLiveWindow,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ResolveCurrent returns the broadcast viewers should see, or nil when there
// is none. The live-URL cache is updated as a side effect of every
// successful resolution, including being cleared when nothing qualifies.
// On upstream failure the cache is left untouched.
//
// Priority: a platform-active broadcast always wins. When none is active,
// the nearest upcoming broadcast counts as current if it starts within the
// live window; this bridges the lag between real stream start and the
// platform flipping its status to active.
func (r *Resolver) ResolveCurrent(ctx context.Context) (*model.CurrentBroadcast, error) {
	active, err := r.client.ListBroadcasts(ctx, platform.FilterActive, 1, "")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResolutionFailed, err)
	}
	if len(active) > 0 {
		return r.publish(ctx, active[0], model.CurrentStatusLive)
	}

	upcoming, err := r.client.ListBroadcasts(ctx, platform.FilterUpcoming, 1, platform.OrderByStartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResolutionFailed, err)
	}
	if len(upcoming) > 0 && r.withinLiveWindow(upcoming[0].ScheduledStart) {
		return r.publish(ctx, upcoming[0], model.CurrentStatusStartingSoon)
	}

	if err := r.cache.Clear(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResolutionFailed, err)
	}
	if r.notifier != nil {
		r.notifier.LiveURLChanged("")
	}
	return nil, nil
}

func (r *Resolver) publish(ctx context.Context, b model.Broadcast, status string) (*model.CurrentBroadcast, error) {
	if err := r.cache.Set(ctx, b.URL); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResolutionFailed, err)
	}
	if r.notifier != nil {
		r.notifier.LiveURLChanged(b.URL)
	}
	log.Debug().
		Str("broadcast_id", b.ID).
		Str("status", status).
		Msg("current broadcast resolved")
	return &model.CurrentBroadcast{
		ID:     b.ID,
		Title:  b.Title,
		URL:    b.URL,
		Status: status,
	}, nil
}

func (r *Resolver) withinLiveWindow(start time.Time) bool {
	diff := start.Sub(r.now())
	if diff < 0 {
		diff = -diff
	}
	return diff < r.liveWindow
}
