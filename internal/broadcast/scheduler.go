package broadcast

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/courtside-live/courtside/internal/cache"
	"github.com/courtside-live/courtside/internal/model"
	"github.com/courtside-live/courtside/internal/platform"
)

// Notifier receives live-URL transitions so external consumers (overlay
// devices, signage) learn about them without polling. Implementations must
// be best-effort; the scheduler and resolver never fail on a notify.
type Notifier interface {
	LiveURLChanged(url string)
}

const (
	defaultMaxAttempts   = 5
	defaultMinRetryDelay = 5 * time.Second
	defaultMaxRetryDelay = 15 * time.Second

	// DefaultDuration is the fixed length every broadcast is scheduled for.
	DefaultDuration = 3 * time.Hour
	// DefaultLiveWindow is how close to now a start time must be for the
	// stream to count as starting immediately.
	DefaultLiveWindow = 5 * time.Minute
)

// Scheduler creates broadcasts on the platform, retrying transient upstream
// overload with jittered delays.
type Scheduler struct {
	client   platform.Client
	cache    cache.LiveURL
	notifier Notifier

	duration    time.Duration
	liveWindow  time.Duration
	maxAttempts int
	minDelay    time.Duration
	maxDelay    time.Duration

	// injected for deterministic tests
	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

// SchedulerOption adjusts policy knobs on a Scheduler.
type SchedulerOption func(*Scheduler)

// WithDuration overrides the fixed broadcast length.
func WithDuration(d time.Duration) SchedulerOption {
	return func(s *Scheduler) { s.duration = d }
}

// WithLiveWindow overrides the eager cache-write window.
func WithLiveWindow(d time.Duration) SchedulerOption {
	return func(s *Scheduler) { s.liveWindow = d }
}

// WithNotifier attaches an event publisher for eager live-URL writes.
func WithNotifier(n Notifier) SchedulerOption {
	return func(s *Scheduler) { s.notifier = n }
}

func NewScheduler(client platform.Client, liveURL cache.LiveURL, opts ...SchedulerOption) *Scheduler {
	s := &Scheduler{
		client:      client,
		cache:       liveURL,
		duration:    DefaultDuration,
		liveWindow:  DefaultLiveWindow,
		maxAttempts: defaultMaxAttempts,
		minDelay:    defaultMinRetryDelay,
		maxDelay:    defaultMaxRetryDelay,
		now:         time.Now,
		sleep:       sleepCtx,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Schedule creates a broadcast at the already-normalized start time. The end
// time is always start plus the fixed duration. Transient platform overload
// is retried up to maxAttempts times; any other failure aborts immediately.
func (s *Scheduler) Schedule(ctx context.Context, title, description string, start time.Time) (model.Broadcast, error) {
	end := start.Add(s.duration)

	var id string
	var err error
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		id, err = s.client.CreateBroadcast(ctx, title, description, start, end)
		if err == nil {
			break
		}
		if !errors.Is(err, platform.ErrUnavailable) {
			return model.Broadcast{}, fmt.Errorf("%w: %v", ErrSchedulingFailed, err)
		}
		if attempt == s.maxAttempts {
			return model.Broadcast{}, fmt.Errorf("%w: retries exhausted after %d attempts: %v",
				ErrSchedulingFailed, s.maxAttempts, err)
		}

		delay := s.minDelay + time.Duration(rand.Int63n(int64(s.maxDelay-s.minDelay)+1))
		log.Warn().
			Err(err).
			Int("attempt", attempt).
			Dur("delay", delay).
			Msg("platform unavailable, retrying broadcast create")
		if err := s.sleep(ctx, delay); err != nil {
			return model.Broadcast{}, fmt.Errorf("%w: %v", ErrSchedulingFailed, err)
		}
	}

	created := model.Broadcast{
		ID:             id,
		Title:          title,
		Description:    description,
		ScheduledStart: start,
		ScheduledEnd:   end,
		URL:            platform.EmbedURL(id),
		Status:         model.StatusUpcoming,
	}

	// if the stream is essentially starting now, publish the URL early so
	// viewers don't wait for the next resolution poll. Best effort only;
	// the resolver stays authoritative.
	if s.startsImminently(start) {
		if err := s.cache.Set(ctx, created.URL); err != nil {
			log.Error().Err(err).Str("broadcast_id", id).Msg("eager live-url cache write failed")
		} else if s.notifier != nil {
			s.notifier.LiveURLChanged(created.URL)
		}
	}

	log.Info().
		Str("broadcast_id", id).
		Time("start", start).
		Msg("broadcast scheduled")
	return created, nil
}

func (s *Scheduler) startsImminently(start time.Time) bool {
	diff := start.Sub(s.now())
	if diff < 0 {
		diff = -diff
	}
	return diff < s.liveWindow
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
