package broadcast

import (
	"context"
	"fmt"
	"time"

	"github.com/courtside-live/courtside/internal/model"
	"github.com/courtside-live/courtside/internal/platform"
)

const listLimit = 50

// Summary is the display projection of a broadcast, with the scheduled start
// split into calendar date and clock time for the admin UI.
type Summary struct {
	ID          string
	Title       string
	Description string
	URL         string
	Status      model.LifecycleStatus
	Date        string // 2006-01-02
	Time        string // 15:04
}

// Service is the pass-through CRUD facade over the platform client: list,
// update, delete. Creation goes through the Scheduler.
type Service struct {
	client   platform.Client
	duration time.Duration
}

// ServiceOption adjusts policy knobs on a Service.
type ServiceOption func(*Service)

// WithServiceDuration overrides the fixed broadcast length used on update.
func WithServiceDuration(d time.Duration) ServiceOption {
	return func(s *Service) { s.duration = d }
}

func NewService(client platform.Client, opts ...ServiceOption) *Service {
	s := &Service{client: client, duration: DefaultDuration}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListUpcoming fetches the platform's upcoming broadcasts in its given
// order. No partial results: any upstream error fails the whole call.
func (s *Service) ListUpcoming(ctx context.Context) ([]Summary, error) {
	broadcasts, err := s.client.ListBroadcasts(ctx, platform.FilterUpcoming, listLimit, "")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrListFailed, err)
	}

	out := make([]Summary, 0, len(broadcasts))
	for _, b := range broadcasts {
		out = append(out, summarize(b))
	}
	return out, nil
}

// Update rewrites a broadcast's title and schedule. The end time is rebuilt
// from the same fixed-duration policy as creation.
func (s *Service) Update(ctx context.Context, id, title string, start time.Time) (Summary, error) {
	updated, err := s.client.UpdateBroadcast(ctx, id, title, start, start.Add(s.duration))
	if err != nil {
		return Summary{}, fmt.Errorf("%w: %v", ErrUpdateFailed, err)
	}
	return summarize(updated), nil
}

// Delete removes a broadcast. The live-URL cache is deliberately not
// touched: if the deleted broadcast was the cached current one, the next
// resolution poll corrects it.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.client.DeleteBroadcast(ctx, id); err != nil {
		return fmt.Errorf("%w: %v", ErrDeleteFailed, err)
	}
	return nil
}

func summarize(b model.Broadcast) Summary {
	start := b.ScheduledStart.UTC()
	return Summary{
		ID:          b.ID,
		Title:       b.Title,
		Description: b.Description,
		URL:         b.URL,
		Status:      b.Status,
		Date:        start.Format("2006-01-02"),
		Time:        start.Format("15:04"),
	}
}
