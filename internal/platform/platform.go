// exposes a Client interface for the external streaming platform; the
// lifecycle manager only ever talks to this, never to an SDK directly.
package platform

import (
	"context"
	"errors"
	"time"

	"github.com/courtside-live/courtside/internal/model"
)

// BroadcastFilter selects which platform view a list call reads.
type BroadcastFilter string

const (
	FilterActive   BroadcastFilter = "active"
	FilterUpcoming BroadcastFilter = "upcoming"
)

// OrderByStartTime asks the platform to sort upcoming broadcasts by their
// scheduled start, nearest first.
const OrderByStartTime = "startTime"

// ErrUnavailable marks a transient upstream overload. Callers may retry;
// every other error from a Client is terminal.
var ErrUnavailable = errors.New("streaming platform temporarily unavailable")

type Client interface {
	// CreateBroadcast schedules a broadcast and returns its platform ID.
	CreateBroadcast(ctx context.Context, title, description string, start, end time.Time) (string, error)

	// ListBroadcasts fetches up to limit broadcasts matching the filter.
	// orderBy is optional; pass "" for the platform's default order.
	ListBroadcasts(ctx context.Context, filter BroadcastFilter, limit int64, orderBy string) ([]model.Broadcast, error)

	// UpdateBroadcast rewrites title and scheduled window of an existing broadcast.
	UpdateBroadcast(ctx context.Context, id, title string, start, end time.Time) (model.Broadcast, error)

	// DeleteBroadcast removes a broadcast from the platform.
	DeleteBroadcast(ctx context.Context, id string) error
}

// EmbedURL derives the viewer-embeddable URL from a broadcast ID.
func EmbedURL(id string) string {
	return "https://www.youtube.com/embed/" + id
}
