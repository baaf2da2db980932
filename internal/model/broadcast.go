package model

import "time"

// LifecycleStatus is the platform-side state of a broadcast.
type LifecycleStatus string

const (
	StatusUpcoming     LifecycleStatus = "upcoming"
	StatusTesting      LifecycleStatus = "testing"
	StatusLiveStarting LifecycleStatus = "liveStarting"
	StatusLive         LifecycleStatus = "live"
	StatusComplete     LifecycleStatus = "complete"
	StatusUnknown      LifecycleStatus = "unknown"
)

// Broadcast is a transient view of a platform broadcast. The platform owns
// the record; nothing here is persisted locally.
type Broadcast struct {
	ID             string
	Title          string
	Description    string
	ScheduledStart time.Time
	ScheduledEnd   time.Time
	URL            string
	Status         LifecycleStatus
}

// Current-broadcast statuses as seen by viewers. "starting_soon" is reported
// before the platform flips the broadcast to live.
const (
	CurrentStatusLive         = "live"
	CurrentStatusStartingSoon = "starting_soon"
)

// CurrentBroadcast is the resolved "what should the viewer page embed right
// now" value. Recomputed on every resolution; never stored except as the
// projected URL string in the live-URL cache.
type CurrentBroadcast struct {
	ID     string
	Title  string
	URL    string
	Status string
}
