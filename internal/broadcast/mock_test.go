package broadcast

import (
	"context"
	"time"

	"github.com/courtside-live/courtside/internal/model"
	"github.com/courtside-live/courtside/internal/platform"
)

// fakeClient scripts platform responses for the scheduler/resolver/service
// tests.
type fakeClient struct {
	createID   string
	createErrs []error // consumed one per call; nil means success
	createN    int

	active      []model.Broadcast
	upcoming    []model.Broadcast
	activeErr   error
	upcomingErr error
	listCalls   []platform.BroadcastFilter
	lastLimit   int64
	lastOrderBy string

	updateResult model.Broadcast
	updateErr    error
	deleteErr    error
}

var _ platform.Client = (*fakeClient)(nil)

func (f *fakeClient) CreateBroadcast(_ context.Context, _, _ string, _, _ time.Time) (string, error) {
	f.createN++
	if len(f.createErrs) > 0 {
		err := f.createErrs[0]
		f.createErrs = f.createErrs[1:]
		if err != nil {
			return "", err
		}
	}
	return f.createID, nil
}

func (f *fakeClient) ListBroadcasts(_ context.Context, filter platform.BroadcastFilter, limit int64, orderBy string) ([]model.Broadcast, error) {
	f.listCalls = append(f.listCalls, filter)
	f.lastLimit = limit
	f.lastOrderBy = orderBy
	switch filter {
	case platform.FilterActive:
		return f.active, f.activeErr
	default:
		return f.upcoming, f.upcomingErr
	}
}

func (f *fakeClient) UpdateBroadcast(_ context.Context, _, _ string, _, _ time.Time) (model.Broadcast, error) {
	if f.updateErr != nil {
		return model.Broadcast{}, f.updateErr
	}
	return f.updateResult, nil
}

func (f *fakeClient) DeleteBroadcast(_ context.Context, _ string) error {
	return f.deleteErr
}

// noSleep replaces the scheduler's jittered delay in tests.
func noSleep(_ context.Context, _ time.Duration) error { return nil }

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
