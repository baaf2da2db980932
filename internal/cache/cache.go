// holds the single piece of durable state the lifecycle manager owns: the
// URL the viewer page should embed right now, or "" when nothing is live.
package cache

import (
	"context"
	"sync"
)

// LiveURL is the read/write contract between the resolver (writer) and the
// viewer-facing page (reader). Last write wins; no versioning.
type LiveURL interface {
	Set(ctx context.Context, url string) error
	Get(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}

// Memory is the in-process implementation, used when no Redis address is
// configured and throughout the tests.
type Memory struct {
	mu  sync.RWMutex
	url string
}

// compile-time check that Memory implements LiveURL
var _ LiveURL = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Set(_ context.Context, url string) error {
	m.mu.Lock()
	m.url = url
	m.mu.Unlock()
	return nil
}

func (m *Memory) Get(_ context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.url, nil
}

func (m *Memory) Clear(ctx context.Context) error {
	return m.Set(ctx, "")
}
