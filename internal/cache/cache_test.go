package cache

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory_SetGetClear(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	url, err := m.Get(ctx)
	assert.NoError(t, err)
	assert.Empty(t, url)

	assert.NoError(t, m.Set(ctx, "https://www.youtube.com/embed/abc"))
	url, err = m.Get(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "https://www.youtube.com/embed/abc", url)

	assert.NoError(t, m.Clear(ctx))
	url, err = m.Get(ctx)
	assert.NoError(t, err)
	assert.Empty(t, url)
}

func TestMemory_LastWriteWins(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = m.Set(ctx, "https://www.youtube.com/embed/race")
			_, _ = m.Get(ctx)
		}()
	}
	wg.Wait()

	url, err := m.Get(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "https://www.youtube.com/embed/race", url)
}
