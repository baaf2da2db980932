package realtime

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreboard_AddPoints(t *testing.T) {
	sb := NewScoreboard()

	state, err := sb.AddPoints("home", 3)
	assert.NoError(t, err)
	assert.Equal(t, 3, state.Home)
	assert.Equal(t, 0, state.Away)

	state, err = sb.AddPoints("away", 2)
	assert.NoError(t, err)
	assert.Equal(t, 3, state.Home)
	assert.Equal(t, 2, state.Away)
}

func TestScoreboard_InvalidTeam(t *testing.T) {
	sb := NewScoreboard()
	_, err := sb.AddPoints("neutral", 1)
	assert.Error(t, err)
	assert.Equal(t, 0, sb.Snapshot().Home)
}

func TestScoreboard_SetTeamNames(t *testing.T) {
	sb := NewScoreboard()
	state := sb.SetTeamNames("Lions", "Tigers")
	assert.Equal(t, "Lions", state.HomeName)
	assert.Equal(t, "Tigers", state.AwayName)
}

func TestScoreboard_DefaultNames(t *testing.T) {
	state := NewScoreboard().Snapshot()
	assert.Equal(t, "Home", state.HomeName)
	assert.Equal(t, "Away", state.AwayName)
}

func TestScoreboard_ConcurrentTotals(t *testing.T) {
	sb := NewScoreboard()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = sb.AddPoints("home", 2)
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, sb.Snapshot().Home)
}
