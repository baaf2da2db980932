package realtime

import (
	"fmt"
	"sync"

	"github.com/courtside-live/courtside/internal/model"
)

// Scoreboard keeps the server-authoritative running totals. Clients send
// point deltas and name changes; they never set totals directly.
type Scoreboard struct {
	mu    sync.Mutex
	state model.ScoreboardState
}

func NewScoreboard() *Scoreboard {
	return &Scoreboard{
		state: model.ScoreboardState{
			HomeName: "Home",
			AwayName: "Away",
		},
	}
}

// AddPoints applies a delta to the named team and returns the new snapshot.
func (s *Scoreboard) AddPoints(team string, points int) (model.ScoreboardState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch team {
	case "home":
		s.state.Home += points
	case "away":
		s.state.Away += points
	default:
		return model.ScoreboardState{}, fmt.Errorf("invalid team %q", team)
	}
	return s.state, nil
}

// SetTeamNames renames both teams and returns the new snapshot.
func (s *Scoreboard) SetTeamNames(home, away string) model.ScoreboardState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.HomeName = home
	s.state.AwayName = away
	return s.state
}

// Snapshot returns the current state.
func (s *Scoreboard) Snapshot() model.ScoreboardState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
