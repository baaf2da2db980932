package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/courtside-live/courtside/internal/http/api"
	"github.com/courtside-live/courtside/internal/http/api/viewer/packets"
	"github.com/courtside-live/courtside/internal/realtime"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type ScoreboardController struct {
	board *realtime.Scoreboard
	conns *realtime.Registry
}

// ScoreboardModule mounts the scoreboard websocket and its mutation
// endpoints. Totals are kept server-side; every change pushes a full
// snapshot to all connected viewers.
func ScoreboardModule(board *realtime.Scoreboard, conns *realtime.Registry) api.Module {
	ctl := &ScoreboardController{board: board, conns: conns}
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_GET("/score", ctl.getScore)
		c.PUBLIC_POST("/score/update", ctl.updateScore)
		c.PUBLIC_POST("/score/team_names", ctl.updateTeamNames)
		c.RAW(http.MethodGet, "/ws/score", ctl.scoreSocket)
	})
}

// GET /score
// one-shot snapshot for clients that don't hold a socket open
func (s *ScoreboardController) getScore(ctx *gin.Context) (any, *api.APIError) {
	return s.board.Snapshot(), nil
}

// POST /score/update
func (s *ScoreboardController) updateScore(ctx *gin.Context) (any, *api.APIError) {
	var request packets.ScoreUpdateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	state, err := s.board.AddPoints(request.Team, request.Points)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	s.conns.Broadcast(state)
	return state, nil
}

// POST /score/team_names
func (s *ScoreboardController) updateTeamNames(ctx *gin.Context) (any, *api.APIError) {
	var request packets.TeamNamesRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	state := s.board.SetTeamNames(request.HomeName, request.AwayName)
	s.conns.Broadcast(state)
	return state, nil
}

// GET /ws/score
func (s *ScoreboardController) scoreSocket(ctx *gin.Context) {
	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		log.Error().Err(err).Msg("scoreboard websocket upgrade failed")
		return
	}

	s.conns.Add(conn)
	defer s.conns.Remove(conn)

	// new viewers get the current state immediately
	if err := conn.WriteJSON(s.board.Snapshot()); err != nil {
		return
	}

	// push-only socket; reads just detect disconnects
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
