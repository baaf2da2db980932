package endpoints

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"

	"github.com/courtside-live/courtside/internal/broadcast"
	"github.com/courtside-live/courtside/internal/cache"
	"github.com/courtside-live/courtside/internal/http/api"
	"github.com/courtside-live/courtside/internal/model"
	"github.com/courtside-live/courtside/internal/platform"
	"github.com/courtside-live/courtside/internal/realtime"
)

// stubClient serves scripted active/upcoming views to the resolver.
type stubClient struct {
	active   []model.Broadcast
	upcoming []model.Broadcast
	err      error
}

func (s *stubClient) CreateBroadcast(context.Context, string, string, time.Time, time.Time) (string, error) {
	return "", errors.New("not used")
}

func (s *stubClient) ListBroadcasts(_ context.Context, filter platform.BroadcastFilter, _ int64, _ string) ([]model.Broadcast, error) {
	if s.err != nil {
		return nil, s.err
	}
	if filter == platform.FilterActive {
		return s.active, nil
	}
	return s.upcoming, nil
}

func (s *stubClient) UpdateBroadcast(context.Context, string, string, time.Time, time.Time) (model.Broadcast, error) {
	return model.Broadcast{}, errors.New("not used")
}

func (s *stubClient) DeleteBroadcast(context.Context, string) error {
	return errors.New("not used")
}

func newViewerRouter(client platform.Client, liveURL cache.LiveURL) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api.MountGroup(r, api.GroupConfig{Prefix: ""},
		LiveModule(broadcast.NewResolver(client, liveURL), liveURL),
		ScoreboardModule(realtime.NewScoreboard(), realtime.NewRegistry("score")),
		ChatModule(realtime.NewRegistry("chat")),
	)
	return r
}

func TestGetLiveURL_ActiveBroadcast(t *testing.T) {
	client := &stubClient{
		active: []model.Broadcast{{
			ID:     "live1",
			URL:    platform.EmbedURL("live1"),
			Status: model.StatusLive,
		}},
	}
	router := newViewerRouter(client, cache.NewMemory())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/live_url", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://www.youtube.com/embed/live1", w.Body.String())
}

func TestGetLiveURL_NothingLiveReturnsPlaceholder(t *testing.T) {
	router := newViewerRouter(&stubClient{}, cache.NewMemory())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/live_url", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "No livestream available.", w.Body.String())
}

func TestGetLiveURL_ResolutionFailureFallsBackToCache(t *testing.T) {
	liveURL := cache.NewMemory()
	_ = liveURL.Set(context.Background(), "https://www.youtube.com/embed/cached")
	router := newViewerRouter(&stubClient{err: errors.New("upstream down")}, liveURL)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/live_url", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://www.youtube.com/embed/cached", w.Body.String())
}

func TestGetLiveURL_ResolutionFailureEmptyCachePlaceholder(t *testing.T) {
	router := newViewerRouter(&stubClient{err: errors.New("upstream down")}, cache.NewMemory())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/live_url", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "No livestream available.", w.Body.String())
}

func TestScoreSocket_SnapshotOnConnect(t *testing.T) {
	router := newViewerRouter(&stubClient{}, cache.NewMemory())
	srv := httptest.NewServer(router)
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws/score", nil)
	assert.NoError(t, err)
	defer conn.Close()

	_ = conn.SetReadDeadline(time.Now().Add(time.Second))
	var state model.ScoreboardState
	assert.NoError(t, conn.ReadJSON(&state))
	assert.Equal(t, "Home", state.HomeName)
	assert.Equal(t, "Away", state.AwayName)
}

func TestChatSocket_RelaysToAllClients(t *testing.T) {
	router := newViewerRouter(&stubClient{}, cache.NewMemory())
	srv := httptest.NewServer(router)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/chat"
	sender, _, err := websocket.DefaultDialer.Dial(url, nil)
	assert.NoError(t, err)
	defer sender.Close()
	receiver, _, err := websocket.DefaultDialer.Dial(url, nil)
	assert.NoError(t, err)
	defer receiver.Close()

	msg := map[string]string{"user": "fan1", "text": "great game"}
	assert.NoError(t, sender.WriteJSON(msg))

	// sender included in the fan-out
	for _, conn := range []*websocket.Conn{sender, receiver} {
		_ = conn.SetReadDeadline(time.Now().Add(time.Second))
		var got map[string]string
		assert.NoError(t, conn.ReadJSON(&got))
		assert.Equal(t, "great game", got["text"])
	}
}

func TestUpdateScore(t *testing.T) {
	router := newViewerRouter(&stubClient{}, cache.NewMemory())

	body, _ := json.Marshal(map[string]any{"team": "home", "points": 3})
	req := httptest.NewRequest(http.MethodPost, "/score/update", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var state model.ScoreboardState
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
	assert.Equal(t, 3, state.Home)
	assert.Equal(t, 0, state.Away)
}

func TestGetScore_ReturnsCurrentSnapshot(t *testing.T) {
	router := newViewerRouter(&stubClient{}, cache.NewMemory())

	body, _ := json.Marshal(map[string]any{"team": "away", "points": 2})
	req := httptest.NewRequest(http.MethodPost, "/score/update", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/score", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var state model.ScoreboardState
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
	assert.Equal(t, 0, state.Home)
	assert.Equal(t, 2, state.Away)
	assert.Equal(t, "Home", state.HomeName)
}

func TestUpdateScore_InvalidTeam(t *testing.T) {
	router := newViewerRouter(&stubClient{}, cache.NewMemory())

	body, _ := json.Marshal(map[string]any{"team": "neutral", "points": 1})
	req := httptest.NewRequest(http.MethodPost, "/score/update", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateTeamNames(t *testing.T) {
	router := newViewerRouter(&stubClient{}, cache.NewMemory())

	body, _ := json.Marshal(map[string]string{"home_name": "Lions", "away_name": "Tigers"})
	req := httptest.NewRequest(http.MethodPost, "/score/team_names", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var state model.ScoreboardState
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
	assert.Equal(t, "Lions", state.HomeName)
	assert.Equal(t, "Tigers", state.AwayName)
}
