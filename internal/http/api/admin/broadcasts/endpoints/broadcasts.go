package endpoints

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/courtside-live/courtside/internal/broadcast"
	"github.com/courtside-live/courtside/internal/http/api"
	"github.com/courtside-live/courtside/internal/http/api/admin/broadcasts/packets"
	"github.com/courtside-live/courtside/internal/model"
)

type BroadcastController struct {
	scheduler *broadcast.Scheduler
	service   *broadcast.Service
	now       func() time.Time
}

func newBroadcastController(scheduler *broadcast.Scheduler, service *broadcast.Service) *BroadcastController {
	return &BroadcastController{
		scheduler: scheduler,
		service:   service,
		now:       time.Now,
	}
}

// BroadcastModule mounts the authenticated broadcast CRUD endpoints.
func BroadcastModule(scheduler *broadcast.Scheduler, service *broadcast.Service) api.Module {
	ctl := newBroadcastController(scheduler, service)
	return api.ModuleFunc(func(c *api.Controller) {
		c.POST("/broadcast", ctl.createBroadcast)
		c.GET("/broadcasts", ctl.listBroadcasts)
		c.PUT("/broadcast/:id", ctl.updateBroadcast)
		c.DELETE("/broadcast/:id", ctl.deleteBroadcast)
	})
}

// POST /broadcast
func (b *BroadcastController) createBroadcast(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.BroadcastRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	start, err := broadcast.Normalize(request.Month, request.Day, request.Time, b.now())
	if err != nil {
		return nil, inputError(err)
	}

	created, err := b.scheduler.Schedule(ctx.Request.Context(), request.Title, request.Description, start)
	if err != nil {
		log.Error().Err(err).Str("title", request.Title).Msg("failed to schedule broadcast")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: err.Error()}
	}

	log.Info().
		Str("broadcast_id", created.ID).
		Int("user_id", user.ID).
		Msg("broadcast created")
	return toResponse(created), nil
}

// GET /broadcasts
func (b *BroadcastController) listBroadcasts(ctx *gin.Context, _ *model.User) (any, *api.APIError) {
	summaries, err := b.service.ListUpcoming(ctx.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list broadcasts")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: err.Error()}
	}

	out := make([]packets.BroadcastResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, fromSummary(s))
	}
	return out, nil
}

// PUT /broadcast/:id
func (b *BroadcastController) updateBroadcast(ctx *gin.Context, _ *model.User) (any, *api.APIError) {
	id := ctx.Param("id")

	var request packets.BroadcastRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	start, err := broadcast.Normalize(request.Month, request.Day, request.Time, b.now())
	if err != nil {
		return nil, inputError(err)
	}

	updated, err := b.service.Update(ctx.Request.Context(), id, request.Title, start)
	if err != nil {
		log.Error().Err(err).Str("broadcast_id", id).Msg("failed to update broadcast")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: err.Error()}
	}
	return fromSummary(updated), nil
}

// DELETE /broadcast/:id
func (b *BroadcastController) deleteBroadcast(ctx *gin.Context, _ *model.User) (any, *api.APIError) {
	id := ctx.Param("id")

	if err := b.service.Delete(ctx.Request.Context(), id); err != nil {
		log.Error().Err(err).Str("broadcast_id", id).Msg("failed to delete broadcast")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: err.Error()}
	}
	return gin.H{"message": "broadcast deleted successfully"}, nil
}

func inputError(err error) *api.APIError {
	if errors.Is(err, broadcast.ErrInvalidTimeFormat) || errors.Is(err, broadcast.ErrInvalidCalendarDate) {
		return &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	return &api.APIError{Code: http.StatusInternalServerError, Message: err.Error()}
}

func toResponse(b model.Broadcast) packets.BroadcastResponse {
	start := b.ScheduledStart.UTC()
	return packets.BroadcastResponse{
		ID:          b.ID,
		Title:       b.Title,
		Description: b.Description,
		URL:         b.URL,
		Date:        start.Format("2006-01-02"),
		Time:        start.Format("15:04"),
	}
}

func fromSummary(s broadcast.Summary) packets.BroadcastResponse {
	return packets.BroadcastResponse{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		URL:         s.URL,
		Status:      string(s.Status),
		Date:        s.Date,
		Time:        s.Time,
	}
}
