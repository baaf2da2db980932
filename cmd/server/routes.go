package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/courtside-live/courtside/internal/broadcast"
	"github.com/courtside-live/courtside/internal/cache"
	"github.com/courtside-live/courtside/internal/db"
	"github.com/courtside-live/courtside/internal/http/api"
	authapi "github.com/courtside-live/courtside/internal/http/api/admin/auth/endpoints"
	broadcastapi "github.com/courtside-live/courtside/internal/http/api/admin/broadcasts/endpoints"
	viewerapi "github.com/courtside-live/courtside/internal/http/api/viewer/endpoints"
	"github.com/courtside-live/courtside/internal/realtime"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(
	r *gin.Engine,
	env Environment,
	store db.Store,
	scheduler *broadcast.Scheduler,
	resolver *broadcast.Resolver,
	service *broadcast.Service,
	liveURL cache.LiveURL,
) {
	// CORS
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"PUT",
			"DELETE",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Authorization",
			"Accept",
		},
		AllowCredentials: false,
	}))

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/auth",
	},
		authapi.AuthPublicModule(env.SecretKey, store),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix:    "/auth",
		Auth:      true,
		SecretKey: env.SecretKey,
		Store:     store,
	},
		authapi.AuthSessionModule(env.SecretKey, store),
	)

	// operator broadcast CRUD
	api.MountGroup(r, api.GroupConfig{
		Prefix:    "",
		Auth:      true,
		SecretKey: env.SecretKey,
		Store:     store,
	},
		broadcastapi.BroadcastModule(scheduler, service),
	)

	// viewer surface: live url, scoreboard, chat
	scoreboard := realtime.NewScoreboard()
	api.MountGroup(r, api.GroupConfig{
		Prefix: "",
	},
		viewerapi.LiveModule(resolver, liveURL),
		viewerapi.ScoreboardModule(scoreboard, realtime.NewRegistry("score")),
		viewerapi.ChatModule(realtime.NewRegistry("chat")),
	)
}
