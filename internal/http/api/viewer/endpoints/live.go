package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/courtside-live/courtside/internal/broadcast"
	"github.com/courtside-live/courtside/internal/cache"
	"github.com/courtside-live/courtside/internal/http/api"
)

// Placeholder returned when no broadcast is live. The viewer page shows it
// verbatim, so it is part of the public contract.
const noLivestreamPlaceholder = "No livestream available."

type LiveController struct {
	resolver *broadcast.Resolver
	cache    cache.LiveURL
}

// LiveModule mounts the public plain-text live-URL surface. Each request
// triggers a resolution poll; the cache is the fallback when the platform
// is unreachable.
func LiveModule(resolver *broadcast.Resolver, liveURL cache.LiveURL) api.Module {
	ctl := &LiveController{resolver: resolver, cache: liveURL}
	return api.ModuleFunc(func(c *api.Controller) {
		c.RAW(http.MethodGet, "/live_url", ctl.getLiveURL)
	})
}

// GET /live_url
func (l *LiveController) getLiveURL(ctx *gin.Context) {
	current, err := l.resolver.ResolveCurrent(ctx.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("live url resolution failed, serving cached value")
		if url, cacheErr := l.cache.Get(ctx.Request.Context()); cacheErr == nil && url != "" {
			ctx.String(http.StatusOK, url)
			return
		}
		ctx.String(http.StatusOK, noLivestreamPlaceholder)
		return
	}

	if current == nil {
		ctx.String(http.StatusOK, noLivestreamPlaceholder)
		return
	}
	ctx.String(http.StatusOK, current.URL)
}
