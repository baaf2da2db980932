package main

import (
	"github.com/rs/zerolog/log"

	"github.com/courtside-live/courtside/internal/cache"
)

// InitLiveURLCache selects the configured live-URL cache backend
func InitLiveURLCache(env Environment) cache.LiveURL {
	if env.RedisAddress != "" {
		log.Info().Str("address", env.RedisAddress).Msg("using Redis live-url cache")
		return cache.NewRedis(env.RedisAddress, env.RedisUsername, env.RedisPassword)
	}

	log.Info().Msg("using in-memory live-url cache")
	return cache.NewMemory()
}
