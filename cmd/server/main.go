package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/courtside-live/courtside/internal/broadcast"
	"github.com/courtside-live/courtside/internal/db"
	"github.com/courtside-live/courtside/internal/events"
	"github.com/courtside-live/courtside/internal/platform"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using process environment")
	}

	env := LoadEnvironment()

	// initialize PostgreSQL
	if err := db.Init(env.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("db init")
	}

	// run pending migrations
	if err := db.RunMigrations(env.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("db migrate")
	}
	store := db.NewStore()

	// streaming platform client; the OAuth token must already be provisioned
	client, err := platform.NewYouTubeClient(context.Background(), env.YTClientSecretsPath, env.YTTokenPath)
	if err != nil {
		log.Fatal().Err(err).Msg("youtube client init")
	}

	liveURL := InitLiveURLCache(env)

	schedulerOpts := []broadcast.SchedulerOption{
		broadcast.WithDuration(env.BroadcastDuration),
		broadcast.WithLiveWindow(env.LiveWindow),
	}
	resolverOpts := []broadcast.ResolverOption{
		broadcast.WithResolverLiveWindow(env.LiveWindow),
	}

	// live-url transitions go out over MQTT when a broker is configured
	if env.MQTTBrokerURL != "" {
		publisher, err := events.NewPublisher(env.MQTTBrokerURL, "courtside-server")
		if err != nil {
			log.Fatal().Err(err).Msg("mqtt init")
		}
		defer publisher.Close()
		schedulerOpts = append(schedulerOpts, broadcast.WithNotifier(publisher))
		resolverOpts = append(resolverOpts, broadcast.WithResolverNotifier(publisher))
	}

	scheduler := broadcast.NewScheduler(client, liveURL, schedulerOpts...)
	resolver := broadcast.NewResolver(client, liveURL, resolverOpts...)
	service := broadcast.NewService(client, broadcast.WithServiceDuration(env.BroadcastDuration))

	// background resolution keeps the cache and MQTT subscribers current even
	// with no viewer traffic; disabled unless RESOLVE_INTERVAL is set
	if env.ResolveInterval > 0 {
		go broadcast.NewPoller(resolver, env.ResolveInterval).Run(context.Background())
	}

	if env.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	RegisterRoutes(r, env, store, scheduler, resolver, service, liveURL)

	log.Info().Str("address", env.ServerAddress).Msg("listening")
	if err := r.Run(env.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
