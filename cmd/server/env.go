package main

import (
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/courtside-live/courtside/internal/broadcast"
)

type Environment struct {
	Environment   string
	ServerAddress string
	SecretKey     string
	DatabaseURL   string

	MigrationsPath string

	RedisAddress  string
	RedisUsername string
	RedisPassword string

	MQTTBrokerURL string

	YTClientSecretsPath string
	YTTokenPath         string

	LiveWindow        time.Duration
	BroadcastDuration time.Duration
	ResolveInterval   time.Duration
}

// LoadEnvironment reads and validates env vars
func LoadEnvironment() Environment {
	env := Environment{
		Environment:   os.Getenv("APP_ENV"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		SecretKey:     os.Getenv("JWT_SECRET"),
		ServerAddress: os.Getenv("SERVER_ADDRESS"),

		MigrationsPath: os.Getenv("MIGRATIONS_PATH"),

		RedisAddress:  os.Getenv("REDIS_ADDRESS"),
		RedisUsername: os.Getenv("REDIS_USERNAME"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		MQTTBrokerURL: os.Getenv("MQTT_BROKER_URL"),

		YTClientSecretsPath: os.Getenv("YT_CLIENT_SECRETS_PATH"),
		YTTokenPath:         os.Getenv("YT_TOKEN_PATH"),

		LiveWindow:        durationEnv("LIVE_WINDOW", broadcast.DefaultLiveWindow),
		BroadcastDuration: durationEnv("BROADCAST_DURATION", broadcast.DefaultDuration),
		ResolveInterval:   durationEnv("RESOLVE_INTERVAL", 0),
	}

	if env.ServerAddress == "" {
		env.ServerAddress = ":8080"
	}
	if env.MigrationsPath == "" {
		env.MigrationsPath = "./migrations"
	}
	if env.YTClientSecretsPath == "" {
		env.YTClientSecretsPath = "client_secrets.json"
	}
	if env.YTTokenPath == "" {
		env.YTTokenPath = "token.json"
	}

	// Basic validation
	if env.DatabaseURL == "" || env.SecretKey == "" {
		log.Fatal().Msg("missing required environment variables DATABASE_URL / JWT_SECRET")
	}

	return env
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatal().Str("key", key).Str("value", raw).Msg("invalid duration in environment")
	}
	return d
}
