// Package config loads runtime configuration from the environment,
// with an optional .env file for local development.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all runtime configuration for the bot
type Config struct {
	// DiscordToken authenticates the bot with Discord
	DiscordToken string `env:"DISCORD_TOKEN,required,notEmpty"`

	// ApplicationID for slash command registration; falls back to the
	// session user when empty
	ApplicationID string `env:"APPLICATION_ID"`

	// GuildID scopes command registration to one server during
	// development; empty registers globally
	GuildID string `env:"GUILD_ID"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// RoundInterval is the pause between automatic elimination rounds
	RoundInterval time.Duration `env:"SQUIB_ROUND_INTERVAL" envDefault:"10s"`

	// MinPlayers required before a session may run
	MinPlayers int `env:"SQUIB_MIN_PLAYERS" envDefault:"2"`

	// AvatarCacheTTL bounds how long winner avatars are cached
	AvatarCacheTTL time.Duration `env:"AVATAR_CACHE_TTL" envDefault:"1h"`
}

// Load reads configuration from the environment. A missing .env file
// is not an error; exported variables win either way.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	return &cfg, nil
}
