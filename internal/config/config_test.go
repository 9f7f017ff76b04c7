package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "test-token")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test-token", cfg.DiscordToken)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 10*time.Second, cfg.RoundInterval)
	assert.Equal(t, 2, cfg.MinPlayers)
	assert.Equal(t, time.Hour, cfg.AvatarCacheTTL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "test-token")
	t.Setenv("REDIS_ADDR", "redis.internal:6380")
	t.Setenv("SQUIB_ROUND_INTERVAL", "3s")
	t.Setenv("SQUIB_MIN_PLAYERS", "4")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "redis.internal:6380", cfg.RedisAddr)
	assert.Equal(t, 3*time.Second, cfg.RoundInterval)
	assert.Equal(t, 4, cfg.MinPlayers)
}

func TestLoad_MissingToken(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")

	_, err := Load()
	assert.Error(t, err)
}
