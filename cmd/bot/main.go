package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/redis/go-redis/v9"

	"github.com/danblock97/astrostats/internal/config"
	"github.com/danblock97/astrostats/internal/handlers/discord"
	"github.com/danblock97/astrostats/internal/minigame"
	sessionRepo "github.com/danblock97/astrostats/internal/repositories/session"
	statsRepo "github.com/danblock97/astrostats/internal/repositories/stats"
	"github.com/danblock97/astrostats/internal/services/squibgame"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	sessions, err := sessionRepo.NewRedis(&sessionRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create session repository: %v", err)
	}

	stats, err := statsRepo.NewRedis(&statsRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create stats repository: %v", err)
	}

	// The Discord session is shared between the bot handlers and the
	// round notifier
	dg, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}

	notifier, err := discord.NewNotifier(&discord.NotifierConfig{
		Session:        dg,
		AvatarCacheTTL: cfg.AvatarCacheTTL,
	})
	if err != nil {
		log.Fatalf("Failed to create notifier: %v", err)
	}

	// Initialize game service
	gameSvc, err := squibgame.New(&squibgame.Config{
		SessionRepository: sessions,
		StatsRepository:   stats,
		Resolver:          minigame.NewResolver(&minigame.Config{}),
		Notifier:          notifier,
		MinPlayers:        cfg.MinPlayers,
		RoundInterval:     cfg.RoundInterval,
	})
	if err != nil {
		log.Fatalf("Failed to create game service: %v", err)
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Session:       dg,
		ApplicationID: cfg.ApplicationID,
		GuildID:       cfg.GuildID,
		GameService:   gameSvc,
	})
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	// Start the bot
	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start Discord bot: %v", err)
	}

	// Re-attach round loops to sessions that were mid-game when the
	// process last stopped
	resumed, err := gameSvc.ResumeActiveRuns(context.Background())
	if err != nil {
		log.Printf("Failed to resume active sessions: %v", err)
	} else if resumed.Resumed > 0 {
		log.Printf("Resumed %d in-progress session(s)", resumed.Resumed)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Shutdown the bot
	if err := bot.Stop(); err != nil {
		log.Printf("Error stopping bot: %v", err)
	}

	log.Println("Bot has been shut down")
}
