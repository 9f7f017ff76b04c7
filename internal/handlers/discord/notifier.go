package discord

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/danblock97/astrostats/internal/services/squibgame"
)

// notifier delivers engine events to the session's channel
type notifier struct {
	session *discordgo.Session
	avatars *avatarCache
}

// NotifierConfig holds configuration for the Discord notifier
type NotifierConfig struct {
	// Session is the shared Discord session
	Session *discordgo.Session

	// AvatarCacheTTL bounds how long winner avatars are cached.
	// Defaults to one hour.
	AvatarCacheTTL time.Duration
}

// NewNotifier creates a notifier that posts round updates and final
// summaries to the channel a session was started in.
func NewNotifier(cfg *NotifierConfig) (*notifier, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}

	return &notifier{
		session: cfg.Session,
		avatars: newAvatarCache(cfg.Session, cfg.AvatarCacheTTL),
	}, nil
}

// spotlightUserID picks who the round thumbnail features: a random
// player eliminated this round, or the host when nobody fell. The
// package-level rand source is used because round loops for different
// guilds may deliver concurrently.
func spotlightUserID(notification *squibgame.RoundNotification) string {
	eliminated := notification.EliminatedThisRound
	if len(eliminated) == 0 {
		return notification.Session.HostUserID
	}
	return eliminated[rand.Intn(len(eliminated))].UserID
}

// RoundPlayed posts the round embed to the session's channel with the
// spotlighted player's avatar as the thumbnail.
func (n *notifier) RoundPlayed(_ context.Context, notification *squibgame.RoundNotification) error {
	if notification.Session.ChannelID == "" {
		return nil
	}

	embed := buildRoundEmbed(notification)

	if url := n.avatars.AvatarURL(notification.Session.GuildID, spotlightUserID(notification)); url != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: url}
	}

	_, err := n.session.ChannelMessageSendEmbed(notification.Session.ChannelID, embed)
	if err != nil {
		return fmt.Errorf("failed to post round update: %w", err)
	}
	return nil
}

// SessionCompleted posts the final summary, with the winner's avatar
// as the thumbnail when there is one.
func (n *notifier) SessionCompleted(_ context.Context, notification *squibgame.CompletionNotification) error {
	if notification.Session.ChannelID == "" {
		return nil
	}

	embed := buildGameOverEmbed(notification)
	if notification.Winner != nil {
		if url := n.avatars.AvatarURL(notification.Session.GuildID, notification.Winner.UserID); url != "" {
			embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: url}
		}
	}

	_, err := n.session.ChannelMessageSendEmbed(notification.Session.ChannelID, embed)
	if err != nil {
		return fmt.Errorf("failed to post final summary: %w", err)
	}
	return nil
}
