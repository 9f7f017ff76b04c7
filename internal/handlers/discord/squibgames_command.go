package discord

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/danblock97/astrostats/internal/services/squibgame"
)

// SquibGamesCommand handles the /squibgames command
type SquibGamesCommand struct {
	BaseCommand
	gameService squibgame.Service
}

// NewSquibGamesCommand creates a new squibgames command handler
func NewSquibGamesCommand(gameService squibgame.Service) *SquibGamesCommand {
	return &SquibGamesCommand{
		BaseCommand: BaseCommand{
			Name:        "squibgames",
			Description: "Multiplayer elimination game commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "start",
					Description: "Start a new Squib Game session",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "run",
					Description: "Begin the elimination rounds",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "status",
					Description: "Show the current game status",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "leaderboard",
					Description: "Show the guild's all-time winners",
				},
			},
		},
		gameService: gameService,
	}
}

// Handle processes a Discord interaction for the squibgames command
func (c *SquibGamesCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name {
		return nil
	}

	guildID := i.GuildID
	channelID := i.ChannelID
	userID := i.Member.User.ID
	username := i.Member.User.Username
	if i.Member.Nick != "" {
		username = i.Member.Nick
	}

	var err error
	switch data.Options[0].Name {
	case "start":
		err = c.handleStart(s, i, guildID, channelID, userID, username)
	case "run":
		err = c.handleRun(s, i, guildID, userID)
	case "status":
		err = c.handleStatus(s, i, guildID)
	case "leaderboard":
		err = c.handleLeaderboard(s, i, guildID)
	default:
		err = errors.New("unknown subcommand")
	}

	return err
}

// handleStart creates a session and posts the lobby with a Join button
func (c *SquibGamesCommand) handleStart(s *discordgo.Session, i *discordgo.InteractionCreate, guildID, channelID, userID, username string) error {
	ctx := context.Background()

	output, err := c.gameService.StartSession(ctx, &squibgame.StartSessionInput{
		GuildID:      guildID,
		ChannelID:    channelID,
		HostUserID:   userID,
		HostUsername: username,
	})
	if err != nil {
		if errors.Is(err, squibgame.ErrActiveSessionExists) {
			return RespondWithError(s, i, "A Squib Game session is already active in this server. Finish it before starting a new one.")
		}
		log.Printf("Error starting session in guild %s: %v", guildID, err)
		return RespondWithError(s, i, "Failed to start a new game.")
	}

	sess := output.Session
	joinButton := discordgo.Button{
		Label:    "Join Squib Game",
		Style:    discordgo.SuccessButton,
		CustomID: fmt.Sprintf("%s%s%s", ButtonJoinSession, customIDSeparator, sess.ID),
	}

	if err := RespondWithEmbedAndButtons(s, i, buildLobbyEmbed(sess), []discordgo.MessageComponent{joinButton}); err != nil {
		return err
	}

	// Remember the announcement message so the lobby can be refreshed
	// and found again after a restart
	message, err := s.InteractionResponse(i.Interaction)
	if err != nil {
		log.Printf("Error fetching announcement message for session %s: %v", sess.ID, err)
		return nil
	}

	if err := c.gameService.SetSessionMessage(ctx, &squibgame.SetSessionMessageInput{
		SessionID: sess.ID,
		MessageID: message.ID,
	}); err != nil {
		log.Printf("Error recording announcement message for session %s: %v", sess.ID, err)
	}

	return nil
}

// handleRun kicks off the automatic round loop
func (c *SquibGamesCommand) handleRun(s *discordgo.Session, i *discordgo.InteractionCreate, guildID, userID string) error {
	ctx := context.Background()

	active, err := c.gameService.GetActiveSession(ctx, &squibgame.GetActiveSessionInput{
		GuildID: guildID,
	})
	if err != nil {
		if errors.Is(err, squibgame.ErrSessionNotFound) {
			return RespondWithError(s, i, "No Squib Game session is waiting in this server. Use `/squibgames start` first.")
		}
		log.Printf("Error looking up active session in guild %s: %v", guildID, err)
		return RespondWithError(s, i, "Failed to look up the current game.")
	}

	output, err := c.gameService.RunSession(ctx, &squibgame.RunSessionInput{
		SessionID: active.Session.ID,
		UserID:    userID,
	})
	if err != nil {
		switch {
		case errors.Is(err, squibgame.ErrNotEnoughPlayers):
			return RespondWithError(s, i, "At least 2 players are needed to run the game. Get more people to hit Join!")
		case errors.Is(err, squibgame.ErrRunAlreadyActive):
			return RespondWithError(s, i, "The game is already running.")
		case errors.Is(err, squibgame.ErrSessionCompleted):
			return RespondWithError(s, i, "That game has already finished. Start a new one with `/squibgames start`.")
		}
		log.Printf("Error running session %s: %v", active.Session.ID, err)
		return RespondWithError(s, i, "Failed to run the game.")
	}

	return RespondWithEmbed(s, i, buildRunStartedEmbed(output.Session))
}

// handleStatus shows the guild's current session
func (c *SquibGamesCommand) handleStatus(s *discordgo.Session, i *discordgo.InteractionCreate, guildID string) error {
	ctx := context.Background()

	active, err := c.gameService.GetActiveSession(ctx, &squibgame.GetActiveSessionInput{
		GuildID: guildID,
	})
	if err != nil {
		if errors.Is(err, squibgame.ErrSessionNotFound) {
			return RespondWithMessage(s, i, "No Squib Game session is active in this server. Use `/squibgames start` to begin one.")
		}
		log.Printf("Error looking up active session in guild %s: %v", guildID, err)
		return RespondWithError(s, i, "Failed to look up the current game.")
	}

	return RespondWithEmbed(s, i, buildStatusEmbed(active.Session))
}

// handleLeaderboard shows the guild's all-time winners
func (c *SquibGamesCommand) handleLeaderboard(s *discordgo.Session, i *discordgo.InteractionCreate, guildID string) error {
	ctx := context.Background()

	output, err := c.gameService.GetLeaderboard(ctx, &squibgame.GetLeaderboardInput{
		GuildID: guildID,
	})
	if err != nil {
		log.Printf("Error fetching leaderboard for guild %s: %v", guildID, err)
		return RespondWithError(s, i, "Failed to fetch the leaderboard.")
	}

	if len(output.Entries) == 0 {
		return RespondWithMessage(s, i, "Nobody has won a Squib Game in this server yet. Be the first!")
	}

	return RespondWithEmbed(s, i, buildLeaderboardEmbed(output.Entries))
}
