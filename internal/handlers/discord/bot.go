package discord

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/danblock97/astrostats/internal/models"
	"github.com/danblock97/astrostats/internal/services/squibgame"
)

// Button custom IDs. The join button carries the session ID after the
// separator so a click can be routed without any per-message state.
const (
	ButtonJoinSession = "squib_join"

	customIDSeparator = ":"
)

// Bot represents the Discord bot instance
type Bot struct {
	session     *discordgo.Session
	commands    map[string]CommandHandler
	commandIDs  map[string]string // Maps command name to command ID
	gameService squibgame.Service
	config      *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Session is the shared Discord session; the bot registers its
	// handlers on it but does not own its lifecycle alone, the round
	// notifier posts through the same session
	Session *discordgo.Session

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Game service
	GameService squibgame.Service
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}

	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	bot := &Bot{
		session:     cfg.Session,
		commands:    make(map[string]CommandHandler),
		commandIDs:  make(map[string]string),
		gameService: cfg.GameService,
		config:      cfg,
	}

	// Register the interaction handler
	cfg.Session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	squibCmd := NewSquibGamesCommand(b.gameService)
	if err := b.RegisterCommand(squibCmd); err != nil {
		return fmt.Errorf("failed to register squibgames command: %w", err)
	}

	log.Println("Bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	// Remove all commands
	appID := b.config.ApplicationID
	if appID == "" {
		appID = b.session.State.User.ID
	}

	guildID := ""
	if b.config.GuildID != "" {
		guildID = b.config.GuildID
	}

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, guildID, cmdID); err != nil {
			log.Printf("Failed to delete command %s (ID: %s): %v", cmdName, cmdID, err)
		} else {
			log.Printf("Successfully deleted command %s (ID: %s)", cmdName, cmdID)
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	appID := b.config.ApplicationID
	if appID == "" {
		// Fall back to session user ID if application ID is not provided
		appID = b.session.State.User.ID
	}

	// If guild ID is provided, register command for that specific guild
	// Otherwise, register it globally
	guildID := ""
	if b.config.GuildID != "" {
		guildID = b.config.GuildID
		log.Printf("Registering command %s for guild %s", cmd.GetName(), guildID)
	} else {
		log.Printf("Registering command %s globally", cmd.GetName())
	}

	createdCmd, err := b.session.ApplicationCommandCreate(appID, guildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	log.Printf("Registered command: %s with ID: %s", cmd.GetName(), createdCmd.ID)

	return nil
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		// Handle slash commands
		if h, ok := b.commands[i.ApplicationCommandData().Name]; ok {
			if err := h.Handle(s, i); err != nil {
				log.Printf("Error handling command %s: %v", i.ApplicationCommandData().Name, err)
			}
		}
	case discordgo.InteractionMessageComponent:
		// Handle buttons and other components
		if err := b.handleComponentInteraction(s, i); err != nil {
			log.Printf("Error handling component interaction: %v", err)
		}
	}
}

// handleComponentInteraction handles button clicks
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	customID := i.MessageComponentData().CustomID

	action, payload, _ := strings.Cut(customID, customIDSeparator)
	switch action {
	case ButtonJoinSession:
		return b.handleJoinButton(s, i, payload)
	}

	return nil
}

// handleJoinButton processes a click on a session's Join button. The
// button stays live for the whole waiting phase so late clicks on a
// started session get a friendly rejection instead of an error.
func (b *Bot) handleJoinButton(s *discordgo.Session, i *discordgo.InteractionCreate, sessionID string) error {
	if sessionID == "" {
		return RespondWithEphemeralMessage(s, i, "This game is no longer available.")
	}

	userID := i.Member.User.ID
	username := i.Member.User.Username
	if i.Member.Nick != "" {
		username = i.Member.Nick
	}

	ctx := context.Background()
	output, err := b.gameService.JoinSession(ctx, &squibgame.JoinSessionInput{
		SessionID: sessionID,
		UserID:    userID,
		Username:  username,
	})
	if err != nil {
		switch {
		case errors.Is(err, squibgame.ErrAlreadyJoined):
			return RespondWithEphemeralMessage(s, i, "You've already joined this game!")
		case errors.Is(err, squibgame.ErrSessionNotJoinable):
			return RespondWithEphemeralMessage(s, i, "This game has already started, you can't join anymore.")
		case errors.Is(err, squibgame.ErrSessionNotFound):
			return RespondWithEphemeralMessage(s, i, "This game no longer exists.")
		}
		log.Printf("Error joining session %s: %v", sessionID, err)
		return RespondWithEphemeralMessage(s, i, "Something went wrong joining the game.")
	}

	// Refresh the announcement so the lobby shows the new roster
	if err := b.updateAnnouncement(s, i.Message, output.Session); err != nil {
		log.Printf("Error updating announcement for session %s: %v", sessionID, err)
	}

	return RespondWithEphemeralMessage(s, i,
		fmt.Sprintf("You're in! %d players have joined so far.", len(output.Session.Participants)))
}

// updateAnnouncement rewrites the announcement message the join button
// lives on with the current participant roster.
func (b *Bot) updateAnnouncement(s *discordgo.Session, message *discordgo.Message, sess *models.Session) error {
	if message == nil {
		return nil
	}

	embed := buildLobbyEmbed(sess)
	components := message.Components

	_, err := s.ChannelMessageEditComplex(&discordgo.MessageEdit{
		ID:         message.ID,
		Channel:    message.ChannelID,
		Embeds:     &[]*discordgo.MessageEmbed{embed},
		Components: &components,
	})
	return err
}
