package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/danblock97/astrostats/internal/minigame"
	"github.com/danblock97/astrostats/internal/models"
	"github.com/danblock97/astrostats/internal/services/squibgame"
)

// Embed colors
const (
	colorGreen = 0x00ff00
	colorRed   = 0xff0000
	colorBlue  = 0x3498db
	colorGold  = 0xffd700
)

func participantNames(participants []*models.Participant) []string {
	names := make([]string, 0, len(participants))
	for _, p := range participants {
		names = append(names, p.Username)
	}
	return names
}

// buildLobbyEmbed renders the announcement message for a waiting session
func buildLobbyEmbed(sess *models.Session) *discordgo.MessageEmbed {
	roster := minigame.FormatNames(participantNames(sess.Participants))

	return &discordgo.MessageEmbed{
		Title: "🎮 Squib Game Lobby",
		Description: "A new Squib Game session has started!\n" +
			"Hit **Join Squib Game** below to enter. " +
			"When everyone is in, any player can launch the rounds with `/squibgames run`.",
		Color: colorGreen,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   fmt.Sprintf("Players (%d)", len(sess.Participants)),
				Value:  roster,
				Inline: false,
			},
			{
				Name:   "Host",
				Value:  fmt.Sprintf("<@%s>", sess.HostUserID),
				Inline: true,
			},
		},
	}
}

// buildRunStartedEmbed confirms the round loop has begun
func buildRunStartedEmbed(sess *models.Session) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "🔥 The Games Begin!",
		Description: fmt.Sprintf(
			"**%d players** have entered the arena. The first round starts shortly—eliminations every few seconds until one player remains!",
			len(sess.Participants)),
		Color: colorGreen,
	}
}

// buildStatusEmbed renders a session snapshot for /squibgames status
func buildStatusEmbed(sess *models.Session) *discordgo.MessageEmbed {
	alive := participantNames(sess.Alive())
	eliminated := participantNames(sess.Eliminated())

	var stateLine string
	switch sess.State {
	case models.SessionStateWaiting:
		stateLine = "⏳ Waiting for players"
	case models.SessionStateInProgress:
		stateLine = fmt.Sprintf("⚔️ In progress — round %d", sess.CurrentRound)
	default:
		stateLine = "🏁 Completed"
	}

	fields := []*discordgo.MessageEmbedField{
		{
			Name:   "State",
			Value:  stateLine,
			Inline: false,
		},
		{
			Name:   fmt.Sprintf("Alive (%d)", len(alive)),
			Value:  valueOrDash(minigame.FormatNames(alive)),
			Inline: false,
		},
	}

	if len(eliminated) > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   fmt.Sprintf("Eliminated (%d)", len(eliminated)),
			Value:  minigame.FormatNames(eliminated),
			Inline: false,
		})
	}

	return &discordgo.MessageEmbed{
		Title:  "📋 Squib Game Status",
		Color:  colorBlue,
		Fields: fields,
	}
}

// buildRoundEmbed renders one played round for the session channel
func buildRoundEmbed(n *squibgame.RoundNotification) *discordgo.MessageEmbed {
	title := fmt.Sprintf("Round %d — %s %s", n.Round, n.Minigame.Emoji, n.Minigame.Name)

	return &discordgo.MessageEmbed{
		Title:       title,
		Description: n.Flavor,
		Color:       colorRed,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("%d players remain", len(n.Session.Alive())),
		},
	}
}

// buildGameOverEmbed renders the final summary, winner or draw
func buildGameOverEmbed(n *squibgame.CompletionNotification) *discordgo.MessageEmbed {
	if n.Winner == nil {
		return &discordgo.MessageEmbed{
			Title: "💀 Game Over — No Survivors",
			Description: fmt.Sprintf(
				"Every player was eliminated by round %d. Nobody takes the crown this time.",
				n.TotalRounds),
			Color: colorRed,
		}
	}

	return &discordgo.MessageEmbed{
		Title: "👑 We Have a Winner!",
		Description: fmt.Sprintf(
			"**%s** survived %d rounds and wins the Squib Game!\nThat's **%d** career wins in this server.",
			n.Winner.Username, n.TotalRounds, n.WinnerTotalWins),
		Color: colorGold,
	}
}

// buildLeaderboardEmbed renders the guild's all-time winners
func buildLeaderboardEmbed(entries []*models.PlayerStats) *discordgo.MessageEmbed {
	medals := []string{"🥇", "🥈", "🥉"}

	var sb strings.Builder
	for rank, entry := range entries {
		marker := fmt.Sprintf("%d.", rank+1)
		if rank < len(medals) {
			marker = medals[rank]
		}

		name := entry.Username
		if name == "" {
			name = fmt.Sprintf("<@%s>", entry.UserID)
		}

		fmt.Fprintf(&sb, "%s **%s** — %d wins (%d games)\n",
			marker, name, entry.Wins, entry.GamesPlayed)
	}

	return &discordgo.MessageEmbed{
		Title:       "🏆 Squib Game Leaderboard",
		Description: sb.String(),
		Color:       colorGold,
	}
}

func valueOrDash(value string) string {
	if value == "" {
		return "—"
	}
	return value
}
