package minigame

import (
	"fmt"
	"strings"
)

// maxDisplayNames bounds how many usernames a single message enumerates;
// longer lists get an "and N others" suffix instead.
const maxDisplayNames = 10

// FormatNames renders a name list for display, enumerating at most
// maxDisplayNames names before summarizing the remainder.
func FormatNames(names []string) string {
	if len(names) <= maxDisplayNames {
		return strings.Join(names, ", ")
	}
	displayed := strings.Join(names[:maxDisplayNames], ", ")
	remaining := len(names) - maxDisplayNames
	return fmt.Sprintf("%s and %d others", displayed, remaining)
}

// GenerateFlavorText turns a round outcome into narrative prose. The
// template is keyed by substring match against the minigame description
// with a generic fallback; an empty eliminated list gets its own
// phrasing rather than an empty name list.
func GenerateFlavorText(minigameDesc string, eliminatedThisRound, alivePlayers []string) string {
	var sentences []string

	switch {
	case strings.Contains(minigameDesc, "Red Light"):
		if len(eliminatedThisRound) > 0 {
			sentences = append(sentences, fmt.Sprintf(
				"As the lights flickered, **%s** were caught moving at the wrong moment...",
				FormatNames(eliminatedThisRound)))
		} else {
			sentences = append(sentences, "Everyone froze perfectly still—no one got caught this time!")
		}
		if len(alivePlayers) > 0 {
			sentences = append(sentences, fmt.Sprintf(
				"The relentless spotlights scanned the field, but **%s** made it through unscathed.",
				FormatNames(alivePlayers)))
		}
	case strings.Contains(minigameDesc, "Glass Bridge"), strings.Contains(minigameDesc, "glass panels"):
		if len(eliminatedThisRound) > 0 {
			sentences = append(sentences, fmt.Sprintf(
				"**%s** chose the wrong panel and plummeted into the abyss...",
				FormatNames(eliminatedThisRound)))
		} else {
			sentences = append(sentences, "Miraculously, nobody fell this round—every guess was spot on!")
		}
		if len(alivePlayers) > 0 {
			sentences = append(sentences, fmt.Sprintf(
				"Shards of glass littered the bridge, yet **%s** bravely reached the other side.",
				FormatNames(alivePlayers)))
		}
	case strings.Contains(minigameDesc, "Simon Says"), strings.Contains(minigameDesc, "leader's commands"):
		if len(eliminatedThisRound) > 0 {
			sentences = append(sentences, fmt.Sprintf(
				"**%s** failed to follow the commands and were eliminated...",
				FormatNames(eliminatedThisRound)))
		} else {
			sentences = append(sentences, "Everyone followed the commands flawlessly—no eliminations this round!")
		}
		if len(alivePlayers) > 0 {
			sentences = append(sentences, fmt.Sprintf(
				"**%s** showed impeccable discipline and stayed in the game.",
				FormatNames(alivePlayers)))
		}
	case strings.Contains(minigameDesc, "Treasure Hunt"), strings.Contains(minigameDesc, "hidden treasures"):
		if len(eliminatedThisRound) > 0 {
			sentences = append(sentences, fmt.Sprintf(
				"**%s** couldn't find the hidden treasures in time and were eliminated...",
				FormatNames(eliminatedThisRound)))
		} else {
			sentences = append(sentences, "All players found the treasures swiftly—no eliminations this round!")
		}
		if len(alivePlayers) > 0 {
			sentences = append(sentences, fmt.Sprintf(
				"**%s** continue their quest with renewed vigor.",
				FormatNames(alivePlayers)))
		}
	default:
		if len(eliminatedThisRound) > 0 {
			sentences = append(sentences, fmt.Sprintf(
				"The chaos claimed **%s** as they stumbled in the mayhem...",
				FormatNames(eliminatedThisRound)))
		} else {
			sentences = append(sentences, "Somehow, no one fell victim to the chaos this round!")
		}
		if len(alivePlayers) > 0 {
			sentences = append(sentences, fmt.Sprintf(
				"By skill or sheer luck, **%s** remain in the competition.",
				FormatNames(alivePlayers)))
		}
	}

	return strings.Join(sentences, "\n")
}
