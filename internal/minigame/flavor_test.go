package minigame

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNames_ShortList(t *testing.T) {
	assert.Equal(t, "Alice, Bob", FormatNames([]string{"Alice", "Bob"}))
	assert.Equal(t, "", FormatNames(nil))
}

func TestFormatNames_CapsAtTen(t *testing.T) {
	var names []string
	for i := 0; i < 14; i++ {
		names = append(names, fmt.Sprintf("player%d", i))
	}

	out := FormatNames(names)
	assert.True(t, strings.HasSuffix(out, "and 4 others"))
	assert.NotContains(t, out, "player10")
	assert.Contains(t, out, "player9")
}

func TestGenerateFlavorText_RedLight(t *testing.T) {
	out := GenerateFlavorText(
		"Players must freeze when 'Red Light' is called",
		[]string{"Alice"},
		[]string{"Bob", "Cara"},
	)

	assert.Contains(t, out, "caught moving")
	assert.Contains(t, out, "**Alice**")
	assert.Contains(t, out, "**Bob, Cara**")
}

func TestGenerateFlavorText_GlassBridge(t *testing.T) {
	out := GenerateFlavorText(
		"Cross a bridge with fragile glass panels",
		[]string{"Alice"},
		[]string{"Bob"},
	)

	assert.Contains(t, out, "wrong panel")
}

func TestGenerateFlavorText_NoEliminations(t *testing.T) {
	out := GenerateFlavorText(
		"Players must freeze when 'Red Light' is called",
		nil,
		[]string{"Alice", "Bob"},
	)

	assert.Contains(t, out, "no one got caught")
	assert.NotContains(t, out, "****")
}

func TestGenerateFlavorText_GenericFallback(t *testing.T) {
	out := GenerateFlavorText(
		"A completely different challenge",
		[]string{"Alice"},
		[]string{"Bob"},
	)

	assert.Contains(t, out, "chaos")
	assert.Contains(t, out, "**Alice**")
}

func TestGenerateFlavorText_AliveListAlsoCapped(t *testing.T) {
	var alive []string
	for i := 0; i < 25; i++ {
		alive = append(alive, fmt.Sprintf("survivor%d", i))
	}

	out := GenerateFlavorText("A completely different challenge", nil, alive)
	assert.Contains(t, out, "and 15 others")
}
