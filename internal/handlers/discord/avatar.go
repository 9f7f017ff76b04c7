package discord

import (
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/danblock97/astrostats/internal/common/cache"
)

// avatarCache resolves user avatar URLs through a TTL cache so the
// winner embed doesn't hit the Discord API for every completion.
type avatarCache struct {
	session *discordgo.Session
	urls    *cache.TTL[string]
}

func newAvatarCache(session *discordgo.Session, ttl time.Duration) *avatarCache {
	return &avatarCache{
		session: session,
		urls:    cache.New[string](ttl),
	}
}

// AvatarURL returns the user's guild avatar, falling back to their
// global avatar. Lookup failures read as no avatar.
func (a *avatarCache) AvatarURL(guildID, userID string) string {
	key := guildID + ":" + userID
	if url, ok := a.urls.Get(key); ok {
		return url
	}

	member, err := a.session.GuildMember(guildID, userID)
	if err != nil {
		return ""
	}

	url := member.AvatarURL("")
	if url == "" && member.User != nil {
		url = member.User.AvatarURL("")
	}

	if url != "" {
		a.urls.Set(key, url)
	}
	return url
}
