package bot

import (
	"context"
	"strings"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"

	"github.com/steward-bot/steward/db"
	"github.com/steward-bot/steward/store"
)

// GuildPrefix returns the prefix commands must carry in the given guild,
// checking the store first and falling back to the database.
func (bot *Bot) GuildPrefix(ctx context.Context, guildID discord.GuildID) (string, error) {
	if !bot.customPrefixes {
		return db.DefaultPrefix, nil
	}

	prefix, err := bot.Prefixes.Prefix(ctx, guildID)
	if err == nil {
		return prefix, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		bot.Sugar.Errorf("getting prefix for %v from store: %v", guildID, err)
	}

	prefix, err = bot.DB.Prefix(guildID)
	if err != nil {
		return "", err
	}

	if err := bot.Prefixes.SetPrefix(ctx, guildID, prefix); err != nil {
		bot.Sugar.Errorf("caching prefix for %v: %v", guildID, err)
	}

	return prefix, nil
}

// CanonicalPrefix is the deployment's first global prefix.
func (bot *Bot) CanonicalPrefix() string {
	if len(bot.Router.Prefixes) > 0 {
		return bot.Router.Prefixes[0]
	}
	return db.DefaultPrefix
}

// messageCreate dispatches messages carrying a guild's custom prefix. The
// router's own handler only knows the global and mention prefixes, so this
// one rewrites a custom-prefixed message to the canonical prefix and feeds it
// back through the router.
func (bot *Bot) messageCreate(m *gateway.MessageCreateEvent) {
	if m.Author.Bot || !m.GuildID.IsValid() || !bot.customPrefixes {
		return
	}

	// a message carrying a global prefix already went through the router
	for _, p := range bot.Router.Prefixes {
		if p != "" && strings.HasPrefix(m.Content, p) {
			return
		}
	}

	prefix, err := bot.GuildPrefix(context.Background(), m.GuildID)
	if err != nil {
		bot.Sugar.Errorf("getting prefix for %v: %v", m.GuildID, err)
		return
	}

	if prefix == "" || !strings.HasPrefix(m.Content, prefix) {
		return
	}

	ev := *m
	ev.Content = bot.CanonicalPrefix() + strings.TrimPrefix(m.Content, prefix)
	bot.Router.MessageCreate(&ev)
}
