// Package bot ties the command router, database, prefix store, extension
// registry, and code execution capability together.
package bot

import (
	"context"
	"time"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/session/shard"
	"github.com/diamondburned/arikawa/v3/state"
	"github.com/starshine-sys/bcr"
	"go.uber.org/zap"

	"github.com/steward-bot/steward/db"
	"github.com/steward-bot/steward/extensions"
	"github.com/steward-bot/steward/luaexec"
	"github.com/steward-bot/steward/store"
	"github.com/steward-bot/steward/store/memory"
	"github.com/steward-bot/steward/store/redis"
)

const Intents = gateway.IntentGuilds |
	gateway.IntentGuildMessages |
	gateway.IntentDirectMessages

type Bot struct {
	Router *bcr.Router
	DB     *db.DB
	Sugar  *zap.SugaredLogger

	Extensions *extensions.Registry
	Exec       luaexec.Runner
	Prefixes   store.Store
	Owners     []discord.UserID

	Start time.Time

	// set once at startup: whether this deployment's database has a
	// prefixes table. Without it the dispatcher never looks up custom
	// prefixes, so a missing table doesn't cost a failed query per message.
	customPrefixes bool
}

// New creates a new Bot on an existing router and database, and registers the
// message create handlers on every shard. Prefixes are cached in redis when a
// redis URL is given, in memory otherwise.
func New(redisURL string, r *bcr.Router, database *db.DB, sugar *zap.SugaredLogger, owners []discord.UserID) (*Bot, error) {
	b := &Bot{
		Router: r,
		DB:     database,
		Sugar:  sugar,
		Exec:   luaexec.New(),
		Owners: owners,
		Start:  time.Now().UTC(),
	}

	if redisURL != "" {
		s, err := redis.New(redisURL)
		if err != nil {
			return nil, errors.Wrap(err, "creating redis store")
		}
		b.Prefixes = s
	} else {
		b.Prefixes = memory.New()
	}

	ok, err := database.HasPrefixTable()
	if err != nil {
		return nil, errors.Wrap(err, "checking for prefix table")
	}
	b.customPrefixes = ok

	b.Extensions = extensions.New(r, b.removableHandler)

	r.AddHandler(r.MessageCreate)
	r.AddHandler(b.messageCreate)

	return b, nil
}

func (bot *Bot) Open(ctx context.Context) error {
	bot.Sugar.Debug("opening gateway connection")

	return bot.Router.ShardManager.Open(ctx)
}

func (bot *Bot) Close() error {
	return bot.Router.ShardManager.Close()
}

// IsOwner reports whether the given user may use owner-only commands.
func (bot *Bot) IsOwner(id discord.UserID) bool {
	for _, o := range bot.Owners {
		if o == id {
			return true
		}
	}
	return false
}

// CustomPrefixes reports whether this deployment supports per-guild prefixes.
func (bot *Bot) CustomPrefixes() bool {
	return bot.customPrefixes
}

func (bot *Bot) StateFromGuildID(guildID discord.GuildID) (s *state.State, id int) {
	return bot.Router.StateFromGuildID(guildID)
}

// GuildCount returns the number of guilds the bot is in, across all shards.
func (bot *Bot) GuildCount() (count int) {
	bot.Router.ShardManager.ForEach(func(s shard.Shard) {
		state := s.(*state.State)

		guilds, _ := state.GuildStore.Guilds()
		count += len(guilds)
	})
	return count
}

// removableHandler registers a gateway listener on every shard and returns a
// function that removes it from all of them. The extension registry uses this
// for cog listeners, which have to go away again on unload.
func (bot *Bot) removableHandler(v interface{}) func() {
	var rms []func()
	bot.Router.ShardManager.ForEach(func(s shard.Shard) {
		state := s.(*state.State)
		rms = append(rms, state.AddHandler(v))
	})

	return func() {
		for _, rm := range rms {
			rm()
		}
	}
}
