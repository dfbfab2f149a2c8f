// Package store defines the interface for a cache of per-guild command prefixes.
// Every incoming message needs the guild's prefix before it can be dispatched, so
// the lookup has to be cheap: the store sits in front of the database and holds
// recently read prefixes. A redis-backed store also survives bot restarts, so a
// restart doesn't turn into one database query per active guild.
package store

import (
	"context"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/discord"
)

const ErrNotFound = errors.Sentinel("value not found in store")

type Store interface {
	Prefix(ctx context.Context, guildID discord.GuildID) (string, error)
	SetPrefix(ctx context.Context, guildID discord.GuildID, prefix string) error
	DeletePrefix(ctx context.Context, guildID discord.GuildID) error
}
