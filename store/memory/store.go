// Package memory provides an in-memory store.
package memory

import (
	"context"
	"time"

	"github.com/ReneKroon/ttlcache/v2"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/steward-bot/steward/store"
)

var _ store.Store = (*Store)(nil)

type Store struct {
	prefixes *ttlcache.Cache
}

func New() *Store {
	c := ttlcache.NewCache()
	c.SetTTL(10 * time.Minute)

	return &Store{prefixes: c}
}

func (s *Store) Prefix(_ context.Context, guildID discord.GuildID) (string, error) {
	v, err := s.prefixes.Get(guildID.String())
	if err != nil {
		return "", store.ErrNotFound
	}

	prefix, ok := v.(string)
	if !ok {
		return "", store.ErrNotFound
	}

	return prefix, nil
}

func (s *Store) SetPrefix(_ context.Context, guildID discord.GuildID, prefix string) error {
	return s.prefixes.Set(guildID.String(), prefix)
}

func (s *Store) DeletePrefix(_ context.Context, guildID discord.GuildID) error {
	err := s.prefixes.Remove(guildID.String())
	if err != nil && err != ttlcache.ErrNotFound {
		return err
	}
	return nil
}
