// Package redis provides a redis-backed store.
package redis

import (
	"context"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/mediocregopher/radix/v4"
	"github.com/steward-bot/steward/store"
)

var _ store.Store = (*Store)(nil)

// Cached prefixes expire after 10 minutes, matching the in-memory store.
const prefixTTL = "600"

type Store struct {
	client radix.Client
}

func New(url string) (*Store, error) {
	client, err := (&radix.PoolConfig{}).New(context.Background(), "tcp", url)
	if err != nil {
		return nil, errors.Wrap(err, "creating radix client")
	}

	return &Store{client: client}, nil
}

func prefixKey(guildID discord.GuildID) string {
	return "prefixes:" + guildID.String()
}

func (s *Store) Prefix(ctx context.Context, guildID discord.GuildID) (string, error) {
	var raw []byte

	err := s.client.Do(ctx, radix.Cmd(&raw, "GET", prefixKey(guildID)))
	if err != nil {
		return "", err
	}

	if raw == nil {
		return "", store.ErrNotFound
	}

	return string(raw), nil
}

func (s *Store) SetPrefix(ctx context.Context, guildID discord.GuildID, prefix string) error {
	return s.client.Do(ctx, radix.Cmd(nil, "SET", prefixKey(guildID), prefix, "EX", prefixTTL))
}

func (s *Store) DeletePrefix(ctx context.Context, guildID discord.GuildID) error {
	return s.client.Do(ctx, radix.Cmd(nil, "DEL", prefixKey(guildID)))
}
