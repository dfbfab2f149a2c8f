package memory

import (
	"context"
	"testing"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/steward-bot/steward/store"
)

func TestPrefixRoundTrip(t *testing.T) {
	s := New()
	ctx := context.Background()
	guildID := discord.GuildID(123)

	if err := s.SetPrefix(ctx, guildID, "?"); err != nil {
		t.Fatalf("SetPrefix returned error: %v", err)
	}

	prefix, err := s.Prefix(ctx, guildID)
	if err != nil {
		t.Fatalf("Prefix returned error: %v", err)
	}
	if prefix != "?" {
		t.Fatalf("expected prefix %q, got %q", "?", prefix)
	}
}

func TestPrefixMissing(t *testing.T) {
	s := New()

	_, err := s.Prefix(context.Background(), discord.GuildID(123))
	if err != store.ErrNotFound {
		t.Fatalf("expected store.ErrNotFound, got %v", err)
	}
}

func TestDeletePrefix(t *testing.T) {
	s := New()
	ctx := context.Background()
	guildID := discord.GuildID(123)

	if err := s.SetPrefix(ctx, guildID, "??"); err != nil {
		t.Fatalf("SetPrefix returned error: %v", err)
	}
	if err := s.DeletePrefix(ctx, guildID); err != nil {
		t.Fatalf("DeletePrefix returned error: %v", err)
	}

	_, err := s.Prefix(ctx, guildID)
	if err != store.ErrNotFound {
		t.Fatalf("expected store.ErrNotFound after delete, got %v", err)
	}
}

func TestDeletePrefixMissing(t *testing.T) {
	s := New()

	if err := s.DeletePrefix(context.Background(), discord.GuildID(456)); err != nil {
		t.Fatalf("DeletePrefix on missing key returned error: %v", err)
	}
}
