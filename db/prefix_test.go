package db

import (
	"context"
	"os"
	"testing"

	"github.com/diamondburned/arikawa/v3/discord"
	"go.uber.org/zap"
)

func testDB(t *testing.T) *DB {
	t.Helper()

	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("set DATABASE_URL to run database tests")
	}

	db, err := New(url, zap.NewNop().Sugar(), nil)
	if err != nil {
		t.Fatalf("connecting to database: %v", err)
	}
	t.Cleanup(db.Close)

	return db
}

// testGuild clears any stored prefix for a synthetic guild ID, both before
// the test and after it.
func testGuild(t *testing.T, db *DB, id discord.GuildID) {
	t.Helper()

	clear := func() {
		_, err := db.Exec(context.Background(), "delete from prefixes where server_id = $1", id)
		if err != nil {
			t.Fatalf("clearing test prefix: %v", err)
		}
	}
	clear()
	t.Cleanup(clear)
}

func TestPrefixRoundTrip(t *testing.T) {
	db := testDB(t)
	guildID := discord.GuildID(100000000000000001)
	testGuild(t, db, guildID)

	if err := db.SetPrefix(guildID, "?"); err != nil {
		t.Fatalf("SetPrefix returned error: %v", err)
	}

	prefix, err := db.Prefix(guildID)
	if err != nil {
		t.Fatalf("Prefix returned error: %v", err)
	}
	if prefix != "?" {
		t.Errorf("expected prefix %q, got %q", "?", prefix)
	}

	// setting again overwrites the stored value
	if err := db.SetPrefix(guildID, ";;"); err != nil {
		t.Fatalf("SetPrefix returned error: %v", err)
	}
	prefix, err = db.Prefix(guildID)
	if err != nil {
		t.Fatalf("Prefix returned error: %v", err)
	}
	if prefix != ";;" {
		t.Errorf("expected prefix %q, got %q", ";;", prefix)
	}
}

func TestPrefixDefault(t *testing.T) {
	db := testDB(t)
	guildID := discord.GuildID(100000000000000002)
	testGuild(t, db, guildID)

	prefix, err := db.Prefix(guildID)
	if err != nil {
		t.Fatalf("Prefix returned error: %v", err)
	}
	if prefix != DefaultPrefix {
		t.Errorf("expected the default prefix for an unset guild, got %q", prefix)
	}
}

func TestResetPrefix(t *testing.T) {
	db := testDB(t)
	guildID := discord.GuildID(100000000000000003)
	testGuild(t, db, guildID)

	if err := db.SetPrefix(guildID, "??"); err != nil {
		t.Fatalf("SetPrefix returned error: %v", err)
	}
	if err := db.ResetPrefix(guildID); err != nil {
		t.Fatalf("ResetPrefix returned error: %v", err)
	}

	prefix, err := db.Prefix(guildID)
	if err != nil {
		t.Fatalf("Prefix returned error: %v", err)
	}
	if prefix != DefaultPrefix {
		t.Errorf("expected the default prefix after reset, got %q", prefix)
	}
}
