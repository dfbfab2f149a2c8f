package admin

import (
	"testing"

	"github.com/diamondburned/arikawa/v3/discord"
)

func TestSudoEvent(t *testing.T) {
	src := discord.Message{
		ID:        discord.MessageID(3),
		ChannelID: discord.ChannelID(10),
		GuildID:   discord.GuildID(20),
		Author:    discord.User{ID: discord.UserID(1), Username: "owner"},
		Content:   "!sudo #general @target ping",
	}
	ch := &discord.Channel{ID: discord.ChannelID(30), GuildID: discord.GuildID(40)}
	user := &discord.User{ID: discord.UserID(2), Username: "target"}

	ev := sudoEvent(src, ch, user, "!ping")

	if ev.ChannelID != ch.ID {
		t.Errorf("expected channel %v, got %v", ch.ID, ev.ChannelID)
	}
	if ev.GuildID != ch.GuildID {
		t.Errorf("expected guild %v, got %v", ch.GuildID, ev.GuildID)
	}
	if ev.Author.ID != user.ID {
		t.Errorf("expected author %v, got %v", user.ID, ev.Author.ID)
	}
	if ev.Content != "!ping" {
		t.Errorf("expected content %q, got %q", "!ping", ev.Content)
	}
	if ev.ID != src.ID {
		t.Errorf("expected the source message ID to carry over, got %v", ev.ID)
	}

	if src.Content != "!sudo #general @target ping" {
		t.Errorf("source message was modified: %q", src.Content)
	}
}

func TestSudoEventDirectMessage(t *testing.T) {
	src := discord.Message{
		ID:        discord.MessageID(3),
		ChannelID: discord.ChannelID(10),
		GuildID:   discord.GuildID(20),
		Author:    discord.User{ID: discord.UserID(1)},
	}
	ch := &discord.Channel{ID: discord.ChannelID(50)}
	user := &discord.User{ID: discord.UserID(2)}

	ev := sudoEvent(src, ch, user, "!help")

	if ev.GuildID.IsValid() {
		t.Errorf("expected no guild for a DM channel, got %v", ev.GuildID)
	}
}
