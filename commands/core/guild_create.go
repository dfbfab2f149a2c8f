package core

import (
	"fmt"
	"time"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/starshine-sys/bcr"
)

func (bot *Bot) guildCreate(g *gateway.GuildCreateEvent) {
	// if we joined this guild more than one minute ago, this is just the
	// gateway streaming guilds on connect, not an actual join
	if g.Joined.Time().UTC().Before(time.Now().UTC().Add(-1 * time.Minute)) {
		return
	}

	bot.Sugar.Infof("Joined server %v (%v).", g.Name, g.ID)

	if !bot.joinLeaveLog.IsValid() {
		return
	}

	s, _ := bot.StateFromGuildID(g.ID)
	_, err := s.SendEmbeds(bot.joinLeaveLog, discord.Embed{
		Title: "Joined new server",
		Color: bcr.ColourPurple,
		Thumbnail: &discord.EmbedThumbnail{
			URL: g.IconURL(),
		},
		Description: fmt.Sprintf("Joined new server **%v**", g.Name),
		Footer: &discord.EmbedFooter{
			Text: fmt.Sprintf("ID: %v", g.ID),
		},
		Timestamp: discord.NowTimestamp(),
	})
	if err != nil {
		bot.Sugar.Errorf("Error sending join log message: %v", err)
	}
}
