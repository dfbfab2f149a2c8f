package core

import (
	"fmt"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/starshine-sys/bcr"
)

func (bot *Bot) guildDelete(g *gateway.GuildDeleteEvent) {
	// an unavailable guild went down with an outage, it didn't remove us
	if g.Unavailable {
		return
	}

	s, _ := bot.StateFromGuildID(g.ID)

	name := g.ID.String()
	icon := ""
	if guild, err := s.Guild(g.ID); err == nil {
		name = guild.Name
		icon = guild.IconURL()
	}

	bot.Sugar.Infof("Left server %v.", name)

	if !bot.joinLeaveLog.IsValid() {
		return
	}

	_, err := s.SendEmbeds(bot.joinLeaveLog, discord.Embed{
		Title: "Left server",
		Color: bcr.ColourPurple,
		Thumbnail: &discord.EmbedThumbnail{
			URL: icon,
		},
		Description: fmt.Sprintf("Left server **%v**", name),
		Footer: &discord.EmbedFooter{
			Text: fmt.Sprintf("ID: %v", g.ID),
		},
		Timestamp: discord.NowTimestamp(),
	})
	if err != nil {
		bot.Sugar.Errorf("Error sending leave log message: %v", err)
	}
}
