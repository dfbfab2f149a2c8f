package core

import (
	"fmt"
	"runtime"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/dustin/go-humanize"
	"github.com/starshine-sys/bcr"

	"github.com/steward-bot/steward/common"
)

const invitePerms = discord.PermissionViewChannel |
	discord.PermissionReadMessageHistory |
	discord.PermissionAddReactions |
	discord.PermissionAttachFiles |
	discord.PermissionEmbedLinks |
	discord.PermissionSendMessages |
	discord.PermissionManageGuild

func (bot *Bot) about(ctx *bcr.Context) (err error) {
	prefixCount, err := bot.DB.PrefixCount()
	if err != nil {
		return bot.DB.ReportCtx(ctx, err)
	}

	invite := fmt.Sprintf("https://discord.com/api/oauth2/authorize?client_id=%v&permissions=%v&scope=bot", ctx.Bot.ID, invitePerms)

	e := discord.Embed{
		Title:       "About",
		Description: "A general purpose management bot: per-server prefixes, live cog loading, and a couple of owner utilities.",
		Color:       bot.Router.EmbedColor,
		Thumbnail: &discord.EmbedThumbnail{
			URL: ctx.Bot.AvatarURL(),
		},
		Fields: []discord.EmbedField{
			{
				Name:   "Version",
				Value:  fmt.Sprintf("%v (%v)", common.Version, runtime.Version()),
				Inline: true,
			},
			{
				Name:   "Servers",
				Value:  humanize.Comma(int64(bot.GuildCount())),
				Inline: true,
			},
			{
				Name:   "Custom prefixes",
				Value:  humanize.Comma(prefixCount),
				Inline: true,
			},
			{
				Name:  "Invite",
				Value: fmt.Sprintf("[Invite me to your server!](%v)", invite),
			},
		},
		Timestamp: discord.NowTimestamp(),
	}

	_, err = ctx.Send("", e)
	return
}
