package admin

import (
	"context"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/bcr"
)

const errNoCustomPrefixes = errors.Sentinel("deployment has no prefixes table")

// checkCustomPrefixes is the capability gate for the prefix commands: a
// deployment supports custom prefixes iff its database has a prefixes table.
func (bot *Bot) checkCustomPrefixes() error {
	ok, err := bot.DB.HasPrefixTable()
	if err != nil {
		return err
	}
	if !ok {
		return errNoCustomPrefixes
	}
	return nil
}

func (bot *Bot) prefixGet(ctx *bcr.Context) (err error) {
	if !ctx.Message.GuildID.IsValid() {
		return
	}
	if err := bot.checkCustomPrefixes(); err != nil {
		return bot.translate(ctx, err, "")
	}

	prefix, err := bot.DB.Prefix(ctx.Message.GuildID)
	if err != nil {
		return bot.DB.ReportCtx(ctx, err)
	}

	e := discord.Embed{
		Title: "Bot Prefix",
		Fields: []discord.EmbedField{{
			Name:  "Prefix",
			Value: "`" + prefix + "`",
		}},
		Color: bot.Router.EmbedColor,
	}
	if ctx.Guild != nil {
		e.Author = &discord.EmbedAuthor{
			Name: ctx.Guild.Name,
			Icon: ctx.Guild.IconURL(),
		}
	}

	_, err = ctx.Send("", e)
	return
}

func (bot *Bot) prefixSet(ctx *bcr.Context) (err error) {
	if !ctx.Message.GuildID.IsValid() {
		return
	}
	if err := bot.checkCustomPrefixes(); err != nil {
		return bot.translate(ctx, err, "")
	}

	prefix, err := prefixArg(ctx.Args[0])
	if err != nil {
		return bot.translate(ctx, err, "`%v` is not a valid prefix")
	}

	err = bot.DB.SetPrefix(ctx.Message.GuildID, prefix)
	if err != nil {
		return bot.DB.ReportCtx(ctx, err)
	}

	// so dispatch picks the new prefix up immediately
	err = bot.Prefixes.SetPrefix(context.Background(), ctx.Message.GuildID, prefix)
	if err != nil {
		bot.Sugar.Errorf("Error caching prefix for %v: %v", ctx.Message.GuildID, err)
	}

	return bot.sendSuccess(ctx, "Prefix set to `%v`", bcr.EscapeBackticks(prefix))
}

func (bot *Bot) prefixReset(ctx *bcr.Context) (err error) {
	if !ctx.Message.GuildID.IsValid() {
		return
	}
	if err := bot.checkCustomPrefixes(); err != nil {
		return bot.translate(ctx, err, "")
	}

	old, err := bot.DB.Prefix(ctx.Message.GuildID)
	if err != nil {
		return bot.DB.ReportCtx(ctx, err)
	}

	err = bot.DB.ResetPrefix(ctx.Message.GuildID)
	if err != nil {
		return bot.DB.ReportCtx(ctx, err)
	}

	prefix, err := bot.DB.Prefix(ctx.Message.GuildID)
	if err != nil {
		return bot.DB.ReportCtx(ctx, err)
	}

	err = bot.Prefixes.SetPrefix(context.Background(), ctx.Message.GuildID, prefix)
	if err != nil {
		bot.Sugar.Errorf("Error caching prefix for %v: %v", ctx.Message.GuildID, err)
	}

	return bot.sendSuccess(ctx, "Prefix reset from `%v` to `%v`", bcr.EscapeBackticks(old), bcr.EscapeBackticks(prefix))
}
