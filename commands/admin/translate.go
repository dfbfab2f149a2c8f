package admin

import (
	"fmt"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/bcr"

	"github.com/steward-bot/steward/extensions"
)

// translate renders recognized command failures as fail embeds and resolves
// them to nil, so callers can treat the command as handled. convFormat is the
// calling command's own message for conversion failures, with one verb for
// the offending argument; commands that don't convert anything pass "".
// Anything unrecognized goes through the reporter instead.
func (bot *Bot) translate(ctx *bcr.Context, err error, convFormat string) error {
	if err == nil {
		return nil
	}

	msg := failMessage(err, convFormat)
	if msg == "" {
		return bot.DB.ReportCtx(ctx, err)
	}
	return bot.sendFail(ctx, "%v", msg)
}

// failMessage maps a recognized failure to its user-facing message. It
// returns "" for anything it doesn't recognize.
func failMessage(err error, convFormat string) string {
	var (
		conv *ConversionError
		nf   *extensions.NotFoundError
		al   *extensions.AlreadyLoadedError
		nl   *extensions.NotLoadedError
		ne   *extensions.NoEntrypointError
		se   *extensions.SetupError
	)

	switch {
	case errors.Is(err, errNoCustomPrefixes):
		return "This deployment cannot use custom prefixes"
	case errors.As(err, &conv):
		if convFormat == "" {
			return ""
		}
		return fmt.Sprintf(convFormat, bcr.EscapeBackticks(conv.Argument))
	case errors.As(err, &nf):
		return fmt.Sprintf("Cog `%v` was not found", nf.Name)
	case errors.As(err, &al):
		return fmt.Sprintf("Cog `%v` is already loaded", al.Name)
	case errors.As(err, &nl):
		return fmt.Sprintf("Cog `%v` is already unloaded", nl.Name)
	case errors.As(err, &ne):
		return fmt.Sprintf("Cog `%v` is missing its entrypoint", ne.Name)
	case errors.As(err, &se):
		return fmt.Sprintf("Cog `%v` initialization failed: `%v`", se.Name, bcr.EscapeBackticks(se.Err.Error()))
	default:
		return ""
	}
}

func (bot *Bot) sendSuccess(ctx *bcr.Context, tmpl string, args ...interface{}) (err error) {
	_, err = ctx.Send("", discord.Embed{
		Description: fmt.Sprintf(tmpl, args...),
		Color:       bcr.ColourGreen,
	})
	return
}

func (bot *Bot) sendFail(ctx *bcr.Context, tmpl string, args ...interface{}) (err error) {
	_, err = ctx.Send("", discord.Embed{
		Description: fmt.Sprintf(tmpl, args...),
		Color:       bcr.ColourRed,
	})
	return
}
