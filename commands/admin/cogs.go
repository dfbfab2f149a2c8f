package admin

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/bcr"
)

func (bot *Bot) cogList(ctx *bcr.Context) (err error) {
	if !bot.IsOwner(ctx.Author.ID) {
		return
	}

	mode := "cogs"
	if len(ctx.Args) > 0 {
		mode = ctx.Args[0]
	}

	var lines []string
	switch mode {
	case "cogs":
		for _, cog := range bot.Extensions.Cogs() {
			lines = append(lines, "`"+cog.Name+"`")
		}
	case "extensions":
		for _, name := range bot.Extensions.Extensions() {
			lines = append(lines, "`"+name+"`")
		}
	default:
		return bot.translate(ctx,
			&ConversionError{Argument: mode, Reason: "not a valid list mode"},
			"Invalid list mode `%v`")
	}

	if len(lines) == 0 {
		_, err = ctx.Send("There is nothing to list.")
		return
	}

	_, _, err = ctx.ButtonPages(
		bcr.StringPaginator("Cog List", bot.Router.EmbedColor, lines, 20), 10*time.Minute,
	)
	return
}

func (bot *Bot) cogInfo(ctx *bcr.Context) (err error) {
	if !bot.IsOwner(ctx.Author.ID) {
		return
	}

	cog, err := bot.cogArg(ctx.Args[0])
	if err != nil {
		return bot.translate(ctx, err, "")
	}

	desc := cog.Description
	if desc == "" {
		desc = "(No Description Provided)"
	}

	listeners := cog.ListenerNames()
	commands := cog.CommandNames()

	e := discord.Embed{
		Title:       "Cog Info - " + cog.Name,
		Description: desc,
		Author: &discord.EmbedAuthor{
			Name: bot.Router.Bot.Tag(),
			Icon: bot.Router.Bot.AvatarURL(),
		},
		Fields: []discord.EmbedField{
			{
				Name:  fmt.Sprintf("Listeners[%v]", len(listeners)),
				Value: backtickJoin(listeners),
			},
			{
				Name:   fmt.Sprintf("Commands[%v]", len(commands)),
				Value:  backtickJoin(commands),
				Inline: true,
			},
		},
		Color:     bot.Router.EmbedColor,
		Timestamp: discord.NowTimestamp(),
	}

	_, err = ctx.Send("", e)
	return
}

func (bot *Bot) cogLoad(ctx *bcr.Context) (err error) {
	if !bot.IsOwner(ctx.Author.ID) {
		return
	}

	name := ctx.Args[0]
	_, err = bot.Extensions.Load(name)
	if err != nil {
		return bot.translate(ctx, err, "")
	}
	return bot.sendSuccess(ctx, "Cog `%v` was loaded!", bcr.EscapeBackticks(name))
}

func (bot *Bot) cogUnload(ctx *bcr.Context) (err error) {
	if !bot.IsOwner(ctx.Author.ID) {
		return
	}

	name := ctx.Args[0]
	err = bot.Extensions.Unload(name)
	if err != nil {
		return bot.translate(ctx, err, "")
	}
	return bot.sendSuccess(ctx, "Cog `%v` was unloaded!", bcr.EscapeBackticks(name))
}

func (bot *Bot) cogReload(ctx *bcr.Context) (err error) {
	if !bot.IsOwner(ctx.Author.ID) {
		return
	}

	if all, _ := ctx.Flags.GetBool("all"); all {
		for _, name := range bot.Extensions.Extensions() {
			_, err = bot.Extensions.Reload(name)
			if err != nil {
				return bot.translate(ctx, err, "")
			}
		}
		return bot.sendSuccess(ctx, "All extensions were reloaded!")
	}

	if len(ctx.Args) == 0 {
		_, err = ctx.Send("You need to give an extension to reload, or use `--all`.")
		return
	}

	name := ctx.Args[0]
	_, err = bot.Extensions.Reload(name)
	if err != nil {
		return bot.translate(ctx, err, "")
	}
	return bot.sendSuccess(ctx, "Cog `%v` was reloaded!", bcr.EscapeBackticks(name))
}

func backtickJoin(names []string) string {
	if len(names) == 0 {
		return "None"
	}

	sorted := make([]string, len(names))
	for i, n := range names {
		sorted[i] = "`" + n + "`"
	}
	sort.Strings(sorted)
	return strings.Join(sorted, ", ")
}
