package core

import (
	"fmt"
	"strings"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/utils/sendpart"
	"github.com/starshine-sys/bcr"
)

func (bot *Bot) guilds(ctx *bcr.Context) (err error) {
	if !bot.IsOwner(ctx.Author.ID) {
		return
	}

	prefixes, err := bot.DB.Prefixes()
	if err != nil {
		return bot.DB.ReportCtx(ctx, err)
	}

	if csv, _ := ctx.Flags.GetBool("csv"); csv {
		var b strings.Builder
		b.WriteString("server_id,prefix\n")
		for _, p := range prefixes {
			fmt.Fprintf(&b, "%v,%v\n", p.ServerID, p.Prefix)
		}

		_, err = ctx.State.SendMessageComplex(ctx.Message.ChannelID, api.SendMessageData{
			Files: []sendpart.File{{
				Name:   "prefixes.csv",
				Reader: strings.NewReader(b.String()),
			}},
		})
		return
	}

	if len(prefixes) == 0 {
		_, err = ctx.Send("No servers have a custom prefix set.")
		return
	}

	var fields []discord.EmbedField
	for i, p := range prefixes {
		fields = append(fields, discord.EmbedField{
			Name:  fmt.Sprintf("%v. %v", i+1, p.ServerID),
			Value: fmt.Sprintf("Prefix: `%v`", p.Prefix),
		})
	}

	_, err = ctx.PagedEmbed(bcr.FieldPaginator("Custom prefixes", "", bcr.ColourPurple, fields, 5), false)
	return
}
