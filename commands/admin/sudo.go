package admin

import (
	"strings"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/starshine-sys/bcr"
)

func (bot *Bot) sudo(ctx *bcr.Context) (err error) {
	if !bot.IsOwner(ctx.Author.ID) {
		return
	}

	args := ctx.Args
	raw := ctx.RawArgs
	channel := ctx.Channel

	// the channel is optional, so only try it if a user and command can
	// still follow
	if len(args) >= 3 {
		if ch, cerr := bot.channelArg(ctx, args[0]); cerr == nil {
			channel = ch
			raw = strings.TrimSpace(strings.TrimPrefix(raw, args[0]))
			args = args[1:]
		}
	}

	user, err := ctx.ParseUser(args[0])
	if err != nil {
		_, err = ctx.Send("User not found.")
		return
	}
	raw = strings.TrimSpace(strings.TrimPrefix(raw, args[0]))

	if raw == "" {
		_, err = ctx.Send("You need to give a command to run.")
		return
	}

	ev := sudoEvent(ctx.Message, channel, user, ctx.Prefix+raw)
	if channel.GuildID.IsValid() {
		s, _ := bot.Router.StateFromGuildID(channel.GuildID)
		if s != nil {
			if member, merr := s.Member(channel.GuildID, user.ID); merr == nil {
				ev.Member = member
			}
		}
	}

	bot.Router.MessageCreate(ev)
	return
}

// sudoEvent clones src into a message create event that looks like user sent
// content in ch.
func sudoEvent(src discord.Message, ch *discord.Channel, user *discord.User, content string) *gateway.MessageCreateEvent {
	msg := src
	msg.ChannelID = ch.ID
	msg.GuildID = ch.GuildID
	msg.Author = *user
	msg.Content = content
	return &gateway.MessageCreateEvent{Message: msg}
}
