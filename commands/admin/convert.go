package admin

import (
	"regexp"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/bcr"

	"github.com/steward-bot/steward/extensions"
)

// ConversionError is returned when a command argument can't be converted to
// the value a handler needs. The translator renders these per command.
type ConversionError struct {
	Argument string
	Reason   string
}

func (e *ConversionError) Error() string {
	return "converting \"" + e.Argument + "\": " + e.Reason
}

// A prefix is 1 to 4 characters, none of them whitespace.
var prefixPattern = regexp.MustCompile(`^\S{1,4}$`)

// prefixArg validates a prefix argument.
func prefixArg(arg string) (string, error) {
	if !prefixPattern.MatchString(arg) {
		return "", &ConversionError{Argument: arg, Reason: "not a valid prefix"}
	}
	return arg, nil
}

// cogArg resolves an argument to a loaded cog by exact name.
func (bot *Bot) cogArg(arg string) (*extensions.Cog, error) {
	cog, ok := bot.Extensions.Cog(arg)
	if !ok {
		return nil, &ConversionError{Argument: arg, Reason: "no cog with that name"}
	}
	return cog, nil
}

// extensionArg resolves an argument to a loaded extension by exact name.
func (bot *Bot) extensionArg(arg string) (*extensions.Cog, error) {
	cog, ok := bot.Extensions.Extension(arg)
	if !ok {
		return nil, &ConversionError{Argument: arg, Reason: "no extension with that name"}
	}
	return cog, nil
}

// channelArg resolves a channel mention, name, or raw ID. Raw IDs can point
// at channels outside the current server, as long as the bot can see them.
func (bot *Bot) channelArg(ctx *bcr.Context, arg string) (*discord.Channel, error) {
	ch, err := ctx.ParseChannel(arg)
	if err == nil {
		return ch, nil
	}

	id, err := channelIDArg(arg)
	if err != nil {
		return nil, err
	}

	ch, err = ctx.State.Channel(id)
	if err != nil {
		return nil, &ConversionError{Argument: arg, Reason: "no channel with that ID"}
	}
	return ch, nil
}

// channelIDArg parses an argument as a raw base-10 channel ID.
func channelIDArg(arg string) (discord.ChannelID, error) {
	sf, err := discord.ParseSnowflake(arg)
	if err != nil {
		return 0, &ConversionError{Argument: arg, Reason: "not a channel or channel ID"}
	}
	return discord.ChannelID(sf), nil
}
