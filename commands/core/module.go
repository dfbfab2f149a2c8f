// Package core implements the bot's core cog: latency and runtime stats,
// bot info, the owner guild listing, and the bot's status loop.
package core

import (
	"os"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/spf13/pflag"
	"github.com/starshine-sys/bcr"

	"github.com/steward-bot/steward/bot"
	"github.com/steward-bot/steward/extensions"
)

// Bot ...
type Bot struct {
	*bot.Bot

	joinLeaveLog discord.ChannelID
}

// Extension returns the core extension, ready for registration.
func Extension(b *bot.Bot) extensions.Extension {
	return extensions.Extension{
		Name: "commands/core",
		Setup: func() (*extensions.Cog, error) {
			return setup(b)
		},
	}
}

func setup(b *bot.Bot) (*extensions.Cog, error) {
	joinLeaveLog, _ := discord.ParseSnowflake(os.Getenv("JOIN_LEAVE_LOG"))

	bot := &Bot{
		Bot:          b,
		joinLeaveLog: discord.ChannelID(joinLeaveLog),
	}

	ping := &extensions.Command{
		Command: &bcr.Command{
			Name:    "ping",
			Aliases: []string{"stats"},
			Summary: "Show the bot's latency and other stats.",

			Command: bot.ping,
		},
	}

	about := &extensions.Command{
		Command: &bcr.Command{
			Name:    "about",
			Summary: "Show some info about the bot.",

			Command: bot.about,
		},
	}

	guilds := &extensions.Command{
		Command: &bcr.Command{
			Name:    "guilds",
			Summary: "List all servers with a custom prefix set.",
			Flags: func(fs *pflag.FlagSet) *pflag.FlagSet {
				fs.BoolP("csv", "c", false, "Export the list as a CSV file.")
				return fs
			},

			Command: bot.guilds,
		},
	}

	return &extensions.Cog{
		Name:        "Core",
		Description: "The bot's core commands and listeners.",
		Commands:    []*extensions.Command{ping, about, guilds},
		Listeners: []interface{}{
			bot.ready,
			bot.guildCreate,
			bot.guildDelete,
		},
	}, nil
}
