// Package admin implements the bot's administrative cog: per-guild prefix
// management, cog lifecycle commands, and the owner-only execute and sudo
// commands.
package admin

import (
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/spf13/pflag"
	"github.com/starshine-sys/bcr"

	"github.com/steward-bot/steward/bot"
	"github.com/steward-bot/steward/extensions"
)

// Bot ...
type Bot struct {
	*bot.Bot
}

// Extension returns the admin extension, ready for registration.
func Extension(b *bot.Bot) extensions.Extension {
	return extensions.Extension{
		Name: "commands/admin",
		Setup: func() (*extensions.Cog, error) {
			return setup(b)
		},
	}
}

func setup(b *bot.Bot) (*extensions.Cog, error) {
	bot := &Bot{b}

	prefix := &extensions.Command{
		Command: &bcr.Command{
			Name:        "prefix",
			Summary:     "Show the bot's prefix for this server.",
			Description: "Show the bot's prefix for this server.\nOn its own this is equivalent to `prefix get`.",

			Permissions: discord.PermissionManageGuild,
			Command:     bot.prefixGet,
		},
		Subcommands: []*extensions.Command{
			{Command: &bcr.Command{
				Name:    "get",
				Summary: "Show the bot's prefix for this server.",

				Permissions: discord.PermissionManageGuild,
				Command:     bot.prefixGet,
			}},
			{Command: &bcr.Command{
				Name:    "set",
				Summary: "Set the bot's prefix for this server.",
				Usage:   "<prefix>",
				Args:    bcr.MinArgs(1),

				Permissions: discord.PermissionManageGuild,
				Command:     bot.prefixSet,
			}},
			{Command: &bcr.Command{
				Name:    "reset",
				Summary: "Reset the bot's prefix for this server to the default.",

				Permissions: discord.PermissionManageGuild,
				Command:     bot.prefixReset,
			}},
		},
	}

	cog := &extensions.Command{
		Command: &bcr.Command{
			Name:    "cog",
			Summary: "Manage the bot's cogs.",

			Command: bot.cogList,
		},
		Subcommands: []*extensions.Command{
			{Command: &bcr.Command{
				Name:    "list",
				Summary: "List the bot's cogs or extensions.",
				Usage:   "[cogs|extensions]",

				Command: bot.cogList,
			}},
			{Command: &bcr.Command{
				Name:    "info",
				Summary: "Show a cog's description, commands, and listeners.",
				Usage:   "<cog>",
				Args:    bcr.MinArgs(1),

				Command: bot.cogInfo,
			}},
			{Command: &bcr.Command{
				Name:    "load",
				Summary: "Load an extension.",
				Usage:   "<extension>",
				Args:    bcr.MinArgs(1),

				Command: bot.cogLoad,
			}},
			{Command: &bcr.Command{
				Name:    "unload",
				Summary: "Unload an extension.",
				Usage:   "<extension>",
				Args:    bcr.MinArgs(1),

				Command: bot.cogUnload,
			}},
			{Command: &bcr.Command{
				Name:    "reload",
				Summary: "Reload an extension, or all of them with `--all`.",
				Usage:   "<extension>",
				Flags: func(fs *pflag.FlagSet) *pflag.FlagSet {
					fs.BoolP("all", "a", false, "Reload every loaded extension.")
					return fs
				},

				Command: bot.cogReload,
			}},
		},
	}

	execute := &extensions.Command{
		Command: &bcr.Command{
			Name:    "execute",
			Summary: "Run a snippet of Lua and show the result.",
			Usage:   "<code>",
			Args:    bcr.MinArgs(1),

			Command: bot.execute,
		},
	}

	sudo := &extensions.Command{
		Command: &bcr.Command{
			Name:    "sudo",
			Summary: "Run a command as another user, optionally in another channel.",
			Usage:   "[channel] <user> <command...>",
			Args:    bcr.MinArgs(2),

			Command: bot.sudo,
		},
	}

	return &extensions.Cog{
		Name:        "Admin",
		Description: "Prefix management, cog management, and other owner utilities.",
		Commands:    []*extensions.Command{prefix, cog, execute, sudo},
	}, nil
}
