package cmd

import (
	"os"

	"github.com/steward-bot/steward/cmd/bot"
	"github.com/steward-bot/steward/cmd/migrate"
	"github.com/steward-bot/steward/common"
	"github.com/urfave/cli/v2"
)

var app = &cli.App{
	Name:    "Steward",
	Usage:   "General purpose Discord management bot",
	Version: common.Version,

	Commands: []*cli.Command{
		bot.Command,
		migrate.Command,
	},
}

func Run() error {
	return app.Run(os.Args)
}
