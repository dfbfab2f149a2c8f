package migrate

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/steward-bot/steward/common"
	"github.com/steward-bot/steward/db"
)

var Command = &cli.Command{
	Name:   "migrate",
	Usage:  "Run migrations manually",
	Action: run,
}

func run(c *cli.Context) error {
	sugar, err := common.InitLog()
	if err != nil {
		return err
	}

	url := os.Getenv("DATABASE_URL")
	if url == "" {
		return cli.Exit("No DATABASE_URL provided in the environment.", 1)
	}

	n, err := db.RunMigrations(url, sugar)
	if err != nil {
		sugar.Fatalf("Running migrations: %v", err)
	}

	if n == 0 {
		sugar.Info("Database is already up to date.")
	} else {
		sugar.Info("Successfully ran migrations!")
	}
	return nil
}
