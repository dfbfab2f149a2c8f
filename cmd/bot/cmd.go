package bot

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/utils/ws"
	"github.com/getsentry/sentry-go"
	"github.com/starshine-sys/bcr"
	"github.com/urfave/cli/v2"

	"github.com/steward-bot/steward/bot"
	"github.com/steward-bot/steward/commands/admin"
	"github.com/steward-bot/steward/commands/core"
	"github.com/steward-bot/steward/common"
	"github.com/steward-bot/steward/db"
	"github.com/steward-bot/steward/db/stats"
	"github.com/steward-bot/steward/web"
)

var Command = &cli.Command{
	Name:   "bot",
	Usage:  "Run the bot",
	Action: run,
}

func run(c *cli.Context) error {
	sugar, err := common.InitLog()
	if err != nil {
		return err
	}

	ws.WSDebug = sugar.Named("ws").Debug
	ws.WSError = func(err error) {
		sugar.Named("ws").Error(err)
	}

	// set up logger for this section
	log := sugar.Named("init")

	if os.Getenv("TOKEN") == "" {
		return cli.Exit("No TOKEN provided in the environment.", 1)
	}
	if os.Getenv("DATABASE_URL") == "" {
		return cli.Exit("No DATABASE_URL provided in the environment.", 1)
	}

	var owners []discord.UserID
	for _, s := range strings.Split(os.Getenv("OWNER"), ",") {
		sf, err := discord.ParseSnowflake(strings.TrimSpace(s))
		if err == nil {
			owners = append(owners, discord.UserID(sf))
		}
	}

	// create a new router
	r, err := bcr.NewWithIntents(
		os.Getenv("TOKEN"),
		owners,
		strings.Split(os.Getenv("PREFIXES"), ","),
		bot.Intents,
	)
	if err != nil {
		log.Fatalf("Error creating router: %v", err)
	}
	r.EmbedColor = bcr.ColourPurple

	// sentry, if enabled
	var hub *sentry.Hub
	if os.Getenv("SENTRY_URL") != "" {
		err = sentry.Init(sentry.ClientOptions{
			Dsn:     os.Getenv("SENTRY_URL"),
			Release: common.Version,
		})
		if err != nil {
			log.Fatalf("Error initialising Sentry: %v", err)
		}
		hub = sentry.CurrentHub()
	}

	// create a database connection
	database, err := db.New(os.Getenv("DATABASE_URL"), sugar, hub)
	if err != nil {
		log.Fatalf("Error opening database connection: %v", err)
	}
	log.Infof("Opened database connection.")

	// metrics, if enabled
	if url := os.Getenv("INFLUX_URL"); url != "" {
		database.Stats = stats.New(url,
			os.Getenv("INFLUX_TOKEN"), os.Getenv("INFLUX_ORG"), os.Getenv("INFLUX_DB"), sugar)
	}

	b, err := bot.New(os.Getenv("REDIS"), r, database, sugar, owners)
	if err != nil {
		log.Fatalf("Error creating bot: %v", err)
	}

	if database.Stats != nil {
		database.Stats.GuildCount = b.GuildCount
		// count every gateway event, not just the ones cogs listen for
		r.AddHandler(database.Stats.HandleEvent)
	}

	b.Extensions.Register(admin.Extension(b))
	b.Extensions.Register(core.Extension(b))

	for _, name := range []string{"commands/admin", "commands/core"} {
		if _, err := b.Extensions.Load(name); err != nil {
			log.Fatalf("Error loading %v: %v", name, err)
		}
	}

	// status endpoints, if enabled
	if port := os.Getenv("PORT"); port != "" {
		srv := web.New(sugar, b.Start, b.GuildCount, func() []string {
			var names []string
			for _, cog := range b.Extensions.Cogs() {
				names = append(names, cog.Name)
			}
			return names
		}, r.ShardManager.NumShards)

		go srv.Serve(":" + port)
	}

	// connect to discord
	if err := b.Open(context.Background()); err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}

	// Defer this to make sure that things are always cleanly shutdown even in the event of a crash
	defer func() {
		database.Close()
		log.Info("Closed database connection.")
		b.Close()
		log.Info("Disconnected from Discord.")
	}()

	log.Info("Connected to Discord. Press Ctrl-C or send an interrupt signal to stop.")

	s, _ := r.StateFromGuildID(0)
	botUser, _ := s.Me()
	log.Infof("User: %v#%v (%v)", botUser.Username, botUser.Discriminator, botUser.ID)
	r.Bot = botUser
	// normally creating a Context would do this, but as we set the user above, that doesn't work
	r.Prefixes = append(r.Prefixes, "<@"+r.Bot.ID.String()+">", "<@!"+r.Bot.ID.String()+">")

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt, os.Kill)
	<-sc

	log.Infof("Interrupt signal received. Shutting down...")
	return nil
}
