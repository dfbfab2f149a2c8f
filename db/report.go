package db

import (
	"fmt"
	"strings"
	"time"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	"github.com/starshine-sys/bcr"
)

// ErrorContext is the context for a reported error.
type ErrorContext struct {
	Event   string
	Command string

	UserID  discord.UserID
	GuildID discord.GuildID
}

// Report logs an error and captures it to Sentry if a hub is configured.
// The returned code is what users are shown; without Sentry it is a random
// UUID that only appears in the bot's own logs.
func (db *DB) Report(ctx ErrorContext, e error) (code string) {
	source := ctx.Event
	if source == "" {
		source = ctx.Command
	}

	code = uuid.New().String()

	if db.Hub == nil {
		db.Sugar.Errorf("Error in %v (code %v): %v", source, code, e)
		return code
	}

	hub := db.Hub.Clone()

	data := map[string]interface{}{}
	if ctx.Event != "" {
		data["event"] = ctx.Event
	}
	if ctx.Command != "" {
		data["command"] = ctx.Command
	}
	if ctx.GuildID.IsValid() {
		data["guild"] = ctx.GuildID
	}

	hub.ConfigureScope(func(scope *sentry.Scope) {
		if ctx.UserID.IsValid() {
			scope.SetUser(sentry.User{ID: ctx.UserID.String()})
			data["user"] = ctx.UserID
		}
	})

	hub.AddBreadcrumb(&sentry.Breadcrumb{
		Data:      data,
		Level:     sentry.LevelError,
		Timestamp: time.Now().UTC(),
	}, nil)

	if id := hub.CaptureException(e); id != nil {
		code = string(*id)
	}

	db.Sugar.Errorf("Error in %v (code %v): %v", source, code, e)
	return code
}

// ReportCtx reports an error from a command and tells the invoker the error
// code, if the channel allows it.
func (db *DB) ReportCtx(ctx *bcr.Context, e error) (err error) {
	code := db.Report(ErrorContext{
		Command: strings.Join(ctx.FullCommandPath, " "),
		UserID:  ctx.Author.ID,
		GuildID: ctx.Message.GuildID,
	}, e)

	_, err = ctx.Send(
		fmt.Sprintf("Error code: ``%v``", bcr.EscapeBackticks(code)),
		discord.Embed{
			Title:       "Internal error occurred",
			Description: "An internal error has occurred. If this issue persists, please contact the bot owner with the error code above.",
			Color:       bcr.ColourRed,
			Footer: &discord.EmbedFooter{
				Text: code,
			},
			Timestamp: discord.NowTimestamp(),
		},
	)
	return err
}
