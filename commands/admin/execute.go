package admin

import (
	"strings"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/utils/sendpart"
	"github.com/starshine-sys/bcr"

	"github.com/steward-bot/steward/luaexec"
)

func (bot *Bot) execute(ctx *bcr.Context) (err error) {
	if !bot.IsOwner(ctx.Author.ID) {
		return
	}

	code := cleanupCode(ctx.RawArgs)

	res, err := bot.Exec.Run(code, bot.luaEnv(ctx))
	if err != nil {
		var (
			compileErr *luaexec.CompileError
			runtimeErr *luaexec.RuntimeError
		)
		switch {
		case errors.As(err, &compileErr):
			return bot.sendCode(ctx, compileErr.Error())
		case errors.As(err, &runtimeErr):
			return bot.sendCode(ctx, runtimeErr.Output+runtimeErr.Error())
		default:
			return bot.DB.ReportCtx(ctx, err)
		}
	}

	// when the chunk was silent, the reaction is the only feedback
	_ = ctx.State.React(ctx.Message.ChannelID, ctx.Message.ID, discord.APIEmoji("✅"))

	if res.Value == "" {
		if res.Output != "" {
			return bot.sendCode(ctx, res.Output)
		}
		return
	}
	return bot.sendCode(ctx, res.Output+res.Value)
}

// luaEnv is the variable scope injected into executed chunks.
func (bot *Bot) luaEnv(ctx *bcr.Context) luaexec.Env {
	env := luaexec.Env{
		"bot": map[string]interface{}{
			"id":     bot.Router.Bot.ID.String(),
			"name":   bot.Router.Bot.Username,
			"guilds": bot.GuildCount(),
		},
		"ctx": map[string]interface{}{
			"prefix":  ctx.Prefix,
			"command": strings.Join(ctx.FullCommandPath, " "),
		},
		"author": map[string]interface{}{
			"id":      ctx.Author.ID.String(),
			"tag":     ctx.Author.Tag(),
			"mention": ctx.Author.Mention(),
		},
		"message": map[string]interface{}{
			"id":      ctx.Message.ID.String(),
			"content": ctx.Message.Content,
		},
		"cog": "Admin",
	}

	if ctx.Channel != nil {
		env["channel"] = map[string]interface{}{
			"id":      ctx.Channel.ID.String(),
			"name":    ctx.Channel.Name,
			"mention": ctx.Channel.ID.Mention(),
		}
	}
	if ctx.Guild != nil {
		env["guild"] = map[string]interface{}{
			"id":   ctx.Guild.ID.String(),
			"name": ctx.Guild.Name,
		}
	}

	return env
}

// sendCode sends body in a fenced code block, falling back to a file when the
// block would be over the message length limit.
func (bot *Bot) sendCode(ctx *bcr.Context, body string) (err error) {
	if block, ok := codeBlock(body); ok {
		_, err = ctx.Send(block)
		return
	}

	_, err = ctx.State.SendMessageComplex(ctx.Message.ChannelID, api.SendMessageData{
		Files: []sendpart.File{{
			Name:   "ev.txt",
			Reader: strings.NewReader(body),
		}},
	})
	return
}

// codeBlock renders body as a fenced block, reporting whether it fits in a
// single message.
func codeBlock(body string) (string, bool) {
	block := "```lua\n" + body + "\n```"
	return block, len(block) <= 2000
}

// cleanupCode strips code fences, or stray backticks, from a code argument.
func cleanupCode(content string) string {
	if strings.HasPrefix(content, "```") && strings.HasSuffix(content, "```") && len(content) > 6 {
		lines := strings.Split(content, "\n")
		if content[len(content)-4] == '\n' {
			return strings.Join(lines[1:len(lines)-1], "\n")
		}
		return strings.TrimRight(strings.Join(lines[1:], "\n"), "`")
	}
	return strings.Trim(content, "` \n")
}
