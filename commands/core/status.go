package core

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/session/shard"
	"github.com/diamondburned/arikawa/v3/state"
)

// launched at most once per process, so a cog reload doesn't stack loops
var statusOnce sync.Once

func (bot *Bot) ready(*gateway.ReadyEvent) {
	statusOnce.Do(func() {
		go bot.updateStatusLoop()
	})
}

func (bot *Bot) updateStatusLoop() {
	time.Sleep(5 * time.Second)

	for {
		guildCount := bot.GuildCount()

		shardNumber := 0
		bot.Router.ShardManager.ForEach(func(s shard.Shard) {
			state := s.(*state.State)

			str := fmt.Sprintf("%vhelp", bot.CanonicalPrefix())
			if guildCount != 0 {
				str += fmt.Sprintf(" | in %v servers", guildCount)
			}

			i := shardNumber
			shardNumber++

			go func() {
				s := str
				if bot.Router.ShardManager.NumShards() > 1 {
					s = fmt.Sprintf("%v | shard #%v", s, i)
				}

				err := state.Gateway().Send(context.Background(), &gateway.UpdatePresenceCommand{
					Status: discord.OnlineStatus,
					Activities: []discord.Activity{{
						Name: s,
						Type: discord.GameActivity,
					}},
				})
				if err != nil {
					bot.Sugar.Errorf("Error setting status for shard #%v: %v", i, err)
				}
			}()
		})

		time.Sleep(10 * time.Minute)
	}
}
