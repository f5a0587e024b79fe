package command

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

type PingCommand struct{}

func (c *PingCommand) Name() string        { return "ping" }
func (c *PingCommand) Description() string { return "Check if the bot is alive" }
func (c *PingCommand) Aliases() []string   { return []string{} }
func (c *PingCommand) Group() string       { return "core" }
func (c *PingCommand) Category() string    { return "🕯️ Information" }
func (c *PingCommand) RequireAdmin() bool  { return false }

func (c *PingCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (c *PingCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	return Respond(slash.Session, slash.Event,
		fmt.Sprintf("🏓 Pong! Gateway latency: %dms", slash.Session.HeartbeatLatency().Milliseconds()))
}

func init() {
	Register(&PingCommand{})
}
