package command

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

type ClearCommand struct{}

func (c *ClearCommand) Name() string        { return "clear" }
func (c *ClearCommand) Description() string { return "Clear the queue, keeping the current track" }
func (c *ClearCommand) Aliases() []string   { return []string{} }
func (c *ClearCommand) Group() string       { return "music" }
func (c *ClearCommand) Category() string    { return "🎵 Music" }
func (c *ClearCommand) RequireAdmin() bool  { return false }

func (c *ClearCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (c *ClearCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	if ok, err := requireSameChannel(slash); !ok {
		return err
	}

	player := slash.Music.GetOrCreatePlayer(slash.GuildID())
	dropped := player.Clear()

	if dropped == 0 {
		return Respond(slash.Session, slash.Event, "The queue was already empty.")
	}
	return Respond(slash.Session, slash.Event,
		fmt.Sprintf("🧹 Cleared %d queued track(s).", dropped))
}

func init() {
	Register(&ClearCommand{}, WithGuildOnly(), WithCommandLogger())
}
