package command

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

type PauseCommand struct{}

func (c *PauseCommand) Name() string        { return "pause" }
func (c *PauseCommand) Description() string { return "Pause the current track" }
func (c *PauseCommand) Aliases() []string   { return []string{} }
func (c *PauseCommand) Group() string       { return "music" }
func (c *PauseCommand) Category() string    { return "🎵 Music" }
func (c *PauseCommand) RequireAdmin() bool  { return false }

func (c *PauseCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (c *PauseCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	if ok, err := requireSameChannel(slash); !ok {
		return err
	}

	reqCtx, cancel := commandContext()
	defer cancel()

	player := slash.Music.GetOrCreatePlayer(slash.GuildID())
	if err := player.Pause(reqCtx); err != nil {
		return RespondEphemeral(slash.Session, slash.Event, FriendlyError(err))
	}

	return Respond(slash.Session, slash.Event, "⏸️ Paused. Resume with `/resume`.")
}

func init() {
	Register(&PauseCommand{}, WithGuildOnly(), WithCommandLogger())
}
