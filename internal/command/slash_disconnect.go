package command

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

type DisconnectCommand struct{}

func (c *DisconnectCommand) Name() string        { return "disconnect" }
func (c *DisconnectCommand) Description() string { return "Kick the bot out of the voice channel" }
func (c *DisconnectCommand) Aliases() []string   { return []string{"leave", "dc"} }
func (c *DisconnectCommand) Group() string       { return "music" }
func (c *DisconnectCommand) Category() string    { return "🎵 Music" }
func (c *DisconnectCommand) RequireAdmin() bool  { return false }

func (c *DisconnectCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (c *DisconnectCommand) Run(ctx interface{}) error {
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
	if err := player.Disconnect(reqCtx); err != nil {
		return RespondEphemeral(slash.Session, slash.Event, FriendlyError(err))
	}

	return Respond(slash.Session, slash.Event, "👋 See you next time!")
}

func init() {
	Register(&DisconnectCommand{}, WithGuildOnly(), WithCommandLogger())
}
