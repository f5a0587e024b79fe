package command

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

type RemoveCommand struct{}

func (c *RemoveCommand) Name() string        { return "remove" }
func (c *RemoveCommand) Description() string { return "Remove one track from the queue by its number" }
func (c *RemoveCommand) Aliases() []string   { return []string{} }
func (c *RemoveCommand) Group() string       { return "music" }
func (c *RemoveCommand) Category() string    { return "🎵 Music" }
func (c *RemoveCommand) RequireAdmin() bool  { return false }

func (c *RemoveCommand) SlashDefinition() *discordgo.ApplicationCommand {
	minPosition := float64(1)
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "position",
				Description: "Queue number as shown by /queue",
				Required:    true,
				MinValue:    &minPosition,
			},
		},
	}
}

func (c *RemoveCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	if ok, err := requireSameChannel(slash); !ok {
		return err
	}

	player := slash.Music.GetOrCreatePlayer(slash.GuildID())
	track, err := player.Remove(int(slash.IntOption("position")))
	if err != nil {
		return RespondEphemeral(slash.Session, slash.Event, FriendlyError(err))
	}

	return Respond(slash.Session, slash.Event,
		fmt.Sprintf("🗑️ Removed **%s** from the queue.", track.Title))
}

func init() {
	Register(&RemoveCommand{}, WithGuildOnly(), WithCommandLogger())
}
