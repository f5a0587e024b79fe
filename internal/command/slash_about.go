package command

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/kangalioo/CourtJester/internal/version"
)

type AboutCommand struct{}

func (c *AboutCommand) Name() string        { return "about" }
func (c *AboutCommand) Description() string { return "Discover the origin of this bot" }
func (c *AboutCommand) Aliases() []string   { return []string{} }
func (c *AboutCommand) Group() string       { return "core" }
func (c *AboutCommand) Category() string    { return "🕯️ Information" }
func (c *AboutCommand) RequireAdmin() bool  { return false }

func (c *AboutCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (c *AboutCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	embedMsg := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("ℹ️ About %s", version.AppName),
		Description: "A jester for your court. Music, gifs and assorted nonsense.",
		Color:       EmbedColor,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Version", Value: version.Version, Inline: true},
			{Name: "Repository", Value: "https://github.com/kangalioo/CourtJester", Inline: false},
		},
	}

	return RespondEmbed(slash.Session, slash.Event, embedMsg)
}

func init() {
	Register(&AboutCommand{})
}
