package command

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

func textOption() []*discordgo.ApplicationCommandOption {
	return []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "text",
			Description: "Text to transform",
			Required:    true,
		},
	}
}

type MockCommand struct{}

func (c *MockCommand) Name() string        { return "mock" }
func (c *MockCommand) Description() string { return "mAkE tExT lOoK lIkE tHiS" }
func (c *MockCommand) Aliases() []string   { return []string{} }
func (c *MockCommand) Group() string       { return "fun" }
func (c *MockCommand) Category() string    { return "🎭 Fun" }
func (c *MockCommand) RequireAdmin() bool  { return false }

func (c *MockCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name: c.Name(), Description: c.Description(), Options: textOption(),
	}
}

func (c *MockCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	return Respond(slash.Session, slash.Event, mockText(slash.StringOption("text")))
}

type InverseCommand struct{}

func (c *InverseCommand) Name() string        { return "inverse" }
func (c *InverseCommand) Description() string { return "fLIP THE CASE OF EVERY LETTER" }
func (c *InverseCommand) Aliases() []string   { return []string{} }
func (c *InverseCommand) Group() string       { return "fun" }
func (c *InverseCommand) Category() string    { return "🎭 Fun" }
func (c *InverseCommand) RequireAdmin() bool  { return false }

func (c *InverseCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name: c.Name(), Description: c.Description(), Options: textOption(),
	}
}

func (c *InverseCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	return Respond(slash.Session, slash.Event, inverseText(slash.StringOption("text")))
}

type SpacingCommand struct{}

func (c *SpacingCommand) Name() string        { return "spacing" }
func (c *SpacingCommand) Description() string { return "s p r e a d  t e x t  o u t" }
func (c *SpacingCommand) Aliases() []string   { return []string{} }
func (c *SpacingCommand) Group() string       { return "fun" }
func (c *SpacingCommand) Category() string    { return "🎭 Fun" }
func (c *SpacingCommand) RequireAdmin() bool  { return false }

func (c *SpacingCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name: c.Name(), Description: c.Description(), Options: textOption(),
	}
}

func (c *SpacingCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	return Respond(slash.Session, slash.Event, spacingText(slash.StringOption("text")))
}

func init() {
	Register(&MockCommand{}, WithCommandLogger())
	Register(&InverseCommand{}, WithCommandLogger())
	Register(&SpacingCommand{}, WithCommandLogger())
}
