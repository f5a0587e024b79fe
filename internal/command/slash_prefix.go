package command

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

type PrefixCommand struct{}

func (c *PrefixCommand) Name() string        { return "prefix" }
func (c *PrefixCommand) Description() string { return "Show or change the text command prefix" }
func (c *PrefixCommand) Aliases() []string   { return []string{} }
func (c *PrefixCommand) Group() string       { return "settings" }
func (c *PrefixCommand) Category() string    { return "⚙️ Settings" }
func (c *PrefixCommand) RequireAdmin() bool  { return true }

func (c *PrefixCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "new",
				Description: "New prefix, up to 5 characters (omit to just show the current one)",
			},
		},
	}
}

func (c *PrefixCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	newPrefix := slash.StringOption("new")
	if newPrefix == "" {
		current, err := slash.Storage.Prefix(slash.GuildID())
		if err != nil {
			return RespondEphemeral(slash.Session, slash.Event, "Couldn't read the prefix for this server.")
		}
		return Respond(slash.Session, slash.Event, fmt.Sprintf("The prefix here is `%s`.", current))
	}

	if len(newPrefix) > 5 {
		return RespondEphemeral(slash.Session, slash.Event, "Keep the prefix to 5 characters or fewer.")
	}
	if err := slash.Storage.SetPrefix(slash.GuildID(), newPrefix); err != nil {
		return RespondEphemeral(slash.Session, slash.Event, "Couldn't save the new prefix.")
	}
	return Respond(slash.Session, slash.Event, fmt.Sprintf("Prefix changed to `%s`.", newPrefix))
}

func init() {
	Register(&PrefixCommand{}, WithGuildOnly(), WithAdminOnly(), WithCommandLogger())
}
