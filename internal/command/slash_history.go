package command

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

type HistoryCommand struct{}

func (c *HistoryCommand) Name() string        { return "history" }
func (c *HistoryCommand) Description() string { return "Show recent command invocations" }
func (c *HistoryCommand) Aliases() []string   { return []string{} }
func (c *HistoryCommand) Group() string       { return "settings" }
func (c *HistoryCommand) Category() string    { return "⚙️ Settings" }
func (c *HistoryCommand) RequireAdmin() bool  { return true }

func (c *HistoryCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (c *HistoryCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	records, err := slash.Storage.CommandHistory(slash.GuildID())
	if err != nil {
		return RespondEphemeral(slash.Session, slash.Event, "Couldn't read the command history.")
	}
	if len(records) == 0 {
		return RespondEphemeral(slash.Session, slash.Event, "No commands recorded yet.")
	}

	var sb strings.Builder
	for _, rec := range records {
		fmt.Fprintf(&sb, "`%s` **%s** by %s in <#%s>\n",
			rec.Datetime.Format("2006-01-02 15:04"), rec.Command, rec.Username, rec.ChannelID)
	}

	return RespondEmbed(slash.Session, slash.Event, &discordgo.MessageEmbed{
		Title:       "Command history",
		Description: sb.String(),
		Color:       EmbedColor,
	})
}

func init() {
	Register(&HistoryCommand{}, WithGuildOnly(), WithAdminOnly())
}
