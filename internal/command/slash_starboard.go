package command

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/kangalioo/CourtJester/internal/storage"
)

type StarboardCommand struct{}

func (c *StarboardCommand) Name() string        { return "starboard" }
func (c *StarboardCommand) Description() string { return "Configure the starboard for this server" }
func (c *StarboardCommand) Aliases() []string   { return []string{} }
func (c *StarboardCommand) Group() string       { return "settings" }
func (c *StarboardCommand) Category() string    { return "⚙️ Settings" }
func (c *StarboardCommand) RequireAdmin() bool  { return true }

func (c *StarboardCommand) SlashDefinition() *discordgo.ApplicationCommand {
	minStars := float64(1)
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "enable",
				Description: "Turn the starboard on",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:         discordgo.ApplicationCommandOptionChannel,
						Name:         "channel",
						Description:  "Channel starred messages get reposted to",
						Required:     true,
						ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildText},
					},
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "threshold",
						Description: "Stars needed before a message lands on the board (default 3)",
						MinValue:    &minStars,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "disable",
				Description: "Turn the starboard off",
			},
		},
	}
}

func (c *StarboardCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	options := slash.Event.ApplicationCommandData().Options
	if len(options) == 0 {
		return RespondEphemeral(slash.Session, slash.Event, "Pick `enable` or `disable`.")
	}
	sub := options[0]

	switch sub.Name {
	case "enable":
		cfg := storage.StarboardConfig{Enabled: true, Threshold: 3}
		for _, opt := range sub.Options {
			switch opt.Name {
			case "channel":
				cfg.ChannelID = opt.ChannelValue(nil).ID
			case "threshold":
				cfg.Threshold = int(opt.IntValue())
			}
		}
		if err := slash.Storage.SetStarboard(slash.GuildID(), cfg); err != nil {
			return RespondEphemeral(slash.Session, slash.Event, "Couldn't save the starboard settings.")
		}
		return Respond(slash.Session, slash.Event,
			fmt.Sprintf("⭐ Starboard enabled in <#%s> at %d star(s).", cfg.ChannelID, cfg.Threshold))

	case "disable":
		if err := slash.Storage.SetStarboard(slash.GuildID(), storage.StarboardConfig{}); err != nil {
			return RespondEphemeral(slash.Session, slash.Event, "Couldn't save the starboard settings.")
		}
		return Respond(slash.Session, slash.Event, "Starboard disabled.")

	default:
		return RespondEphemeral(slash.Session, slash.Event, "Pick `enable` or `disable`.")
	}
}

func init() {
	Register(&StarboardCommand{}, WithGuildOnly(), WithAdminOnly(), WithCommandLogger())
}
