package command

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/kangalioo/CourtJester/pkg/util"
)

type SeekCommand struct{}

func (c *SeekCommand) Name() string        { return "seek" }
func (c *SeekCommand) Description() string { return "Jump to a timestamp in the current track" }
func (c *SeekCommand) Aliases() []string   { return []string{} }
func (c *SeekCommand) Group() string       { return "music" }
func (c *SeekCommand) Category() string    { return "🎵 Music" }
func (c *SeekCommand) RequireAdmin() bool  { return false }

func (c *SeekCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "timestamp",
				Description: "Position to jump to, e.g. 1:23 or 1:02:03",
				Required:    true,
			},
		},
	}
}

func (c *SeekCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	if ok, err := requireSameChannel(slash); !ok {
		return err
	}

	position, err := util.ParseTimestamp(slash.StringOption("timestamp"))
	if err != nil {
		return RespondEphemeral(slash.Session, slash.Event,
			"That timestamp doesn't look right. Try `ss`, `mm:ss` or `hh:mm:ss`.")
	}

	reqCtx, cancel := commandContext()
	defer cancel()

	player := slash.Music.GetOrCreatePlayer(slash.GuildID())
	if err := player.Seek(reqCtx, position); err != nil {
		return RespondEphemeral(slash.Session, slash.Event, FriendlyError(err))
	}

	return Respond(slash.Session, slash.Event,
		fmt.Sprintf("⏩ Jumped to %s.", util.FormatTrackLength(position.Milliseconds())))
}

func init() {
	Register(&SeekCommand{}, WithGuildOnly(), WithCommandLogger())
}
