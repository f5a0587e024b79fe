package command

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

type SkipCommand struct{}

func (c *SkipCommand) Name() string        { return "skip" }
func (c *SkipCommand) Description() string { return "Skip to the next track in the queue" }
func (c *SkipCommand) Aliases() []string   { return []string{"next"} }
func (c *SkipCommand) Group() string       { return "music" }
func (c *SkipCommand) Category() string    { return "🎵 Music" }
func (c *SkipCommand) RequireAdmin() bool  { return false }

func (c *SkipCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (c *SkipCommand) Run(ctx interface{}) error {
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
	if err := player.Skip(reqCtx); err != nil {
		return RespondEphemeral(slash.Session, slash.Event, FriendlyError(err))
	}

	if track, playing := player.NowPlaying(); playing {
		return Respond(slash.Session, slash.Event,
			fmt.Sprintf("⏭️ Skipped! Now playing **%s**.", track.Title))
	}
	return Respond(slash.Session, slash.Event, "⏭️ Skipped! The queue is now empty.")
}

func init() {
	Register(&SkipCommand{}, WithGuildOnly(), WithCommandLogger())
}
