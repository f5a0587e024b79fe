package command

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

type ResumeCommand struct{}

func (c *ResumeCommand) Name() string        { return "resume" }
func (c *ResumeCommand) Description() string { return "Resume a paused track" }
func (c *ResumeCommand) Aliases() []string   { return []string{"unpause"} }
func (c *ResumeCommand) Group() string       { return "music" }
func (c *ResumeCommand) Category() string    { return "🎵 Music" }
func (c *ResumeCommand) RequireAdmin() bool  { return false }

func (c *ResumeCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (c *ResumeCommand) Run(ctx interface{}) error {
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
	if err := player.Resume(reqCtx); err != nil {
		return RespondEphemeral(slash.Session, slash.Event, FriendlyError(err))
	}

	return Respond(slash.Session, slash.Event, "▶️ Resumed!")
}

func init() {
	Register(&ResumeCommand{}, WithGuildOnly(), WithCommandLogger())
}
