package command

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

type SummonCommand struct{}

func (c *SummonCommand) Name() string        { return "summon" }
func (c *SummonCommand) Description() string { return "Pull the bot into your voice channel" }
func (c *SummonCommand) Aliases() []string   { return []string{"join"} }
func (c *SummonCommand) Group() string       { return "music" }
func (c *SummonCommand) Category() string    { return "🎵 Music" }
func (c *SummonCommand) RequireAdmin() bool  { return false }

func (c *SummonCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (c *SummonCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	channelID := slash.UserVoiceChannel()
	if channelID == "" {
		return RespondEphemeral(slash.Session, slash.Event, "Please join a voice channel first!")
	}

	reqCtx, cancel := commandContext()
	defer cancel()

	player := slash.Music.GetOrCreatePlayer(slash.GuildID())
	if err := player.Summon(reqCtx, channelID); err != nil {
		return RespondEphemeral(slash.Session, slash.Event, FriendlyError(err))
	}

	return Respond(slash.Session, slash.Event, fmt.Sprintf("👋 Joined <#%s>!", channelID))
}

func init() {
	Register(&SummonCommand{}, WithGuildOnly(), WithCommandLogger())
}
