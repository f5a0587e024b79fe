package command

import (
	"github.com/bwmarrin/discordgo"

	"github.com/kangalioo/CourtJester/internal/apis"
	"github.com/kangalioo/CourtJester/internal/music/player"
	"github.com/kangalioo/CourtJester/internal/storage"
)

// Command is one user-facing bot command.
type Command interface {
	Name() string
	Description() string
	Aliases() []string
	Group() string
	Category() string
	RequireAdmin() bool
	Run(ctx interface{}) error
}

// SlashProvider is implemented by commands that register a slash definition.
type SlashProvider interface {
	SlashDefinition() *discordgo.ApplicationCommand
}

// SlashContext is handed to a command when a slash interaction fires.
type SlashContext struct {
	Session *discordgo.Session
	Event   *discordgo.InteractionCreate
	Storage *storage.Storage
	Music   *player.Manager
	Tenor   *apis.Tenor
	Jikan   *apis.Jikan
}

// GuildID returns the guild the interaction came from.
func (c *SlashContext) GuildID() string {
	return c.Event.GuildID
}

// UserID returns the invoking user's ID.
func (c *SlashContext) UserID() string {
	if c.Event.Member != nil {
		return c.Event.Member.User.ID
	}
	if c.Event.User != nil {
		return c.Event.User.ID
	}
	return ""
}

// StringOption returns the named string option, or "" when absent.
func (c *SlashContext) StringOption(name string) string {
	for _, opt := range c.Event.ApplicationCommandData().Options {
		if opt.Name == name && opt.Type == discordgo.ApplicationCommandOptionString {
			return opt.StringValue()
		}
	}
	return ""
}

// IntOption returns the named integer option, or 0 when absent.
func (c *SlashContext) IntOption(name string) int64 {
	for _, opt := range c.Event.ApplicationCommandData().Options {
		if opt.Name == name && opt.Type == discordgo.ApplicationCommandOptionInteger {
			return opt.IntValue()
		}
	}
	return 0
}

// UserVoiceChannel returns the voice channel the invoking user currently sits
// in, or "" when they are in none.
func (c *SlashContext) UserVoiceChannel() string {
	guild, err := c.Session.State.Guild(c.GuildID())
	if err != nil {
		return ""
	}
	for _, vs := range guild.VoiceStates {
		if vs.UserID == c.UserID() {
			return vs.ChannelID
		}
	}
	return ""
}
