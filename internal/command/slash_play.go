package command

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/kangalioo/CourtJester/pkg/util"
)

type PlayCommand struct{}

func (c *PlayCommand) Name() string        { return "play" }
func (c *PlayCommand) Description() string { return "Play a track, or queue it if one is playing" }
func (c *PlayCommand) Aliases() []string   { return []string{"p"} }
func (c *PlayCommand) Group() string       { return "music" }
func (c *PlayCommand) Category() string    { return "🎵 Music" }
func (c *PlayCommand) RequireAdmin() bool  { return false }

func (c *PlayCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "query",
				Description: "Search terms, a direct link, or a Spotify track link",
				Required:    true,
			},
		},
	}
}

func (c *PlayCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	query := slash.StringOption("query")

	reqCtx, cancel := commandContext()
	defer cancel()

	player := slash.Music.GetOrCreatePlayer(slash.GuildID())
	track, started, err := player.Play(reqCtx, slash.UserVoiceChannel(), query)
	if err != nil {
		return RespondEphemeral(slash.Session, slash.Event, FriendlyError(err))
	}

	title := "Queued up!"
	if started {
		title = "Now playing!"
	}

	embedMsg := &discordgo.MessageEmbed{
		Title:       title,
		Description: fmt.Sprintf("[%s](%s)", track.Title, track.URI),
		Color:       EmbedColor,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Length", Value: util.FormatTrackLength(track.LengthMS), Inline: true},
		},
	}
	if track.Author != "" {
		embedMsg.Fields = append(embedMsg.Fields,
			&discordgo.MessageEmbedField{Name: "Artist", Value: track.Author, Inline: true})
	}

	return RespondEmbed(slash.Session, slash.Event, embedMsg)
}

func init() {
	Register(&PlayCommand{}, WithGuildOnly(), WithCommandLogger())
}
