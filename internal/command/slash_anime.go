package command

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

type AnimeCommand struct{}

func (c *AnimeCommand) Name() string        { return "anime" }
func (c *AnimeCommand) Description() string { return "Look an anime up on MyAnimeList" }
func (c *AnimeCommand) Aliases() []string   { return []string{} }
func (c *AnimeCommand) Group() string       { return "media" }
func (c *AnimeCommand) Category() string    { return "🎬 Media" }
func (c *AnimeCommand) RequireAdmin() bool  { return false }

func (c *AnimeCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "title",
				Description: "Title to search for",
				Required:    true,
			},
		},
	}
}

func (c *AnimeCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	title := slash.StringOption("title")

	reqCtx, cancel := commandContext()
	defer cancel()

	entries, err := slash.Jikan.SearchAnime(reqCtx, title, 1)
	if err != nil {
		return RespondEphemeral(slash.Session, slash.Event, "The anime database isn't answering right now, try again later.")
	}
	if len(entries) == 0 {
		return RespondEphemeral(slash.Session, slash.Event, fmt.Sprintf("No anime found for **%s**.", title))
	}

	return RespondEmbed(slash.Session, slash.Event, mediaEmbed(entries[0], false))
}

func init() {
	Register(&AnimeCommand{}, WithGuildOnly(), WithCommandLogger())
}
