package command

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

type MangaCommand struct{}

func (c *MangaCommand) Name() string        { return "manga" }
func (c *MangaCommand) Description() string { return "Look a manga up on MyAnimeList" }
func (c *MangaCommand) Aliases() []string   { return []string{} }
func (c *MangaCommand) Group() string       { return "media" }
func (c *MangaCommand) Category() string    { return "🎬 Media" }
func (c *MangaCommand) RequireAdmin() bool  { return false }

func (c *MangaCommand) SlashDefinition() *discordgo.ApplicationCommand {
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

func (c *MangaCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	title := slash.StringOption("title")

	reqCtx, cancel := commandContext()
	defer cancel()

	entries, err := slash.Jikan.SearchManga(reqCtx, title, 1)
	if err != nil {
		return RespondEphemeral(slash.Session, slash.Event, "The manga database isn't answering right now, try again later.")
	}
	if len(entries) == 0 {
		return RespondEphemeral(slash.Session, slash.Event, fmt.Sprintf("No manga found for **%s**.", title))
	}

	return RespondEmbed(slash.Session, slash.Event, mediaEmbed(entries[0], true))
}

func init() {
	Register(&MangaCommand{}, WithGuildOnly(), WithCommandLogger())
}
