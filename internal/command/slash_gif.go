package command

import (
	"fmt"
	"math/rand"

	"github.com/bwmarrin/discordgo"
)

type GifCommand struct{}

func (c *GifCommand) Name() string        { return "gif" }
func (c *GifCommand) Description() string { return "Post a random gif matching your search" }
func (c *GifCommand) Aliases() []string   { return []string{} }
func (c *GifCommand) Group() string       { return "media" }
func (c *GifCommand) Category() string    { return "🎬 Media" }
func (c *GifCommand) RequireAdmin() bool  { return false }

func (c *GifCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "query",
				Description: "What to search for",
				Required:    true,
			},
		},
	}
}

func (c *GifCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	if slash.Tenor == nil {
		return RespondEphemeral(slash.Session, slash.Event, "Gif search isn't configured on this bot.")
	}

	query := slash.StringOption("query")

	reqCtx, cancel := commandContext()
	defer cancel()

	nsfw := false
	if ch, err := slash.Session.State.Channel(slash.Event.ChannelID); err == nil {
		nsfw = ch.NSFW
	}

	gifs, err := slash.Tenor.Search(reqCtx, query, 20, nsfw)
	if err != nil {
		return RespondEphemeral(slash.Session, slash.Event, "Tenor isn't answering right now, try again later.")
	}
	if len(gifs) == 0 {
		return RespondEphemeral(slash.Session, slash.Event, fmt.Sprintf("No gifs found for **%s**.", query))
	}

	pick := gifs[rand.Intn(len(gifs))]
	return Respond(slash.Session, slash.Event, pick.URL)
}

func init() {
	Register(&GifCommand{}, WithGuildOnly(), WithCommandLogger())
}
