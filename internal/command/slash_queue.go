package command

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/kangalioo/CourtJester/pkg/util"
)

// queuePageSize caps how many upcoming tracks one embed shows.
const queuePageSize = 10

type QueueCommand struct{}

func (c *QueueCommand) Name() string        { return "queue" }
func (c *QueueCommand) Description() string { return "Show the current track and what's queued" }
func (c *QueueCommand) Aliases() []string   { return []string{"q", "nowplaying"} }
func (c *QueueCommand) Group() string       { return "music" }
func (c *QueueCommand) Category() string    { return "🎵 Music" }
func (c *QueueCommand) RequireAdmin() bool  { return false }

func (c *QueueCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (c *QueueCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	player := slash.Music.GetOrCreatePlayer(slash.GuildID())

	current, playing := player.NowPlaying()
	if !playing {
		return RespondEphemeral(slash.Session, slash.Event, "Nothing is playing right now!")
	}

	state := "▶️"
	if player.Paused() {
		state = "⏸️"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s [%s](%s) `%s`\n", state, current.Title, current.URI,
		util.FormatTrackLength(current.LengthMS))

	upcoming := player.Upcoming()
	if len(upcoming) > 0 {
		sb.WriteString("\n**Up next**\n")
		for i, track := range upcoming {
			if i == queuePageSize {
				fmt.Fprintf(&sb, "…and %d more.\n", len(upcoming)-queuePageSize)
				break
			}
			fmt.Fprintf(&sb, "`%d.` [%s](%s) `%s`\n", i+1, track.Title, track.URI,
				util.FormatTrackLength(track.LengthMS))
		}
	}

	return RespondEmbed(slash.Session, slash.Event, &discordgo.MessageEmbed{
		Title:       "Queue",
		Description: sb.String(),
		Color:       EmbedColor,
	})
}

func init() {
	Register(&QueueCommand{}, WithGuildOnly(), WithCommandLogger())
}
