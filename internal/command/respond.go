package command

import (
	"errors"

	"github.com/bwmarrin/discordgo"

	"github.com/kangalioo/CourtJester/internal/music"
)

// EmbedColor is the accent color for the bot's embeds.
const EmbedColor = 0x98fb98

// Respond sends a public message response to an interaction.
func Respond(s *discordgo.Session, i *discordgo.InteractionCreate, content string) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: content},
	})
}

// RespondEphemeral sends an ephemeral message response to an interaction.
func RespondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

// RespondEmbed sends a public embed response to an interaction.
func RespondEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Embeds: []*discordgo.MessageEmbed{embed}},
	})
}

// FriendlyError renders the music error taxonomy as user-facing text.
// Unmatched errors fall through to a generic line so internals never leak.
func FriendlyError(err error) string {
	switch {
	case errors.Is(err, music.ErrNoChannel):
		return "Please join a voice channel first!"
	case errors.Is(err, music.ErrWrongChannel):
		return "Please be in the same voice channel as me!"
	case errors.Is(err, music.ErrAlreadyConnected):
		return "Looks like I'm already in a voice channel! Please disconnect me before summoning me again!"
	case errors.Is(err, music.ErrNotConnected):
		return "The bot isn't connected to a voice channel! Please re-run join or play!"
	case errors.Is(err, music.ErrTrackNotFound):
		return "Couldn't find the track on Spotify! Check the URL?"
	case errors.Is(err, music.ErrNoResults):
		return "Couldn't find the track! Check the query?"
	case errors.Is(err, music.ErrInvalidPosition):
		return "This number doesn't exist in the queue!"
	case errors.Is(err, music.ErrNothingPlaying):
		return "Nothing is playing right now!"
	default:
		return "Something went wrong running that command."
	}
}
