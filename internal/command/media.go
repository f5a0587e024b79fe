package command

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/kangalioo/CourtJester/internal/apis"
)

// mediaEmbed renders a MyAnimeList entry. Synopses past Discord's embed
// comfort zone get cut at a word boundary.
func mediaEmbed(entry apis.MediaEntry, manga bool) *discordgo.MessageEmbed {
	synopsis := entry.Synopsis
	if runes := []rune(synopsis); len(runes) > 600 {
		synopsis = string(runes[:600]) + "…"
	}

	embedMsg := &discordgo.MessageEmbed{
		Title:       entry.Title,
		URL:         entry.URL,
		Description: synopsis,
		Color:       EmbedColor,
	}
	if entry.ImageURL != "" {
		embedMsg.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: entry.ImageURL}
	}
	if entry.Score > 0 {
		embedMsg.Fields = append(embedMsg.Fields, &discordgo.MessageEmbedField{
			Name: "Score", Value: fmt.Sprintf("%.2f", entry.Score), Inline: true,
		})
	}
	if manga && entry.Chapters > 0 {
		embedMsg.Fields = append(embedMsg.Fields, &discordgo.MessageEmbedField{
			Name: "Chapters", Value: fmt.Sprintf("%d", entry.Chapters), Inline: true,
		})
	}
	if !manga && entry.Episodes > 0 {
		embedMsg.Fields = append(embedMsg.Fields, &discordgo.MessageEmbedField{
			Name: "Episodes", Value: fmt.Sprintf("%d", entry.Episodes), Inline: true,
		})
	}
	return embedMsg
}
