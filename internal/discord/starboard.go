package discord

import (
	"fmt"
	"log"
	"sync"

	"github.com/bwmarrin/discordgo"

	"github.com/kangalioo/CourtJester/internal/command"
)

const starEmoji = "⭐"

// starredMessages remembers which messages already landed on the board.
// Tracking is in-memory, so a restart may repost a message that gets a fresh
// star afterwards.
var starredMessages = struct {
	sync.Mutex
	seen map[string]bool
}{seen: make(map[string]bool)}

// onMessageReactionAdd reposts messages to the guild's starboard channel once
// they collect enough star reactions.
func (b *Bot) onMessageReactionAdd(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
	if r.GuildID == "" || r.Emoji.Name != starEmoji {
		return
	}

	cfg, err := b.storage.Starboard(r.GuildID)
	if err != nil || !cfg.Enabled || cfg.ChannelID == "" {
		return
	}
	if r.ChannelID == cfg.ChannelID {
		return
	}

	msg, err := s.ChannelMessage(r.ChannelID, r.MessageID)
	if err != nil {
		log.Printf("[WARN] Starboard can't fetch message %s: %v", r.MessageID, err)
		return
	}

	stars := 0
	for _, reaction := range msg.Reactions {
		if reaction.Emoji.Name == starEmoji {
			stars = reaction.Count
			break
		}
	}
	if stars < cfg.Threshold {
		return
	}

	starredMessages.Lock()
	already := starredMessages.seen[msg.ID]
	starredMessages.seen[msg.ID] = true
	starredMessages.Unlock()
	if already {
		return
	}

	embedMsg := &discordgo.MessageEmbed{
		Author: &discordgo.MessageEmbedAuthor{
			Name:    msg.Author.Username,
			IconURL: msg.Author.AvatarURL("64"),
		},
		Description: msg.Content,
		Color:       command.EmbedColor,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Source", Value: fmt.Sprintf("[Jump to message](https://discord.com/channels/%s/%s/%s)", r.GuildID, r.ChannelID, msg.ID)},
		},
	}
	if len(msg.Attachments) > 0 && msg.Attachments[0].Width > 0 {
		embedMsg.Image = &discordgo.MessageEmbedImage{URL: msg.Attachments[0].URL}
	}

	content := fmt.Sprintf("%s %d | <#%s>", starEmoji, stars, r.ChannelID)
	if _, err := s.ChannelMessageSendComplex(cfg.ChannelID, &discordgo.MessageSend{
		Content: content,
		Embeds:  []*discordgo.MessageEmbed{embedMsg},
	}); err != nil {
		log.Printf("[ERR] Starboard post failed for guild %s: %v", r.GuildID, err)
	}
}
