package discord

import (
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/kangalioo/CourtJester/internal/command"
)

// onMessageCreate handles the prefix-based text commands. The prefix is per
// guild (see the prefix slash command); only the lightweight text transforms
// and ping live here, everything else is slash-only.
func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || m.GuildID == "" {
		return
	}

	prefix, err := b.storage.Prefix(m.GuildID)
	if err != nil || prefix == "" || !strings.HasPrefix(m.Content, prefix) {
		return
	}

	fields := strings.Fields(strings.TrimPrefix(m.Content, prefix))
	if len(fields) == 0 {
		return
	}
	name := strings.ToLower(fields[0])
	rest := strings.Join(fields[1:], " ")

	var reply string
	switch {
	case name == "ping":
		reply = fmt.Sprintf("🏓 Pong! Gateway latency: %dms", s.HeartbeatLatency().Milliseconds())
	default:
		out, ok := command.Transform(name, rest)
		if !ok || rest == "" {
			return
		}
		reply = out
	}

	if _, err := s.ChannelMessageSend(m.ChannelID, reply); err != nil {
		log.Printf("[ERR] Failed to send text command reply: %v", err)
	}
}
