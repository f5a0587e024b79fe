package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// voiceTransport moves the bot between voice channels over the Discord
// gateway. The actual audio never touches this process; the audio node picks
// the connection up from the voice credential events forwarded below.
type voiceTransport struct {
	dg *discordgo.Session
}

func (t *voiceTransport) Join(ctx context.Context, guildID, channelID string) error {
	if err := t.dg.ChannelVoiceJoinManual(guildID, channelID, false, true); err != nil {
		return fmt.Errorf("voice join failed: %w", err)
	}
	return nil
}

func (t *voiceTransport) Leave(ctx context.Context, guildID string) error {
	if err := t.dg.ChannelVoiceJoinManual(guildID, "", false, true); err != nil {
		return fmt.Errorf("voice leave failed: %w", err)
	}
	return nil
}

// onVoiceServerUpdate forwards the voice server token to the audio node.
func (b *Bot) onVoiceServerUpdate(s *discordgo.Session, e *discordgo.VoiceServerUpdate) {
	b.lava.HandleVoiceServerUpdate(e.GuildID, e.Token, e.Endpoint)
}

// onVoiceStateUpdate watches the bot's own voice state. Joins carry the
// session ID the audio node needs; a vanished channel means someone external
// disconnected the bot and the guild's player has to be reconciled.
func (b *Bot) onVoiceStateUpdate(s *discordgo.Session, e *discordgo.VoiceStateUpdate) {
	if e.UserID != s.State.User.ID {
		return
	}
	if e.ChannelID == "" {
		if _, connected := b.music.Sessions().Channel(e.GuildID); connected {
			b.music.HandleExternalDisconnect(e.GuildID)
		}
		return
	}
	b.lava.HandleVoiceStateUpdate(e.GuildID, e.SessionID)
}
