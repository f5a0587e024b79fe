// Package voice tracks which voice channel the bot occupies per guild and
// owns the join/leave lifecycle against the voice transport and the audio
// node. At most one session exists per guild; a session existing implies both
// the transport connection and the node session are live.
package voice

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/kangalioo/CourtJester/internal/music"
)

// Transport is the chat platform's voice gateway: it moves the bot in and out
// of voice channels. Implemented by the discord layer.
type Transport interface {
	Join(ctx context.Context, guildID, channelID string) error
	Leave(ctx context.Context, guildID string) error
}

// Node owns the audio-node playback context paired with a voice connection.
type Node interface {
	CreateSession(ctx context.Context, guildID string) error
	DestroySession(ctx context.Context, guildID string) error
}

// Session is the bot's live voice presence in one guild.
type Session struct {
	GuildID   string
	ChannelID string
	JoinedAt  time.Time
}

// Registry holds all live sessions. Safe for concurrent use; different
// guilds never contend beyond the brief map access.
type Registry struct {
	transport Transport
	node      Node

	mu       sync.Mutex
	sessions map[string]*Session
	joining  map[string]bool
}

// NewRegistry creates an empty Registry over the given collaborators.
func NewRegistry(transport Transport, node Node) *Registry {
	return &Registry{
		transport: transport,
		node:      node,
		sessions:  make(map[string]*Session),
		joining:   make(map[string]bool),
	}
}

// Join connects the bot to a voice channel and creates the paired node
// session. If the node session cannot be created the transport connection is
// torn down before returning, so a failed join never leaves partial state.
func (r *Registry) Join(ctx context.Context, guildID, channelID string) (*Session, error) {
	r.mu.Lock()
	if _, ok := r.sessions[guildID]; ok {
		r.mu.Unlock()
		return nil, music.ErrAlreadyConnected
	}
	if r.joining[guildID] {
		r.mu.Unlock()
		return nil, music.ErrAlreadyConnected
	}
	r.joining[guildID] = true
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		delete(r.joining, guildID)
		r.mu.Unlock()
	}()

	if err := r.transport.Join(ctx, guildID, channelID); err != nil {
		return nil, fmt.Errorf("voice transport join failed: %w", err)
	}

	if err := r.node.CreateSession(ctx, guildID); err != nil {
		// No orphaned transport connections.
		if leaveErr := r.transport.Leave(ctx, guildID); leaveErr != nil {
			log.Printf("[Voice] Rollback leave failed | guild=%s err=%v", guildID, leaveErr)
		}
		return nil, fmt.Errorf("audio node session failed: %w", err)
	}

	s := &Session{GuildID: guildID, ChannelID: channelID, JoinedAt: time.Now()}
	r.mu.Lock()
	r.sessions[guildID] = s
	r.mu.Unlock()

	log.Printf("[Voice] Joined | guild=%s channel=%s", guildID, channelID)
	return s, nil
}

// Leave destroys the guild's node session and transport connection together.
// Both teardown steps are attempted even if one fails; the first failure is
// surfaced after both ran.
func (r *Registry) Leave(ctx context.Context, guildID string) error {
	r.mu.Lock()
	_, ok := r.sessions[guildID]
	if !ok {
		r.mu.Unlock()
		return music.ErrNotConnected
	}
	delete(r.sessions, guildID)
	r.mu.Unlock()

	var first error
	if err := r.node.DestroySession(ctx, guildID); err != nil {
		first = fmt.Errorf("audio node teardown failed: %w", err)
	}
	if err := r.transport.Leave(ctx, guildID); err != nil && first == nil {
		first = fmt.Errorf("voice transport leave failed: %w", err)
	}

	log.Printf("[Voice] Left | guild=%s", guildID)
	return first
}

// Drop removes a session record after an external disconnect (kicked from the
// channel, node websocket closed). The transport leave is best-effort; the
// node side is assumed gone already. No-op when no session exists.
func (r *Registry) Drop(ctx context.Context, guildID string) {
	r.mu.Lock()
	_, ok := r.sessions[guildID]
	if ok {
		delete(r.sessions, guildID)
	}
	r.mu.Unlock()
	if !ok {
		return
	}

	if err := r.transport.Leave(ctx, guildID); err != nil {
		log.Printf("[Voice] Drop leave failed | guild=%s err=%v", guildID, err)
	}
	if err := r.node.DestroySession(ctx, guildID); err != nil {
		log.Printf("[Voice] Drop node teardown failed | guild=%s err=%v", guildID, err)
	}
	log.Printf("[Voice] Session dropped after external disconnect | guild=%s", guildID)
}

// Channel returns the bot's voice channel for the guild, and whether the bot
// is connected at all. Callers use this to tell "bot absent" apart from
// "channel mismatch".
func (r *Registry) Channel(guildID string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[guildID]
	if !ok {
		return "", false
	}
	return s.ChannelID, true
}

// SameChannel reports whether userChannelID matches the bot's channel.
// Returns ErrNotConnected when the bot has no session in the guild.
func (r *Registry) SameChannel(guildID, userChannelID string) (bool, error) {
	ch, ok := r.Channel(guildID)
	if !ok {
		return false, music.ErrNotConnected
	}
	return ch == userChannelID, nil
}
