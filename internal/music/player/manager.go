// Package player composes the voice registry, the playback queue, the idle
// timer controller and track resolution into per-guild players. All queue and
// session mutations for one guild are serialized through that guild's player;
// different guilds never share a lock.
package player

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/kangalioo/CourtJester/internal/music"
	"github.com/kangalioo/CourtJester/internal/music/idletimer"
	"github.com/kangalioo/CourtJester/internal/music/lavalink"
	"github.com/kangalioo/CourtJester/internal/music/voice"
)

// AudioNode is the playback-control surface of the audio node.
type AudioNode interface {
	Play(ctx context.Context, guildID string, track music.Track) error
	Stop(ctx context.Context, guildID string) error
	Pause(ctx context.Context, guildID string) error
	Resume(ctx context.Context, guildID string) error
	Seek(ctx context.Context, guildID string, positionMS int64) error
}

// TrackResolver turns raw user input into a playable track.
type TrackResolver interface {
	Resolve(ctx context.Context, raw string) (music.Track, error)
}

// DefaultIdleTimeout is how long a guild may sit with nothing playing before
// the bot disconnects itself.
const DefaultIdleTimeout = 300 * time.Second

// defaultWatchdogInterval is the period of the belt-and-suspenders check that
// arms the idle timer when a guild drained without any explicit stop/skip.
const defaultWatchdogInterval = 60 * time.Second

// Manager owns one Player per guild.
type Manager struct {
	node     AudioNode
	sessions *voice.Registry
	resolver TrackResolver
	timers   *idletimer.Controller

	idleTimeout      time.Duration
	watchdogInterval time.Duration

	mu      sync.RWMutex
	players map[string]*Player
}

// NewManager wires a Manager over its collaborators. A zero idleTimeout
// falls back to DefaultIdleTimeout.
func NewManager(node AudioNode, sessions *voice.Registry, resolver TrackResolver, idleTimeout time.Duration) *Manager {
	if idleTimeout <= 0 {
		idleTimeout = DefaultIdleTimeout
	}
	return &Manager{
		node:             node,
		sessions:         sessions,
		resolver:         resolver,
		timers:           idletimer.New(),
		idleTimeout:      idleTimeout,
		watchdogInterval: defaultWatchdogInterval,
		players:          make(map[string]*Player),
	}
}

// Sessions exposes the voice registry for callers that need colocation checks.
func (m *Manager) Sessions() *voice.Registry {
	return m.sessions
}

// GetOrCreatePlayer gets or creates the guild's player.
func (m *Manager) GetOrCreatePlayer(guildID string) *Player {
	m.mu.RLock()
	p, ok := m.players[guildID]
	m.mu.RUnlock()
	if ok {
		return p
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.players[guildID]; ok {
		return p
	}
	p = &Player{guildID: guildID, m: m}
	m.players[guildID] = p
	return p
}

// player returns the guild's player if one was ever created.
func (m *Manager) player(guildID string) (*Player, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.players[guildID]
	return p, ok
}

// armIdle schedules the guild's idle disconnect, replacing any earlier timer.
func (m *Manager) armIdle(guildID string) {
	m.timers.Arm(guildID, m.idleTimeout, func() {
		m.idleDisconnect(guildID)
	})
}

// idleDisconnect is the timer's fire action: tear the session down and wipe
// the guild's queue.
func (m *Manager) idleDisconnect(guildID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := m.sessions.Leave(ctx, guildID); err != nil && err != music.ErrNotConnected {
		log.Printf("[Player] Idle disconnect teardown error | guild=%s err=%v", guildID, err)
	}
	if p, ok := m.player(guildID); ok {
		p.reset()
	}
	log.Printf("[Player] Disconnected after idle timeout | guild=%s", guildID)
}

// OnTrackStart implements lavalink.EventHandler.
func (m *Manager) OnTrackStart(guildID string, track music.Track) {
	log.Printf("[Player] Track started | guild=%s title=%q", guildID, track.Title)
}

// OnTrackEnd implements lavalink.EventHandler. Only natural ends advance the
// queue; ends the bot itself caused (replaced, stopped, cleanup) already had
// their state transition applied by the command that caused them.
func (m *Manager) OnTrackEnd(guildID string, reason string) {
	switch reason {
	case lavalink.ReasonReplaced, lavalink.ReasonStopped, lavalink.ReasonCleanup:
		return
	}

	p, ok := m.player(guildID)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	p.advance(ctx)
}

// OnWebSocketClosed implements lavalink.EventHandler. An unsolicited voice
// disconnect is treated as an implicit leave: session record, queue and timer
// are all reconciled to empty instead of going stale.
func (m *Manager) OnWebSocketClosed(guildID string, code int, reason string) {
	log.Printf("[Player] Voice websocket closed | guild=%s code=%d reason=%q", guildID, code, reason)
	m.HandleExternalDisconnect(guildID)
}

// HandleExternalDisconnect reconciles a guild whose voice session ended
// without any bot command asking for it, e.g. an admin dragging the bot out.
func (m *Manager) HandleExternalDisconnect(guildID string) {
	m.timers.Cancel(guildID)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	m.sessions.Drop(ctx, guildID)

	if p, ok := m.player(guildID); ok {
		p.reset()
	}
}
