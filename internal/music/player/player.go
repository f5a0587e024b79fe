package player

import (
	"context"
	"errors"
	"fmt"
	"log"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/kangalioo/CourtJester/internal/music"
)

// Player serializes all playback and queue mutations for one guild. The
// mutex is held across the node call that a state transition decided on, so
// the decision and its effect are atomic with respect to other mutations of
// the same guild; other guilds are unaffected.
type Player struct {
	guildID string
	m       *Manager

	mu      sync.Mutex
	current *music.Track
	queue   []music.Track
	paused  bool

	watchdogOn atomic.Bool
}

// GuildID returns the guild this player belongs to.
func (p *Player) GuildID() string { return p.guildID }

// Play resolves raw input into a track and enqueues it, joining the
// requester's voice channel first if the bot has no session in the guild.
// userChannelID is the requester's current voice channel ("" when they are in
// none). Returns the resolved track and whether it started immediately.
func (p *Player) Play(ctx context.Context, userChannelID, raw string) (music.Track, bool, error) {
	if userChannelID == "" {
		return music.Track{}, false, music.ErrNoChannel
	}

	botChannel, connected := p.m.sessions.Channel(p.guildID)
	if connected && botChannel != userChannelID {
		return music.Track{}, false, music.ErrWrongChannel
	}

	// Pure resolution step; no state has been touched yet, so a failure here
	// leaves the guild exactly as it was.
	track, err := p.m.resolver.Resolve(ctx, raw)
	if err != nil {
		return music.Track{}, false, err
	}

	if !connected {
		if _, err := p.m.sessions.Join(ctx, p.guildID, userChannelID); err != nil && !errors.Is(err, music.ErrAlreadyConnected) {
			return music.Track{}, false, err
		}
	}

	p.m.timers.Cancel(p.guildID)

	p.mu.Lock()
	startNow := p.current == nil
	if startNow {
		p.current = &track
		p.paused = false
		if err := p.m.node.Play(ctx, p.guildID, track); err != nil {
			p.current = nil
			p.mu.Unlock()
			return music.Track{}, false, fmt.Errorf("failed to start playback: %w", err)
		}
	} else {
		p.queue = append(p.queue, track)
	}
	p.mu.Unlock()

	p.startWatchdog()

	log.Printf("[Player] Enqueued | guild=%s title=%q startNow=%v", p.guildID, track.Title, startNow)
	return track, startNow, nil
}

// Pause suspends playback and arms the idle timer: a paused guild counts as
// idle for timeout purposes.
func (p *Player) Pause(ctx context.Context) error {
	if _, connected := p.m.sessions.Channel(p.guildID); !connected {
		return music.ErrNotConnected
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current == nil {
		return music.ErrNothingPlaying
	}
	if err := p.m.node.Pause(ctx, p.guildID); err != nil {
		return fmt.Errorf("failed to pause: %w", err)
	}
	p.paused = true
	p.m.armIdle(p.guildID)
	return nil
}

// Resume cancels any armed idle timer and continues playback.
func (p *Player) Resume(ctx context.Context) error {
	if _, connected := p.m.sessions.Channel(p.guildID); !connected {
		return music.ErrNotConnected
	}

	p.m.timers.Cancel(p.guildID)

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current == nil {
		return music.ErrNothingPlaying
	}
	if err := p.m.node.Resume(ctx, p.guildID); err != nil {
		return fmt.Errorf("failed to resume: %w", err)
	}
	p.paused = false
	return nil
}

// Skip drops the current track. With tracks queued the head starts playing;
// with an empty queue playback stops and the idle timer is armed.
func (p *Player) Skip(ctx context.Context) error {
	if _, connected := p.m.sessions.Channel(p.guildID); !connected {
		return music.ErrNotConnected
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current == nil && len(p.queue) == 0 {
		return music.ErrNothingPlaying
	}

	if len(p.queue) > 0 {
		next := p.queue[0]
		p.queue = p.queue[1:]
		p.current = &next
		p.paused = false
		if err := p.m.node.Play(ctx, p.guildID, next); err != nil {
			return fmt.Errorf("failed to start next track: %w", err)
		}
		log.Printf("[Player] Skipped to next | guild=%s title=%q", p.guildID, next.Title)
		return nil
	}

	p.current = nil
	if err := p.m.node.Stop(ctx, p.guildID); err != nil {
		return fmt.Errorf("failed to stop playback: %w", err)
	}
	p.m.armIdle(p.guildID)
	log.Printf("[Player] Skipped last track, queue empty | guild=%s", p.guildID)
	return nil
}

// Stop clears both the queue and the current track, halts the node and arms
// the idle timer. The bot stays in the voice channel.
func (p *Player) Stop(ctx context.Context) error {
	if _, connected := p.m.sessions.Channel(p.guildID); !connected {
		return music.ErrNotConnected
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.queue = nil
	p.current = nil
	p.paused = false
	if err := p.m.node.Stop(ctx, p.guildID); err != nil {
		return fmt.Errorf("failed to stop playback: %w", err)
	}
	p.m.armIdle(p.guildID)
	return nil
}

// Seek jumps to the given position in the current track.
func (p *Player) Seek(ctx context.Context, position time.Duration) error {
	if _, connected := p.m.sessions.Channel(p.guildID); !connected {
		return music.ErrNotConnected
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current == nil {
		return music.ErrNothingPlaying
	}
	if err := p.m.node.Seek(ctx, p.guildID, position.Milliseconds()); err != nil {
		return fmt.Errorf("failed to seek: %w", err)
	}
	return nil
}

// Clear empties the upcoming queue without touching the current track.
// Returns how many tracks were dropped.
func (p *Player) Clear() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := len(p.queue)
	p.queue = nil
	return n
}

// Remove deletes the track at the given display position. Position 0 is the
// current track and is not removable by index; valid positions run 1 through
// the queue length, matching what the queue view shows.
func (p *Player) Remove(position int) (music.Track, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if position <= 0 || position > len(p.queue) {
		return music.Track{}, music.ErrInvalidPosition
	}
	track := p.queue[position-1]
	p.queue = append(p.queue[:position-1], p.queue[position:]...)
	return track, nil
}

// NowPlaying returns the current track, if any.
func (p *Player) NowPlaying() (music.Track, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current == nil {
		return music.Track{}, false
	}
	return *p.current, true
}

// Upcoming returns a copy of the queued tracks in play order.
func (p *Player) Upcoming() []music.Track {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.queue)
}

// Paused reports whether playback is paused.
func (p *Player) Paused() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.paused
}

// Summon joins the requester's voice channel without playing anything, then
// arms the idle timer since nothing is happening yet.
func (p *Player) Summon(ctx context.Context, channelID string) error {
	if channelID == "" {
		return music.ErrNoChannel
	}
	if _, err := p.m.sessions.Join(ctx, p.guildID, channelID); err != nil {
		return err
	}
	p.m.armIdle(p.guildID)
	return nil
}

// Disconnect leaves the voice channel and wipes all playback state,
// disarming any idle timer first.
func (p *Player) Disconnect(ctx context.Context) error {
	p.m.timers.Cancel(p.guildID)
	err := p.m.sessions.Leave(ctx, p.guildID)
	p.reset()
	return err
}

// advance moves to the next track after a natural track end. Tracks the node
// refuses to start are dropped and the next one is tried.
func (p *Player) advance(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for len(p.queue) > 0 {
		next := p.queue[0]
		p.queue = p.queue[1:]
		if err := p.m.node.Play(ctx, p.guildID, next); err != nil {
			log.Printf("[Player] Dropping unplayable track | guild=%s title=%q err=%v", p.guildID, next.Title, err)
			continue
		}
		p.current = &next
		p.paused = false
		log.Printf("[Player] Advanced to next track | guild=%s title=%q", p.guildID, next.Title)
		return
	}

	p.current = nil
	p.m.armIdle(p.guildID)
	log.Printf("[Player] Queue drained | guild=%s", p.guildID)
}

// reset wipes queue and current track without touching the node.
func (p *Player) reset() {
	p.mu.Lock()
	p.queue = nil
	p.current = nil
	p.paused = false
	p.mu.Unlock()
}

// startWatchdog launches the periodic idle check if it is not already
// running. It arms the idle timer once the guild has drained completely and
// exits as soon as a timer is armed or the session is gone, leaving timer
// ownership to the controller.
func (p *Player) startWatchdog() {
	if !p.watchdogOn.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer p.watchdogOn.Store(false)

		ticker := time.NewTicker(p.m.watchdogInterval)
		defer ticker.Stop()

		for range ticker.C {
			if p.m.timers.Armed(p.guildID) {
				return
			}
			if _, connected := p.m.sessions.Channel(p.guildID); !connected {
				return
			}
			p.mu.Lock()
			idle := p.current == nil && len(p.queue) == 0
			p.mu.Unlock()
			if idle {
				p.m.armIdle(p.guildID)
				return
			}
		}
	}()
}
