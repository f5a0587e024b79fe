// Package lavalink is a minimal client for a Lavalink v4 audio node. It
// covers exactly what the player needs: per-guild playback control over REST,
// track loading, and the node's websocket event stream.
package lavalink

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/kangalioo/CourtJester/internal/music"
	"github.com/kangalioo/CourtJester/internal/version"
)

// EventHandler receives unsolicited events from the node's websocket.
// Callbacks run on the read-loop goroutine and must not block.
type EventHandler interface {
	OnTrackStart(guildID string, track music.Track)
	OnTrackEnd(guildID string, reason string)
	OnWebSocketClosed(guildID string, code int, reason string)
}

// Client talks to a single Lavalink node.
type Client struct {
	address  string
	password string
	http     *http.Client

	mu        sync.Mutex
	conn      *websocket.Conn
	sessionID string
	userID    string
	handler   EventHandler
	closed    bool

	// Voice credentials arrive asynchronously from the Discord gateway;
	// waiters block until a guild's set is complete.
	voice   map[string]voiceState
	waiters map[string]chan struct{}
}

// New creates a Client for the node at address (host:port).
func New(address, password string) *Client {
	return &Client{
		address:  address,
		password: password,
		http:     &http.Client{Timeout: 10 * time.Second},
		voice:    make(map[string]voiceState),
		waiters:  make(map[string]chan struct{}),
	}
}

// SetHandler installs the event handler. Must be called before Connect.
func (c *Client) SetHandler(h EventHandler) {
	c.mu.Lock()
	c.handler = h
	c.mu.Unlock()
}

// Connect opens the node websocket and blocks until the node confirms the
// session. botUserID identifies the bot to the node.
func (c *Client) Connect(ctx context.Context, botUserID string) error {
	c.mu.Lock()
	c.userID = botUserID
	c.mu.Unlock()

	if err := c.dial(ctx); err != nil {
		return err
	}

	deadline := time.After(10 * time.Second)
	for {
		c.mu.Lock()
		ready := c.sessionID != ""
		c.mu.Unlock()
		if ready {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-deadline:
			return errors.New("node did not confirm session in time")
		case <-time.After(50 * time.Millisecond):
		}
	}
}

// dial establishes the websocket and starts the read loop.
func (c *Client) dial(ctx context.Context) error {
	header := http.Header{}
	header.Set("Authorization", c.password)
	header.Set("User-Id", c.userID)
	header.Set("Client-Name", "CourtJester/"+version.Version)

	wsURL := fmt.Sprintf("ws://%s/v4/websocket", c.address)
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, wsURL, header)
	if err != nil {
		return fmt.Errorf("failed to dial node websocket: %w", err)
	}

	c.mu.Lock()
	c.conn = conn
	c.mu.Unlock()

	go c.readLoop(conn)
	return nil
}

// Close shuts the websocket down and stops reconnecting.
func (c *Client) Close() error {
	c.mu.Lock()
	c.closed = true
	conn := c.conn
	c.conn = nil
	c.mu.Unlock()

	if conn != nil {
		return conn.Close()
	}
	return nil
}

// readLoop consumes node messages until the connection drops, then retries
// with a fixed backoff unless the client was closed.
func (c *Client) readLoop(conn *websocket.Conn) {
	for {
		var msg gatewayMessage
		if err := conn.ReadJSON(&msg); err != nil {
			c.mu.Lock()
			closed := c.closed
			c.mu.Unlock()
			if closed {
				return
			}
			log.Printf("[Lavalink] Websocket read error, reconnecting: %v", err)
			c.reconnect()
			return
		}
		c.dispatch(msg)
	}
}

// reconnect re-dials the node until it succeeds or the client is closed.
func (c *Client) reconnect() {
	for {
		c.mu.Lock()
		closed := c.closed
		c.sessionID = ""
		c.mu.Unlock()
		if closed {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err := c.dial(ctx)
		cancel()
		if err == nil {
			log.Println("[Lavalink] Reconnected to node")
			return
		}
		log.Printf("[Lavalink] Reconnect failed, retrying in 5s: %v", err)
		time.Sleep(5 * time.Second)
	}
}

// dispatch routes a single websocket message.
func (c *Client) dispatch(msg gatewayMessage) {
	switch msg.Op {
	case opReady:
		c.mu.Lock()
		c.sessionID = msg.SessionID
		c.mu.Unlock()
		log.Printf("[Lavalink] Node session ready | session=%s", msg.SessionID)

	case opEvent:
		c.mu.Lock()
		h := c.handler
		c.mu.Unlock()
		if h == nil {
			return
		}
		switch msg.Type {
		case eventTrackStart:
			h.OnTrackStart(msg.GuildID, msg.Track.toTrack())
		case eventTrackEnd:
			h.OnTrackEnd(msg.GuildID, msg.Reason)
		case eventTrackException, eventTrackStuck:
			log.Printf("[Lavalink] Track trouble | guild=%s type=%s", msg.GuildID, msg.Type)
			h.OnTrackEnd(msg.GuildID, ReasonLoadFailed)
		case eventWebSocketClosed:
			h.OnWebSocketClosed(msg.GuildID, msg.Code, msg.Reason)
		}

	case opStats, opPlayer:
		// Not used; the queue is owned bot-side.
	}
}

// HandleVoiceServerUpdate records the voice token and endpoint Discord handed
// out for a guild, and wakes any CreateSession waiting on them.
func (c *Client) HandleVoiceServerUpdate(guildID, token, endpoint string) {
	c.mu.Lock()
	vs := c.voice[guildID]
	vs.Token = token
	vs.Endpoint = endpoint
	c.voice[guildID] = vs
	c.notifyIfComplete(guildID, vs)
	c.mu.Unlock()
}

// HandleVoiceStateUpdate records the bot's own voice session ID for a guild.
func (c *Client) HandleVoiceStateUpdate(guildID, sessionID string) {
	c.mu.Lock()
	vs := c.voice[guildID]
	vs.SessionID = sessionID
	c.voice[guildID] = vs
	c.notifyIfComplete(guildID, vs)
	c.mu.Unlock()
}

// notifyIfComplete must be called with c.mu held.
func (c *Client) notifyIfComplete(guildID string, vs voiceState) {
	if !vs.complete() {
		return
	}
	if ch, ok := c.waiters[guildID]; ok {
		close(ch)
		delete(c.waiters, guildID)
	}
}

// awaitVoice blocks until the guild's voice credentials are complete.
func (c *Client) awaitVoice(ctx context.Context, guildID string) (voiceState, error) {
	c.mu.Lock()
	vs := c.voice[guildID]
	if vs.complete() {
		c.mu.Unlock()
		return vs, nil
	}
	ch, ok := c.waiters[guildID]
	if !ok {
		ch = make(chan struct{})
		c.waiters[guildID] = ch
	}
	c.mu.Unlock()

	select {
	case <-ch:
	case <-ctx.Done():
		return voiceState{}, fmt.Errorf("timed out waiting for voice credentials: %w", ctx.Err())
	}

	c.mu.Lock()
	vs = c.voice[guildID]
	c.mu.Unlock()
	return vs, nil
}

// CreateSession binds the guild's voice connection to the node so it can
// start streaming. It waits for Discord's voice credentials to arrive, then
// pushes them to the node's player for the guild.
func (c *Client) CreateSession(ctx context.Context, guildID string) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	vs, err := c.awaitVoice(ctx, guildID)
	if err != nil {
		return err
	}

	body := map[string]any{"voice": vs}
	if err := c.updatePlayer(ctx, guildID, body); err != nil {
		return fmt.Errorf("failed to create node session: %w", err)
	}
	return nil
}

// DestroySession tears the guild's node player down and forgets its voice
// credentials.
func (c *Client) DestroySession(ctx context.Context, guildID string) error {
	c.mu.Lock()
	delete(c.voice, guildID)
	if ch, ok := c.waiters[guildID]; ok {
		close(ch)
		delete(c.waiters, guildID)
	}
	c.mu.Unlock()

	return c.destroyPlayer(ctx, guildID)
}
