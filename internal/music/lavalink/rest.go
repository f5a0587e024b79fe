package lavalink

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/kangalioo/CourtJester/internal/music"
)

// Play tells the node to start streaming the given track into the guild.
func (c *Client) Play(ctx context.Context, guildID string, track music.Track) error {
	body := map[string]any{"track": map[string]any{"encoded": track.Encoded}}
	if err := c.updatePlayer(ctx, guildID, body); err != nil {
		return fmt.Errorf("failed to start track: %w", err)
	}
	return nil
}

// Stop halts playback in the guild without destroying the node player.
func (c *Client) Stop(ctx context.Context, guildID string) error {
	body := map[string]any{"track": map[string]any{"encoded": nil}}
	if err := c.updatePlayer(ctx, guildID, body); err != nil {
		return fmt.Errorf("failed to stop playback: %w", err)
	}
	return nil
}

// Pause suspends playback in the guild.
func (c *Client) Pause(ctx context.Context, guildID string) error {
	return c.setPaused(ctx, guildID, true)
}

// Resume continues paused playback in the guild.
func (c *Client) Resume(ctx context.Context, guildID string) error {
	return c.setPaused(ctx, guildID, false)
}

func (c *Client) setPaused(ctx context.Context, guildID string, paused bool) error {
	if err := c.updatePlayer(ctx, guildID, map[string]any{"paused": paused}); err != nil {
		return fmt.Errorf("failed to set paused=%v: %w", paused, err)
	}
	return nil
}

// Seek jumps to the given position (in milliseconds) of the current track.
func (c *Client) Seek(ctx context.Context, guildID string, positionMS int64) error {
	if err := c.updatePlayer(ctx, guildID, map[string]any{"position": positionMS}); err != nil {
		return fmt.Errorf("failed to seek: %w", err)
	}
	return nil
}

// Search asks the node to load tracks for an identifier. Plain text should be
// prefixed by the caller (e.g. "ytsearch:"); URLs are passed through as-is.
// Returns the candidate tracks in node order; an empty result is not an error
// here, the resolver decides what that means.
func (c *Client) Search(ctx context.Context, identifier string) ([]music.Track, error) {
	path := "/v4/loadtracks?identifier=" + url.QueryEscape(identifier)

	var result loadResult
	if err := c.do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, fmt.Errorf("loadtracks request failed: %w", err)
	}

	switch result.LoadType {
	case loadTypeTrack:
		var t apiTrack
		if err := json.Unmarshal(result.Data, &t); err != nil {
			return nil, fmt.Errorf("malformed track payload: %w", err)
		}
		return []music.Track{t.toTrack()}, nil

	case loadTypeSearch:
		var ts []apiTrack
		if err := json.Unmarshal(result.Data, &ts); err != nil {
			return nil, fmt.Errorf("malformed search payload: %w", err)
		}
		tracks := make([]music.Track, len(ts))
		for i, t := range ts {
			tracks[i] = t.toTrack()
		}
		return tracks, nil

	case loadTypePlaylist:
		var pl playlistData
		if err := json.Unmarshal(result.Data, &pl); err != nil {
			return nil, fmt.Errorf("malformed playlist payload: %w", err)
		}
		tracks := make([]music.Track, len(pl.Tracks))
		for i, t := range pl.Tracks {
			tracks[i] = t.toTrack()
		}
		return tracks, nil

	case loadTypeEmpty:
		return nil, nil

	case loadTypeError:
		return nil, fmt.Errorf("node failed to load %q", identifier)

	default:
		return nil, fmt.Errorf("unknown load type %q", result.LoadType)
	}
}

// updatePlayer PATCHes the guild's player on the node.
func (c *Client) updatePlayer(ctx context.Context, guildID string, body map[string]any) error {
	c.mu.Lock()
	sessionID := c.sessionID
	c.mu.Unlock()
	if sessionID == "" {
		return fmt.Errorf("node session is not established")
	}

	path := fmt.Sprintf("/v4/sessions/%s/players/%s?noReplace=false", sessionID, guildID)
	return c.do(ctx, http.MethodPatch, path, body, nil)
}

// destroyPlayer DELETEs the guild's player on the node.
func (c *Client) destroyPlayer(ctx context.Context, guildID string) error {
	c.mu.Lock()
	sessionID := c.sessionID
	c.mu.Unlock()
	if sessionID == "" {
		return fmt.Errorf("node session is not established")
	}

	path := fmt.Sprintf("/v4/sessions/%s/players/%s", sessionID, guildID)
	if err := c.do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("failed to destroy node player: %w", err)
	}
	return nil
}

// do runs one REST call against the node.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, "http://"+c.address+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", c.password)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("node returned %s: %s", resp.Status, bytes.TrimSpace(payload))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode node response: %w", err)
		}
	}
	return nil
}
