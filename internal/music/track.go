package music

import (
	"net/url"
	"strings"
)

// Track is a resolved, playable unit of audio. It is immutable once resolved:
// the player copies tracks by value and never mutates them.
type Track struct {
	// Encoded is the audio node's opaque playable handle for this track.
	Encoded string
	Title   string
	URI     string
	Source  string
	// LengthMS is for display only and is never re-validated against the node.
	LengthMS int64
	Author   string
}

// QueryKind tags what a raw user string turned out to be.
type QueryKind int

const (
	// QuerySearch is free-form search text.
	QuerySearch QueryKind = iota
	// QueryDirectURI is a direct link the audio node can load as-is.
	QueryDirectURI
	// QuerySpotifyLink is a Spotify share link; it cannot be played directly
	// and must first be resolved to a "title artist" search string.
	QuerySpotifyLink
)

// Query is the classified form of a raw user string.
type Query struct {
	Kind QueryKind
	Raw  string
	// SpotifyID is set only for QuerySpotifyLink.
	SpotifyID string
}

const spotifyTrackHost = "open.spotify.com"

// ParseQuery classifies a raw user string into a search phrase, a direct URI,
// or a Spotify share link with its track ID extracted.
func ParseQuery(raw string) Query {
	raw = strings.TrimSpace(raw)

	if strings.Contains(raw, spotifyTrackHost) {
		if id := spotifyTrackID(raw); id != "" {
			return Query{Kind: QuerySpotifyLink, Raw: raw, SpotifyID: id}
		}
	}

	if u, err := url.Parse(raw); err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != "" {
		return Query{Kind: QueryDirectURI, Raw: raw}
	}

	return Query{Kind: QuerySearch, Raw: raw}
}

// spotifyTrackID pulls the track ID out of an open.spotify.com link.
// Returns "" if the link has no usable ID.
func spotifyTrackID(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}

	// Path looks like /track/<id> or /intl-xx/track/<id>.
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i, p := range parts {
		if p == "track" && i+1 < len(parts) {
			return parts[i+1]
		}
	}

	// Fall back to the last path segment, matching the lenient behavior of
	// "anything after the final slash" links users tend to paste.
	if len(parts) > 0 && parts[len(parts)-1] != "" {
		return parts[len(parts)-1]
	}
	return ""
}
