// Package resolver turns a raw user string into a playable track. It is a
// pure resolution step: nothing here touches queue or session state.
package resolver

import (
	"context"
	"fmt"
	"log"

	"github.com/kangalioo/CourtJester/internal/music"
)

// SpotifyLookup resolves a Spotify track ID to its display title and primary
// artist.
type SpotifyLookup interface {
	TrackInfo(ctx context.Context, id string) (title, artist string, err error)
}

// Searcher submits an identifier to the audio-search backend. Free text must
// carry the backend's search prefix; URLs go through untouched.
type Searcher interface {
	Search(ctx context.Context, identifier string) ([]music.Track, error)
}

// searchPrefix routes plain text to the backend's YouTube search.
const searchPrefix = "ytsearch:"

// Resolver resolves user input against Spotify metadata and the audio-search
// backend.
type Resolver struct {
	spotify  SpotifyLookup
	searcher Searcher
}

// New creates a Resolver. spotify may be nil, in which case Spotify share
// links resolve like plain search text.
func New(spotify SpotifyLookup, searcher Searcher) *Resolver {
	return &Resolver{spotify: spotify, searcher: searcher}
}

// Resolve classifies the raw input, expands Spotify share links into a
// "title artist" search, and returns the backend's first candidate.
func (r *Resolver) Resolve(ctx context.Context, raw string) (music.Track, error) {
	q := music.ParseQuery(raw)

	var identifier string
	switch q.Kind {
	case music.QuerySpotifyLink:
		if r.spotify == nil {
			identifier = searchPrefix + q.Raw
			break
		}
		title, artist, err := r.spotify.TrackInfo(ctx, q.SpotifyID)
		if err != nil {
			log.Printf("[Resolver] Spotify lookup failed | id=%s err=%v", q.SpotifyID, err)
			return music.Track{}, fmt.Errorf("%w: %v", music.ErrTrackNotFound, err)
		}
		identifier = searchPrefix + title + " " + artist

	case music.QueryDirectURI:
		identifier = q.Raw

	default:
		identifier = searchPrefix + q.Raw
	}

	tracks, err := r.searcher.Search(ctx, identifier)
	if err != nil {
		return music.Track{}, fmt.Errorf("search backend error: %w", err)
	}
	if len(tracks) == 0 {
		return music.Track{}, music.ErrNoResults
	}
	return tracks[0], nil
}
