package resolver

import (
	"context"
	"fmt"

	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2/clientcredentials"
)

// SpotifyClient looks up track metadata through the Spotify Web API using the
// client-credentials flow (no user login involved).
type SpotifyClient struct {
	client *spotify.Client
}

// NewSpotifyClient authenticates against Spotify and returns a lookup client.
func NewSpotifyClient(ctx context.Context, clientID, clientSecret string) (*SpotifyClient, error) {
	config := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     spotifyauth.TokenURL,
	}
	token, err := config.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("spotify auth failed: %w", err)
	}

	httpClient := spotifyauth.New().Client(ctx, token)
	return &SpotifyClient{client: spotify.New(httpClient)}, nil
}

// TrackInfo returns the track's name and primary artist.
func (s *SpotifyClient) TrackInfo(ctx context.Context, id string) (string, string, error) {
	track, err := s.client.GetTrack(ctx, spotify.ID(id))
	if err != nil {
		return "", "", fmt.Errorf("spotify track lookup failed: %w", err)
	}
	if len(track.Artists) == 0 {
		return track.Name, "", nil
	}
	return track.Name, track.Artists[0].Name, nil
}
