// Package apis holds the small HTTP clients for the third-party lookup
// services the bot's non-music commands call (Tenor gif search, Jikan
// anime/manga search). All of them share the rate-limited HTTP client so a
// spammy channel cannot burn through API quotas.
package apis

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/kangalioo/CourtJester/pkg/ratelimit"
)

const defaultTenorBaseURL = "https://g.tenor.com/v1"

// Gif is one Tenor search result.
type Gif struct {
	Title   string
	URL     string
	PageURL string
}

// Tenor searches gifs through the Tenor v1 API.
type Tenor struct {
	key     string
	baseURL string
	client  *ratelimit.Client
}

// NewTenor creates a Tenor client with the given API key.
func NewTenor(key string) *Tenor {
	return &Tenor{
		key:     key,
		baseURL: defaultTenorBaseURL,
		client:  ratelimit.NewClient(2, 2, 10*time.Second),
	}
}

type tenorResponse struct {
	Results []struct {
		Title   string `json:"title"`
		ItemURL string `json:"itemurl"`
		Media   []map[string]struct {
			URL string `json:"url"`
		} `json:"media"`
	} `json:"results"`
}

// Search returns up to limit gifs for the query. When nsfw is true the
// content filter is turned off, mirroring behavior in NSFW channels.
func (t *Tenor) Search(ctx context.Context, query string, limit int, nsfw bool) ([]Gif, error) {
	filter := "low"
	if nsfw {
		filter = "off"
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("key", t.key)
	params.Set("limit", fmt.Sprint(limit))
	params.Set("contentfilter", filter)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tenor request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tenor returned %s", resp.Status)
	}

	var payload tenorResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode tenor response: %w", err)
	}

	gifs := make([]Gif, 0, len(payload.Results))
	for _, r := range payload.Results {
		gif := Gif{Title: r.Title, PageURL: r.ItemURL}
		for _, media := range r.Media {
			if g, ok := media["gif"]; ok {
				gif.URL = g.URL
				break
			}
		}
		gifs = append(gifs, gif)
	}
	return gifs, nil
}
