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

const defaultJikanBaseURL = "https://api.jikan.moe/v3"

// MediaEntry is one anime or manga search result.
type MediaEntry struct {
	Title    string  `json:"title"`
	Synopsis string  `json:"synopsis"`
	Score    float64 `json:"score"`
	Episodes int     `json:"episodes"`
	Chapters int     `json:"chapters"`
	URL      string  `json:"url"`
	ImageURL string  `json:"image_url"`
}

// Jikan searches MyAnimeList through the unofficial Jikan API. Jikan asks
// for at most a couple of requests per second, hence the tight limiter.
type Jikan struct {
	baseURL string
	client  *ratelimit.Client
}

// NewJikan creates a Jikan client.
func NewJikan() *Jikan {
	return &Jikan{
		baseURL: defaultJikanBaseURL,
		client:  ratelimit.NewClient(1, 1, 10*time.Second),
	}
}

type jikanResponse struct {
	Results []MediaEntry `json:"results"`
}

// SearchAnime returns up to limit anime entries for the query.
func (j *Jikan) SearchAnime(ctx context.Context, query string, limit int) ([]MediaEntry, error) {
	return j.search(ctx, "anime", query, limit)
}

// SearchManga returns up to limit manga entries for the query.
func (j *Jikan) SearchManga(ctx context.Context, query string, limit int) ([]MediaEntry, error) {
	return j.search(ctx, "manga", query, limit)
}

func (j *Jikan) search(ctx context.Context, kind, query string, limit int) ([]MediaEntry, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", fmt.Sprint(limit))

	endpoint := fmt.Sprintf("%s/search/%s?%s", j.baseURL, kind, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := j.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("jikan request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("jikan returned %s", resp.Status)
	}

	var payload jikanResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode jikan response: %w", err)
	}
	return payload.Results, nil
}
