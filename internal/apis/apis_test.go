package apis

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestTenorSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("q") != "cats" {
			t.Errorf("query q = %q", q.Get("q"))
		}
		if q.Get("contentfilter") != "low" {
			t.Errorf("contentfilter = %q, want low", q.Get("contentfilter"))
		}
		w.Write([]byte(`{"results": [
			{"title": "cat gif", "itemurl": "https://tenor.com/view/1",
			 "media": [{"gif": {"url": "https://media.tenor.com/1.gif"}}]}
		]}`))
	}))
	defer srv.Close()

	tenor := NewTenor("key")
	tenor.baseURL = srv.URL

	gifs, err := tenor.Search(context.Background(), "cats", 10, false)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(gifs) != 1 {
		t.Fatalf("got %d gifs, want 1", len(gifs))
	}
	if gifs[0].URL != "https://media.tenor.com/1.gif" {
		t.Fatalf("gif URL = %q", gifs[0].URL)
	}
}

func TestTenorNSFWTurnsFilterOff(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("contentfilter"); got != "off" {
			t.Errorf("contentfilter = %q, want off", got)
		}
		w.Write([]byte(`{"results": []}`))
	}))
	defer srv.Close()

	tenor := NewTenor("key")
	tenor.baseURL = srv.URL
	if _, err := tenor.Search(context.Background(), "x", 5, true); err != nil {
		t.Fatalf("Search failed: %v", err)
	}
}

func TestJikanSearchAnime(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/anime" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{"results": [
			{"title": "Cowboy Bebop", "synopsis": "Space bounty hunters.",
			 "score": 8.8, "episodes": 26, "url": "https://myanimelist.net/anime/1",
			 "image_url": "https://cdn.myanimelist.net/1.jpg"}
		]}`))
	}))
	defer srv.Close()

	jikan := NewJikan()
	jikan.baseURL = srv.URL

	entries, err := jikan.SearchAnime(context.Background(), "bebop", 5)
	if err != nil {
		t.Fatalf("SearchAnime failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Title != "Cowboy Bebop" || entries[0].Episodes != 26 {
		t.Fatalf("entries = %+v", entries)
	}
}

func TestJikanErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	jikan := NewJikan()
	jikan.baseURL = srv.URL
	if _, err := jikan.SearchManga(context.Background(), "x", 5); err == nil {
		t.Fatal("expected error for non-200 status")
	}
}
