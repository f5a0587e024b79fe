package music

import "testing"

func TestParseQueryClassification(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		kind QueryKind
		id   string
	}{
		{"plain search", "never gonna give you up", QuerySearch, ""},
		{"search with slash", "ac/dc thunderstruck", QuerySearch, ""},
		{"youtube url", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", QueryDirectURI, ""},
		{"http url", "http://example.com/stream.mp3", QueryDirectURI, ""},
		{"spotify track", "https://open.spotify.com/track/4cOdK2wGLETKBW3PvgPWqT", QuerySpotifyLink, "4cOdK2wGLETKBW3PvgPWqT"},
		{"spotify track with si", "https://open.spotify.com/track/4cOdK2wGLETKBW3PvgPWqT?si=abc123", QuerySpotifyLink, "4cOdK2wGLETKBW3PvgPWqT"},
		{"spotify intl link", "https://open.spotify.com/intl-de/track/4cOdK2wGLETKBW3PvgPWqT", QuerySpotifyLink, "4cOdK2wGLETKBW3PvgPWqT"},
		{"padded search", "  lofi beats  ", QuerySearch, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := ParseQuery(tc.raw)
			if q.Kind != tc.kind {
				t.Fatalf("ParseQuery(%q).Kind = %v, want %v", tc.raw, q.Kind, tc.kind)
			}
			if q.SpotifyID != tc.id {
				t.Fatalf("ParseQuery(%q).SpotifyID = %q, want %q", tc.raw, q.SpotifyID, tc.id)
			}
		})
	}
}
