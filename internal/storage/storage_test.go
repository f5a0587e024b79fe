package storage

import (
	"path/filepath"
	"testing"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "datastore.json"))
	if err != nil {
		t.Fatalf("failed to open storage: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPrefixDefaultsAndRoundTrips(t *testing.T) {
	s := newTestStorage(t)

	prefix, err := s.Prefix("g1")
	if err != nil {
		t.Fatalf("Prefix failed: %v", err)
	}
	if prefix != DefaultPrefix {
		t.Fatalf("default prefix = %q, want %q", prefix, DefaultPrefix)
	}

	if err := s.SetPrefix("g1", "!"); err != nil {
		t.Fatalf("SetPrefix failed: %v", err)
	}
	prefix, _ = s.Prefix("g1")
	if prefix != "!" {
		t.Fatalf("prefix after set = %q, want \"!\"", prefix)
	}

	// Other guilds keep the default.
	other, _ := s.Prefix("g2")
	if other != DefaultPrefix {
		t.Fatalf("g2 prefix = %q, want default", other)
	}
}

func TestStarboardRoundTrip(t *testing.T) {
	s := newTestStorage(t)

	cfg, err := s.Starboard("g1")
	if err != nil {
		t.Fatalf("Starboard failed: %v", err)
	}
	if cfg.Enabled {
		t.Fatal("starboard enabled by default")
	}

	want := StarboardConfig{Enabled: true, ChannelID: "chan-9", Threshold: 3}
	if err := s.SetStarboard("g1", want); err != nil {
		t.Fatalf("SetStarboard failed: %v", err)
	}
	got, _ := s.Starboard("g1")
	if got != want {
		t.Fatalf("starboard = %+v, want %+v", got, want)
	}
}

func TestCommandHistoryIsTrimmed(t *testing.T) {
	s := newTestStorage(t)

	for i := 0; i < commandHistoryLimit+5; i++ {
		if err := s.AddCommandHistoryRecord("g1", "c1", "u1", "user", "play"); err != nil {
			t.Fatalf("AddCommandHistoryRecord failed: %v", err)
		}
	}

	history, err := s.CommandHistory("g1")
	if err != nil {
		t.Fatalf("CommandHistory failed: %v", err)
	}
	if len(history) != commandHistoryLimit {
		t.Fatalf("history length = %d, want %d", len(history), commandHistoryLimit)
	}
}
