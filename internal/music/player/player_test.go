package player

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/kangalioo/CourtJester/internal/music"
	"github.com/kangalioo/CourtJester/internal/music/lavalink"
	"github.com/kangalioo/CourtJester/internal/music/voice"
)

type fakeTransport struct {
	mu     sync.Mutex
	joins  int
	leaves int
}

func (f *fakeTransport) Join(_ context.Context, _, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.joins++
	return nil
}

func (f *fakeTransport) Leave(_ context.Context, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.leaves++
	return nil
}

func (f *fakeTransport) counts() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.joins, f.leaves
}

type fakeNodeSessions struct{}

func (fakeNodeSessions) CreateSession(_ context.Context, _ string) error  { return nil }
func (fakeNodeSessions) DestroySession(_ context.Context, _ string) error { return nil }

type fakeAudio struct {
	mu      sync.Mutex
	plays   []string
	stops   int
	pauses  int
	resumes int
	seeks   []int64
	playErr error
}

func (f *fakeAudio) Play(_ context.Context, _ string, t music.Track) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.playErr != nil {
		return f.playErr
	}
	f.plays = append(f.plays, t.Title)
	return nil
}

func (f *fakeAudio) Stop(_ context.Context, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stops++
	return nil
}

func (f *fakeAudio) Pause(_ context.Context, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pauses++
	return nil
}

func (f *fakeAudio) Resume(_ context.Context, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resumes++
	return nil
}

func (f *fakeAudio) Seek(_ context.Context, _ string, pos int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seeks = append(f.seeks, pos)
	return nil
}

type fakeResolver struct{}

func (fakeResolver) Resolve(_ context.Context, raw string) (music.Track, error) {
	return music.Track{Encoded: "enc-" + raw, Title: raw, URI: "https://yt/" + raw}, nil
}

type harness struct {
	m         *Manager
	transport *fakeTransport
	audio     *fakeAudio
}

func newHarness(idleTimeout time.Duration) *harness {
	tr := &fakeTransport{}
	audio := &fakeAudio{}
	registry := voice.NewRegistry(tr, fakeNodeSessions{})
	m := NewManager(audio, registry, fakeResolver{}, idleTimeout)
	m.watchdogInterval = 5 * time.Millisecond
	return &harness{m: m, transport: tr, audio: audio}
}

func TestPlayIntoEmptyGuild(t *testing.T) {
	h := newHarness(time.Hour)
	p := h.m.GetOrCreatePlayer("g1")

	track, started, err := p.Play(context.Background(), "c1", "some query")
	if err != nil {
		t.Fatalf("Play failed: %v", err)
	}
	if !started {
		t.Fatal("first play did not start immediately")
	}
	if track.Title != "some query" {
		t.Fatalf("track title = %q", track.Title)
	}

	if ch, ok := h.m.Sessions().Channel("g1"); !ok || ch != "c1" {
		t.Fatalf("session = %q,%v, want c1,true", ch, ok)
	}
	if now, ok := p.NowPlaying(); !ok || now.Title != "some query" {
		t.Fatalf("NowPlaying = %+v,%v", now, ok)
	}
	if len(p.Upcoming()) != 0 {
		t.Fatalf("queue not empty: %v", p.Upcoming())
	}
	if h.m.timers.Armed("g1") {
		t.Fatal("idle timer armed right after a play")
	}
}

func TestPlayRequiresVoiceChannel(t *testing.T) {
	h := newHarness(time.Hour)
	p := h.m.GetOrCreatePlayer("g1")

	_, _, err := p.Play(context.Background(), "", "query")
	if !errors.Is(err, music.ErrNoChannel) {
		t.Fatalf("error = %v, want ErrNoChannel", err)
	}
	if joins, _ := h.transport.counts(); joins != 0 {
		t.Fatal("bot joined despite requester having no channel")
	}
}

func TestPlayFromWrongChannel(t *testing.T) {
	h := newHarness(time.Hour)
	p := h.m.GetOrCreatePlayer("g1")

	if _, _, err := p.Play(context.Background(), "c1", "first"); err != nil {
		t.Fatalf("Play failed: %v", err)
	}
	_, _, err := p.Play(context.Background(), "c2", "second")
	if !errors.Is(err, music.ErrWrongChannel) {
		t.Fatalf("error = %v, want ErrWrongChannel", err)
	}
}

func TestSecondPlayQueuesWithoutStarting(t *testing.T) {
	h := newHarness(time.Hour)
	p := h.m.GetOrCreatePlayer("g1")

	p.Play(context.Background(), "c1", "first")
	_, started, err := p.Play(context.Background(), "c1", "second")
	if err != nil {
		t.Fatalf("Play failed: %v", err)
	}
	if started {
		t.Fatal("second play claims to have started")
	}
	if up := p.Upcoming(); len(up) != 1 || up[0].Title != "second" {
		t.Fatalf("queue = %v", up)
	}
	if len(h.audio.plays) != 1 {
		t.Fatalf("node Play called %d times, want 1", len(h.audio.plays))
	}
}

func TestSkipThroughEntireQueue(t *testing.T) {
	h := newHarness(time.Hour)
	p := h.m.GetOrCreatePlayer("g1")

	const n = 4
	for i := 0; i < n; i++ {
		if _, _, err := p.Play(context.Background(), "c1", fmt.Sprintf("track-%d", i)); err != nil {
			t.Fatalf("Play %d failed: %v", i, err)
		}
	}

	for i := 0; i < n; i++ {
		if err := p.Skip(context.Background()); err != nil {
			t.Fatalf("Skip %d failed: %v", i, err)
		}
	}

	if _, ok := p.NowPlaying(); ok {
		t.Fatal("current track still set after skipping everything")
	}
	if len(p.Upcoming()) != 0 {
		t.Fatalf("queue not empty: %v", p.Upcoming())
	}
	if !h.m.timers.Armed("g1") {
		t.Fatal("idle timer not armed after queue drained via skip")
	}
	if err := p.Skip(context.Background()); !errors.Is(err, music.ErrNothingPlaying) {
		t.Fatalf("skip on empty player error = %v, want ErrNothingPlaying", err)
	}
}

func TestRemovePositionContract(t *testing.T) {
	h := newHarness(time.Hour)
	p := h.m.GetOrCreatePlayer("g1")

	p.Play(context.Background(), "c1", "playing")
	p.Play(context.Background(), "c1", "one")
	p.Play(context.Background(), "c1", "two")
	p.Play(context.Background(), "c1", "three")

	if _, err := p.Remove(0); !errors.Is(err, music.ErrInvalidPosition) {
		t.Fatalf("Remove(0) error = %v, want ErrInvalidPosition", err)
	}
	if _, err := p.Remove(4); !errors.Is(err, music.ErrInvalidPosition) {
		t.Fatalf("Remove(4) error = %v, want ErrInvalidPosition", err)
	}

	// Display position 2 is the second queued track.
	removed, err := p.Remove(2)
	if err != nil {
		t.Fatalf("Remove(2) failed: %v", err)
	}
	if removed.Title != "two" {
		t.Fatalf("removed %q, want \"two\"", removed.Title)
	}

	up := p.Upcoming()
	if len(up) != 2 || up[0].Title != "one" || up[1].Title != "three" {
		t.Fatalf("queue after remove = %v", up)
	}
	if now, _ := p.NowPlaying(); now.Title != "playing" {
		t.Fatal("Remove touched the current track")
	}
}

func TestClearPreservesCurrentTrack(t *testing.T) {
	h := newHarness(time.Hour)
	p := h.m.GetOrCreatePlayer("g1")

	p.Play(context.Background(), "c1", "playing")
	p.Play(context.Background(), "c1", "queued-1")
	p.Play(context.Background(), "c1", "queued-2")

	if n := p.Clear(); n != 2 {
		t.Fatalf("Clear dropped %d tracks, want 2", n)
	}
	if now, ok := p.NowPlaying(); !ok || now.Title != "playing" {
		t.Fatalf("current after Clear = %+v,%v", now, ok)
	}
	if len(p.Upcoming()) != 0 {
		t.Fatal("queue not empty after Clear")
	}
}

func TestNaturalTrackEndAdvancesQueue(t *testing.T) {
	h := newHarness(time.Hour)
	p := h.m.GetOrCreatePlayer("g1")

	p.Play(context.Background(), "c1", "first")
	p.Play(context.Background(), "c1", "second")

	h.m.OnTrackEnd("g1", lavalink.ReasonFinished)

	if now, ok := p.NowPlaying(); !ok || now.Title != "second" {
		t.Fatalf("current after natural end = %+v,%v", now, ok)
	}
	if h.m.timers.Armed("g1") {
		t.Fatal("timer armed while a track is still playing")
	}
}

func TestNaturalEndOfLastTrackArmsTimerAndPlayCancelsIt(t *testing.T) {
	h := newHarness(time.Hour)
	p := h.m.GetOrCreatePlayer("g1")

	p.Play(context.Background(), "c1", "only")
	h.m.OnTrackEnd("g1", lavalink.ReasonFinished)

	if _, ok := p.NowPlaying(); ok {
		t.Fatal("current still set after last track finished")
	}
	if !h.m.timers.Armed("g1") {
		t.Fatal("idle timer not armed after last track finished")
	}

	// A play inside the idle window cancels the timer and starts the new
	// track without rejoining voice.
	if _, _, err := p.Play(context.Background(), "c1", "encore"); err != nil {
		t.Fatalf("Play failed: %v", err)
	}
	if h.m.timers.Armed("g1") {
		t.Fatal("idle timer survived a new play request")
	}
	if joins, _ := h.transport.counts(); joins != 1 {
		t.Fatalf("bot rejoined voice, joins=%d", joins)
	}
}

func TestReplacedTrackEndDoesNotAdvance(t *testing.T) {
	h := newHarness(time.Hour)
	p := h.m.GetOrCreatePlayer("g1")

	p.Play(context.Background(), "c1", "current")
	p.Play(context.Background(), "c1", "queued")

	h.m.OnTrackEnd("g1", lavalink.ReasonReplaced)

	if now, _ := p.NowPlaying(); now.Title != "current" {
		t.Fatalf("replaced event advanced the queue, current=%q", now.Title)
	}
	if len(p.Upcoming()) != 1 {
		t.Fatal("replaced event consumed a queued track")
	}
}

func TestPauseArmsTimerAndResumeCancels(t *testing.T) {
	h := newHarness(50 * time.Millisecond)
	p := h.m.GetOrCreatePlayer("g1")

	p.Play(context.Background(), "c1", "tune")

	if err := p.Pause(context.Background()); err != nil {
		t.Fatalf("Pause failed: %v", err)
	}
	if !h.m.timers.Armed("g1") {
		t.Fatal("pause did not arm the idle timer")
	}
	if !p.Paused() {
		t.Fatal("player not marked paused")
	}

	if err := p.Resume(context.Background()); err != nil {
		t.Fatalf("Resume failed: %v", err)
	}
	if h.m.timers.Armed("g1") {
		t.Fatal("resume did not cancel the idle timer")
	}

	// Pause-then-resume inside the window must never disconnect.
	time.Sleep(120 * time.Millisecond)
	if _, ok := h.m.Sessions().Channel("g1"); !ok {
		t.Fatal("bot was disconnected despite resume within the idle window")
	}
}

func TestStopClearsEverythingAndTimerDisconnects(t *testing.T) {
	h := newHarness(30 * time.Millisecond)
	p := h.m.GetOrCreatePlayer("g1")

	p.Play(context.Background(), "c1", "one")
	p.Play(context.Background(), "c1", "two")

	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	if _, ok := p.NowPlaying(); ok {
		t.Fatal("current survived Stop")
	}
	if len(p.Upcoming()) != 0 {
		t.Fatal("queue survived Stop")
	}
	if !h.m.timers.Armed("g1") {
		t.Fatal("Stop did not arm the idle timer")
	}

	deadline := time.After(time.Second)
	for {
		if _, ok := h.m.Sessions().Channel("g1"); !ok {
			break
		}
		select {
		case <-deadline:
			t.Fatal("idle timer never disconnected the session")
		case <-time.After(10 * time.Millisecond):
		}
	}
	if _, leaves := h.transport.counts(); leaves != 1 {
		t.Fatalf("transport leaves = %d, want 1", leaves)
	}
}

func TestPlayRollsBackWhenNodeRefuses(t *testing.T) {
	h := newHarness(time.Hour)
	h.audio.playErr = errors.New("node rejected track")
	p := h.m.GetOrCreatePlayer("g1")

	if _, _, err := p.Play(context.Background(), "c1", "query"); err == nil {
		t.Fatal("expected Play to fail")
	}
	if _, ok := p.NowPlaying(); ok {
		t.Fatal("failed play left a current track behind")
	}

	// State is consistent, so the user's retry works.
	h.audio.playErr = nil
	if _, started, err := p.Play(context.Background(), "c1", "query"); err != nil || !started {
		t.Fatalf("retry Play = started %v, err %v", started, err)
	}
}

func TestUnsolicitedDisconnectReconcilesState(t *testing.T) {
	h := newHarness(time.Hour)
	p := h.m.GetOrCreatePlayer("g1")

	p.Play(context.Background(), "c1", "one")
	p.Play(context.Background(), "c1", "two")
	h.m.armIdle("g1")

	h.m.OnWebSocketClosed("g1", 4014, "kicked from channel")

	if _, ok := h.m.Sessions().Channel("g1"); ok {
		t.Fatal("session record survived the disconnect")
	}
	if _, ok := p.NowPlaying(); ok {
		t.Fatal("current track survived the disconnect")
	}
	if len(p.Upcoming()) != 0 {
		t.Fatal("queue survived the disconnect")
	}
	if h.m.timers.Armed("g1") {
		t.Fatal("idle timer survived the disconnect")
	}
}

func TestWatchdogArmsTimerWhenGuildDrains(t *testing.T) {
	h := newHarness(time.Hour)
	p := h.m.GetOrCreatePlayer("g1")

	p.Play(context.Background(), "c1", "tune")

	// Drain the player behind the watchdog's back, as if events were missed.
	p.reset()

	deadline := time.After(time.Second)
	for !h.m.timers.Armed("g1") {
		select {
		case <-deadline:
			t.Fatal("watchdog never armed the idle timer")
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestSummonJoinsAndArmsTimer(t *testing.T) {
	h := newHarness(time.Hour)
	p := h.m.GetOrCreatePlayer("g1")

	if err := p.Summon(context.Background(), "c1"); err != nil {
		t.Fatalf("Summon failed: %v", err)
	}
	if ch, ok := h.m.Sessions().Channel("g1"); !ok || ch != "c1" {
		t.Fatalf("session = %q,%v", ch, ok)
	}
	if !h.m.timers.Armed("g1") {
		t.Fatal("summon with nothing playing did not arm the idle timer")
	}

	if err := p.Summon(context.Background(), "c1"); !errors.Is(err, music.ErrAlreadyConnected) {
		t.Fatalf("second Summon error = %v, want ErrAlreadyConnected", err)
	}
}

func TestDisconnectCancelsTimerAndLeaves(t *testing.T) {
	h := newHarness(time.Hour)
	p := h.m.GetOrCreatePlayer("g1")

	p.Play(context.Background(), "c1", "tune")
	h.m.armIdle("g1")

	if err := p.Disconnect(context.Background()); err != nil {
		t.Fatalf("Disconnect failed: %v", err)
	}
	if h.m.timers.Armed("g1") {
		t.Fatal("idle timer survived Disconnect")
	}
	if _, ok := h.m.Sessions().Channel("g1"); ok {
		t.Fatal("session survived Disconnect")
	}

	if err := p.Disconnect(context.Background()); !errors.Is(err, music.ErrNotConnected) {
		t.Fatalf("second Disconnect error = %v, want ErrNotConnected", err)
	}
}

func TestGuildsDoNotShareState(t *testing.T) {
	h := newHarness(time.Hour)
	p1 := h.m.GetOrCreatePlayer("g1")
	p2 := h.m.GetOrCreatePlayer("g2")

	p1.Play(context.Background(), "c1", "for-g1")
	p2.Play(context.Background(), "c9", "for-g2")

	if err := p1.Stop(context.Background()); err != nil {
		t.Fatalf("Stop g1 failed: %v", err)
	}

	if now, ok := p2.NowPlaying(); !ok || now.Title != "for-g2" {
		t.Fatalf("g2 playback affected by g1 stop: %+v,%v", now, ok)
	}
	if h.m.timers.Armed("g2") {
		t.Fatal("g2 timer armed by g1 stop")
	}
}
