package lavalink

import (
	"encoding/json"

	"github.com/kangalioo/CourtJester/internal/music"
)

// trackInfo mirrors the node's track metadata block.
type trackInfo struct {
	Identifier string `json:"identifier"`
	IsSeekable bool   `json:"isSeekable"`
	Author     string `json:"author"`
	Length     int64  `json:"length"`
	IsStream   bool   `json:"isStream"`
	Position   int64  `json:"position"`
	Title      string `json:"title"`
	URI        string `json:"uri"`
	SourceName string `json:"sourceName"`
}

// apiTrack is a playable track as the node encodes it.
type apiTrack struct {
	Encoded string    `json:"encoded"`
	Info    trackInfo `json:"info"`
}

func (t apiTrack) toTrack() music.Track {
	return music.Track{
		Encoded:  t.Encoded,
		Title:    t.Info.Title,
		URI:      t.Info.URI,
		Source:   t.Info.SourceName,
		LengthMS: t.Info.Length,
		Author:   t.Info.Author,
	}
}

// loadResult is the response of the loadtracks endpoint. The shape of Data
// depends on LoadType, so it is decoded lazily.
type loadResult struct {
	LoadType string          `json:"loadType"`
	Data     json.RawMessage `json:"data"`
}

const (
	loadTypeTrack    = "track"
	loadTypeSearch   = "search"
	loadTypePlaylist = "playlist"
	loadTypeEmpty    = "empty"
	loadTypeError    = "error"
)

type playlistData struct {
	Tracks []apiTrack `json:"tracks"`
}

// gatewayMessage is the envelope of every websocket message from the node.
type gatewayMessage struct {
	Op        string `json:"op"`
	SessionID string `json:"sessionId"`

	// Event fields, present when Op == "event".
	Type     string   `json:"type"`
	GuildID  string   `json:"guildId"`
	Track    apiTrack `json:"track"`
	Reason   string   `json:"reason"`
	Code     int      `json:"code"`
	ByRemote bool     `json:"byRemote"`
}

const (
	opReady  = "ready"
	opEvent  = "event"
	opStats  = "stats"
	opPlayer = "playerUpdate"
)

const (
	eventTrackStart      = "TrackStartEvent"
	eventTrackEnd        = "TrackEndEvent"
	eventTrackException  = "TrackExceptionEvent"
	eventTrackStuck      = "TrackStuckEvent"
	eventWebSocketClosed = "WebSocketClosedEvent"
)

// Track end reasons as the node reports them.
const (
	ReasonFinished   = "finished"
	ReasonLoadFailed = "loadFailed"
	ReasonStopped    = "stopped"
	ReasonReplaced   = "replaced"
	ReasonCleanup    = "cleanup"
)

// voiceState carries Discord voice-server credentials the node needs to
// stream into a guild's voice channel.
type voiceState struct {
	Token     string `json:"token"`
	Endpoint  string `json:"endpoint"`
	SessionID string `json:"sessionId"`
}

func (v voiceState) complete() bool {
	return v.Token != "" && v.Endpoint != "" && v.SessionID != ""
}
