package music

import "errors"

var (
	// Session-state preconditions.
	ErrNotConnected     = errors.New("not connected to a voice channel in this guild")
	ErrAlreadyConnected = errors.New("already connected to a voice channel in this guild")

	// Requester-location preconditions.
	ErrNoChannel    = errors.New("requester is not in a voice channel")
	ErrWrongChannel = errors.New("requester is in a different voice channel than the bot")

	// Resolution failures.
	ErrTrackNotFound = errors.New("track not found on the source platform")
	ErrNoResults     = errors.New("no results from the audio search backend")

	// Queue misuse.
	ErrInvalidPosition = errors.New("invalid queue position")
	ErrNothingPlaying  = errors.New("nothing is currently playing")
)
