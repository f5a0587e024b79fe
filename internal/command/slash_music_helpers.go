package command

import (
	"context"
	"errors"
	"time"

	"github.com/kangalioo/CourtJester/internal/music"
)

// commandTimeout bounds the external calls a single command may make.
const commandTimeout = 15 * time.Second

func commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), commandTimeout)
}

// requireSameChannel enforces that the caller shares the bot's voice channel.
// It responds to the interaction itself on failure and reports whether the
// command may proceed. "Bot absent" and "wrong channel" are told apart so the
// user gets an accurate message.
func requireSameChannel(ctx *SlashContext) (bool, error) {
	same, err := ctx.Music.Sessions().SameChannel(ctx.GuildID(), ctx.UserVoiceChannel())
	if errors.Is(err, music.ErrNotConnected) {
		return false, RespondEphemeral(ctx.Session, ctx.Event, FriendlyError(music.ErrNotConnected))
	}
	if err != nil {
		return false, RespondEphemeral(ctx.Session, ctx.Event, FriendlyError(err))
	}
	if !same {
		return false, RespondEphemeral(ctx.Session, ctx.Event, "Please be in a voice channel or in the same voice channel as me!")
	}
	return true, nil
}
