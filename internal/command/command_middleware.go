package command

import (
	"log"

	"github.com/bwmarrin/discordgo"
)

// Middleware wraps a command with a cross-cutting check.
type Middleware func(Command) Command

type wrappedCommand struct {
	Command
	wrap func(ctx interface{}) error
}

func (w *wrappedCommand) Run(ctx interface{}) error {
	return w.wrap(ctx)
}

// SlashDefinition forwards to the wrapped command so middleware never hides a
// command's slash registration.
func (w *wrappedCommand) SlashDefinition() *discordgo.ApplicationCommand {
	if sp, ok := w.Command.(SlashProvider); ok {
		return sp.SlashDefinition()
	}
	return nil
}

// WithGuildOnly rejects the command outside of guilds.
func WithGuildOnly() Middleware {
	return func(cmd Command) Command {
		return &wrappedCommand{
			Command: cmd,
			wrap: func(ctx interface{}) error {
				if v, ok := ctx.(*SlashContext); ok && v.Event.GuildID == "" {
					return RespondEphemeral(v.Session, v.Event, "You must be in a guild to use this command.")
				}
				return cmd.Run(ctx)
			},
		}
	}
}

// WithCommandLogger records each invocation in the guild's command history.
func WithCommandLogger() Middleware {
	return func(cmd Command) Command {
		return &wrappedCommand{
			Command: cmd,
			wrap: func(ctx interface{}) error {
				if v, ok := ctx.(*SlashContext); ok && v.Storage != nil && v.Event.Member != nil {
					err := v.Storage.AddCommandHistoryRecord(
						v.GuildID(), v.Event.ChannelID,
						v.Event.Member.User.ID, v.Event.Member.User.Username,
						cmd.Name(),
					)
					if err != nil {
						log.Println("[WARN] Failed to log command:", err)
					}
				}
				return cmd.Run(ctx)
			},
		}
	}
}

// WithAdminOnly rejects users without the Manage Server permission.
func WithAdminOnly() Middleware {
	return func(cmd Command) Command {
		return &wrappedCommand{
			Command: cmd,
			wrap: func(ctx interface{}) error {
				if v, ok := ctx.(*SlashContext); ok {
					if v.Event.Member == nil || v.Event.Member.Permissions&discordgo.PermissionManageServer == 0 {
						return RespondEphemeral(v.Session, v.Event, "You need the Manage Server permission for that.")
					}
				}
				return cmd.Run(ctx)
			},
		}
	}
}
