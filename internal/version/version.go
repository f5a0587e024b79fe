// Package version holds build identity for the bot.
package version

const (
	AppName = "CourtJester"
	Version = "0.2.0"
)
