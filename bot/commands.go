package bot

import (
	"cosmolive/bot/features/live"
	"cosmolive/bot/features/notifications"
	"cosmolive/bot/features/settings"
	"cosmolive/directory"

	"github.com/bwmarrin/discordgo"
)

// BuildCommands returns every slash command the bot registers in a guild
func BuildCommands(dir *directory.Directory) []*discordgo.ApplicationCommand {
	var commands []*discordgo.ApplicationCommand
	commands = append(commands, live.Commands(dir)...)
	commands = append(commands, notifications.Commands()...)
	commands = append(commands, settings.Commands()...)
	return commands
}
