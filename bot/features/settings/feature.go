package settings

import (
	"cosmolive/service"

	"github.com/bwmarrin/discordgo"
)

// CommandSetupChannel stores the invoking channel as the announcement channel
const CommandSetupChannel = "setup-channel"

var adminPermissions int64 = discordgo.PermissionAdministrator

// Feature handles guild settings management
type Feature struct {
	liveService service.LiveAlertService
}

// NewFeature creates a new settings feature instance
func NewFeature(liveService service.LiveAlertService) *Feature {
	return &Feature{
		liveService: liveService,
	}
}

// Commands returns the slash commands this feature owns
func Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:                     CommandSetupChannel,
			Description:              "Set the current channel for COSMO live announcements",
			DefaultMemberPermissions: &adminPermissions,
		},
	}
}

// HandleCommand routes settings commands to appropriate handlers
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.ApplicationCommandData().Name {
	case CommandSetupChannel:
		f.handleSetupChannel(s, i)
	}
}
