package notifications

import (
	"cosmolive/service"

	"github.com/bwmarrin/discordgo"
)

const (
	CommandJoin  = "join-notifications"
	CommandLeave = "leave-notifications"
)

// Feature lets members opt in and out of live alert pings
type Feature struct {
	liveService service.LiveAlertService
}

// NewFeature creates a new notifications feature instance
func NewFeature(liveService service.LiveAlertService) *Feature {
	return &Feature{
		liveService: liveService,
	}
}

// Commands returns the slash commands this feature owns
func Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        CommandJoin,
			Description: "Get notified when artists go live on COSMO",
		},
		{
			Name:        CommandLeave,
			Description: "Stop receiving COSMO live notifications",
		},
	}
}

// HandleCommand routes notification commands to appropriate handlers
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.ApplicationCommandData().Name {
	case CommandJoin:
		f.handleJoin(s, i)
	case CommandLeave:
		f.handleLeave(s, i)
	}
}
