package live

import (
	"fmt"

	"cosmolive/directory"
	"cosmolive/service"

	"github.com/bwmarrin/discordgo"
)

// Feature handles the per-group announce commands
type Feature struct {
	directory   *directory.Directory
	liveService service.LiveAlertService
}

// NewFeature creates a new live feature instance
func NewFeature(dir *directory.Directory, liveService service.LiveAlertService) *Feature {
	return &Feature{
		directory:   dir,
		liveService: liveService,
	}
}

// Handles reports whether commandName is one of the announce commands
func (f *Feature) Handles(commandName string) bool {
	_, ok := f.directory.GroupForCommand(commandName)
	return ok
}

// HandleCommand handles an announce command
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleAnnounce(s, i)
}

// Commands returns one announce command per directory group, in directory order
func Commands(dir *directory.Directory) []*discordgo.ApplicationCommand {
	commands := make([]*discordgo.ApplicationCommand, 0, len(dir.Groups))
	for _, group := range dir.Groups {
		description := group.Description
		if description == "" {
			description = fmt.Sprintf("Announce that a %s member is going live on COSMO", group.Name)
		}

		choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(group.Members))
		for _, member := range group.Members {
			choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
				Name:  member,
				Value: member,
			})
		}

		commands = append(commands, &discordgo.ApplicationCommand{
			Name:        group.Command,
			Description: description,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        OptionMember,
					Description: "Select the member",
					Required:    true,
					Choices:     choices,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        OptionMessage,
					Description: "Optional custom message",
					Required:    false,
				},
			},
		})
	}
	return commands
}
