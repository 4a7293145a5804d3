package settings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cosmolive/bot/common"
	"cosmolive/models"
	"cosmolive/service"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

const setupTimeout = 10 * time.Second

// handleSetupChannel handles /setup-channel
func (f *Feature) handleSetupChannel(s *discordgo.Session, i *discordgo.InteractionCreate) {
	guildID, err := common.ParseID(i.GuildID)
	if err != nil {
		common.HandleError(s, i, fmt.Errorf("invalid guild id %q: %w", i.GuildID, err), false)
		return
	}

	requester, err := common.RequesterFromInteraction(i)
	if err != nil {
		common.HandleError(s, i, err, false)
		return
	}
	if !requester.IsAdmin {
		common.HandleError(s, i, setupError(service.ErrNotAdministrator), false)
		return
	}

	// The channel may need a REST lookup and the upsert runs in a transaction
	if err := common.DeferResponse(s, i, true); err != nil {
		log.Errorf("Error deferring setup-channel response: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), setupTimeout)
	defer cancel()

	channel, err := common.LookupChannel(ctx, s, i.ChannelID)
	if err != nil {
		common.HandleError(s, i, common.NewSystemError(err, "This command must be used in a text channel.", "Failed to look up invoking channel"), true)
		return
	}

	err = f.liveService.ConfigureDestination(ctx, models.ConfigureDestinationRequest{
		GuildID:   guildID,
		Channel:   *channel,
		Requester: requester,
	})
	if err != nil {
		common.HandleError(s, i, setupError(err), true)
		return
	}

	common.FollowUpWithSuccess(s, i, fmt.Sprintf("COSMO live announcements will now be sent to %s!", common.ChannelMention(channel.ID)))
}

func setupError(err error) error {
	switch {
	case errors.Is(err, service.ErrNotAdministrator):
		return common.NewUserError("You need administrator permissions to use this command.", "setup-channel by non-administrator")
	case errors.Is(err, service.ErrNotTextChannel):
		return common.NewUserError("This command must be used in a text channel.", "setup-channel outside a text channel")
	case errors.Is(err, service.ErrStoreUnavailable):
		return common.NewSystemError(err, "Failed to save channel settings. Please try again.", "Error saving channel settings")
	default:
		return err
	}
}
