package live

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cosmolive/bot/common"
	"cosmolive/directory"
	"cosmolive/models"
	"cosmolive/service"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

const announceTimeout = 30 * time.Second

// handleAnnounce handles /live-<group>
func (f *Feature) handleAnnounce(s *discordgo.Session, i *discordgo.InteractionCreate) {
	args, err := ParseAnnounceArgs(f.directory, i.ApplicationCommandData())
	if err != nil {
		common.HandleError(s, i, announceError(err), false)
		return
	}

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

	// Role and channel resolution can take several API calls
	if err := common.DeferResponse(s, i, true); err != nil {
		log.Errorf("Error deferring announce response: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), announceTimeout)
	defer cancel()

	result, err := f.liveService.Announce(ctx, models.AnnounceRequest{
		GuildID:   guildID,
		Group:     args.Group,
		Member:    args.Member,
		Note:      args.Note,
		Requester: requester,
	})
	if err != nil {
		common.HandleError(s, i, announceError(err), true)
		return
	}

	common.FollowUpWithSuccess(s, i, fmt.Sprintf("Live notification sent for **%s** (%s) in %s!",
		args.Member, args.Group, common.ChannelMention(result.Channel.ID)))
}

// announceError maps service failures to what the user is told
func announceError(err error) error {
	switch {
	case errors.Is(err, directory.ErrUnknownGroup), errors.Is(err, directory.ErrUnknownMember):
		botErr := common.NewUserError("Please pick a member from the list.", "Announce for unknown member")
		botErr.Fields = log.Fields{"cause": err.Error()}
		return botErr
	case errors.Is(err, service.ErrRoleUnavailable):
		return common.NewSystemError(err, "Unable to create or find the notification role. Please check bot permissions.", "Failed to resolve notification role")
	case errors.Is(err, service.ErrChannelUnavailable):
		return common.NewSystemError(err, "Unable to find or create the announcement channel. Please check bot permissions.", "Failed to resolve announcement channel")
	case errors.Is(err, service.ErrSendFailure):
		return common.NewSystemError(err, "Failed to send notification. Please check bot permissions.", "Error sending notification")
	default:
		return err
	}
}
