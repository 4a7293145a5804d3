package notifications

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

const subscriptionTimeout = 15 * time.Second

type subscriptionFunc func(ctx context.Context, guildID int64, requester models.Requester) (*models.SubscriptionResult, error)

// handleJoin handles /join-notifications
func (f *Feature) handleJoin(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleSubscription(s, i, f.liveService.Subscribe, subscriptionReplies{
		changed:   "You will now be notified when artists go live on COSMO!",
		unchanged: "You already have the %s role!",
		roleError: "Unable to create or find the notification role.",
		failure:   "Failed to add role. Please contact a server admin.",
	})
}

// handleLeave handles /leave-notifications
func (f *Feature) handleLeave(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleSubscription(s, i, f.liveService.Unsubscribe, subscriptionReplies{
		changed:   "You will no longer receive COSMO live notifications.",
		unchanged: "You don't have the %s role!",
		roleError: "Unable to find the notification role.",
		failure:   "Failed to remove role. Please contact a server admin.",
	})
}

type subscriptionReplies struct {
	changed   string
	unchanged string // formatted with the role name
	roleError string
	failure   string
}

func (f *Feature) handleSubscription(s *discordgo.Session, i *discordgo.InteractionCreate, apply subscriptionFunc, replies subscriptionReplies) {
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

	if err := common.DeferResponse(s, i, true); err != nil {
		log.Errorf("Error deferring subscription response: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), subscriptionTimeout)
	defer cancel()

	result, err := apply(ctx, guildID, requester)
	if err != nil {
		common.HandleError(s, i, subscriptionError(err, replies), true)
		return
	}

	if !result.Changed {
		common.FollowUpWithInfo(s, i, fmt.Sprintf(replies.unchanged, result.Role.Name))
		return
	}

	common.FollowUpWithSuccess(s, i, replies.changed)
}

func subscriptionError(err error, replies subscriptionReplies) error {
	switch {
	case errors.Is(err, service.ErrRoleUnavailable):
		return common.NewSystemError(err, replies.roleError, "Failed to resolve notification role")
	case errors.Is(err, service.ErrMemberRoleUpdate):
		return common.NewSystemError(err, replies.failure, "Failed to update member roles")
	default:
		return err
	}
}
