package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cosmolive/directory"
	"cosmolive/events"
	"cosmolive/models"

	log "github.com/sirupsen/logrus"
)

// liveAlertService implements the LiveAlertService interface
type liveAlertService struct {
	directory *directory.Directory
	resolver  ResourceResolver
	settings  GuildSettingsService
	platform  GuildPlatform
	events    EventEmitter
	now       func() time.Time
}

// NewLiveAlertService creates a new live alert service
func NewLiveAlertService(
	dir *directory.Directory,
	resolver ResourceResolver,
	settings GuildSettingsService,
	platform GuildPlatform,
	emitter EventEmitter,
) LiveAlertService {
	return &liveAlertService{
		directory: dir,
		resolver:  resolver,
		settings:  settings,
		platform:  platform,
		events:    emitter,
		now:       time.Now,
	}
}

// Announce resolves the role and destination, then posts the alert.
// Resources resolved before a send failure are kept; re-resolving them is idempotent.
func (s *liveAlertService) Announce(ctx context.Context, req models.AnnounceRequest) (*models.AnnounceResult, error) {
	if err := s.directory.Validate(req.Group, req.Member); err != nil {
		return nil, err
	}

	role, err := s.resolver.EnsureRole(ctx, req.GuildID)
	if err != nil {
		return nil, err
	}

	channel, err := s.resolver.EnsureAnnouncementDestination(ctx, req.GuildID)
	if err != nil {
		return nil, err
	}

	alert := models.LiveAlert{
		Group:       req.Group,
		Member:      req.Member,
		Note:        strings.TrimSpace(req.Note),
		RoleID:      role.ID,
		AnnouncedBy: req.Requester.UserID,
		AnnouncedAt: s.now().UTC(),
	}

	if err := s.platform.SendLiveAlert(ctx, channel.ID, alert); err != nil {
		return nil, fmt.Errorf("%w: channel %d: %v", ErrSendFailure, channel.ID, err)
	}

	s.events.Emit(context.WithoutCancel(ctx), events.LiveAnnouncedEvent{
		GuildID:     req.GuildID,
		ChannelID:   channel.ID,
		Group:       req.Group,
		Member:      req.Member,
		AnnouncedBy: req.Requester.UserID,
	})

	return &models.AnnounceResult{
		Role:    role,
		Channel: channel,
		Alert:   alert,
	}, nil
}

// Subscribe grants the notification role unless the requester already holds it
func (s *liveAlertService) Subscribe(ctx context.Context, guildID int64, requester models.Requester) (*models.SubscriptionResult, error) {
	role, err := s.resolver.EnsureRole(ctx, guildID)
	if err != nil {
		return nil, err
	}

	if requester.HasRole(role.ID) {
		return &models.SubscriptionResult{Role: role, Changed: false}, nil
	}

	if err := s.platform.AddMemberRole(ctx, guildID, requester.UserID, role.ID); err != nil {
		return nil, fmt.Errorf("%w: add role %d to user %d: %v", ErrMemberRoleUpdate, role.ID, requester.UserID, err)
	}

	s.events.Emit(context.WithoutCancel(ctx), events.SubscriptionChangedEvent{
		GuildID:    guildID,
		UserID:     requester.UserID,
		RoleID:     role.ID,
		Subscribed: true,
	})

	return &models.SubscriptionResult{Role: role, Changed: true}, nil
}

// Unsubscribe revokes the notification role if the requester holds it
func (s *liveAlertService) Unsubscribe(ctx context.Context, guildID int64, requester models.Requester) (*models.SubscriptionResult, error) {
	role, err := s.resolver.EnsureRole(ctx, guildID)
	if err != nil {
		return nil, err
	}

	if !requester.HasRole(role.ID) {
		return &models.SubscriptionResult{Role: role, Changed: false}, nil
	}

	if err := s.platform.RemoveMemberRole(ctx, guildID, requester.UserID, role.ID); err != nil {
		return nil, fmt.Errorf("%w: remove role %d from user %d: %v", ErrMemberRoleUpdate, role.ID, requester.UserID, err)
	}

	s.events.Emit(context.WithoutCancel(ctx), events.SubscriptionChangedEvent{
		GuildID:    guildID,
		UserID:     requester.UserID,
		RoleID:     role.ID,
		Subscribed: false,
	})

	return &models.SubscriptionResult{Role: role, Changed: true}, nil
}

// ConfigureDestination stores the invoking channel as the guild's announcement channel
func (s *liveAlertService) ConfigureDestination(ctx context.Context, req models.ConfigureDestinationRequest) error {
	if !req.Requester.IsAdmin {
		return ErrNotAdministrator
	}
	if !req.Channel.IsText() {
		return fmt.Errorf("%w: channel %d", ErrNotTextChannel, req.Channel.ID)
	}

	if err := s.settings.SetAnnouncementChannel(ctx, req.GuildID, req.Channel.ID, req.Requester.UserID); err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"guild_id":   req.GuildID,
		"channel_id": req.Channel.ID,
		"user_id":    req.Requester.UserID,
	}).Infof("Announcement channel set to #%s", req.Channel.Name)

	return nil
}
