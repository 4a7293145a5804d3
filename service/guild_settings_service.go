package service

import (
	"context"
	"fmt"

	"cosmolive/events"
	"cosmolive/models"
)

// guildSettingsService implements the GuildSettingsService interface
type guildSettingsService struct {
	uowFactory UnitOfWorkFactory
}

// NewGuildSettingsService creates a new guild settings service
func NewGuildSettingsService(uowFactory UnitOfWorkFactory) GuildSettingsService {
	return &guildSettingsService{
		uowFactory: uowFactory,
	}
}

// GetAnnouncementChannelID returns the stored announcement channel for a guild
func (s *guildSettingsService) GetAnnouncementChannelID(ctx context.Context, guildID int64) (*int64, error) {
	settings, err := s.getSettings(ctx, guildID)
	if err != nil {
		return nil, err
	}
	if !settings.HasAnnouncementChannel() {
		return nil, nil
	}
	return settings.AnnouncementChannelID, nil
}

// GetNotificationRoleID returns the cached notification role for a guild
func (s *guildSettingsService) GetNotificationRoleID(ctx context.Context, guildID int64) (*int64, error) {
	settings, err := s.getSettings(ctx, guildID)
	if err != nil {
		return nil, err
	}
	if !settings.HasNotificationRole() {
		return nil, nil
	}
	return settings.NotificationRoleID, nil
}

// SetAnnouncementChannel upserts the announcement channel for a guild
func (s *guildSettingsService) SetAnnouncementChannel(ctx context.Context, guildID int64, channelID int64, configuredBy int64) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("%w: failed to begin transaction: %v", ErrStoreUnavailable, err)
	}
	defer uow.Rollback() // No-op if already committed

	repo := uow.GuildSettingsRepository()

	previous, err := repo.GetByGuildID(ctx, guildID)
	if err != nil {
		return fmt.Errorf("%w: failed to get guild settings: %v", ErrStoreUnavailable, err)
	}

	if _, err := repo.UpsertAnnouncementChannel(ctx, guildID, channelID); err != nil {
		return fmt.Errorf("%w: failed to save announcement channel: %v", ErrStoreUnavailable, err)
	}

	event := events.DestinationConfiguredEvent{
		GuildID:      guildID,
		ChannelID:    channelID,
		ConfiguredBy: configuredBy,
	}
	if previous.HasAnnouncementChannel() {
		event.PreviousChannelID = previous.AnnouncementChannelID
	}
	uow.EventBus().Publish(event)

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("%w: failed to commit transaction: %v", ErrStoreUnavailable, err)
	}

	return nil
}

// SetNotificationRole upserts the cached notification role for a guild
func (s *guildSettingsService) SetNotificationRole(ctx context.Context, guildID int64, roleID int64, created bool) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("%w: failed to begin transaction: %v", ErrStoreUnavailable, err)
	}
	defer uow.Rollback() // No-op if already committed

	if _, err := uow.GuildSettingsRepository().UpsertNotificationRole(ctx, guildID, roleID); err != nil {
		return fmt.Errorf("%w: failed to save notification role: %v", ErrStoreUnavailable, err)
	}

	uow.EventBus().Publish(events.NotificationRoleCachedEvent{
		GuildID: guildID,
		RoleID:  roleID,
		Created: created,
	})

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("%w: failed to commit transaction: %v", ErrStoreUnavailable, err)
	}

	return nil
}

// getSettings reads the settings row in a read-only unit of work
func (s *guildSettingsService) getSettings(ctx context.Context, guildID int64) (*models.GuildSettings, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("%w: failed to begin transaction: %v", ErrStoreUnavailable, err)
	}
	defer uow.Rollback()

	settings, err := uow.GuildSettingsRepository().GetByGuildID(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get guild settings: %v", ErrStoreUnavailable, err)
	}

	return settings, nil
}
