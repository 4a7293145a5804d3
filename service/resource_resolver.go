package service

import (
	"context"
	"fmt"

	"cosmolive/models"

	log "github.com/sirupsen/logrus"
)

// resourceResolver implements the ResourceResolver interface.
// The platform is the source of truth for whether a role or channel exists;
// the settings store only remembers which one to prefer.
type resourceResolver struct {
	platform GuildPlatform
	settings GuildSettingsService
}

// NewResourceResolver creates a new resource resolver
func NewResourceResolver(platform GuildPlatform, settings GuildSettingsService) ResourceResolver {
	return &resourceResolver{
		platform: platform,
		settings: settings,
	}
}

// EnsureRole returns the guild's notification role.
// Order: cached role id, then exact name match, then creation.
func (r *resourceResolver) EnsureRole(ctx context.Context, guildID int64) (*models.Role, error) {
	logger := log.WithField("guild_id", guildID)

	cachedID, err := r.settings.GetNotificationRoleID(ctx, guildID)
	if err != nil {
		logger.WithError(err).Warn("Could not read cached notification role, falling back to name lookup")
		cachedID = nil
	}

	roles, err := r.platform.GuildRoles(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list roles: %v", ErrRoleUnavailable, err)
	}

	if cachedID != nil {
		if role := models.FindRoleByID(roles, *cachedID); role != nil {
			return role, nil
		}
		logger.WithField("role_id", *cachedID).Warn("Cached notification role no longer exists")
	}

	if role := models.FindRoleByName(roles, NotificationRoleName); role != nil {
		r.cacheRole(ctx, guildID, role, false)
		return role, nil
	}

	role, err := r.platform.CreateRole(ctx, guildID, models.RoleSpec{
		Name:        NotificationRoleName,
		Color:       NotificationRoleColor,
		Mentionable: true,
		Reason:      notificationRoleReason,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create role: %v", ErrRoleUnavailable, err)
	}
	logger.WithField("role_id", role.ID).Infof("Created role: %s", NotificationRoleName)

	r.cacheRole(ctx, guildID, role, true)
	return role, nil
}

// EnsureAnnouncementDestination returns the channel alerts are posted to.
// Order: stored channel, then a text channel with the well-known name, then creation.
// Falling back never rewrites the stored channel; only setup-channel does.
func (r *resourceResolver) EnsureAnnouncementDestination(ctx context.Context, guildID int64) (*models.Channel, error) {
	logger := log.WithField("guild_id", guildID)

	storedID, err := r.settings.GetAnnouncementChannelID(ctx, guildID)
	if err != nil {
		logger.WithError(err).Error("Error fetching guild settings from database")
		storedID = nil
	}

	channels, err := r.platform.GuildChannels(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list channels: %v", ErrChannelUnavailable, err)
	}

	if storedID != nil {
		if channel := models.FindChannelByID(channels, *storedID); channel != nil {
			return channel, nil
		}
		logger.WithField("channel_id", *storedID).Warn("Configured announcement channel no longer exists, falling back")
	}

	if channel := models.FindTextChannelByName(channels, AnnouncementChannelName); channel != nil {
		return channel, nil
	}

	channel, err := r.platform.CreateTextChannel(ctx, guildID, AnnouncementChannelName, announcementChannelReason)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create channel: %v", ErrChannelUnavailable, err)
	}
	logger.WithField("channel_id", channel.ID).Infof("Created channel: %s", AnnouncementChannelName)

	return channel, nil
}

// cacheRole remembers the resolved role id. Failure only costs a name lookup next time.
func (r *resourceResolver) cacheRole(ctx context.Context, guildID int64, role *models.Role, created bool) {
	if err := r.settings.SetNotificationRole(ctx, guildID, role.ID, created); err != nil {
		log.WithFields(log.Fields{
			"guild_id": guildID,
			"role_id":  role.ID,
		}).WithError(err).Warn("Failed to cache notification role")
	}
}
