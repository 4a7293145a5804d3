package models

import (
	"time"
)

// GuildSettings represents per-guild configuration settings
type GuildSettings struct {
	GuildID               int64     `db:"guild_id"`
	AnnouncementChannelID *int64    `db:"announcement_channel_id"` // Nullable - channel for live alerts
	NotificationRoleID    *int64    `db:"notification_role_id"`    // Nullable - cached id of the alert role
	CreatedAt             time.Time `db:"created_at"`
	UpdatedAt             time.Time `db:"updated_at"`
}

// HasAnnouncementChannel checks if an announcement channel is configured
func (gs *GuildSettings) HasAnnouncementChannel() bool {
	return gs != nil && gs.AnnouncementChannelID != nil && *gs.AnnouncementChannelID > 0
}

// HasNotificationRole checks if a notification role id has been cached
func (gs *GuildSettings) HasNotificationRole() bool {
	return gs != nil && gs.NotificationRoleID != nil && *gs.NotificationRoleID > 0
}
