package service

// Fixed names of the per-guild resources managed by the bot
const (
	NotificationRoleName    = "COSMO Live Alerts"
	NotificationRoleColor   = 0xFF1493
	AnnouncementChannelName = "cosmo-live-announcements"

	notificationRoleReason    = "Role for COSMO live notifications"
	announcementChannelReason = "Channel for COSMO live announcements"
)
