package service

import (
	"context"

	"cosmolive/events"
	"cosmolive/models"
)

// GuildSettingsRepository defines the interface for guild settings data access
type GuildSettingsRepository interface {
	// GetByGuildID returns the settings row for a guild, or nil if none exists
	GetByGuildID(ctx context.Context, guildID int64) (*models.GuildSettings, error)

	// UpsertAnnouncementChannel inserts or updates the announcement channel for a guild
	UpsertAnnouncementChannel(ctx context.Context, guildID int64, channelID int64) (*models.GuildSettings, error)

	// UpsertNotificationRole inserts or updates the cached notification role for a guild
	UpsertNotificationRole(ctx context.Context, guildID int64, roleID int64) (*models.GuildSettings, error)
}

// EventPublisher defines the interface for publishing events inside a unit of work
type EventPublisher interface {
	Publish(event events.Event)
}

// EventEmitter delivers events immediately, outside any transaction
type EventEmitter interface {
	Emit(ctx context.Context, event events.Event)
}

// UnitOfWork defines the interface for transactional repository operations
type UnitOfWork interface {
	// Begin starts a new transaction
	Begin(ctx context.Context) error

	// Commit commits the transaction
	Commit() error

	// Rollback rolls back the transaction
	Rollback() error

	// Repository getters
	GuildSettingsRepository() GuildSettingsRepository
	EventBus() EventPublisher
}

// UnitOfWorkFactory defines the interface for creating UnitOfWork instances
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// GuildSettingsService defines the interface for guild settings operations.
// All failures wrap ErrStoreUnavailable.
type GuildSettingsService interface {
	// GetAnnouncementChannelID returns the configured channel, or nil when none is stored
	GetAnnouncementChannelID(ctx context.Context, guildID int64) (*int64, error)

	// SetAnnouncementChannel stores the announcement channel for a guild
	SetAnnouncementChannel(ctx context.Context, guildID int64, channelID int64, configuredBy int64) error

	// GetNotificationRoleID returns the cached notification role, or nil when none is stored
	GetNotificationRoleID(ctx context.Context, guildID int64) (*int64, error)

	// SetNotificationRole caches the resolved notification role for a guild
	SetNotificationRole(ctx context.Context, guildID int64, roleID int64, created bool) error
}

// GuildPlatform is the slice of the chat platform that the resolver and the
// live alert service act on. Implementations must honor ctx cancellation.
type GuildPlatform interface {
	// GuildRoles lists the roles of a guild
	GuildRoles(ctx context.Context, guildID int64) ([]*models.Role, error)

	// CreateRole creates a role in a guild
	CreateRole(ctx context.Context, guildID int64, spec models.RoleSpec) (*models.Role, error)

	// GuildChannels lists the channels of a guild
	GuildChannels(ctx context.Context, guildID int64) ([]*models.Channel, error)

	// CreateTextChannel creates a text channel in a guild
	CreateTextChannel(ctx context.Context, guildID int64, name string, reason string) (*models.Channel, error)

	// AddMemberRole grants roleID to a guild member
	AddMemberRole(ctx context.Context, guildID, userID, roleID int64) error

	// RemoveMemberRole revokes roleID from a guild member
	RemoveMemberRole(ctx context.Context, guildID, userID, roleID int64) error

	// SendLiveAlert posts an alert to a channel
	SendLiveAlert(ctx context.Context, channelID int64, alert models.LiveAlert) error
}

// ResourceResolver finds or creates the per-guild resources a live alert needs
type ResourceResolver interface {
	// EnsureRole returns the notification role, creating it if needed.
	// Failures wrap ErrRoleUnavailable.
	EnsureRole(ctx context.Context, guildID int64) (*models.Role, error)

	// EnsureAnnouncementDestination returns the channel alerts go to, creating it if needed.
	// Failures wrap ErrChannelUnavailable.
	EnsureAnnouncementDestination(ctx context.Context, guildID int64) (*models.Channel, error)
}

// LiveAlertService implements the four user commands
type LiveAlertService interface {
	// Announce posts a live alert for a directory member
	Announce(ctx context.Context, req models.AnnounceRequest) (*models.AnnounceResult, error)

	// Subscribe grants the notification role to the requester
	Subscribe(ctx context.Context, guildID int64, requester models.Requester) (*models.SubscriptionResult, error)

	// Unsubscribe revokes the notification role from the requester
	Unsubscribe(ctx context.Context, guildID int64, requester models.Requester) (*models.SubscriptionResult, error)

	// ConfigureDestination stores the invoking channel as the announcement channel
	ConfigureDestination(ctx context.Context, req models.ConfigureDestinationRequest) error
}
