package repository

import (
	"context"
	"errors"
	"fmt"

	"cosmolive/database"
	"cosmolive/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Queryable is satisfied by both *pgxpool.Pool and pgx.Tx
type Queryable interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const guildSettingsColumns = `guild_id, announcement_channel_id, notification_role_id, created_at, updated_at`

// GuildSettingsRepository implements the GuildSettingsRepository interface
type GuildSettingsRepository struct {
	q Queryable
}

// NewGuildSettingsRepository creates a new guild settings repository
func NewGuildSettingsRepository(db *database.DB) *GuildSettingsRepository {
	return &GuildSettingsRepository{q: db.Pool}
}

// newGuildSettingsRepositoryWithTx creates a new guild settings repository bound to a transaction
func newGuildSettingsRepositoryWithTx(tx Queryable) *GuildSettingsRepository {
	return &GuildSettingsRepository{q: tx}
}

// GetByGuildID retrieves the settings row for a guild, returning nil when none exists
func (r *GuildSettingsRepository) GetByGuildID(ctx context.Context, guildID int64) (*models.GuildSettings, error) {
	query := `SELECT ` + guildSettingsColumns + ` FROM guild_settings WHERE guild_id = $1`

	settings, err := scanGuildSettings(r.q.QueryRow(ctx, query, guildID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get guild settings for guild %d: %w", guildID, err)
	}

	return settings, nil
}

// UpsertAnnouncementChannel sets the announcement channel, creating the row if needed.
// Other columns of an existing row are left untouched.
func (r *GuildSettingsRepository) UpsertAnnouncementChannel(ctx context.Context, guildID int64, channelID int64) (*models.GuildSettings, error) {
	query := `
		INSERT INTO guild_settings (guild_id, announcement_channel_id)
		VALUES ($1, $2)
		ON CONFLICT (guild_id) DO UPDATE
		SET announcement_channel_id = EXCLUDED.announcement_channel_id,
		    updated_at = NOW()
		RETURNING ` + guildSettingsColumns

	settings, err := scanGuildSettings(r.q.QueryRow(ctx, query, guildID, channelID))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert announcement channel for guild %d: %w", guildID, err)
	}

	return settings, nil
}

// UpsertNotificationRole sets the cached notification role, creating the row if needed
func (r *GuildSettingsRepository) UpsertNotificationRole(ctx context.Context, guildID int64, roleID int64) (*models.GuildSettings, error) {
	query := `
		INSERT INTO guild_settings (guild_id, notification_role_id)
		VALUES ($1, $2)
		ON CONFLICT (guild_id) DO UPDATE
		SET notification_role_id = EXCLUDED.notification_role_id,
		    updated_at = NOW()
		RETURNING ` + guildSettingsColumns

	settings, err := scanGuildSettings(r.q.QueryRow(ctx, query, guildID, roleID))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert notification role for guild %d: %w", guildID, err)
	}

	return settings, nil
}

func scanGuildSettings(row pgx.Row) (*models.GuildSettings, error) {
	var settings models.GuildSettings
	err := row.Scan(
		&settings.GuildID,
		&settings.AnnouncementChannelID,
		&settings.NotificationRoleID,
		&settings.CreatedAt,
		&settings.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &settings, nil
}
