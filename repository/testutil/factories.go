package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// CountGuildSettingsRows returns how many settings rows exist for a guild
func CountGuildSettingsRows(t *testing.T, td *TestDatabase, guildID int64) int {
	t.Helper()
	var count int
	err := td.DB.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM guild_settings WHERE guild_id = $1`, guildID,
	).Scan(&count)
	require.NoError(t, err)
	return count
}

// InsertGuildSettings seeds a settings row directly, bypassing the repository
func InsertGuildSettings(t *testing.T, td *TestDatabase, guildID int64, channelID, roleID *int64) {
	t.Helper()
	_, err := td.DB.Exec(context.Background(),
		`INSERT INTO guild_settings (guild_id, announcement_channel_id, notification_role_id) VALUES ($1, $2, $3)`,
		guildID, channelID, roleID,
	)
	require.NoError(t, err)
}

// Int64Ptr returns a pointer to v
func Int64Ptr(v int64) *int64 {
	return &v
}
