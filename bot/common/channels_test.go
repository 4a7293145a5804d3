package common

import (
	"fmt"
	"testing"

	"cosmolive/models"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannelKindOf(t *testing.T) {
	tests := []struct {
		channelType discordgo.ChannelType
		want        models.ChannelKind
	}{
		{discordgo.ChannelTypeGuildText, models.ChannelKindText},
		{discordgo.ChannelTypeGuildNews, models.ChannelKindText},
		{discordgo.ChannelTypeGuildPublicThread, models.ChannelKindOther},
		{discordgo.ChannelTypeGuildPrivateThread, models.ChannelKindOther},
		{discordgo.ChannelTypeGuildNewsThread, models.ChannelKindOther},
		{discordgo.ChannelTypeGuildVoice, models.ChannelKindText},
		{discordgo.ChannelTypeGuildStageVoice, models.ChannelKindText},
		{discordgo.ChannelTypeGuildCategory, models.ChannelKindCategory},
		{discordgo.ChannelTypeGuildForum, models.ChannelKindOther},
		{discordgo.ChannelTypeGuildDirectory, models.ChannelKindOther},
		{discordgo.ChannelTypeDM, models.ChannelKindOther},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("type_%d", tt.channelType), func(t *testing.T) {
			assert.Equal(t, tt.want, ChannelKindOf(tt.channelType))
		})
	}
}

func TestToChannel(t *testing.T) {
	c, err := ToChannel(&discordgo.Channel{ID: "42", Name: "cosmo-live-announcements", Type: discordgo.ChannelTypeGuildText})
	require.NoError(t, err)
	assert.Equal(t, &models.Channel{ID: 42, Name: "cosmo-live-announcements", Kind: models.ChannelKindText}, c)

	_, err = ToChannel(&discordgo.Channel{ID: "abc"})
	assert.Error(t, err)
}

func TestToChannel_ThreadIsNotADestination(t *testing.T) {
	c, err := ToChannel(&discordgo.Channel{ID: "42", Name: "stream-chat", Type: discordgo.ChannelTypeGuildPublicThread, ParentID: "1001"})
	require.NoError(t, err)
	assert.False(t, c.IsText())
}

func TestToRole(t *testing.T) {
	r, err := ToRole(&discordgo.Role{ID: "7", Name: "COSMO Live Alerts", Color: 0xFF1493, Mentionable: true})
	require.NoError(t, err)
	assert.Equal(t, &models.Role{ID: 7, Name: "COSMO Live Alerts", Color: 0xFF1493, Mentionable: true}, r)
}
