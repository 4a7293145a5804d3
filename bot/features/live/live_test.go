package live

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"cosmolive/bot/common"
	"cosmolive/directory"
	"cosmolive/models"
	"cosmolive/service"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stringOption(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionString,
		Value: value,
	}
}

func TestParseAnnounceArgs(t *testing.T) {
	dir, err := directory.Default()
	require.NoError(t, err)

	tests := []struct {
		name    string
		data    discordgo.ApplicationCommandInteractionData
		want    AnnounceArgs
		wantErr error
	}{
		{
			name: "member only",
			data: discordgo.ApplicationCommandInteractionData{
				Name:    "live-artms",
				Options: []*discordgo.ApplicationCommandInteractionDataOption{stringOption(OptionMember, "Heejin")},
			},
			want: AnnounceArgs{Group: "ARTMS", Member: "Heejin"},
		},
		{
			name: "member with message",
			data: discordgo.ApplicationCommandInteractionData{
				Name: "live-triples",
				Options: []*discordgo.ApplicationCommandInteractionDataOption{
					stringOption(OptionMember, "Kaede"),
					stringOption(OptionMessage, "  late night talk  "),
				},
			},
			want: AnnounceArgs{Group: "tripleS", Member: "Kaede", Note: "late night talk"},
		},
		{
			name: "member from another group",
			data: discordgo.ApplicationCommandInteractionData{
				Name:    "live-idntt",
				Options: []*discordgo.ApplicationCommandInteractionDataOption{stringOption(OptionMember, "Heejin")},
			},
			wantErr: directory.ErrUnknownMember,
		},
		{
			name:    "missing member",
			data:    discordgo.ApplicationCommandInteractionData{Name: "live-idntt"},
			wantErr: directory.ErrUnknownMember,
		},
		{
			name:    "unknown command",
			data:    discordgo.ApplicationCommandInteractionData{Name: "live-loona"},
			wantErr: directory.ErrUnknownGroup,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAnnounceArgs(dir, tt.data)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func testAlert() models.LiveAlert {
	return models.LiveAlert{
		Group:       "G1",
		Member:      "MemberX",
		RoleID:      7001,
		AnnouncedBy: 1,
		AnnouncedAt: time.Date(2025, 3, 1, 3, 0, 0, 0, time.UTC),
	}
}

func TestBuildAlertEmbed(t *testing.T) {
	embed := BuildAlertEmbed(testAlert())

	assert.Equal(t, "🎤 COSMO LIVE Alert!", embed.Title)
	assert.Equal(t, "**MemberX** from **G1** is now live on COSMO!", embed.Description)
	assert.Equal(t, 0xFF1493, embed.Color)
	assert.Equal(t, "2025-03-01T03:00:00Z", embed.Timestamp)
	require.NotNil(t, embed.Footer)
	assert.Equal(t, "Join now on the COSMO app!", embed.Footer.Text)

	require.Len(t, embed.Fields, 3)
	assert.Equal(t, &discordgo.MessageEmbedField{Name: "📱 Platform", Value: "Cosmo : the Gate", Inline: true}, embed.Fields[0])
	assert.Equal(t, &discordgo.MessageEmbedField{Name: "👥 Group", Value: "G1", Inline: true}, embed.Fields[1])
	assert.Equal(t, &discordgo.MessageEmbedField{Name: "🎭 Artist", Value: "MemberX", Inline: true}, embed.Fields[2])
}

func TestBuildAlertEmbed_Note(t *testing.T) {
	alert := testAlert()
	alert.Note = "come say hi"

	embed := BuildAlertEmbed(alert)
	require.Len(t, embed.Fields, 4)
	assert.Equal(t, "💬 Message", embed.Fields[3].Name)
	assert.Equal(t, "come say hi", embed.Fields[3].Value)
	assert.False(t, embed.Fields[3].Inline)

	alert.Note = strings.Repeat("a", 2000)
	embed = BuildAlertEmbed(alert)
	assert.LessOrEqual(t, len([]rune(embed.Fields[3].Value)), common.MaxEmbedFieldValue)
}

func TestBuildAlertMessage(t *testing.T) {
	msg := BuildAlertMessage(testAlert())

	assert.Equal(t, "<@&7001>", msg.Content)
	require.Len(t, msg.Embeds, 1)
	require.NotNil(t, msg.AllowedMentions)
	assert.Equal(t, []string{"7001"}, msg.AllowedMentions.Roles)

	// Discord rejects "roles" together with a "roles" parse entry
	raw, err := json.Marshal(msg.AllowedMentions)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"parse":[]`)
}

func TestAnnounceError(t *testing.T) {
	tests := []struct {
		err         error
		wantMessage string
	}{
		{service.ErrRoleUnavailable, "Unable to create or find the notification role. Please check bot permissions."},
		{service.ErrChannelUnavailable, "Unable to find or create the announcement channel. Please check bot permissions."},
		{service.ErrSendFailure, "Failed to send notification. Please check bot permissions."},
		{directory.ErrUnknownMember, "Please pick a member from the list."},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			wrapped := fmt.Errorf("%w: boom", tt.err)

			var botErr *common.BotError
			require.True(t, errors.As(announceError(wrapped), &botErr))
			assert.Equal(t, tt.wantMessage, botErr.UserMessage)
		})
	}

	plain := errors.New("unexpected")
	assert.Equal(t, plain, announceError(plain))
}

func TestFeature_Handles(t *testing.T) {
	dir, err := directory.Default()
	require.NoError(t, err)
	f := NewFeature(dir, nil)

	for _, name := range []string{"live-triples", "live-artms", "live-idntt"} {
		assert.True(t, f.Handles(name), name)
	}
	assert.False(t, f.Handles("join-notifications"))
	assert.False(t, f.Handles("live-unknown"))
}
