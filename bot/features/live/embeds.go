package live

import (
	"fmt"
	"time"

	"cosmolive/bot/common"
	"cosmolive/models"

	"github.com/bwmarrin/discordgo"
)

const (
	alertTitle    = "🎤 COSMO LIVE Alert!"
	alertFooter   = "Join now on the COSMO app!"
	alertPlatform = "Cosmo : the Gate"
)

// BuildAlertEmbed creates the public live alert embed
func BuildAlertEmbed(alert models.LiveAlert) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       alertTitle,
		Description: fmt.Sprintf("**%s** from **%s** is now live on COSMO!", alert.Member, alert.Group),
		Color:       common.ColorLive,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "📱 Platform", Value: alertPlatform, Inline: true},
			{Name: "👥 Group", Value: alert.Group, Inline: true},
			{Name: "🎭 Artist", Value: alert.Member, Inline: true},
		},
		Timestamp: alert.AnnouncedAt.Format(time.RFC3339),
		Footer: &discordgo.MessageEmbedFooter{
			Text: alertFooter,
		},
	}

	if alert.Note != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "💬 Message",
			Value: common.Truncate(alert.Note, common.MaxEmbedFieldValue),
		})
	}

	return embed
}

// BuildAlertMessage creates the channel message: the role mention plus the embed.
// Only the notification role may be pinged.
func BuildAlertMessage(alert models.LiveAlert) *discordgo.MessageSend {
	return &discordgo.MessageSend{
		Content: common.RoleMention(alert.RoleID),
		Embeds:  []*discordgo.MessageEmbed{BuildAlertEmbed(alert)},
		AllowedMentions: &discordgo.MessageAllowedMentions{
			Parse: []discordgo.AllowedMentionType{},
			Roles: []string{common.FormatID(alert.RoleID)},
		},
	}
}
