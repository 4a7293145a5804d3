package bot

import (
	"context"
	"fmt"

	"cosmolive/bot/common"
	"cosmolive/bot/features/live"
	"cosmolive/models"
	"cosmolive/service"

	"github.com/bwmarrin/discordgo"
)

// discordPlatform implements service.GuildPlatform on a discordgo session.
// Every call carries ctx so shutdown and handler timeouts cancel in-flight requests.
type discordPlatform struct {
	session *discordgo.Session
}

// NewPlatform wraps a session as a service.GuildPlatform
func NewPlatform(session *discordgo.Session) service.GuildPlatform {
	return &discordPlatform{session: session}
}

func (p *discordPlatform) GuildRoles(ctx context.Context, guildID int64) ([]*models.Role, error) {
	roles, err := p.session.GuildRoles(common.FormatID(guildID), discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to list roles for guild %d: %w", guildID, err)
	}

	result := make([]*models.Role, 0, len(roles))
	for _, r := range roles {
		role, err := common.ToRole(r)
		if err != nil {
			return nil, err
		}
		result = append(result, role)
	}
	return result, nil
}

func (p *discordPlatform) CreateRole(ctx context.Context, guildID int64, spec models.RoleSpec) (*models.Role, error) {
	color := spec.Color
	mentionable := spec.Mentionable

	role, err := p.session.GuildRoleCreate(common.FormatID(guildID), &discordgo.RoleParams{
		Name:        spec.Name,
		Color:       &color,
		Mentionable: &mentionable,
	}, discordgo.WithContext(ctx), discordgo.WithAuditLogReason(spec.Reason))
	if err != nil {
		return nil, fmt.Errorf("failed to create role %q in guild %d: %w", spec.Name, guildID, err)
	}
	return common.ToRole(role)
}

func (p *discordPlatform) GuildChannels(ctx context.Context, guildID int64) ([]*models.Channel, error) {
	channels, err := p.session.GuildChannels(common.FormatID(guildID), discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to list channels for guild %d: %w", guildID, err)
	}

	result := make([]*models.Channel, 0, len(channels))
	for _, c := range channels {
		channel, err := common.ToChannel(c)
		if err != nil {
			return nil, err
		}
		result = append(result, channel)
	}
	return result, nil
}

func (p *discordPlatform) CreateTextChannel(ctx context.Context, guildID int64, name string, reason string) (*models.Channel, error) {
	channel, err := p.session.GuildChannelCreateComplex(common.FormatID(guildID), discordgo.GuildChannelCreateData{
		Name: name,
		Type: discordgo.ChannelTypeGuildText,
	}, discordgo.WithContext(ctx), discordgo.WithAuditLogReason(reason))
	if err != nil {
		return nil, fmt.Errorf("failed to create channel %q in guild %d: %w", name, guildID, err)
	}
	return common.ToChannel(channel)
}

func (p *discordPlatform) AddMemberRole(ctx context.Context, guildID, userID, roleID int64) error {
	err := p.session.GuildMemberRoleAdd(common.FormatID(guildID), common.FormatID(userID), common.FormatID(roleID), discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to add role %d to user %d: %w", roleID, userID, err)
	}
	return nil
}

func (p *discordPlatform) RemoveMemberRole(ctx context.Context, guildID, userID, roleID int64) error {
	err := p.session.GuildMemberRoleRemove(common.FormatID(guildID), common.FormatID(userID), common.FormatID(roleID), discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to remove role %d from user %d: %w", roleID, userID, err)
	}
	return nil
}

func (p *discordPlatform) SendLiveAlert(ctx context.Context, channelID int64, alert models.LiveAlert) error {
	_, err := p.session.ChannelMessageSendComplex(common.FormatID(channelID), live.BuildAlertMessage(alert), discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to send alert to channel %d: %w", channelID, err)
	}
	return nil
}
