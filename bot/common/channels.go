package common

import (
	"context"
	"fmt"

	"cosmolive/models"

	"github.com/bwmarrin/discordgo"
)

// ChannelKindOf classifies a Discord channel type. Text means a guild channel
// that accepts messages and is returned by the guild channel listing, so
// threads are excluded.
func ChannelKindOf(t discordgo.ChannelType) models.ChannelKind {
	switch t {
	case discordgo.ChannelTypeGuildText,
		discordgo.ChannelTypeGuildNews,
		discordgo.ChannelTypeGuildVoice,
		discordgo.ChannelTypeGuildStageVoice:
		return models.ChannelKindText
	case discordgo.ChannelTypeGuildCategory:
		return models.ChannelKindCategory
	default:
		return models.ChannelKindOther
	}
}

// ToChannel converts a Discord channel to its domain form
func ToChannel(c *discordgo.Channel) (*models.Channel, error) {
	id, err := ParseID(c.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid channel id %q: %w", c.ID, err)
	}
	return &models.Channel{
		ID:   id,
		Name: c.Name,
		Kind: ChannelKindOf(c.Type),
	}, nil
}

// ToRole converts a Discord role to its domain form
func ToRole(r *discordgo.Role) (*models.Role, error) {
	id, err := ParseID(r.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid role id %q: %w", r.ID, err)
	}
	return &models.Role{
		ID:          id,
		Name:        r.Name,
		Color:       r.Color,
		Mentionable: r.Mentionable,
	}, nil
}

// LookupChannel returns a channel from the session state, falling back to the REST API
func LookupChannel(ctx context.Context, s *discordgo.Session, channelID string) (*models.Channel, error) {
	if s.State != nil {
		if c, err := s.State.Channel(channelID); err == nil {
			return ToChannel(c)
		}
	}

	c, err := s.Channel(channelID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch channel %s: %w", channelID, err)
	}
	return ToChannel(c)
}
