package bot

import (
	"context"

	"cosmolive/events"

	log "github.com/sirupsen/logrus"
)

// subscribeAuditLog writes one structured log line per domain event
func subscribeAuditLog(bus *events.Bus) {
	bus.Subscribe(events.EventTypeDestinationConfigured, func(ctx context.Context, event events.Event) {
		e, ok := event.(events.DestinationConfiguredEvent)
		if !ok {
			return
		}
		fields := log.Fields{
			"guild_id":      e.GuildID,
			"channel_id":    e.ChannelID,
			"configured_by": e.ConfiguredBy,
		}
		if e.PreviousChannelID != nil {
			fields["previous_channel_id"] = *e.PreviousChannelID
		}
		log.WithFields(fields).Info("Announcement channel configured")
	})

	bus.Subscribe(events.EventTypeNotificationRoleCached, func(ctx context.Context, event events.Event) {
		e, ok := event.(events.NotificationRoleCachedEvent)
		if !ok {
			return
		}
		log.WithFields(log.Fields{
			"guild_id": e.GuildID,
			"role_id":  e.RoleID,
			"created":  e.Created,
		}).Debug("Notification role cached")
	})

	bus.Subscribe(events.EventTypeLiveAnnounced, func(ctx context.Context, event events.Event) {
		e, ok := event.(events.LiveAnnouncedEvent)
		if !ok {
			return
		}
		log.WithFields(log.Fields{
			"guild_id":     e.GuildID,
			"channel_id":   e.ChannelID,
			"group":        e.Group,
			"member":       e.Member,
			"announced_by": e.AnnouncedBy,
		}).Info("Live alert posted")
	})

	bus.Subscribe(events.EventTypeSubscriptionChanged, func(ctx context.Context, event events.Event) {
		e, ok := event.(events.SubscriptionChangedEvent)
		if !ok {
			return
		}
		log.WithFields(log.Fields{
			"guild_id":   e.GuildID,
			"user_id":    e.UserID,
			"role_id":    e.RoleID,
			"subscribed": e.Subscribed,
		}).Info("Notification subscription changed")
	})
}
