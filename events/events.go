package events

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"
)

// EventType represents different types of events in the system
type EventType string

const (
	EventTypeDestinationConfigured  EventType = "destination_configured"
	EventTypeNotificationRoleCached EventType = "notification_role_cached"
	EventTypeLiveAnnounced          EventType = "live_announced"
	EventTypeSubscriptionChanged    EventType = "subscription_changed"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// DestinationConfiguredEvent is raised after an admin stores a new announcement channel
type DestinationConfiguredEvent struct {
	GuildID           int64
	ChannelID         int64
	PreviousChannelID *int64
	ConfiguredBy      int64
}

func (e DestinationConfiguredEvent) Type() EventType {
	return EventTypeDestinationConfigured
}

// NotificationRoleCachedEvent is raised when a resolved role id is written to guild settings
type NotificationRoleCachedEvent struct {
	GuildID int64
	RoleID  int64
	Created bool
}

func (e NotificationRoleCachedEvent) Type() EventType {
	return EventTypeNotificationRoleCached
}

// LiveAnnouncedEvent is raised after an alert was posted
type LiveAnnouncedEvent struct {
	GuildID     int64
	ChannelID   int64
	Group       string
	Member      string
	AnnouncedBy int64
}

func (e LiveAnnouncedEvent) Type() EventType {
	return EventTypeLiveAnnounced
}

// SubscriptionChangedEvent is raised when a member joins or leaves the notification role
type SubscriptionChangedEvent struct {
	GuildID    int64
	UserID     int64
	RoleID     int64
	Subscribed bool
}

func (e SubscriptionChangedEvent) Type() EventType {
	return EventTypeSubscriptionChanged
}

// Handler is a function that handles events
type Handler func(ctx context.Context, event Event)

// Bus manages event subscriptions and dispatching
type Bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]Handler
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[EventType][]Handler),
	}
}

// Subscribe adds a handler for a specific event type
func (b *Bus) Subscribe(eventType EventType, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)

	log.WithFields(log.Fields{
		"eventType":    eventType,
		"handlerCount": len(b.handlers[eventType]),
	}).Debug("Subscribed handler to event type")
}

// Emit publishes an event to all registered handlers. Handlers run on their
// own goroutines; a panicking handler is logged and does not affect others.
func (b *Bus) Emit(ctx context.Context, event Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers[event.Type()]))
	copy(handlers, b.handlers[event.Type()])
	b.mu.RUnlock()

	log.WithFields(log.Fields{
		"eventType":    event.Type(),
		"handlerCount": len(handlers),
	}).Debug("Emitting event")

	for i, handler := range handlers {
		go func(h Handler, handlerIndex int) {
			defer func() {
				if r := recover(); r != nil {
					log.WithFields(log.Fields{
						"eventType":    event.Type(),
						"handlerIndex": handlerIndex,
						"panic":        r,
					}).Error("Event handler panicked")
				}
			}()
			h(ctx, event)
		}(handler, i)
	}
}

// TransactionalBus holds events raised inside a unit of work until the
// transaction commits.
type TransactionalBus struct {
	real    *Bus
	pending []Event
}

func NewTransactionalBus(real *Bus) *TransactionalBus {
	return &TransactionalBus{real: real}
}

func (b *TransactionalBus) Publish(e Event) {
	b.pending = append(b.pending, e)
}

// Flush hands pending events to the real bus. Called after a successful commit.
func (b *TransactionalBus) Flush() {
	// Handlers outlive the transaction, so they must not inherit its context.
	eventCtx := context.Background()

	for _, ev := range b.pending {
		b.real.Emit(eventCtx, ev)
	}
	b.pending = nil
}

// Discard drops pending events. Called after rollback.
func (b *TransactionalBus) Discard() {
	b.pending = nil
}
