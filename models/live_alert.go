package models

import (
	"slices"
	"time"
)

// Requester identifies the guild member who issued a command
type Requester struct {
	UserID   int64
	Username string
	RoleIDs  []int64
	IsAdmin  bool
}

// HasRole reports whether the requester currently holds roleID
func (r Requester) HasRole(roleID int64) bool {
	return slices.Contains(r.RoleIDs, roleID)
}

// AnnounceRequest is a validated-at-the-boundary announce command
type AnnounceRequest struct {
	GuildID   int64
	Group     string
	Member    string
	Note      string
	Requester Requester
}

// LiveAlert is the public message posted to the announcement channel
type LiveAlert struct {
	Group       string
	Member      string
	Note        string
	RoleID      int64
	AnnouncedBy int64
	AnnouncedAt time.Time
}

// AnnounceResult describes where an alert was delivered
type AnnounceResult struct {
	Role    *Role
	Channel *Channel
	Alert   LiveAlert
}

// SubscriptionResult is the outcome of a subscribe or unsubscribe command
type SubscriptionResult struct {
	Role *Role
	// Changed is false when the requester was already in the requested state
	Changed bool
}

// ConfigureDestinationRequest asks to store the invoking channel as the destination
type ConfigureDestinationRequest struct {
	GuildID   int64
	Channel   Channel
	Requester Requester
}
