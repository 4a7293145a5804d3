package models

// ChannelKind is the coarse classification of a guild channel
type ChannelKind int

const (
	ChannelKindOther ChannelKind = iota
	ChannelKindText
	ChannelKindCategory
)

// Role is a guild role as seen by the resolver
type Role struct {
	ID          int64
	Name        string
	Color       int
	Mentionable bool
}

// RoleSpec describes a role to create
type RoleSpec struct {
	Name        string
	Color       int
	Mentionable bool
	Reason      string
}

// Channel is a guild channel as seen by the resolver
type Channel struct {
	ID   int64
	Name string
	Kind ChannelKind
}

// IsText reports whether messages can be posted to the channel
func (c *Channel) IsText() bool {
	return c != nil && c.Kind == ChannelKindText
}

// FindRoleByID returns the role with the given id, or nil
func FindRoleByID(roles []*Role, id int64) *Role {
	for _, role := range roles {
		if role != nil && role.ID == id {
			return role
		}
	}
	return nil
}

// FindRoleByName returns the first role whose name matches exactly, or nil
func FindRoleByName(roles []*Role, name string) *Role {
	for _, role := range roles {
		if role != nil && role.Name == name {
			return role
		}
	}
	return nil
}

// FindChannelByID returns the channel with the given id, or nil
func FindChannelByID(channels []*Channel, id int64) *Channel {
	for _, channel := range channels {
		if channel != nil && channel.ID == id {
			return channel
		}
	}
	return nil
}

// FindTextChannelByName returns the first text channel named name, or nil
func FindTextChannelByName(channels []*Channel, name string) *Channel {
	for _, channel := range channels {
		if channel.IsText() && channel.Name == name {
			return channel
		}
	}
	return nil
}
