package common

import (
	"fmt"
	"strconv"

	"cosmolive/models"

	"github.com/bwmarrin/discordgo"
)

// ParseID converts a Discord snowflake string to int64
func ParseID(id string) (int64, error) {
	return strconv.ParseInt(id, 10, 64)
}

// FormatID converts an int64 snowflake to its string form
func FormatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// InteractionUser returns the invoking user for guild and DM interactions
func InteractionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

// IsMemberAdmin reports whether the interaction member holds the Administrator permission.
// Member.Permissions on an interaction already folds in roles and channel overwrites.
func IsMemberAdmin(member *discordgo.Member) bool {
	return member != nil && member.Permissions&discordgo.PermissionAdministrator != 0
}

// RequesterFromInteraction builds the domain view of the invoking guild member
func RequesterFromInteraction(i *discordgo.InteractionCreate) (models.Requester, error) {
	if i.Member == nil || i.Member.User == nil {
		return models.Requester{}, fmt.Errorf("interaction has no guild member")
	}

	userID, err := ParseID(i.Member.User.ID)
	if err != nil {
		return models.Requester{}, fmt.Errorf("invalid user id %q: %w", i.Member.User.ID, err)
	}

	roleIDs := make([]int64, 0, len(i.Member.Roles))
	for _, roleID := range i.Member.Roles {
		id, err := ParseID(roleID)
		if err != nil {
			return models.Requester{}, fmt.Errorf("invalid role id %q: %w", roleID, err)
		}
		roleIDs = append(roleIDs, id)
	}

	return models.Requester{
		UserID:   userID,
		Username: i.Member.User.Username,
		RoleIDs:  roleIDs,
		IsAdmin:  IsMemberAdmin(i.Member),
	}, nil
}
