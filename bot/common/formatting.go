package common

import (
	"fmt"
	"unicode/utf8"
)

// ChannelMention returns a Discord mention string for a channel
func ChannelMention(channelID int64) string {
	return fmt.Sprintf("<#%d>", channelID)
}

// RoleMention returns a Discord mention string for a role
func RoleMention(roleID int64) string {
	return fmt.Sprintf("<@&%d>", roleID)
}

// Truncate shortens s to at most limit runes, marking the cut with an ellipsis
func Truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit-1]) + "…"
}
