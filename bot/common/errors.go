package common

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// BotError represents a structured error with user-facing and internal messages
type BotError struct {
	UserMessage string     // Message shown to Discord user, without the ❌ prefix
	LogMessage  string     // Internal message for logging
	Err         error      // Underlying error
	Fields      log.Fields // Additional context for logging
}

// Error implements the error interface
func (e *BotError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.LogMessage, e.Err)
	}
	return e.LogMessage
}

// Unwrap returns the underlying error
func (e *BotError) Unwrap() error {
	return e.Err
}

// NewUserError creates an error for user-caused issues (validation, missing permissions)
func NewUserError(userMessage string, logMessage string) *BotError {
	return &BotError{
		UserMessage: userMessage,
		LogMessage:  logMessage,
	}
}

// NewSystemError creates an error for platform or storage failures
func NewSystemError(err error, userMessage string, logMessage string) *BotError {
	return &BotError{
		UserMessage: userMessage,
		LogMessage:  logMessage,
		Err:         err,
	}
}

// RespondWithError sends an error message as an ephemeral interaction response
func RespondWithError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	RespondEphemeral(s, i, "❌ "+message)
}

// FollowUpWithError sends an error message as a follow-up to a deferred interaction
func FollowUpWithError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	FollowUpEphemeral(s, i, "❌ "+message)
}

// HandleError logs err with interaction context and tells the user what went wrong
func HandleError(s *discordgo.Session, i *discordgo.InteractionCreate, err error, deferred bool) {
	fields := interactionFields(i)

	userMessage := "Something went wrong. Please try again later."
	var botErr *BotError
	if errors.As(err, &botErr) {
		for k, v := range botErr.Fields {
			fields[k] = v
		}
		fields["user_message"] = botErr.UserMessage
		userMessage = botErr.UserMessage

		entry := log.WithFields(fields)
		if botErr.Err != nil {
			entry.WithError(botErr.Err).Error(botErr.LogMessage)
		} else {
			entry.Info(botErr.LogMessage)
		}
	} else {
		log.WithFields(fields).WithError(err).Error("Unexpected error in bot command")
	}

	if deferred {
		FollowUpWithError(s, i, userMessage)
	} else {
		RespondWithError(s, i, userMessage)
	}
}

func interactionFields(i *discordgo.InteractionCreate) log.Fields {
	fields := log.Fields{
		"guild_id":   i.GuildID,
		"channel_id": i.ChannelID,
	}
	if user := InteractionUser(i); user != nil {
		fields["user_id"] = user.ID
	}
	if i.Type == discordgo.InteractionApplicationCommand {
		fields["command"] = i.ApplicationCommandData().Name
	}
	return fields
}
