package service

import "errors"

var (
	// ErrStoreUnavailable means the settings database could not be read or written
	ErrStoreUnavailable = errors.New("settings store unavailable")

	// ErrRoleUnavailable means the notification role could not be found or created
	ErrRoleUnavailable = errors.New("notification role unavailable")

	// ErrChannelUnavailable means the announcement channel could not be found or created
	ErrChannelUnavailable = errors.New("announcement channel unavailable")

	// ErrSendFailure means posting the alert failed after resources were resolved
	ErrSendFailure = errors.New("failed to send live alert")

	// ErrMemberRoleUpdate means the role could not be granted to or revoked from a member
	ErrMemberRoleUpdate = errors.New("failed to update member roles")

	// ErrNotAdministrator means the command requires administrator permission
	ErrNotAdministrator = errors.New("administrator permission required")

	// ErrNotTextChannel means the command was used somewhere alerts cannot be posted
	ErrNotTextChannel = errors.New("not a text channel")
)
