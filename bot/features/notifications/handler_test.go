package notifications

import (
	"errors"
	"fmt"
	"testing"

	"cosmolive/bot/common"
	"cosmolive/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommands(t *testing.T) {
	cmds := Commands()
	require.Len(t, cmds, 2)
	assert.Equal(t, "join-notifications", cmds[0].Name)
	assert.Equal(t, "leave-notifications", cmds[1].Name)
	for _, c := range cmds {
		assert.Empty(t, c.Options)
		assert.Nil(t, c.DefaultMemberPermissions)
	}
}

func TestSubscriptionError(t *testing.T) {
	replies := subscriptionReplies{
		roleError: "Unable to find the notification role.",
		failure:   "Failed to remove role. Please contact a server admin.",
	}

	tests := []struct {
		name        string
		err         error
		wantMessage string
	}{
		{"role unavailable", fmt.Errorf("%w: 403", service.ErrRoleUnavailable), replies.roleError},
		{"member update", fmt.Errorf("%w: 403", service.ErrMemberRoleUpdate), replies.failure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var botErr *common.BotError
			require.True(t, errors.As(subscriptionError(tt.err, replies), &botErr))
			assert.Equal(t, tt.wantMessage, botErr.UserMessage)
			assert.ErrorIs(t, botErr, tt.err)
		})
	}

	other := errors.New("context deadline exceeded")
	assert.Equal(t, other, subscriptionError(other, replies))
}
