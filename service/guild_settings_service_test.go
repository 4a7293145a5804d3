package service

import (
	"context"
	"errors"
	"testing"

	"cosmolive/events"
	"cosmolive/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func newSettingsUoW(t *testing.T) (*MockUnitOfWorkFactory, *MockUnitOfWork, *MockGuildSettingsRepository, *MockEventPublisher) {
	t.Helper()

	mockRepo := new(MockGuildSettingsRepository)
	mockPublisher := &MockEventPublisher{}
	mockUoW := new(MockUnitOfWork)
	mockUoW.SetRepositories(mockRepo, mockPublisher)
	mockUoW.On("Begin", mock.Anything).Return(nil)
	mockUoW.On("Rollback").Return(nil).Maybe()

	mockFactory := new(MockUnitOfWorkFactory)
	mockFactory.On("Create").Return(mockUoW)

	return mockFactory, mockUoW, mockRepo, mockPublisher
}

func TestGuildSettingsService_GetAnnouncementChannelID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	guildID := int64(123456)

	tests := []struct {
		name     string
		settings *models.GuildSettings
		repoErr  error
		want     *int64
		wantErr  bool
	}{
		{
			name:     "no row",
			settings: nil,
			want:     nil,
		},
		{
			name:     "row without channel",
			settings: &models.GuildSettings{GuildID: guildID, NotificationRoleID: int64Ptr(7)},
			want:     nil,
		},
		{
			name:     "row with channel",
			settings: &models.GuildSettings{GuildID: guildID, AnnouncementChannelID: int64Ptr(42)},
			want:     int64Ptr(42),
		},
		{
			name:    "store error",
			repoErr: errors.New("connection refused"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mockFactory, _, mockRepo, _ := newSettingsUoW(t)
			mockRepo.On("GetByGuildID", ctx, guildID).Return(tt.settings, tt.repoErr)

			svc := NewGuildSettingsService(mockFactory)
			got, err := svc.GetAnnouncementChannelID(ctx, guildID)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrStoreUnavailable)
				assert.Nil(t, got)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestGuildSettingsService_GetNotificationRoleID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	guildID := int64(123456)

	mockFactory, _, mockRepo, _ := newSettingsUoW(t)
	mockRepo.On("GetByGuildID", ctx, guildID).Return(&models.GuildSettings{
		GuildID:            guildID,
		NotificationRoleID: int64Ptr(99),
	}, nil)

	svc := NewGuildSettingsService(mockFactory)
	got, err := svc.GetNotificationRoleID(ctx, guildID)

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(99), *got)
}

func TestGuildSettingsService_SetAnnouncementChannel(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	guildID := int64(123456)
	userID := int64(555)

	t.Run("first configuration", func(t *testing.T) {
		t.Parallel()

		mockFactory, mockUoW, mockRepo, mockPublisher := newSettingsUoW(t)
		mockRepo.On("GetByGuildID", ctx, guildID).Return(nil, nil)
		mockRepo.On("UpsertAnnouncementChannel", ctx, guildID, int64(42)).Return(&models.GuildSettings{
			GuildID:               guildID,
			AnnouncementChannelID: int64Ptr(42),
		}, nil)
		mockUoW.On("Commit").Return(nil)

		svc := NewGuildSettingsService(mockFactory)
		err := svc.SetAnnouncementChannel(ctx, guildID, 42, userID)

		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
		mockUoW.AssertExpectations(t)

		published := mockPublisher.Events()
		require.Len(t, published, 1)
		event, ok := published[0].(events.DestinationConfiguredEvent)
		require.True(t, ok)
		assert.Equal(t, guildID, event.GuildID)
		assert.Equal(t, int64(42), event.ChannelID)
		assert.Equal(t, userID, event.ConfiguredBy)
		assert.Nil(t, event.PreviousChannelID)
	})

	t.Run("reconfiguration records previous channel", func(t *testing.T) {
		t.Parallel()

		mockFactory, mockUoW, mockRepo, mockPublisher := newSettingsUoW(t)
		mockRepo.On("GetByGuildID", ctx, guildID).Return(&models.GuildSettings{
			GuildID:               guildID,
			AnnouncementChannelID: int64Ptr(42),
		}, nil)
		mockRepo.On("UpsertAnnouncementChannel", ctx, guildID, int64(43)).Return(&models.GuildSettings{
			GuildID:               guildID,
			AnnouncementChannelID: int64Ptr(43),
		}, nil)
		mockUoW.On("Commit").Return(nil)

		svc := NewGuildSettingsService(mockFactory)
		require.NoError(t, svc.SetAnnouncementChannel(ctx, guildID, 43, userID))

		published := mockPublisher.Events()
		require.Len(t, published, 1)
		event := published[0].(events.DestinationConfiguredEvent)
		require.NotNil(t, event.PreviousChannelID)
		assert.Equal(t, int64(42), *event.PreviousChannelID)
	})

	t.Run("upsert failure does not commit", func(t *testing.T) {
		t.Parallel()

		mockFactory, mockUoW, mockRepo, _ := newSettingsUoW(t)
		mockRepo.On("GetByGuildID", ctx, guildID).Return(nil, nil)
		mockRepo.On("UpsertAnnouncementChannel", ctx, guildID, int64(42)).Return(nil, errors.New("disk full"))

		svc := NewGuildSettingsService(mockFactory)
		err := svc.SetAnnouncementChannel(ctx, guildID, 42, userID)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrStoreUnavailable)
		mockUoW.AssertNotCalled(t, "Commit")
		mockUoW.AssertCalled(t, "Rollback")
	})

	t.Run("begin failure", func(t *testing.T) {
		t.Parallel()

		mockUoW := new(MockUnitOfWork)
		mockUoW.On("Begin", ctx).Return(errors.New("pool closed"))
		mockFactory := new(MockUnitOfWorkFactory)
		mockFactory.On("Create").Return(mockUoW)

		svc := NewGuildSettingsService(mockFactory)
		err := svc.SetAnnouncementChannel(ctx, guildID, 42, userID)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrStoreUnavailable)
	})
}

func TestGuildSettingsService_SetNotificationRole(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	guildID := int64(123456)

	mockFactory, mockUoW, mockRepo, mockPublisher := newSettingsUoW(t)
	mockRepo.On("UpsertNotificationRole", ctx, guildID, int64(77)).Return(&models.GuildSettings{
		GuildID:            guildID,
		NotificationRoleID: int64Ptr(77),
	}, nil)
	mockUoW.On("Commit").Return(nil)

	svc := NewGuildSettingsService(mockFactory)
	require.NoError(t, svc.SetNotificationRole(ctx, guildID, 77, true))

	mockRepo.AssertExpectations(t)
	published := mockPublisher.Events()
	require.Len(t, published, 1)
	assert.Equal(t, events.NotificationRoleCachedEvent{GuildID: guildID, RoleID: 77, Created: true}, published[0])
}
