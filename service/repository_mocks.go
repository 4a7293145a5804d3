package service

import (
	"context"
	"sync"

	"cosmolive/events"
	"cosmolive/models"

	"github.com/stretchr/testify/mock"
)

// MockGuildSettingsRepository is a mock implementation of GuildSettingsRepository
type MockGuildSettingsRepository struct {
	mock.Mock
}

func (m *MockGuildSettingsRepository) GetByGuildID(ctx context.Context, guildID int64) (*models.GuildSettings, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GuildSettings), args.Error(1)
}

func (m *MockGuildSettingsRepository) UpsertAnnouncementChannel(ctx context.Context, guildID int64, channelID int64) (*models.GuildSettings, error) {
	args := m.Called(ctx, guildID, channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GuildSettings), args.Error(1)
}

func (m *MockGuildSettingsRepository) UpsertNotificationRole(ctx context.Context, guildID int64, roleID int64) (*models.GuildSettings, error) {
	args := m.Called(ctx, guildID, roleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GuildSettings), args.Error(1)
}

// MockEventPublisher records published events
type MockEventPublisher struct {
	mu        sync.Mutex
	Published []events.Event
}

func (m *MockEventPublisher) Publish(event events.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Published = append(m.Published, event)
}

// Events returns a copy of the published events
func (m *MockEventPublisher) Events() []events.Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]events.Event(nil), m.Published...)
}

// MockEventEmitter records emitted events and the contexts they were emitted with
type MockEventEmitter struct {
	MockEventPublisher
	ctxMu    sync.Mutex
	contexts []context.Context
}

func (m *MockEventEmitter) Emit(ctx context.Context, event events.Event) {
	m.ctxMu.Lock()
	m.contexts = append(m.contexts, ctx)
	m.ctxMu.Unlock()
	m.Publish(event)
}

// Contexts returns the contexts passed to Emit, in order
func (m *MockEventEmitter) Contexts() []context.Context {
	m.ctxMu.Lock()
	defer m.ctxMu.Unlock()
	return append([]context.Context(nil), m.contexts...)
}

// MockUnitOfWork is a mock implementation of UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
	guildSettingsRepo GuildSettingsRepository
	eventBus          EventPublisher
}

// SetRepositories wires the repositories and event bus returned by the getters
func (m *MockUnitOfWork) SetRepositories(guildSettingsRepo GuildSettingsRepository, eventBus EventPublisher) {
	m.guildSettingsRepo = guildSettingsRepo
	m.eventBus = eventBus
}

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) GuildSettingsRepository() GuildSettingsRepository {
	return m.guildSettingsRepo
}

func (m *MockUnitOfWork) EventBus() EventPublisher {
	if m.eventBus == nil {
		m.eventBus = &MockEventPublisher{}
	}
	return m.eventBus
}

// MockUnitOfWorkFactory is a mock implementation of UnitOfWorkFactory
type MockUnitOfWorkFactory struct {
	mock.Mock
}

func (m *MockUnitOfWorkFactory) Create() UnitOfWork {
	args := m.Called()
	return args.Get(0).(UnitOfWork)
}

// MockGuildSettingsService is a mock implementation of GuildSettingsService
type MockGuildSettingsService struct {
	mock.Mock
}

func (m *MockGuildSettingsService) GetAnnouncementChannelID(ctx context.Context, guildID int64) (*int64, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*int64), args.Error(1)
}

func (m *MockGuildSettingsService) SetAnnouncementChannel(ctx context.Context, guildID int64, channelID int64, configuredBy int64) error {
	args := m.Called(ctx, guildID, channelID, configuredBy)
	return args.Error(0)
}

func (m *MockGuildSettingsService) GetNotificationRoleID(ctx context.Context, guildID int64) (*int64, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*int64), args.Error(1)
}

func (m *MockGuildSettingsService) SetNotificationRole(ctx context.Context, guildID int64, roleID int64, created bool) error {
	args := m.Called(ctx, guildID, roleID, created)
	return args.Error(0)
}

// MockGuildPlatform is a mock implementation of GuildPlatform
type MockGuildPlatform struct {
	mock.Mock
}

func (m *MockGuildPlatform) GuildRoles(ctx context.Context, guildID int64) ([]*models.Role, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Role), args.Error(1)
}

func (m *MockGuildPlatform) CreateRole(ctx context.Context, guildID int64, spec models.RoleSpec) (*models.Role, error) {
	args := m.Called(ctx, guildID, spec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Role), args.Error(1)
}

func (m *MockGuildPlatform) GuildChannels(ctx context.Context, guildID int64) ([]*models.Channel, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Channel), args.Error(1)
}

func (m *MockGuildPlatform) CreateTextChannel(ctx context.Context, guildID int64, name string, reason string) (*models.Channel, error) {
	args := m.Called(ctx, guildID, name, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Channel), args.Error(1)
}

func (m *MockGuildPlatform) AddMemberRole(ctx context.Context, guildID, userID, roleID int64) error {
	args := m.Called(ctx, guildID, userID, roleID)
	return args.Error(0)
}

func (m *MockGuildPlatform) RemoveMemberRole(ctx context.Context, guildID, userID, roleID int64) error {
	args := m.Called(ctx, guildID, userID, roleID)
	return args.Error(0)
}

func (m *MockGuildPlatform) SendLiveAlert(ctx context.Context, channelID int64, alert models.LiveAlert) error {
	args := m.Called(ctx, channelID, alert)
	return args.Error(0)
}

// MockResourceResolver is a mock implementation of ResourceResolver
type MockResourceResolver struct {
	mock.Mock
}

func (m *MockResourceResolver) EnsureRole(ctx context.Context, guildID int64) (*models.Role, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Role), args.Error(1)
}

func (m *MockResourceResolver) EnsureAnnouncementDestination(ctx context.Context, guildID int64) (*models.Channel, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Channel), args.Error(1)
}

// MockLiveAlertService is a mock implementation of LiveAlertService
type MockLiveAlertService struct {
	mock.Mock
}

func (m *MockLiveAlertService) Announce(ctx context.Context, req models.AnnounceRequest) (*models.AnnounceResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AnnounceResult), args.Error(1)
}

func (m *MockLiveAlertService) Subscribe(ctx context.Context, guildID int64, requester models.Requester) (*models.SubscriptionResult, error) {
	args := m.Called(ctx, guildID, requester)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SubscriptionResult), args.Error(1)
}

func (m *MockLiveAlertService) Unsubscribe(ctx context.Context, guildID int64, requester models.Requester) (*models.SubscriptionResult, error) {
	args := m.Called(ctx, guildID, requester)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SubscriptionResult), args.Error(1)
}

func (m *MockLiveAlertService) ConfigureDestination(ctx context.Context, req models.ConfigureDestinationRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
