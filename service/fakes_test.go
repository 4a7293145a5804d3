package service

import (
	"context"
	"sync"

	"cosmolive/models"
)

// fakePlatform is an in-memory guild with roles, channels and member roles.
type fakePlatform struct {
	mu sync.Mutex

	nextID      int64
	roles       map[int64][]*models.Role
	channels    map[int64][]*models.Channel
	memberRoles map[int64]map[int64]bool
	sent        []sentAlert

	roleCreates    int
	channelCreates int
	sendErr        error
	listErr        error
}

type sentAlert struct {
	ChannelID int64
	Alert     models.LiveAlert
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{
		nextID:      1000,
		roles:       make(map[int64][]*models.Role),
		channels:    make(map[int64][]*models.Channel),
		memberRoles: make(map[int64]map[int64]bool),
	}
}

func (p *fakePlatform) addRole(guildID int64, role *models.Role) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.roles[guildID] = append(p.roles[guildID], role)
}

func (p *fakePlatform) addChannel(guildID int64, channel *models.Channel) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.channels[guildID] = append(p.channels[guildID], channel)
}

func (p *fakePlatform) deleteRole(guildID, roleID int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	kept := p.roles[guildID][:0]
	for _, r := range p.roles[guildID] {
		if r.ID != roleID {
			kept = append(kept, r)
		}
	}
	p.roles[guildID] = kept
}

func (p *fakePlatform) deleteChannel(guildID, channelID int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	kept := p.channels[guildID][:0]
	for _, c := range p.channels[guildID] {
		if c.ID != channelID {
			kept = append(kept, c)
		}
	}
	p.channels[guildID] = kept
}

func (p *fakePlatform) GuildRoles(ctx context.Context, guildID int64) ([]*models.Role, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.listErr != nil {
		return nil, p.listErr
	}
	return append([]*models.Role(nil), p.roles[guildID]...), nil
}

func (p *fakePlatform) CreateRole(ctx context.Context, guildID int64, spec models.RoleSpec) (*models.Role, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.nextID++
	p.roleCreates++
	role := &models.Role{ID: p.nextID, Name: spec.Name, Color: spec.Color, Mentionable: spec.Mentionable}
	p.roles[guildID] = append(p.roles[guildID], role)
	return role, nil
}

func (p *fakePlatform) GuildChannels(ctx context.Context, guildID int64) ([]*models.Channel, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.listErr != nil {
		return nil, p.listErr
	}
	return append([]*models.Channel(nil), p.channels[guildID]...), nil
}

func (p *fakePlatform) CreateTextChannel(ctx context.Context, guildID int64, name string, reason string) (*models.Channel, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.nextID++
	p.channelCreates++
	channel := &models.Channel{ID: p.nextID, Name: name, Kind: models.ChannelKindText}
	p.channels[guildID] = append(p.channels[guildID], channel)
	return channel, nil
}

func (p *fakePlatform) AddMemberRole(ctx context.Context, guildID, userID, roleID int64) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.memberRoles[userID] == nil {
		p.memberRoles[userID] = make(map[int64]bool)
	}
	p.memberRoles[userID][roleID] = true
	return nil
}

func (p *fakePlatform) RemoveMemberRole(ctx context.Context, guildID, userID, roleID int64) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.memberRoles[userID], roleID)
	return nil
}

func (p *fakePlatform) SendLiveAlert(ctx context.Context, channelID int64, alert models.LiveAlert) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.sendErr != nil {
		return p.sendErr
	}
	p.sent = append(p.sent, sentAlert{ChannelID: channelID, Alert: alert})
	return nil
}

// requester builds a Requester from the member roles the fake currently holds
func (p *fakePlatform) requester(userID int64, isAdmin bool) models.Requester {
	p.mu.Lock()
	defer p.mu.Unlock()
	req := models.Requester{UserID: userID, Username: "user", IsAdmin: isAdmin}
	for roleID := range p.memberRoles[userID] {
		req.RoleIDs = append(req.RoleIDs, roleID)
	}
	return req
}

// fakeSettings is an in-memory GuildSettingsService
type fakeSettings struct {
	mu       sync.Mutex
	channels map[int64]int64
	roles    map[int64]int64
	getErr   error
	setErr   error
	writes   int
}

func newFakeSettings() *fakeSettings {
	return &fakeSettings{
		channels: make(map[int64]int64),
		roles:    make(map[int64]int64),
	}
}

func (s *fakeSettings) GetAnnouncementChannelID(ctx context.Context, guildID int64) (*int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return nil, s.getErr
	}
	if id, ok := s.channels[guildID]; ok {
		return &id, nil
	}
	return nil, nil
}

func (s *fakeSettings) SetAnnouncementChannel(ctx context.Context, guildID int64, channelID int64, configuredBy int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.setErr != nil {
		return s.setErr
	}
	s.writes++
	s.channels[guildID] = channelID
	return nil
}

func (s *fakeSettings) GetNotificationRoleID(ctx context.Context, guildID int64) (*int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return nil, s.getErr
	}
	if id, ok := s.roles[guildID]; ok {
		return &id, nil
	}
	return nil, nil
}

func (s *fakeSettings) SetNotificationRole(ctx context.Context, guildID int64, roleID int64, created bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.setErr != nil {
		return s.setErr
	}
	s.writes++
	s.roles[guildID] = roleID
	return nil
}

func (s *fakeSettings) storedChannel(guildID int64) (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.channels[guildID]
	return id, ok
}
