package http

import (
	"context"
	"sync"

	"github.com/MKhiriev/cargo-settings/internal/store"
	"github.com/MKhiriev/cargo-settings/models"
)

// memoryStore is an in-memory stand-in for the PostgreSQL repositories.
type memoryStore struct {
	mu       sync.Mutex
	users    map[string]models.User
	settings *models.Settings
	filials  map[string]models.Filial
	contacts *models.Contacts

	failWith error
}

func newMemoryStore(users ...models.User) *memoryStore {
	m := &memoryStore{
		users:   make(map[string]models.User),
		filials: make(map[string]models.Filial),
	}
	for _, u := range users {
		m.users[u.UserID] = u
	}
	return m
}

func (m *memoryStore) addFilial(f models.Filial) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.filials[f.UserPhone] = f
}

func (m *memoryStore) FindUserByID(_ context.Context, userID string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return models.User{}, m.failWith
	}
	u, ok := m.users[userID]
	if !ok {
		return models.User{}, store.ErrNoUserWasFound
	}
	return u, nil
}

func (m *memoryStore) GetSettings(context.Context) (*models.Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.settings == nil {
		return nil, nil
	}
	s := *m.settings
	return &s, nil
}

func (m *memoryStore) SaveSettings(_ context.Context, s models.Settings) (models.Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s.ID = models.SettingsSingletonID
	m.settings = &s
	return s, nil
}

func (m *memoryStore) FindFilialByUserPhone(_ context.Context, phone string) (models.Filial, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	f, ok := m.filials[phone]
	if !ok {
		return models.Filial{}, store.ErrFilialNotFound
	}
	return f, nil
}

func (m *memoryStore) SaveFilial(_ context.Context, f models.Filial) (models.Filial, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.filials[f.UserPhone]; !ok {
		return models.Filial{}, store.ErrFilialNotFound
	}
	m.filials[f.UserPhone] = f
	return f, nil
}

func (m *memoryStore) GetContacts(context.Context) (*models.Contacts, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.contacts == nil {
		return nil, nil
	}
	c := *m.contacts
	return &c, nil
}

func (m *memoryStore) SaveContacts(_ context.Context, c models.Contacts) (models.Contacts, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c.ID = models.SettingsSingletonID
	m.contacts = &c
	return c, nil
}
