package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/fivetwenty-io/memsource/pkg/memsource"
)

// Static errors for err113 compliance.
var (
	ErrNoConfigPersister = errors.New("no config persister configured")
)

// ConfigPersister defines the interface for persisting config changes.
type ConfigPersister interface {
	UpdateToken(endpoint string, token *Token, user *memsource.User) error
	ClearToken(endpoint string) error
}

// ConfigTokenManager serves a token loaded from configuration and writes
// every change back through its persister.
type ConfigTokenManager struct {
	store           *TokenStore
	configPersister ConfigPersister
	endpoint        string
}

// NewConfigTokenManager creates a new config-persisting token manager.
func NewConfigTokenManager(configPersister ConfigPersister, endpoint string, initial *Token) *ConfigTokenManager {
	store := NewTokenStore()
	if initial != nil && initial.Value != "" {
		store.Set(initial)
	}

	return &ConfigTokenManager{
		store:           store,
		configPersister: configPersister,
		endpoint:        endpoint,
	}
}

// GetToken returns the stored token, or ErrNoToken when nobody has logged in.
func (m *ConfigTokenManager) GetToken(_ context.Context) (string, error) {
	token := m.store.Get()
	if token == nil || token.Value == "" {
		return "", ErrNoToken
	}

	return token.Value, nil
}

// SetToken stores and persists a token obtained from a login.
func (m *ConfigTokenManager) SetToken(token *Token, user *memsource.User) error {
	if m.configPersister == nil {
		return ErrNoConfigPersister
	}

	err := m.configPersister.UpdateToken(m.endpoint, token, user)
	if err != nil {
		return fmt.Errorf("failed to update token: %w", err)
	}

	m.store.Set(token)

	return nil
}

// Clear forgets the token and removes it from config.
func (m *ConfigTokenManager) Clear() error {
	if m.configPersister == nil {
		return ErrNoConfigPersister
	}

	err := m.configPersister.ClearToken(m.endpoint)
	if err != nil {
		return fmt.Errorf("failed to clear token: %w", err)
	}

	m.store.Clear()

	return nil
}
