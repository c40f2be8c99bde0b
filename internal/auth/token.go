package auth

import (
	"context"
	"errors"
	"sync"
)

// Static errors for err113 compliance.
var (
	ErrNoToken = errors.New("no token available")
)

// TokenManager supplies the token attached to authenticated requests.
//
// An empty token with a nil error means the request is sent without one.
type TokenManager interface {
	GetToken(ctx context.Context) (string, error)
}

// Token is an API token as returned by auth/login.
//
// Expires is informational; the client never refreshes or expires tokens on
// its own and leaves rejection to the server.
type Token struct {
	Value   string
	Expires string
}

// TokenStore provides thread-safe token storage.
type TokenStore struct {
	mu    sync.RWMutex
	token *Token
}

// NewTokenStore creates a new token store.
func NewTokenStore() *TokenStore {
	return &TokenStore{}
}

// Get returns the current token.
func (s *TokenStore) Get() *Token {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token
}

// Set stores a new token.
func (s *TokenStore) Set(token *Token) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
}

// Clear removes the stored token.
func (s *TokenStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = nil
}

// StaticTokenManager hands out a token fixed at construction or set later.
type StaticTokenManager struct {
	store *TokenStore
}

// NewStaticTokenManager creates a manager for token. An empty token is allowed
// and results in unauthenticated requests.
func NewStaticTokenManager(token string) *StaticTokenManager {
	manager := &StaticTokenManager{store: NewTokenStore()}
	if token != "" {
		manager.store.Set(&Token{Value: token})
	}

	return manager
}

// GetToken implements TokenManager.
func (m *StaticTokenManager) GetToken(_ context.Context) (string, error) {
	token := m.store.Get()
	if token == nil {
		return "", nil
	}

	return token.Value, nil
}

// SetToken replaces the token.
func (m *StaticTokenManager) SetToken(token *Token) {
	m.store.Set(token)
}
