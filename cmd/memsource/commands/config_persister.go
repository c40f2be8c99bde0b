package commands

import (
	"sync"

	"github.com/fivetwenty-io/memsource/internal/auth"
	"github.com/fivetwenty-io/memsource/pkg/memsource"
)

// ConfigPersister implements the auth.ConfigPersister interface on top of
// the CLI config file.
type ConfigPersister struct {
	mutex sync.Mutex
}

var _ auth.ConfigPersister = (*ConfigPersister)(nil)

// NewConfigPersister creates a new config persister.
func NewConfigPersister() *ConfigPersister {
	return &ConfigPersister{}
}

// UpdateToken records a freshly issued token together with the endpoint that
// issued it and the user it belongs to.
func (p *ConfigPersister) UpdateToken(endpoint string, token *auth.Token, user *memsource.User) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	config := loadConfig()
	config.Endpoint = endpoint

	if token != nil {
		config.Token = token.Value
		config.TokenExpires = token.Expires
	}

	if user != nil {
		config.Username = user.UserName
		config.Email = user.Email
	}

	return saveConfigStruct(config)
}

// ClearToken removes the stored token. Endpoint and username are kept so the
// next login can default to them.
func (p *ConfigPersister) ClearToken(_ string) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	config := loadConfig()
	config.Token = ""
	config.TokenExpires = ""

	return saveConfigStruct(config)
}
