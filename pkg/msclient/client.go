// Package msclient provides the main entry point for creating Memsource API sessions
package msclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/fivetwenty-io/memsource/internal/client"
	"github.com/fivetwenty-io/memsource/internal/constants"
	"github.com/fivetwenty-io/memsource/pkg/memsource"
)

// New creates a session from config.
//
// A Token is used as-is with no request made. Otherwise Username and Password
// are exchanged for a token right away, and a rejected login returns no
// session.
func New(ctx context.Context, config *memsource.Config) (memsource.Session, error) {
	if config == nil {
		return nil, memsource.ErrConfigRequired
	}

	if !config.HasCredentials() {
		return nil, memsource.ErrCredentialsRequired
	}

	normalized := *config
	normalized.Endpoint = NormalizeEndpoint(config.Endpoint)

	httpClient, err := client.NewHTTPClient(&normalized, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP client: %w", err)
	}

	if normalized.Token != "" {
		return client.NewSessionWithToken(httpClient, normalized.Token, nil), nil
	}

	session, err := client.NewSession(ctx, httpClient, normalized.Username, normalized.Password)
	if err != nil {
		return nil, err
	}

	return session, nil
}

// NewWithToken creates a session for a token obtained earlier.
func NewWithToken(ctx context.Context, endpoint, token string) (memsource.Session, error) {
	if token == "" {
		return nil, memsource.ErrTokenRequired
	}

	return New(ctx, &memsource.Config{
		Endpoint: endpoint,
		Token:    token,
	})
}

// NewWithPassword creates a session by logging in with username and password.
func NewWithPassword(ctx context.Context, endpoint, username, password string) (memsource.Session, error) {
	return New(ctx, &memsource.Config{
		Endpoint: endpoint,
		Username: username,
		Password: password,
	})
}

// NewAuth creates an auth client that sends no token, for callers that
// want the login response itself rather than a session.
func NewAuth(config *memsource.Config) (memsource.AuthClient, error) {
	if config == nil {
		return nil, memsource.ErrConfigRequired
	}

	normalized := *config
	normalized.Endpoint = NormalizeEndpoint(config.Endpoint)
	normalized.Token = ""

	httpClient, err := client.NewHTTPClient(&normalized, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP client: %w", err)
	}

	return client.NewAuthClient(httpClient), nil
}

// Login exchanges the credentials in config for a token.
func Login(ctx context.Context, config *memsource.Config) (*memsource.LoginResponse, error) {
	if config == nil {
		return nil, memsource.ErrConfigRequired
	}

	if config.Username == "" || config.Password == "" {
		return nil, memsource.ErrCredentialsRequired
	}

	authClient, err := NewAuth(config)
	if err != nil {
		return nil, err
	}

	login, err := authClient.Login(ctx, config.Username, config.Password)
	if err != nil {
		return nil, err //nolint:wrapcheck // already wrapped by the auth client
	}

	return login, nil
}

// NormalizeEndpoint fills in the default endpoint, an https scheme when none
// is given, and the trailing slash resource paths are resolved beneath.
func NormalizeEndpoint(endpoint string) string {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return constants.DefaultEndpoint
	}

	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	if !strings.HasSuffix(endpoint, "/") {
		endpoint += "/"
	}

	return endpoint
}
