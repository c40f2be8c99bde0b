package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/memsource/internal/constants"
	"github.com/fivetwenty-io/memsource/internal/http"
	"github.com/fivetwenty-io/memsource/pkg/memsource"
)

// AuthClient implements memsource.AuthClient.
type AuthClient struct {
	httpClient *http.Client
}

// NewAuthClient creates a new auth client.
func NewAuthClient(httpClient *http.Client) *AuthClient {
	return &AuthClient{
		httpClient: httpClient,
	}
}

// Login implements memsource.AuthClient.Login. No token is sent.
func (c *AuthClient) Login(ctx context.Context, username, password string) (*memsource.LoginResponse, error) {
	body := map[string]string{
		"userName": username,
		"password": password,
	}

	resp, err := c.httpClient.WithTokenManager(nil).Post(ctx, constants.APIPathLogin, body)
	if err != nil {
		return nil, fmt.Errorf("logging in: %w", err)
	}

	return decode[memsource.LoginResponse](resp)
}

// Whoami implements memsource.AuthClient.Whoami.
func (c *AuthClient) Whoami(ctx context.Context) (*memsource.LoginResponse, error) {
	resp, err := c.httpClient.Get(ctx, constants.APIPathWhoAmI, nil)
	if err != nil {
		return nil, fmt.Errorf("getting current user: %w", err)
	}

	return decode[memsource.LoginResponse](resp)
}
