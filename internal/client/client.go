package client

import (
	"fmt"

	"github.com/fivetwenty-io/memsource/internal/auth"
	"github.com/fivetwenty-io/memsource/internal/constants"
	"github.com/fivetwenty-io/memsource/internal/http"
	"github.com/fivetwenty-io/memsource/pkg/memsource"
)

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *memsource.Config) []http.Option {
	var httpOpts []http.Option

	if config.HTTPClient != nil {
		httpOpts = append(httpOpts, http.WithHTTPClient(config.HTTPClient))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	return httpOpts
}

// NewHTTPClient creates the transport described by config. A nil
// tokenManager yields a client that only suits Login.
func NewHTTPClient(config *memsource.Config, tokenManager auth.TokenManager) (*http.Client, error) {
	if config == nil {
		return nil, memsource.ErrConfigRequired
	}

	err := config.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	endpoint := config.Endpoint
	if endpoint == "" {
		endpoint = constants.DefaultEndpoint
	}

	return http.NewClient(endpoint, tokenManager, createHTTPClientOptions(config)...), nil
}
