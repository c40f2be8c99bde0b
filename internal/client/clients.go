package client

import (
	"context"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/fivetwenty-io/memsource/internal/constants"
	"github.com/fivetwenty-io/memsource/internal/http"
	"github.com/fivetwenty-io/memsource/pkg/memsource"
)

// ClientsClient implements memsource.ClientsClient.
type ClientsClient struct {
	*resource[memsource.Client, memsource.Page[memsource.Client]]
}

// NewClientsClient creates a new clients client.
func NewClientsClient(httpClient *http.Client) *ClientsClient {
	return &ClientsClient{
		resource: newResource[memsource.Client, memsource.Page[memsource.Client]](httpClient, constants.APIPathClients),
	}
}

// Create implements memsource.ClientsClient.Create.
//
// id, externalID and note override identically named keys in options.
func (c *ClientsClient) Create(ctx context.Context, id, externalID, note string, options map[string]interface{}) (*memsource.Client, error) {
	err := validation.Validate(id, validation.Required)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", memsource.ErrIDRequired, err)
	}

	body := mergeOptions(options, map[string]interface{}{
		"id":         id,
		"externalId": externalID,
		"note":       note,
	})

	resp, err := c.httpClient.Post(ctx, c.path, body)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return decode[memsource.Client](resp)
}
