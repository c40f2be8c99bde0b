package client

import (
	"context"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/fivetwenty-io/memsource/internal/constants"
	"github.com/fivetwenty-io/memsource/internal/http"
	"github.com/fivetwenty-io/memsource/pkg/memsource"
)

// ProjectsClient implements memsource.ProjectsClient.
type ProjectsClient struct {
	*resource[memsource.Project, memsource.Page[memsource.Project]]
}

// NewProjectsClient creates a new projects client.
func NewProjectsClient(httpClient *http.Client) *ProjectsClient {
	return &ProjectsClient{
		resource: newResource[memsource.Project, memsource.Page[memsource.Project]](httpClient, constants.APIPathProjects),
	}
}

type projectCreateRequest struct {
	Name        string
	SourceLang  string
	TargetLangs []string
}

func (r projectCreateRequest) Validate() error {
	return validation.ValidateStruct(&r, //nolint:wrapcheck // ozzo errors carry field names
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.SourceLang, validation.Required),
		validation.Field(&r.TargetLangs, validation.Required, validation.Each(validation.Required)),
	)
}

// Create implements memsource.ProjectsClient.Create.
//
// name, sourceLang and targetLangs override identically named keys in options.
func (c *ProjectsClient) Create(ctx context.Context, name, sourceLang string, targetLangs []string, options map[string]interface{}) (*memsource.Project, error) {
	err := projectCreateRequest{Name: name, SourceLang: sourceLang, TargetLangs: targetLangs}.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid project: %w", err)
	}

	body := mergeOptions(options, map[string]interface{}{
		"name":        name,
		"sourceLang":  sourceLang,
		"targetLangs": targetLangs,
	})

	resp, err := c.httpClient.Post(ctx, c.path, body)
	if err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}

	return decode[memsource.Project](resp)
}
