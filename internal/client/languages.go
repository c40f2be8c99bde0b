package client

import (
	"github.com/fivetwenty-io/memsource/internal/constants"
	"github.com/fivetwenty-io/memsource/internal/http"
	"github.com/fivetwenty-io/memsource/pkg/memsource"
)

// LanguagesClient implements memsource.LanguagesClient. It has no create.
type LanguagesClient struct {
	*resource[memsource.Language, memsource.LanguageList]
}

// NewLanguagesClient creates a new languages client.
func NewLanguagesClient(httpClient *http.Client) *LanguagesClient {
	return &LanguagesClient{
		resource: newResource[memsource.Language, memsource.LanguageList](httpClient, constants.APIPathLanguages),
	}
}
