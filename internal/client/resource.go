package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/memsource/internal/http"
	"github.com/fivetwenty-io/memsource/pkg/memsource"
)

// resource is the list/find behavior shared by every resource family.
// T is the single-item shape and L the listing shape.
type resource[T any, L any] struct {
	httpClient *http.Client
	path       string
}

func newResource[T any, L any](httpClient *http.Client, path string) *resource[T, L] {
	return &resource[T, L]{
		httpClient: httpClient,
		path:       path,
	}
}

// List fetches the resource collection.
func (r *resource[T, L]) List(ctx context.Context, params *memsource.ListOptions) (*L, error) {
	resp, err := r.httpClient.Get(ctx, r.path, params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", r.path, err)
	}

	return decode[L](resp)
}

// Find fetches one resource by its identifier.
func (r *resource[T, L]) Find(ctx context.Context, id string) (*T, error) {
	if id == "" {
		return nil, memsource.ErrIDRequired
	}

	resp, err := r.httpClient.Get(ctx, r.path+"/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, fmt.Errorf("getting %s %s: %w", r.path, id, err)
	}

	return decode[T](resp)
}

// decode parses a successful response into T and attaches the raw document.
// A body that is not a JSON object becomes a *memsource.Error.
func decode[T any](resp *http.Response) (*T, error) {
	doc, err := memsource.ParseDocument(resp.Body)
	if err != nil {
		return nil, unparseable(resp, err)
	}

	var result T

	err = doc.Decode(&result)
	if err != nil {
		return nil, unparseable(resp, err)
	}

	if setter, ok := any(&result).(memsource.RawSetter); ok {
		setter.SetRaw(doc)
	}

	return &result, nil
}

func unparseable(resp *http.Response, err error) *memsource.Error {
	return &memsource.Error{
		StatusCode: resp.StatusCode,
		Body:       resp.Body,
		Err:        fmt.Errorf("%w: %w", memsource.ErrUnparseableResponse, err),
	}
}

// mergeOptions copies options and overlays named, so named values win.
func mergeOptions(options map[string]interface{}, named map[string]interface{}) map[string]interface{} {
	body := make(map[string]interface{}, len(options)+len(named))

	for key, value := range options {
		body[key] = value
	}

	for key, value := range named {
		body[key] = value
	}

	return body
}
