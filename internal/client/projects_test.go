package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/fivetwenty-io/memsource/internal/http"
	"github.com/fivetwenty-io/memsource/pkg/memsource"
)

func TestProjectsClient_Create(t *testing.T) {
	t.Parallel()

	fake := NewFakeServer(t)
	projects := NewProjectsClient(newAuthedHTTPClient(fake))

	project, err := projects.Create(context.Background(), "Test Project", "en", []string{"es"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Test Project", project.Name)
	assert.Equal(t, FakeEmail, project.Owner.Email)
	assert.Equal(t, FakeEmail, project.Raw.String("owner.email"))
	assert.Equal(t, []string{"es"}, project.TargetLangs)
	assert.NotEmpty(t, project.ID)
}

func TestProjectsClient_CreateNamedArgumentsWin(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/projects", r.URL.Path)

		var body map[string]interface{}

		_ = json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, "Named", body["name"])
		assert.Equal(t, "en", body["sourceLang"])
		assert.Equal(t, []interface{}{"de", "fr"}, body["targetLangs"])
		assert.Equal(t, "2030-01-01T00:00:00Z", body["dateDue"])

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(body)
	}))
	defer server.Close()

	projects := NewProjectsClient(internalhttp.NewClient(server.URL, nil))

	options := map[string]interface{}{
		"name":        "From Options",
		"targetLangs": []string{"it"},
		"dateDue":     "2030-01-01T00:00:00Z",
	}

	project, err := projects.Create(context.Background(), "Named", "en", []string{"de", "fr"}, options)
	require.NoError(t, err)
	assert.Equal(t, "Named", project.Name)
	assert.Equal(t, "2030-01-01T00:00:00Z", project.DateDue)
}

func TestProjectsClient_CreateValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		projectName string
		sourceLang  string
		targetLangs []string
		errContains string
	}{
		{name: "missing name", sourceLang: "en", targetLangs: []string{"es"}, errContains: "Name"},
		{name: "missing source", projectName: "P", targetLangs: []string{"es"}, errContains: "SourceLang"},
		{name: "no targets", projectName: "P", sourceLang: "en", errContains: "TargetLangs"},
		{name: "blank target", projectName: "P", sourceLang: "en", targetLangs: []string{""}, errContains: "TargetLangs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			projects := NewProjectsClient(internalhttp.NewClient("http://127.0.0.1:1/", nil))

			_, err := projects.Create(context.Background(), tt.projectName, tt.sourceLang, tt.targetLangs, nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestProjectsClient_ListThenFind(t *testing.T) {
	t.Parallel()

	fake := NewFakeServer(t)
	projects := NewProjectsClient(newAuthedHTTPClient(fake))

	_, err := projects.Create(context.Background(), "First", "en", []string{"es"}, nil)
	require.NoError(t, err)
	_, err = projects.Create(context.Background(), "Second", "en", []string{"de"}, nil)
	require.NoError(t, err)

	page, err := projects.List(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, page.Content, 2)

	for _, listed := range page.Content {
		assert.Equal(t, FakeEmail, listed.Owner.Email)
	}

	found, err := projects.Find(context.Background(), page.Content[1].ID)
	require.NoError(t, err)
	assert.Equal(t, page.Content[1].ID, found.ID)
	assert.Equal(t, "Second", found.Name)
}

func TestProjectsClient_FindMissing(t *testing.T) {
	t.Parallel()

	fake := NewFakeServer(t)
	projects := NewProjectsClient(newAuthedHTTPClient(fake))

	_, err := projects.Find(context.Background(), "404")
	require.Error(t, err)
	assert.True(t, memsource.IsNotFound(err))
	assert.Equal(t, "Project not found", memsource.ErrorDescription(err))
}

func TestProjectsClient_Unauthorized(t *testing.T) {
	t.Parallel()

	fake := NewFakeServer(t)
	projects := NewProjectsClient(internalhttp.NewClient(fake.URL(), nil))

	_, err := projects.List(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, memsource.IsUnauthorized(err))
}
