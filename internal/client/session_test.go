package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/fivetwenty-io/memsource/internal/http"
	"github.com/fivetwenty-io/memsource/pkg/memsource"
)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestSession(t *testing.T) {
	t.Parallel()

	t.Run("logs in on construction", func(t *testing.T) {
		t.Parallel()

		fake := NewFakeServer(t)

		session, err := NewSession(context.Background(), internalhttp.NewClient(fake.URL(), nil), FakeUsername, FakePassword)
		require.NoError(t, err)
		assert.Equal(t, FakeToken, session.Token())
		require.NotNil(t, session.User())
		assert.Equal(t, FakeEmail, session.User().Email)
		assert.Equal(t, 1, fake.Hits("POST auth/login"))
	})

	t.Run("failed login returns no session", func(t *testing.T) {
		t.Parallel()

		fake := NewFakeServer(t)

		session, err := NewSession(context.Background(), internalhttp.NewClient(fake.URL(), nil), FakeUsername, "wrong")
		require.Error(t, err)
		assert.Nil(t, session)
		assert.True(t, memsource.IsUnauthorized(err))
	})

	t.Run("accessors are memoized", func(t *testing.T) {
		t.Parallel()

		session := NewSessionWithToken(internalhttp.NewClient("http://127.0.0.1:1/", nil), FakeToken, nil)

		assert.Same(t, session.Projects(), session.Projects())
		assert.Same(t, session.Languages(), session.Languages())
		assert.Same(t, session.Jobs(), session.Jobs())
		assert.Same(t, session.Clients(), session.Clients())
		assert.Same(t, session.Auth(), session.Auth())
		assert.Nil(t, session.User())
	})

	t.Run("resource clients use the session token", func(t *testing.T) {
		t.Parallel()

		fake := NewFakeServer(t)

		session, err := NewSession(context.Background(), internalhttp.NewClient(fake.URL(), nil), FakeUsername, FakePassword)
		require.NoError(t, err)

		project, err := session.Projects().Create(context.Background(), "Test Project", "en", []string{"es"}, nil)
		require.NoError(t, err)
		assert.Equal(t, "Test Project", project.Name)
		assert.Equal(t, session.User().Email, project.Owner.Email)

		page, err := session.Projects().List(context.Background(), nil)
		require.NoError(t, err)
		require.Len(t, page.Content, 1)

		found, err := session.Projects().Find(context.Background(), page.Content[0].ID)
		require.NoError(t, err)
		assert.Equal(t, page.Content[0].ID, found.ID)

		client, err := session.Clients().Create(context.Background(), "Client Name", "GUID GOES HERE", "Notes go here", nil)
		require.NoError(t, err)
		assert.Equal(t, "Client Name", client.Name)

		languages, err := session.Languages().List(context.Background(), nil)
		require.NoError(t, err)
		assert.NotEmpty(t, languages.Languages)

		me, err := session.Auth().Whoami(context.Background())
		require.NoError(t, err)
		assert.Equal(t, FakeEmail, me.User.Email)
	})
}
