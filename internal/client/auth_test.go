package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/memsource/pkg/memsource"
)

func TestAuthClient_Login(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		username string
		password string
		wantErr  bool
	}{
		{name: "valid credentials", username: FakeUsername, password: FakePassword},
		{name: "wrong password", username: FakeUsername, password: "wrong", wantErr: true},
		{name: "unknown user", username: "nobody", password: FakePassword, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fake := NewFakeServer(t)
			authClient := NewAuthClient(newAuthedHTTPClient(fake))

			login, err := authClient.Login(context.Background(), tt.username, tt.password)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, login)
				assert.True(t, memsource.IsUnauthorized(err))
				assert.Equal(t, "Invalid credentials", memsource.ErrorDescription(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, FakeToken, login.Token)
			assert.Equal(t, FakeEmail, login.User.Email)
			assert.Equal(t, FakeEmail, login.Raw.String("user.email"))
		})
	}
}

func TestAuthClient_Whoami(t *testing.T) {
	t.Parallel()

	fake := NewFakeServer(t)
	authClient := NewAuthClient(newAuthedHTTPClient(fake))

	me, err := authClient.Whoami(context.Background())
	require.NoError(t, err)
	assert.Equal(t, FakeUsername, me.User.UserName)
	assert.Equal(t, "ULTIMATE", me.Raw.String("edition.type"))
}
