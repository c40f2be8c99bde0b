package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/memsource/internal/auth"
	"github.com/fivetwenty-io/memsource/internal/http"
	"github.com/fivetwenty-io/memsource/pkg/memsource"
)

// Session implements memsource.Session.
//
// Resource clients are built on first access and cached. There is no
// locking; sharing a Session between goroutines is the caller's concern.
type Session struct {
	httpClient *http.Client
	token      string
	user       *memsource.User

	// Resource clients
	auth      *AuthClient
	projects  *ProjectsClient
	languages *LanguagesClient
	jobs      *JobsClient
	clients   *ClientsClient
}

// NewSession logs in and returns a session bound to the issued token.
// A failed login returns no session.
func NewSession(ctx context.Context, httpClient *http.Client, username, password string) (*Session, error) {
	login, err := NewAuthClient(httpClient).Login(ctx, username, password)
	if err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}

	user := login.User

	return NewSessionWithToken(httpClient, login.Token, &user), nil
}

// NewSessionWithToken returns a session for a token obtained earlier.
// user may be nil when it is not known.
func NewSessionWithToken(httpClient *http.Client, token string, user *memsource.User) *Session {
	return &Session{
		httpClient: httpClient.WithTokenManager(auth.NewStaticTokenManager(token)),
		token:      token,
		user:       user,
	}
}

// Token implements memsource.Session.Token.
func (s *Session) Token() string {
	return s.token
}

// User implements memsource.Session.User.
func (s *Session) User() *memsource.User {
	return s.user
}

// Projects implements memsource.Session.Projects.
func (s *Session) Projects() memsource.ProjectsClient {
	if s.projects == nil {
		s.projects = NewProjectsClient(s.httpClient)
	}

	return s.projects
}

// Languages implements memsource.Session.Languages.
func (s *Session) Languages() memsource.LanguagesClient {
	if s.languages == nil {
		s.languages = NewLanguagesClient(s.httpClient)
	}

	return s.languages
}

// Jobs implements memsource.Session.Jobs.
func (s *Session) Jobs() memsource.JobsClient {
	if s.jobs == nil {
		s.jobs = NewJobsClient(s.httpClient)
	}

	return s.jobs
}

// Clients implements memsource.Session.Clients.
func (s *Session) Clients() memsource.ClientsClient {
	if s.clients == nil {
		s.clients = NewClientsClient(s.httpClient)
	}

	return s.clients
}

// Auth implements memsource.Session.Auth.
func (s *Session) Auth() memsource.AuthClient {
	if s.auth == nil {
		s.auth = NewAuthClient(s.httpClient)
	}

	return s.auth
}
