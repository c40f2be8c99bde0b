package memsource

import (
	"context"
	"net/http"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// AuthClient authenticates users against the API.
type AuthClient interface {
	Login(ctx context.Context, username, password string) (*LoginResponse, error)
	Whoami(ctx context.Context) (*LoginResponse, error)
}

// ClientsClient manages customer records.
type ClientsClient interface {
	List(ctx context.Context, params *ListOptions) (*Page[Client], error)
	Find(ctx context.Context, id string) (*Client, error)
	Create(ctx context.Context, id, externalID, note string, options map[string]interface{}) (*Client, error)
}

// ProjectsClient manages translation projects.
type ProjectsClient interface {
	List(ctx context.Context, params *ListOptions) (*Page[Project], error)
	Find(ctx context.Context, id string) (*Project, error)
	Create(ctx context.Context, name, sourceLang string, targetLangs []string, options map[string]interface{}) (*Project, error)
}

// LanguagesClient enumerates supported languages. It is read-only.
type LanguagesClient interface {
	List(ctx context.Context, params *ListOptions) (*LanguageList, error)
	Find(ctx context.Context, code string) (*Language, error)
}

// JobsClient manages jobs, the per-file units of work inside a project.
type JobsClient interface {
	List(ctx context.Context, projectID string, params *ListOptions) (*Page[Job], error)
	Find(ctx context.Context, projectID, jobUID string) (*Job, error)
	Create(ctx context.Context, projectID, path, filename string, targetLangs []string, options map[string]interface{}) (*JobBatch, error)
	CreateFromBytes(ctx context.Context, projectID string, data []byte, filename string, targetLangs []string, options map[string]interface{}) (*JobBatch, error)
}

// Session bundles one token with memoized resource clients.
//
// Each accessor constructs its client on first use and returns the same
// instance afterwards. A Session is not safe for concurrent use.
type Session interface {
	Token() string
	User() *User
	Auth() AuthClient
	Projects() ProjectsClient
	Languages() LanguagesClient
	Jobs() JobsClient
	Clients() ClientsClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a Session.
//
// # Authentication precedence
//
//  1. Token: if set, it is used as-is and no login request is made.
//  2. Username/Password: a login request is made when the session is created;
//     a rejected login aborts session creation.
//
// # Timeouts
//
// Per-request deadlines should be controlled via the context passed to client
// methods. HTTPTimeout only sets the underlying http.Client timeout.
type Config struct {
	// Endpoint: base URL of the API. Defaults to the Memsource cloud endpoint
	// ("https://cloud.memsource.com/web/api2/v1/"). A trailing slash is added
	// when missing so relative resource paths resolve beneath it.
	Endpoint string

	// Username and Password: credentials exchanged once for a token.
	Username string
	Password string

	// Token: a previously issued token. Takes precedence over credentials.
	Token string

	// HTTPTimeout: optional http.Client timeout.
	HTTPTimeout time.Duration
	// HTTPClient: optional base client whose transport is reused.
	HTTPClient *http.Client
	// Debug: enables verbose HTTP request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent: overrides the default User-Agent header.
	UserAgent string
}

// Validate checks the configuration fields that do not depend on the
// operation being performed.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.Endpoint, is.URL),
		validation.Field(&c.HTTPTimeout, validation.Min(time.Duration(0))),
	)
	if err != nil {
		return err //nolint:wrapcheck // ozzo errors carry field names
	}

	return nil
}

// HasCredentials reports whether a token or a username/password pair is set.
func (c *Config) HasCredentials() bool {
	return c.Token != "" || (c.Username != "" && c.Password != "")
}
