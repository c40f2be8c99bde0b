package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fivetwenty-io/memsource/internal/auth"
	"github.com/fivetwenty-io/memsource/internal/constants"
	"github.com/fivetwenty-io/memsource/pkg/memsource"
	"github.com/hashicorp/go-retryablehttp"
)

// Client is the HTTP transport shared by every resource client.
//
// Requests go through go-retryablehttp with retries turned off: a failed
// exchange is reported to the caller exactly once.
type Client struct {
	baseURL      *url.URL
	httpClient   *retryablehttp.Client
	tokenManager auth.TokenManager
	logger       memsource.Logger
	userAgent    string
	debug        bool
}

// Request represents an HTTP request.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Headers map[string]string
	// Body is serialized as JSON when the content type is JSON.
	Body interface{}
	// RawBody is sent verbatim for any other content type.
	RawBody []byte
}

// Response represents an HTTP response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger memsource.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithDebug enables request and response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithTimeout sets the per-request timeout of the underlying HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.HTTPClient.Timeout = timeout
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			clone := *httpClient
			c.httpClient.HTTPClient = &clone
		}
	}
}

// NewClient creates a new HTTP client. A nil tokenManager sends no token.
func NewClient(baseURL string, tokenManager auth.TokenManager, opts ...Option) *Client {
	base, err := url.Parse(ensureTrailingSlash(baseURL))
	if err != nil || base.Host == "" {
		base, _ = url.Parse(constants.DefaultEndpoint)
	}

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.CheckRetry = neverRetry
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout

	client := &Client{
		baseURL:      base,
		httpClient:   retryClient,
		tokenManager: tokenManager,
		logger:       memsource.NewHCLogger(nil),
		userAgent:    constants.DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	retryClient.Logger = &leveledLogger{logger: client.logger}

	return client
}

// BaseURL returns the endpoint every request path is resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// WithTokenManager returns a copy of the client that authenticates with tokenManager.
func (c *Client) WithTokenManager(tokenManager auth.TokenManager) *Client {
	clone := *c
	clone.tokenManager = tokenManager

	return &clone
}

// Do performs an HTTP request.
//
// A non-2xx status returns both the response and a *memsource.Error parsed
// from its body. Transport failures return a *memsource.Error with no status.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	reqURL, err := c.buildURL(ctx, req)
	if err != nil {
		return nil, err
	}

	headers := c.buildHeaders(req)

	body, err := encodeBody(req, headers.Get("Content-Type"))
	if err != nil {
		return nil, err
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, reqURL.String(), body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header = headers

	if c.debug {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    redactURL(reqURL),
			"bytes":  len(body),
		})
	}

	start := time.Now()

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		// url.Error repeats the full URL, token included.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}

		return nil, &memsource.Error{Err: fmt.Errorf("executing %s %s: %w", req.Method, redactURL(reqURL), err)}
	}

	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &memsource.Error{StatusCode: httpResp.StatusCode, Err: fmt.Errorf("reading response body: %w", err)}
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}

	if c.debug {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status":   httpResp.StatusCode,
			"duration": time.Since(start).String(),
			"bytes":    len(respBody),
		})
	}

	if httpResp.StatusCode < constants.HTTPStatusOK || httpResp.StatusCode >= constants.HTTPStatusMultipleChoices {
		return resp, memsource.ParseError(httpResp.StatusCode, respBody)
	}

	return resp, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  query,
	})
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPost,
		Path:   path,
		Body:   body,
	})
}

func (c *Client) buildURL(ctx context.Context, req *Request) (*url.URL, error) {
	// req.Path arrives with its segments already escaped.
	path, err := url.PathUnescape(req.Path)
	if err != nil {
		return nil, fmt.Errorf("invalid request path %q: %w", req.Path, err)
	}

	reqURL := c.baseURL.ResolveReference(&url.URL{Path: path, RawPath: req.Path})

	query := url.Values{}
	for key, values := range req.Query {
		query[key] = append([]string(nil), values...)
	}

	if c.tokenManager != nil {
		token, err := c.tokenManager.GetToken(ctx)
		if err != nil {
			return nil, fmt.Errorf("getting token: %w", err)
		}

		if token != "" {
			query.Set(constants.TokenQueryParam, token)
		}
	}

	reqURL.RawQuery = query.Encode()

	return reqURL, nil
}

func (c *Client) buildHeaders(req *Request) http.Header {
	headers := http.Header{}
	headers.Set("Content-Type", constants.ContentTypeJSON)
	headers.Set("Accept", constants.ContentTypeJSON)
	headers.Set("User-Agent", c.userAgent)

	for key, value := range req.Headers {
		headers.Set(key, value)
	}

	return headers
}

func encodeBody(req *Request, contentType string) ([]byte, error) {
	if !isJSON(contentType) {
		return req.RawBody, nil
	}

	if req.Body == nil {
		return req.RawBody, nil
	}

	data, err := json.Marshal(req.Body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request body: %w", err)
	}

	return data, nil
}

func isJSON(contentType string) bool {
	mediaType, _, _ := strings.Cut(contentType, ";")

	return strings.EqualFold(strings.TrimSpace(mediaType), constants.ContentTypeJSON)
}

func neverRetry(ctx context.Context, _ *http.Response, _ error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	return false, nil
}

func redactURL(u *url.URL) string {
	redacted := *u

	query := redacted.Query()
	if query.Has(constants.TokenQueryParam) {
		query.Set(constants.TokenQueryParam, constants.MaskedSecret)
		redacted.RawQuery = query.Encode()
	}

	return redacted.String()
}

func ensureTrailingSlash(raw string) string {
	if strings.HasSuffix(raw, "/") {
		return raw
	}

	return raw + "/"
}
