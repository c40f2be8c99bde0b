package memsource

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Error is the single error kind returned for every failed remote call.
//
// StatusCode is zero when the request never produced an HTTP response
// (connection failures, cancelled contexts). Description holds the server's
// errorDescription or, when the body could not be parsed, the parse failure.
type Error struct {
	StatusCode  int    `json:"-"                yaml:"-"`
	Code        string `json:"errorCode"        yaml:"errorCode"`
	Description string `json:"errorDescription" yaml:"errorDescription"`
	Body        []byte `json:"-"                yaml:"-"`
	Err         error  `json:"-"                yaml:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Description != "" {
		return e.Description
	}

	if e.Err != nil {
		return e.Err.Error()
	}

	if e.StatusCode != 0 {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}

	return "unknown error"
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Common error codes returned in errorCode.
const (
	ErrorCodeAuthInvalidCredentials = "AuthInvalidCredentials"
	ErrorCodeAuthUnauthorized       = "AuthUnauthorized"
	ErrorCodeResourceNotFound       = "ResourceNotFound"
	ErrorCodeNotFound               = "NotFound"
)

// Static errors for err113 compliance.
var (
	ErrConfigRequired         = errors.New("config is required")
	ErrCredentialsRequired    = errors.New("a token or username and password are required")
	ErrTokenRequired          = errors.New("token is required")
	ErrConflictingTargetLangs = errors.New("targetLangs given both as argument and in options")
	ErrFilenameRequired       = errors.New("filename is required")
	ErrProjectIDRequired      = errors.New("project ID is required")
	ErrIDRequired             = errors.New("resource ID is required")
	ErrUnparseableResponse    = errors.New("failed to parse response body")
	ErrUnparseableError       = errors.New("failed to parse error response")
)

// IsUnauthorized checks if the error is an authentication failure.
func IsUnauthorized(err error) bool {
	apiErr := &Error{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized ||
			apiErr.Code == ErrorCodeAuthInvalidCredentials ||
			apiErr.Code == ErrorCodeAuthUnauthorized
	}

	return false
}

// IsForbidden checks if the error is an authorization failure.
func IsForbidden(err error) bool {
	apiErr := &Error{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusForbidden
	}

	return false
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	apiErr := &Error{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound ||
			apiErr.Code == ErrorCodeResourceNotFound ||
			apiErr.Code == ErrorCodeNotFound
	}

	return false
}

// ErrorDescription returns the server-provided description of err, or its
// plain message when err is not an *Error.
func ErrorDescription(err error) string {
	if err == nil {
		return ""
	}

	apiErr := &Error{}
	if errors.As(err, &apiErr) {
		return apiErr.Error()
	}

	return err.Error()
}

// ParseError builds an *Error from a failed response body.
//
// A body that is not a JSON object still yields an *Error; its description
// then reports the parse failure.
func ParseError(statusCode int, body []byte) *Error {
	apiErr := &Error{
		StatusCode: statusCode,
		Body:       body,
	}

	err := json.Unmarshal(body, apiErr)
	if err != nil {
		apiErr.Code = ""
		apiErr.Err = fmt.Errorf("%w: %w", ErrUnparseableError, err)
		apiErr.Description = fmt.Sprintf("%s (status %d): %v", ErrUnparseableError, statusCode, err)

		return apiErr
	}

	return apiErr
}
