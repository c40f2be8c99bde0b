package constants

import "errors"

// Configuration errors.
var (
	ErrNotLoggedIn      = errors.New("not logged in, use 'memsource login' first")
	ErrUnknownConfigKey = errors.New("unknown configuration key")
	ErrTokenCannotBeSet = errors.New("token cannot be set via config command, use 'memsource login'")
	ErrInvalidOutput    = errors.New("output must be one of table, json, yaml")
)

// Input errors.
var (
	ErrUsernameRequired      = errors.New("username is required")
	ErrPasswordRequired      = errors.New("password is required")
	ErrInvalidOptionValue    = errors.New("invalid option, expected key=value")
	ErrFilenameWithManyFiles = errors.New("--filename can only be used with a single file")
)

// File system errors.
var (
	ErrNotRegularFile = errors.New("path is not a regular file")
)
