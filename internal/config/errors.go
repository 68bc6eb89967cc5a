package config

import "errors"

// Validation errors returned by [Config.validate]. Callers can match against
// them with [errors.Is].
var (
	// ErrNoTokenSignKey is returned when APP_TOKEN_SIGN_KEY is unset; the
	// server cannot issue or verify tokens without it.
	ErrNoTokenSignKey = errors.New("token sign key is not set")

	// ErrNoDSN is returned when STORAGE_DATABASE_URI is unset.
	ErrNoDSN = errors.New("database DSN is not set")

	// ErrNoServerAddress is returned when the HTTP listen address resolves
	// to an empty string.
	ErrNoServerAddress = errors.New("server address is not set")
)
