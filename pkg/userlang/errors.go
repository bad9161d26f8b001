package userlang

import "errors"

var (
	ErrNotFound        = errors.New("userlang: language preference not found")
	ErrInvalidUserID   = errors.New("userlang: invalid user id")
	ErrInvalidLanguage = errors.New("userlang: invalid language code")
)

// Postgres errors.
var (
	ErrFailedToParseDBConfig    = errors.New("userlang: failed to parse database configuration")
	ErrFailedToOpenDBConnection = errors.New("userlang: failed to open database connection")
	ErrSetDialect               = errors.New("userlang migrator: failed to set dialect")
	ErrApplyMigrations          = errors.New("userlang migrator: failed to apply migrations")
)

// Redis errors.
var (
	ErrEmptyRedisURL       = errors.New("userlang: empty redis connection URL")
	ErrFailedToParseURL    = errors.New("userlang: failed to parse redis connection URL")
	ErrRedisConnectionFail = errors.New("userlang: failed to establish redis connection")
)
