package intl

import "errors"

// Sentinel errors for intl operations.
var (
	// ErrInvalidArgument is returned when a value passed to a formatting
	// operation cannot be formatted (a non-date, a non-number, an empty message).
	ErrInvalidArgument = errors.New("intl: invalid argument")

	// ErrFormatterConstruction wraps failures to build a formatter from merged
	// options or to compile a message pattern. Failed constructions are not cached.
	ErrFormatterConstruction = errors.New("intl: cannot construct formatter")

	ErrEmptyLocale   = errors.New("intl: locale cannot be empty")
	ErrInvalidLocale = errors.New("intl: invalid locale tag")
	ErrInvalidFile   = errors.New("intl: invalid message file")
)

// Catalog storage errors.
var (
	ErrCatalogNotFound = errors.New("intl: message catalog not found")
	ErrAccessDenied    = errors.New("intl: message catalog access denied")
	ErrCatalogFetch    = errors.New("intl: failed to fetch message catalog")
)
