package format

import "errors"

var (
	ErrInvalidOption   = errors.New("format: invalid option")
	ErrInvalidValue    = errors.New("format: invalid value")
	ErrUnknownCurrency = errors.New("format: unknown currency")
	ErrUnknownTimeZone = errors.New("format: unknown time zone")
	ErrEmptyLocale     = errors.New("format: locale cannot be empty")
	ErrUnknownLocale   = errors.New("format: no locale data")
)
