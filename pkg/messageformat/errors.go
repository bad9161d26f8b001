package messageformat

import "errors"

var (
	ErrSyntax          = errors.New("messageformat: syntax error")
	ErrUnknownType     = errors.New("messageformat: unknown argument type")
	ErrUnknownStyle    = errors.New("messageformat: unknown argument style")
	ErrMissingArgument = errors.New("messageformat: missing argument")
	ErrInvalidArgument = errors.New("messageformat: invalid argument")
)
