package messageformat

import (
	"slices"
	"strings"

	"github.com/dmitrymomot/intl/pkg/format"
)

// MessageFormat is a compiled ICU message pattern bound to a locale list.
// It is immutable and safe for concurrent use.
type MessageFormat struct {
	pattern string
	locales []string
	nodes   []node
}

// New parses pattern eagerly. Number, date and time formatters referenced by
// the pattern are built for locales, resolving named styles against presets
// first. Syntax errors wrap ErrSyntax.
func New(pattern string, locales []string, presets format.Presets) (*MessageFormat, error) {
	p := &parser{
		src:     []rune(pattern),
		locales: locales,
		presets: presets,
	}
	nodes, err := p.parseMessage(false, false)
	if err != nil {
		return nil, err
	}
	return &MessageFormat{
		pattern: pattern,
		locales: slices.Clone(locales),
		nodes:   nodes,
	}, nil
}

// Format renders the message with the given argument values.
// A referenced argument absent from values is an error wrapping
// ErrMissingArgument.
func (m *MessageFormat) Format(values map[string]any) (string, error) {
	var b strings.Builder
	if err := renderAll(m.nodes, &b, &state{values: values}); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Pattern returns the source pattern.
func (m *MessageFormat) Pattern() string { return m.pattern }

// Locales returns the locale list the message was compiled for.
func (m *MessageFormat) Locales() []string { return slices.Clone(m.locales) }
