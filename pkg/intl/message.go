package intl

import (
	"fmt"
	"reflect"
)

// MessageKind tells how a message is rendered.
type MessageKind int

const (
	// MessageTemplate is an ICU message pattern compiled through the cache.
	MessageTemplate MessageKind = iota + 1
	// MessageCallable is a pre-bound function called with the values.
	MessageCallable
	// MessageRenderer is a ready formatter rendered directly.
	MessageRenderer
)

// MessageFunc is a message compiled and bound elsewhere. It receives the
// values passed to FormatMessage.
type MessageFunc func(values Options) (string, error)

// Renderer is a ready message formatter, such as *messageformat.MessageFormat.
type Renderer interface {
	Format(values map[string]any) (string, error)
}

// Message is a classified message entry.
type Message struct {
	kind     MessageKind
	template string
	fn       MessageFunc
	renderer Renderer
}

// Template wraps an ICU message pattern.
func Template(pattern string) Message {
	return Message{kind: MessageTemplate, template: pattern}
}

// Kind returns how the message is rendered.
func (m Message) Kind() MessageKind { return m.kind }

// ParseMessage classifies v as a message. Strings, including the empty
// string, are templates. Functions of the shapes func(Options) (string, error),
// func(map[string]any) (string, error) and func(Options) string are callables.
// Values implementing Renderer are renderers. Anything else, including nil,
// is ErrInvalidArgument.
func ParseMessage(v any) (Message, error) {
	switch m := v.(type) {
	case Message:
		if m.kind == 0 {
			return Message{}, fmt.Errorf("%w: empty message", ErrInvalidArgument)
		}
		return m, nil
	case string:
		return Template(m), nil
	case MessageFunc:
		if m != nil {
			return Message{kind: MessageCallable, fn: m}, nil
		}
	case func(Options) (string, error):
		if m != nil {
			return Message{kind: MessageCallable, fn: m}, nil
		}
	case func(map[string]any) (string, error):
		if m != nil {
			return Message{kind: MessageCallable, fn: func(values Options) (string, error) {
				return m(values)
			}}, nil
		}
	case func(Options) string:
		if m != nil {
			return Message{kind: MessageCallable, fn: func(values Options) (string, error) {
				return m(values), nil
			}}, nil
		}
	case Renderer:
		if !isNil(m) {
			return Message{kind: MessageRenderer, renderer: m}, nil
		}
	}
	return Message{}, fmt.Errorf("%w: %T is not a message", ErrInvalidArgument, v)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
