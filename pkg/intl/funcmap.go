package intl

import (
	"fmt"
	"html/template"
)

// FuncMap returns template helpers bound to the façade:
//
//	{{ formatDate .CreatedAt "long" }}
//	{{ formatNumber .Total (dict "style" "currency" "currency" "EUR") }}
//	{{ formatRelative .UpdatedAt }}
//	{{ formatMessage "Hello, {name}!" "name" .User.Name }}
//	{{ intlGet "nav.home" }}
//
// Formatting helpers take an optional preset name followed by optional
// options. Message helpers take either one values map or key/value pairs.
// dict builds an options map from key/value pairs.
func (i *Intl) FuncMap() template.FuncMap {
	return template.FuncMap{
		"formatDate": func(date any, args ...any) (string, error) {
			name, opts, err := ResolveFormatArgs(args...)
			if err != nil {
				return "", err
			}
			return i.FormatDate(date, name, opts)
		},
		"formatTime": func(date any, args ...any) (string, error) {
			name, opts, err := ResolveFormatArgs(args...)
			if err != nil {
				return "", err
			}
			return i.FormatTime(date, name, opts)
		},
		"formatRelative": func(date any, args ...any) (string, error) {
			name, opts, err := ResolveFormatArgs(args...)
			if err != nil {
				return "", err
			}
			return i.FormatRelative(date, name, opts)
		},
		"formatNumber": func(num any, args ...any) (string, error) {
			name, opts, err := ResolveFormatArgs(args...)
			if err != nil {
				return "", err
			}
			return i.FormatNumber(num, name, opts)
		},
		"formatMessage": func(message any, args ...any) (string, error) {
			values, err := ResolveValues(args...)
			if err != nil {
				return "", err
			}
			return i.FormatMessage(message, values)
		},
		"formatHTMLMessage": func(message any, args ...any) (template.HTML, error) {
			values, err := ResolveValues(args...)
			if err != nil {
				return "", err
			}
			return i.FormatHTMLMessage(message, values)
		},
		"intlGet": func(path string, args ...any) (string, error) {
			values, err := ResolveValues(args...)
			if err != nil {
				return "", err
			}
			return i.Get(path, values)
		},
		"locale": i.Locale,
		"dict":   ResolveValues,
	}
}

// ResolveValues builds message values from either a single map or
// alternating string keys and values.
func ResolveValues(args ...any) (Options, error) {
	if len(args) == 1 {
		switch v := args[0].(type) {
		case Options:
			return v, nil
		case map[string]any:
			return Options(v), nil
		case nil:
			return Options{}, nil
		}
	}
	if len(args)%2 != 0 {
		return nil, fmt.Errorf("%w: values must be a map or key/value pairs", ErrInvalidArgument)
	}

	values := make(Options, len(args)/2)
	for n := 0; n < len(args); n += 2 {
		key, ok := args[n].(string)
		if !ok {
			return nil, fmt.Errorf("%w: value key must be a string, got %T", ErrInvalidArgument, args[n])
		}
		values[key] = args[n+1]
	}
	return values, nil
}
