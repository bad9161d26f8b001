package messageformat

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrymomot/intl/pkg/format"
)

type state struct {
	values   map[string]any
	pound    float64
	hasPound bool
	decimal  *format.NumberFormat
}

type node interface {
	render(b *strings.Builder, s *state) error
}

func (s *state) value(name string) (any, error) {
	v, ok := s.values[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingArgument, name)
	}
	return v, nil
}

func (s *state) number(name string) (float64, error) {
	v, err := s.value(name)
	if err != nil {
		return 0, err
	}
	n, ok := format.ToFloat(v)
	if !ok {
		return 0, fmt.Errorf("%w: %s must be a number, got %T", ErrInvalidArgument, name, v)
	}
	return n, nil
}

func renderAll(nodes []node, b *strings.Builder, s *state) error {
	for _, n := range nodes {
		if err := n.render(b, s); err != nil {
			return err
		}
	}
	return nil
}

type textNode string

func (n textNode) render(b *strings.Builder, _ *state) error {
	b.WriteString(string(n))
	return nil
}

type argNode struct {
	name string
}

func (n argNode) render(b *strings.Builder, s *state) error {
	v, err := s.value(n.name)
	if err != nil {
		return err
	}
	b.WriteString(stringify(v))
	return nil
}

func stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	}
	if f, ok := format.ToFloat(v); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return fmt.Sprint(v)
}

type numberNode struct {
	name   string
	format *format.NumberFormat
}

func (n numberNode) render(b *strings.Builder, s *state) error {
	v, err := s.number(n.name)
	if err != nil {
		return err
	}
	b.WriteString(n.format.Format(v))
	return nil
}

type dateNode struct {
	name   string
	format *format.DateTimeFormat
}

func (n dateNode) render(b *strings.Builder, s *state) error {
	v, err := s.value(n.name)
	if err != nil {
		return err
	}
	t, err := format.ToTime(v)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidArgument, n.name, err)
	}
	b.WriteString(n.format.Format(t))
	return nil
}

type pluralNode struct {
	name    string
	ordinal bool
	offset  float64
	locales []string
	exact   map[float64][]node
	cases   map[string][]node
	decimal *format.NumberFormat
}

func (n pluralNode) render(b *strings.Builder, s *state) error {
	v, err := s.number(n.name)
	if err != nil {
		return err
	}

	msg, ok := n.exact[v]
	if !ok {
		var category string
		if n.ordinal {
			category = format.OrdinalCategory(n.locales, v-n.offset)
		} else {
			category = format.PluralCategory(n.locales, v-n.offset)
		}
		if msg, ok = n.cases[category]; !ok {
			msg = n.cases["other"]
		}
	}

	inner := &state{values: s.values, pound: v - n.offset, hasPound: true, decimal: n.decimal}
	return renderAll(msg, b, inner)
}

type poundNode struct{}

func (poundNode) render(b *strings.Builder, s *state) error {
	if !s.hasPound {
		b.WriteByte('#')
		return nil
	}
	b.WriteString(s.decimal.Format(s.pound))
	return nil
}

type selectNode struct {
	name  string
	cases map[string][]node
}

func (n selectNode) render(b *strings.Builder, s *state) error {
	v, err := s.value(n.name)
	if err != nil {
		return err
	}
	msg, ok := n.cases[stringify(v)]
	if !ok {
		msg = n.cases["other"]
	}
	return renderAll(msg, b, s)
}
