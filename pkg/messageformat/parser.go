package messageformat

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/dmitrymomot/intl/pkg/format"
)

type parser struct {
	src     []rune
	pos     int
	locales []string
	presets format.Presets
	decimal *format.NumberFormat
}

func (p *parser) errorf(msg string, args ...any) error {
	return fmt.Errorf("%w at offset %d: %s", ErrSyntax, p.pos, fmt.Sprintf(msg, args...))
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) peek(offset int) rune {
	if p.pos+offset >= len(p.src) {
		return 0
	}
	return p.src[p.pos+offset]
}

func (p *parser) skipSpace() {
	for !p.eof() && unicode.IsSpace(p.src[p.pos]) {
		p.pos++
	}
}

func (p *parser) expect(r rune) error {
	if p.eof() || p.src[p.pos] != r {
		return p.errorf("expected %q", r)
	}
	p.pos++
	return nil
}

// parseMessage reads message text until EOF (top level) or an unconsumed
// closing brace (nested).
func (p *parser) parseMessage(nested, inPlural bool) ([]node, error) {
	var (
		nodes []node
		text  strings.Builder
	)
	flush := func() {
		if text.Len() > 0 {
			nodes = append(nodes, textNode(text.String()))
			text.Reset()
		}
	}

	for !p.eof() {
		c := p.src[p.pos]
		switch {
		case c == '\'':
			p.readQuoted(&text, inPlural)
		case c == '{':
			flush()
			n, err := p.parseArgument(inPlural)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, n)
		case c == '}':
			if !nested {
				return nil, p.errorf("unmatched '}'")
			}
			flush()
			return nodes, nil
		case c == '#' && inPlural:
			flush()
			nodes = append(nodes, poundNode{})
			p.pos++
		default:
			text.WriteRune(c)
			p.pos++
		}
	}

	if nested {
		return nil, p.errorf("unclosed '{'")
	}
	flush()
	return nodes, nil
}

// readQuoted handles an apostrophe at the current position. A doubled
// apostrophe is a literal one; an apostrophe before a syntax character opens
// a quoted run that lasts until the next single apostrophe or the end of the
// pattern; any other apostrophe is literal.
func (p *parser) readQuoted(text *strings.Builder, inPlural bool) {
	next := p.peek(1)
	switch {
	case next == '\'':
		text.WriteRune('\'')
		p.pos += 2
		return
	case next == '{' || next == '}' || next == '|' || (next == '#' && inPlural):
	default:
		text.WriteRune('\'')
		p.pos++
		return
	}

	p.pos++
	for !p.eof() {
		c := p.src[p.pos]
		if c == '\'' {
			if p.peek(1) == '\'' {
				text.WriteRune('\'')
				p.pos += 2
				continue
			}
			p.pos++
			return
		}
		text.WriteRune(c)
		p.pos++
	}
}

func isIdentRune(r rune) bool {
	return !unicode.IsSpace(r) && !strings.ContainsRune("{},#'", r)
}

func (p *parser) readIdent() string {
	start := p.pos
	for !p.eof() && isIdentRune(p.src[p.pos]) {
		p.pos++
	}
	return string(p.src[start:p.pos])
}

func (p *parser) parseArgument(inPlural bool) (node, error) {
	p.pos++ // {
	p.skipSpace()
	name := p.readIdent()
	if name == "" {
		return nil, p.errorf("expected argument name")
	}
	p.skipSpace()

	if !p.eof() && p.src[p.pos] == '}' {
		p.pos++
		return argNode{name: name}, nil
	}
	if err := p.expect(','); err != nil {
		return nil, err
	}
	p.skipSpace()
	typ := p.readIdent()
	p.skipSpace()

	switch typ {
	case "number", "date", "time":
		style, err := p.readStyle()
		if err != nil {
			return nil, err
		}
		return p.simpleFormat(name, typ, style)
	case "plural", "selectordinal":
		if err := p.expect(','); err != nil {
			return nil, err
		}
		return p.parsePlural(name, typ == "selectordinal")
	case "select":
		if err := p.expect(','); err != nil {
			return nil, err
		}
		return p.parseSelect(name, inPlural)
	case "":
		return nil, p.errorf("expected argument type")
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, typ)
	}
}

// readStyle reads an optional ", style" section and the closing brace.
func (p *parser) readStyle() (string, error) {
	if !p.eof() && p.src[p.pos] == '}' {
		p.pos++
		return "", nil
	}
	if err := p.expect(','); err != nil {
		return "", err
	}
	start := p.pos
	for !p.eof() && p.src[p.pos] != '}' {
		if p.src[p.pos] == '{' {
			return "", p.errorf("unexpected '{' in style")
		}
		p.pos++
	}
	style := strings.TrimSpace(string(p.src[start:p.pos]))
	if err := p.expect('}'); err != nil {
		return "", err
	}
	return style, nil
}

var builtinNumberStyles = map[string]format.Options{
	"integer":  {"maximumFractionDigits": 0},
	"percent":  {"style": format.StylePercent},
	"currency": {"style": format.StyleCurrency, "currency": "USD"},
}

func (p *parser) simpleFormat(name, typ, style string) (node, error) {
	if typ == "number" {
		var opts format.Options
		if style != "" {
			preset, ok := p.presets.Preset("number", style)
			if !ok {
				preset, ok = builtinNumberStyles[style]
			}
			if !ok {
				return nil, fmt.Errorf("%w: number %q", ErrUnknownStyle, style)
			}
			opts = preset
		}
		nf, err := format.NewNumberFormat(p.locales, opts)
		if err != nil {
			return nil, err
		}
		return numberNode{name: name, format: nf}, nil
	}

	if style == "" {
		style = "medium"
	}
	opts, ok := p.presets.Preset(typ, style)
	if !ok {
		if typ == "date" {
			opts, ok = format.DateStyle(style)
		} else {
			opts, ok = format.TimeStyle(style)
		}
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s %q", ErrUnknownStyle, typ, style)
	}
	df, err := format.NewDateTimeFormat(p.locales, opts)
	if err != nil {
		return nil, err
	}
	return dateNode{name: name, format: df}, nil
}

// parseCases reads "key {message}" pairs up to and including the closing
// brace of the argument. An "other" case is required.
func (p *parser) parseCases(inPlural bool) (map[string][]node, error) {
	cases := map[string][]node{}
	for {
		p.skipSpace()
		if p.eof() {
			return nil, p.errorf("unclosed '{'")
		}
		if p.src[p.pos] == '}' {
			p.pos++
			break
		}
		key := p.readIdent()
		if key == "" {
			return nil, p.errorf("expected case key")
		}
		p.skipSpace()
		if err := p.expect('{'); err != nil {
			return nil, err
		}
		msg, err := p.parseMessage(true, inPlural)
		if err != nil {
			return nil, err
		}
		p.pos++ // }
		if _, dup := cases[key]; dup {
			return nil, p.errorf("duplicate case %q", key)
		}
		cases[key] = msg
	}
	if _, ok := cases["other"]; !ok {
		return nil, p.errorf("missing 'other' case")
	}
	return cases, nil
}

func (p *parser) parsePlural(name string, ordinal bool) (node, error) {
	p.skipSpace()
	n := pluralNode{name: name, ordinal: ordinal, locales: p.locales}

	if strings.HasPrefix(string(p.src[p.pos:]), "offset:") {
		p.pos += len("offset:")
		p.skipSpace()
		raw := p.readIdent()
		offset, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, p.errorf("invalid offset %q", raw)
		}
		n.offset = offset
	}

	cases, err := p.parseCases(true)
	if err != nil {
		return nil, err
	}
	n.cases = cases
	n.exact = map[float64][]node{}
	for key, msg := range cases {
		if rest, ok := strings.CutPrefix(key, "="); ok {
			v, err := strconv.ParseFloat(rest, 64)
			if err != nil {
				return nil, p.errorf("invalid exact case %q", key)
			}
			n.exact[v] = msg
		}
	}

	if p.decimal == nil {
		p.decimal, err = format.NewNumberFormat(p.locales, nil)
		if err != nil {
			return nil, err
		}
	}
	n.decimal = p.decimal
	return n, nil
}

func (p *parser) parseSelect(name string, inPlural bool) (node, error) {
	cases, err := p.parseCases(inPlural)
	if err != nil {
		return nil, err
	}
	return selectNode{name: name, cases: cases}, nil
}
