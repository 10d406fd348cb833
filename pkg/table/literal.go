package table

import (
	"fmt"
	"strconv"
	"strings"
)

// DecodeLiteral parses text as a structured literal value: booleans,
// integers, floats, single- or double-quoted strings, and bracketed lists
// of literals, nested to any depth.
//
// This function is the trust boundary of the package. The grammar admits no
// identifiers and nothing is ever executed, but a hostile input can still
// produce arbitrarily nested values, so it must only be fed text from
// trusted sources. Columns reach this parser only by opting into the
// Literal type tag; no other path leads here.
func DecodeLiteral(text string) (any, error) {
	p := &literalParser{src: text}
	p.skipSpace()
	v, err := p.value()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return nil, fmt.Errorf("trailing text at offset %d in %q: %w", p.pos, text, ErrExpression)
	}
	return v, nil
}

// EncodeLiteral renders a literal value back to text accepted by
// DecodeLiteral. Whole floats keep a trailing ".0" so they decode back as
// floats rather than integers.
func EncodeLiteral(value any) (string, error) {
	switch v := value.(type) {
	case bool:
		return strconv.FormatBool(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case int:
		return strconv.Itoa(v), nil
	case float64:
		s := strconv.FormatFloat(v, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		return s, nil
	case string:
		return strconv.Quote(v), nil
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			s, err := EncodeLiteral(item)
			if err != nil {
				return "", err
			}
			parts[i] = s
		}
		return "[" + strings.Join(parts, ", ") + "]", nil
	default:
		return "", fmt.Errorf("%T has no literal form: %w", value, ErrExpression)
	}
}

// MustLiteral is DecodeLiteral for compile-time constant text; it panics on
// malformed input. Generated schema initializers use it for defaults.
func MustLiteral(text string) any {
	v, err := DecodeLiteral(text)
	if err != nil {
		panic(err)
	}
	return v
}

type literalParser struct {
	src string
	pos int
}

func (p *literalParser) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}

func (p *literalParser) value() (any, error) {
	if p.pos >= len(p.src) {
		return nil, fmt.Errorf("unexpected end of input: %w", ErrExpression)
	}
	switch c := p.src[p.pos]; {
	case c == '[':
		return p.list()
	case c == '\'' || c == '"':
		return p.quoted(c)
	default:
		return p.scalar()
	}
}

func (p *literalParser) list() (any, error) {
	p.pos++ // consume '['
	items := []any{}
	p.skipSpace()
	if p.pos < len(p.src) && p.src[p.pos] == ']' {
		p.pos++
		return items, nil
	}
	for {
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		items = append(items, v)
		p.skipSpace()
		if p.pos >= len(p.src) {
			return nil, fmt.Errorf("unterminated list: %w", ErrExpression)
		}
		switch p.src[p.pos] {
		case ',':
			p.pos++
			p.skipSpace()
		case ']':
			p.pos++
			return items, nil
		default:
			return nil, fmt.Errorf("expected ',' or ']' at offset %d: %w", p.pos, ErrExpression)
		}
	}
}

func (p *literalParser) quoted(quote byte) (any, error) {
	p.pos++ // consume opening quote
	var b strings.Builder
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch c {
		case quote:
			p.pos++
			return b.String(), nil
		case '\\':
			if p.pos+1 >= len(p.src) {
				return nil, fmt.Errorf("dangling escape: %w", ErrExpression)
			}
			p.pos++
			switch e := p.src[p.pos]; e {
			case '\\', '\'', '"':
				b.WriteByte(e)
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			default:
				return nil, fmt.Errorf("unknown escape \\%c: %w", e, ErrExpression)
			}
			p.pos++
		default:
			b.WriteByte(c)
			p.pos++
		}
	}
	return nil, fmt.Errorf("unterminated string: %w", ErrExpression)
}

func (p *literalParser) scalar() (any, error) {
	start := p.pos
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if c == ',' || c == ']' || c == ' ' || c == '\t' {
			break
		}
		p.pos++
	}
	token := p.src[start:p.pos]
	switch token {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	if n, err := strconv.ParseInt(token, 10, 64); err == nil {
		return n, nil
	}
	if f, err := strconv.ParseFloat(token, 64); err == nil {
		return f, nil
	}
	return nil, fmt.Errorf("%q is not a literal: %w", token, ErrExpression)
}
