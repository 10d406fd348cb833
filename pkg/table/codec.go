package table

import (
	"fmt"
	"strconv"
)

// codec pairs the decode and encode halves of one column type. The registry
// below maps type tags to codecs; the literal codec is the only open-ended
// entry and delegates to the DecodeLiteral trust boundary.
type codec struct {
	decode func(text string) (any, error)
	encode func(value any) (string, error)
}

var codecs = map[string]codec{
	String:  {decodeStringCell, encodeStringCell},
	Integer: {decodeIntegerCell, encodeIntegerCell},
	Float:   {decodeFloatCell, encodeFloatCell},
	Boolean: {decodeBooleanCell, encodeBooleanCell},
	Literal: {decodeLiteralCell, encodeLiteralCell},
}

// Decode converts a text cell to the typed value selected by the type tag.
// Malformed text fails with an error wrapping ErrCoercion; there is no
// silent truncation or defaulting.
func Decode(text, tag string) (any, error) {
	c, ok := codecs[tag]
	if !ok {
		return nil, fmt.Errorf("%q: %w", tag, ErrUnknownType)
	}
	return c.decode(text)
}

// Encode renders a typed value back to its text cell such that
// Decode(Encode(v, tag), tag) == v for every supported value.
func Encode(value any, tag string) (string, error) {
	c, ok := codecs[tag]
	if !ok {
		return "", fmt.Errorf("%q: %w", tag, ErrUnknownType)
	}
	return c.encode(value)
}

// DecodeColumn decodes text for col and applies its Check, if any.
// A Check failure wraps ErrValidation, distinct from ErrCoercion: malformed
// text versus a well-formed but disallowed value.
func DecodeColumn(col ColumnDef, text string) (any, error) {
	v, err := Decode(text, col.Type)
	if err != nil {
		return nil, err
	}
	if col.Check != nil {
		if err := col.Check(v); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
	}
	return v, nil
}

func decodeStringCell(text string) (any, error) {
	// Identity. Trimming rules belong to the caller, not the engine.
	return text, nil
}

func encodeStringCell(value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%T is not a string: %w", value, ErrCoercion)
	}
	return s, nil
}

func decodeIntegerCell(text string) (any, error) {
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%q as integer: %w", text, ErrCoercion)
	}
	return n, nil
}

func encodeIntegerCell(value any) (string, error) {
	switch n := value.(type) {
	case int64:
		return strconv.FormatInt(n, 10), nil
	case int:
		return strconv.Itoa(n), nil
	default:
		return "", fmt.Errorf("%T is not an integer: %w", value, ErrCoercion)
	}
}

func decodeFloatCell(text string) (any, error) {
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, fmt.Errorf("%q as float: %w", text, ErrCoercion)
	}
	return f, nil
}

func encodeFloatCell(value any) (string, error) {
	f, ok := value.(float64)
	if !ok {
		return "", fmt.Errorf("%T is not a float: %w", value, ErrCoercion)
	}
	return strconv.FormatFloat(f, 'g', -1, 64), nil
}

func decodeBooleanCell(text string) (any, error) {
	// Canonical grammar only: "true" or "false", nothing else.
	switch text {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return nil, fmt.Errorf("%q as boolean: %w", text, ErrCoercion)
	}
}

func encodeBooleanCell(value any) (string, error) {
	b, ok := value.(bool)
	if !ok {
		return "", fmt.Errorf("%T is not a boolean: %w", value, ErrCoercion)
	}
	return strconv.FormatBool(b), nil
}

// decodeLiteralCell treats an empty cell as the literal zero value (nil);
// anything else goes through the literal expression parser.
func decodeLiteralCell(text string) (any, error) {
	if text == "" {
		return nil, nil
	}
	return DecodeLiteral(text)
}

func encodeLiteralCell(value any) (string, error) {
	if value == nil {
		return "", nil
	}
	return EncodeLiteral(value)
}
