package table

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
)

// Column type tags. The tag selects the coercion codec applied to every
// cell of the column.
const (
	String  = "string"
	Integer = "integer"
	Float   = "float"
	Boolean = "boolean"
	Literal = "literal"
)

// validTypes is the set of recognized column type tags.
var validTypes = map[string]bool{
	String:  true,
	Integer: true,
	Float:   true,
	Boolean: true,
	Literal: true,
}

// IsValidType reports whether tag is a recognized column type tag.
func IsValidType(tag string) bool {
	return validTypes[tag]
}

// CheckFunc validates a decoded value. A non-nil error rejects the value;
// the caller wraps it as ErrValidation with position context.
type CheckFunc func(value any) error

// ColumnDef describes one column of a delimited-text table. None of the
// definition appears in the text except the optional heading; everything
// else is held by the application.
type ColumnDef struct {
	Name    string    // Unique identifier for programmatic access.
	Heading string    // Display label in the header line; may be empty, need not be unique.
	Type    string    // One of the type tag constants.
	Default any       // Value used when a cell is absent; nil means the type's zero value.
	Check   CheckFunc // Optional validation, run after decode.
}

// columnName matches the body of a valid column name: starts with a letter,
// continues with letters, digits, or underscores.
var columnName = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// IsValidName reports whether name is usable as a column name. Names start
// with a letter, contain only letters, digits, and underscores, and do not
// end with an underscore.
func IsValidName(name string) bool {
	return columnName.MatchString(name) && !strings.HasSuffix(name, "_")
}

// ZeroValue returns the absent-cell value for a type tag: "" for string,
// 0 for integer and float, false for boolean, nil for literal.
func ZeroValue(tag string) (any, error) {
	switch tag {
	case String:
		return "", nil
	case Integer:
		return int64(0), nil
	case Float:
		return float64(0), nil
	case Boolean:
		return false, nil
	case Literal:
		return nil, nil
	default:
		return nil, fmt.Errorf("%q: %w", tag, ErrUnknownType)
	}
}

// OneOf returns a CheckFunc that accepts only the listed values. Comparison
// is deep, so literal lists work as alternatives.
func OneOf(allowed ...any) CheckFunc {
	return func(value any) error {
		for _, a := range allowed {
			if reflect.DeepEqual(value, a) {
				return nil
			}
		}
		return fmt.Errorf("%v is not an allowed value", value)
	}
}

// IntRange returns a CheckFunc that accepts int64 values in [lo, hi].
func IntRange(lo, hi int64) CheckFunc {
	return func(value any) error {
		n, ok := value.(int64)
		if !ok {
			return fmt.Errorf("%v is not an integer", value)
		}
		if n < lo || n > hi {
			return fmt.Errorf("%d outside range %d..%d", n, lo, hi)
		}
		return nil
	}
}

// FloatRange returns a CheckFunc that accepts float64 values in [lo, hi].
func FloatRange(lo, hi float64) CheckFunc {
	return func(value any) error {
		f, ok := value.(float64)
		if !ok {
			return fmt.Errorf("%v is not a float", value)
		}
		if f < lo || f > hi {
			return fmt.Errorf("%v outside range %v..%v", f, lo, hi)
		}
		return nil
	}
}
