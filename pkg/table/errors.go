package table

import "errors"

// Coercion, row, and schema errors. Operations wrap these with line-number
// and column-name context via fmt.Errorf("...: %w"); callers match with
// errors.Is.
var (
	ErrHeaderMismatch  = errors.New("header does not match schema headings")
	ErrCoercion        = errors.New("cannot coerce text to column type")
	ErrValidation      = errors.New("value failed column validation")
	ErrRowShape        = errors.New("row width does not match schema")
	ErrColumnNotFound  = errors.New("column not found")
	ErrSchemaIntegrity = errors.New("schema integrity violation")
	ErrSchemaDraft     = errors.New("malformed schema draft")
	ErrExpression      = errors.New("cannot evaluate literal expression")
	ErrUnknownType     = errors.New("unknown column type")
)
