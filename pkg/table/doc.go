// Package table defines the typed schema model for delimited-text tables:
// column definitions, the value coercion engine that converts between text
// cells and typed values, the three row shapes, and the pure operators that
// derive new schemas from existing ones.
package table
