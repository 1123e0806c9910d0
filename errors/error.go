package errors

import (
	"fmt"
)

// EmptySchemaError occurs when a Schema is created with no columns
type EmptySchemaError struct{}

// Error returns a textual representation of this EmptySchemaError
func (e EmptySchemaError) Error() string {
	return "Schema requires at least one column"
}

// DuplicateColumnError occurs when a Schema is created with a repeated column name
type DuplicateColumnError struct{ Name string }

// Error returns a textual representation of this DuplicateColumnError
func (e DuplicateColumnError) Error() string {
	return fmt.Sprintf("Schema already contains column with name %s", e.Name)
}

// ColumnNotFoundError occurs when a column name is not present in a Schema
type ColumnNotFoundError struct{ Name string }

// Error returns a textual representation of this ColumnNotFoundError
func (e ColumnNotFoundError) Error() string {
	return fmt.Sprintf("Schema does not contain column with name %s", e.Name)
}

// RowWidthError occurs when a Row's number of cells does not match its Schema
type RowWidthError struct {
	Expected int
	Actual   int
}

// Error returns a textual representation of this RowWidthError
func (e RowWidthError) Error() string {
	return fmt.Sprintf("Row has %d cells but its Schema defines %d columns", e.Actual, e.Expected)
}

// SchemaMismatchError occurs when a Row's Schema deviates from the first Row's Schema in a DataFrame
type SchemaMismatchError struct {
	RowIndex int
	Cause    error
}

// Error returns a textual representation of this SchemaMismatchError
func (e SchemaMismatchError) Error() string {
	return fmt.Sprintf("Row %d does not match the Schema of the first row: %v", e.RowIndex, e.Cause)
}

// Unwrap returns the underlying Schema comparison error
func (e SchemaMismatchError) Unwrap() error {
	return e.Cause
}

// EmptyFrameError occurs when an operation would produce or consume a DataFrame with no rows
type EmptyFrameError struct{}

// Error returns a textual representation of this EmptyFrameError
func (e EmptyFrameError) Error() string {
	return "DataFrame requires at least one row"
}

// IndexOutOfBoundsError occurs when a row position lies outside a DataFrame
type IndexOutOfBoundsError struct {
	Index  int
	Length int
}

// Error returns a textual representation of this IndexOutOfBoundsError
func (e IndexOutOfBoundsError) Error() string {
	return fmt.Sprintf("Row index %d is out of bounds for a DataFrame with %d rows", e.Index, e.Length)
}

// InvalidSliceError occurs when slice bounds are negative or the step is negative
type InvalidSliceError struct {
	Start int
	Stop  int
	Step  int
}

// Error returns a textual representation of this InvalidSliceError
func (e InvalidSliceError) Error() string {
	return fmt.Sprintf("Slice [%d:%d:%d] is not a valid forward slice", e.Start, e.Stop, e.Step)
}

// InvalidKeyTypeError occurs when Index is given a key which is not an int, Range or []string
type InvalidKeyTypeError struct{ Key interface{} }

// Error returns a textual representation of this InvalidKeyTypeError
func (e InvalidKeyTypeError) Error() string {
	return fmt.Sprintf("Unknown index key type %T", e.Key)
}

// ConversionError occurs when a cell value cannot be parsed as a number
type ConversionError struct {
	Column string
	Value  string
	Cause  error
}

// Error returns a textual representation of this ConversionError
func (e ConversionError) Error() string {
	return fmt.Sprintf("Value %q in column %s is not numeric", e.Value, e.Column)
}

// Unwrap returns the underlying parse error
func (e ConversionError) Unwrap() error {
	return e.Cause
}

// NoEligibleValuesError occurs when an aggregation finds only missing values in a column
type NoEligibleValuesError struct{ Column string }

// Error returns a textual representation of this NoEligibleValuesError
func (e NoEligibleValuesError) Error() string {
	return fmt.Sprintf("Column %s contains no non-missing values to aggregate", e.Column)
}

// NoMoreValuesError occurs when a ValueIterator is read past its final value
type NoMoreValuesError struct{}

// Error returns a textual representation of this NoMoreValuesError
func (e NoMoreValuesError) Error() string {
	return "No more values"
}
