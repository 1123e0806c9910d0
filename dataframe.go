package tabular

import (
	"fmt"

	"github.com/go-tabular/tabular/errors"
	"github.com/go-tabular/tabular/schema"
	"github.com/hashicorp/go-multierror"
)

// A DataFrame is an ordered collection of Rows sharing a single Schema.
// Row-producing operations return new DataFrames, leaving the receiver
// untouched, with the exception of Apply, which transforms cells in-place.
type DataFrame struct {
	rows   []*Row
	schema *schema.Schema
}

// CreateDataFrame is a factory for DataFrames. At least one Row is required,
// and every Row must match the Schema of the first.
func CreateDataFrame(rows ...*Row) (*DataFrame, error) {
	if len(rows) == 0 {
		return nil, errors.EmptyFrameError{}
	}
	s := rows[0].Schema()
	var multierr *multierror.Error
	for i, row := range rows[1:] {
		if err := s.Equals(row.Schema()); err != nil {
			multierr = multierror.Append(multierr, errors.SchemaMismatchError{RowIndex: i + 1, Cause: err})
		}
	}
	if err := multierr.ErrorOrNil(); err != nil {
		return nil, err
	}
	held := make([]*Row, len(rows))
	copy(held, rows)
	return &DataFrame{rows: held, schema: s}, nil
}

// Schema returns the Schema shared by every Row of this DataFrame
func (df *DataFrame) Schema() *schema.Schema {
	return df.schema
}

// Len returns the number of Rows in this DataFrame
func (df *DataFrame) Len() int {
	return len(df.rows)
}

// NumColumns returns the number of columns in this DataFrame
func (df *DataFrame) NumColumns() int {
	return df.schema.NumColumns()
}

// Columns returns the column names of this DataFrame, in index order
func (df *DataFrame) Columns() []string {
	return df.schema.ColumnNames()
}

// GetRow returns the Row at the given position. The Row is shared with
// this DataFrame, so cell writes are visible on both sides.
func (df *DataFrame) GetRow(i int) (*Row, error) {
	if i < 0 || i >= len(df.rows) {
		return nil, errors.IndexOutOfBoundsError{Index: i, Length: len(df.rows)}
	}
	return df.rows[i], nil
}

// ForEachRow iterates over the Rows in this DataFrame, in order, stopping
// at the first error
func (df *DataFrame) ForEachRow(fn func(idx int, row *Row) error) error {
	for i, row := range df.rows {
		if err := fn(i, row); err != nil {
			return err
		}
	}
	return nil
}

// At returns a single-row DataFrame wrapping the Row at the given position.
// The Row is shared with this DataFrame.
func (df *DataFrame) At(i int) (*DataFrame, error) {
	row, err := df.GetRow(i)
	if err != nil {
		return nil, err
	}
	return &DataFrame{rows: []*Row{row}, schema: df.schema}, nil
}

// Slice returns a DataFrame holding every step-th Row of the half-open range
// [start, stop). A step of 0 is treated as 1, bounds beyond the end are
// clamped, and negative values are rejected. The Rows are shared with this
// DataFrame.
func (df *DataFrame) Slice(start int, stop int, step int) (*DataFrame, error) {
	if step == 0 {
		step = 1
	}
	if start < 0 || stop < 0 || step < 0 {
		return nil, errors.InvalidSliceError{Start: start, Stop: stop, Step: step}
	}
	if stop > len(df.rows) {
		stop = len(df.rows)
	}
	rows := make([]*Row, 0, len(df.rows))
	for i := start; i < stop; i += step {
		rows = append(rows, df.rows[i])
	}
	if len(rows) == 0 {
		return nil, errors.EmptyFrameError{}
	}
	return &DataFrame{rows: rows, schema: df.schema}, nil
}

// Head returns a DataFrame holding the first n Rows, or all Rows if fewer
// than n exist. The Rows are shared with this DataFrame.
func (df *DataFrame) Head(n int) (*DataFrame, error) {
	if n <= 0 {
		return nil, errors.EmptyFrameError{}
	}
	if n > len(df.rows) {
		n = len(df.rows)
	}
	return df.Slice(0, n, 1)
}

// Tail returns a DataFrame holding the last n Rows, or all Rows if fewer
// than n exist. The Rows are shared with this DataFrame.
func (df *DataFrame) Tail(n int) (*DataFrame, error) {
	if n <= 0 {
		return nil, errors.EmptyFrameError{}
	}
	start := len(df.rows) - n
	if start < 0 {
		start = 0
	}
	return df.Slice(start, len(df.rows), 1)
}

// Select returns a DataFrame containing only the given columns, in the given
// order. Cell storage is copied, so the result shares nothing with this
// DataFrame.
func (df *DataFrame) Select(columns ...string) (*DataFrame, error) {
	newSchema, err := df.schema.Select(columns...)
	if err != nil {
		return nil, err
	}
	offsets := make([]int, len(columns))
	for i, name := range columns {
		idx, err := df.schema.ColumnIndex(name)
		if err != nil {
			return nil, err
		}
		offsets[i] = idx
	}
	rows := make([]*Row, len(df.rows))
	for i, row := range df.rows {
		cells := make([]string, len(offsets))
		for j, idx := range offsets {
			cells[j] = row.cells[idx]
		}
		rows[i] = &Row{schema: newSchema, cells: cells}
	}
	return &DataFrame{rows: rows, schema: newSchema}, nil
}

// Range describes a span of row positions for Index, equivalent to
// Slice(Start, Stop, Step)
type Range struct {
	Start int
	Stop  int
	Step  int
}

// Index looks up a portion of this DataFrame by key: an int selects a single
// row, a Range selects a span of rows, and a []string selects columns. Any
// other key type is rejected with an InvalidKeyTypeError.
func (df *DataFrame) Index(key interface{}) (*DataFrame, error) {
	switch k := key.(type) {
	case int:
		return df.At(k)
	case Range:
		return df.Slice(k.Start, k.Stop, k.Step)
	case []string:
		return df.Select(k...)
	default:
		return nil, errors.InvalidKeyTypeError{Key: key}
	}
}

// Where filters the Rows of this DataFrame, returning a new DataFrame holding
// copies of the Rows for which fn returned true. Filtering everything out is
// an EmptyFrameError.
func (df *DataFrame) Where(fn FilterOperation) (*DataFrame, error) {
	safeFn := safeFilterOperation(fn)
	var multierr *multierror.Error
	kept := make([]*Row, 0, len(df.rows))
	for _, row := range df.rows {
		shouldKeep, err := safeFn(row)
		if err != nil {
			multierr = multierror.Append(multierr, err)
			continue
		}
		if shouldKeep {
			kept = append(kept, row.Clone())
		}
	}
	if err := multierr.ErrorOrNil(); err != nil {
		return nil, err
	}
	if len(kept) == 0 {
		return nil, errors.EmptyFrameError{}
	}
	return &DataFrame{rows: kept, schema: df.schema}, nil
}

// Apply runs fn over every cell of the given columns, in-place, and returns
// this DataFrame to permit chaining. With no columns given, no cells are
// transformed. Cells whose transformation fails are left untouched, and the
// failures are aggregated into the returned error.
func (df *DataFrame) Apply(fn ApplyOperation, columns ...string) (*DataFrame, error) {
	offsets := make([]int, len(columns))
	for i, name := range columns {
		idx, err := df.schema.ColumnIndex(name)
		if err != nil {
			return nil, err
		}
		offsets[i] = idx
	}
	safeFn := safeApplyOperation(fn)
	var multierr *multierror.Error
	for i, name := range columns {
		idx := offsets[i]
		for _, row := range df.rows {
			result, err := safeFn(row.cells[idx])
			if err != nil {
				multierr = multierror.Append(multierr, fmt.Errorf("Column %s: %w", name, err))
				continue
			}
			row.cells[idx] = result
		}
	}
	return df, multierr.ErrorOrNil()
}

// Reduce folds the raw values of the named column into a single result,
// using fn to consume a ValueIterator over the values in row order
func (df *DataFrame) Reduce(fn ReduceOperation, column string) (interface{}, error) {
	idx, err := df.schema.ColumnIndex(column)
	if err != nil {
		return nil, err
	}
	return safeReduceOperation(fn)(&columnIterator{rows: df.rows, col: idx})
}

// Accumulate feeds every Row of this DataFrame to the given Accumulator,
// stopping at the first error
func (df *DataFrame) Accumulate(acc Accumulator) error {
	for _, row := range df.rows {
		if err := acc.Accumulate(row); err != nil {
			return err
		}
	}
	return nil
}

// Equals returns nil iff this and another DataFrame hold the same cell values
// under the same Schema
func (df *DataFrame) Equals(other *DataFrame) error {
	if other == nil {
		return fmt.Errorf("other DataFrame is nil")
	}
	if err := df.schema.Equals(other.schema); err != nil {
		return err
	}
	if len(df.rows) != len(other.rows) {
		return fmt.Errorf("DataFrames have unequal numbers of rows (%d and %d)", len(df.rows), len(other.rows))
	}
	names := df.schema.ColumnNames()
	for i, row := range df.rows {
		for j, cell := range row.cells {
			if cell != other.rows[i].cells[j] {
				return fmt.Errorf("Value at row %d, column %s does not match (%q and %q)", i, names[j], cell, other.rows[i].cells[j])
			}
		}
	}
	return nil
}

// Clone returns a copy of this DataFrame which shares no Rows with the original
func (df *DataFrame) Clone() *DataFrame {
	rows := make([]*Row, len(df.rows))
	for i, row := range df.rows {
		rows[i] = row.Clone()
	}
	return &DataFrame{rows: rows, schema: df.schema}
}
