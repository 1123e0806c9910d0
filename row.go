package tabular

import (
	"fmt"
	"strings"

	"github.com/go-tabular/tabular/errors"
	"github.com/go-tabular/tabular/schema"
)

// MissingValue is the exact cell content which marks a missing value.
// Any other content, including "NaN" or an empty string, is treated as data.
const MissingValue = "nan"

// Row is a single record of a DataFrame. Every cell is stored as a raw
// string, in the column order defined by the Row's Schema.
type Row struct {
	schema *schema.Schema
	cells  []string
}

// CreateRow is a factory for Rows, pairing one raw string cell per column of the given Schema
func CreateRow(s *schema.Schema, cells ...string) (*Row, error) {
	if len(cells) != s.NumColumns() {
		return nil, errors.RowWidthError{Expected: s.NumColumns(), Actual: len(cells)}
	}
	copied := make([]string, len(cells))
	copy(copied, cells)
	return &Row{schema: s, cells: copied}, nil
}

// Schema returns the Schema for this Row
func (r *Row) Schema() *schema.Schema {
	return r.schema
}

// Get returns the raw string value of the named column
func (r *Row) Get(colName string) (string, error) {
	idx, err := r.schema.ColumnIndex(colName)
	if err != nil {
		return "", err
	}
	return r.cells[idx], nil
}

// Set replaces the raw string value of the named column
func (r *Row) Set(colName string, value string) error {
	idx, err := r.schema.ColumnIndex(colName)
	if err != nil {
		return err
	}
	r.cells[idx] = value
	return nil
}

// IsMissing returns true iff the named column holds exactly the MissingValue
// sentinel. If the column does not exist, this function will return false.
func (r *Row) IsMissing(colName string) bool {
	v, err := r.Get(colName)
	if err != nil {
		return false
	}
	return v == MissingValue
}

// Cells returns a copy of the raw string values of this Row, in column order
func (r *Row) Cells() []string {
	cells := make([]string, len(r.cells))
	copy(cells, r.cells)
	return cells
}

// Clone returns a copy of this Row which shares no cell storage with the original
func (r *Row) Clone() *Row {
	cells := make([]string, len(r.cells))
	copy(cells, r.cells)
	return &Row{schema: r.schema, cells: cells}
}

// String returns a textual representation of this Row
func (r *Row) String() string {
	var res strings.Builder
	res.WriteString("{")
	for i, name := range r.schema.ColumnNames() {
		if i > 0 {
			res.WriteString(", ")
		}
		fmt.Fprintf(&res, "%q: %q", name, r.cells[i])
	}
	res.WriteString("}")
	return res.String()
}
