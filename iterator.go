package tabular

import (
	"github.com/go-tabular/tabular/errors"
)

// ValueIterator is a generalized interface for iterating over the raw string
// values of a single column, in row order
type ValueIterator interface {
	HasNext() bool
	// Next returns a NoMoreValuesError when the values are exhausted
	Next() (string, error)
}

// columnIterator iterates over one column of a sequence of Rows
type columnIterator struct {
	rows []*Row
	col  int
	next int
}

// HasNext returns true iff a value remains
func (ci *columnIterator) HasNext() bool {
	return ci.next < len(ci.rows)
}

// Next returns the next value of the column, in row order
func (ci *columnIterator) Next() (string, error) {
	if !ci.HasNext() {
		return "", errors.NoMoreValuesError{}
	}
	v := ci.rows[ci.next].cells[ci.col]
	ci.next++
	return v, nil
}
