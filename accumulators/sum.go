package accumulators

import (
	"fmt"
	"strconv"

	"github.com/go-tabular/tabular"
	"github.com/go-tabular/tabular/errors"
)

// Adder returns a new Sum Accumulator over the named column
func Adder(colName string) *Sum {
	return &Sum{colName: colName}
}

// Sum sums the numeric values of a single column, skipping missing cells
type Sum struct {
	colName string
	sum     float64
}

// GetSum returns the running total from this Accumulator
func (a *Sum) GetSum() float64 {
	return a.sum
}

// Accumulate adds a row to this Accumulator
func (a *Sum) Accumulate(row *tabular.Row) error {
	raw, err := row.Get(a.colName)
	if err != nil {
		return err
	}
	if raw == tabular.MissingValue {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return errors.ConversionError{Column: a.colName, Value: raw, Cause: err}
	}
	a.sum += v
	return nil
}

// Merge merges another Accumulator into this one
func (a *Sum) Merge(o tabular.Accumulator) error {
	ca, ok := o.(*Sum)
	if !ok {
		return fmt.Errorf("Incoming accumulator is not a Sum Accumulator")
	}
	if ca.colName != a.colName {
		return fmt.Errorf("Incoming Sum Accumulator tracks column %s, not %s", ca.colName, a.colName)
	}
	a.sum += ca.sum
	return nil
}
