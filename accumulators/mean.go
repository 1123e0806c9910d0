package accumulators

import (
	"fmt"
	"strconv"

	"github.com/go-tabular/tabular"
	"github.com/go-tabular/tabular/errors"
)

// Averager returns a new Mean Accumulator over the named column
func Averager(colName string) *Mean {
	return &Mean{colName: colName}
}

// Mean computes the arithmetic mean of the numeric values of a single column,
// skipping missing cells
type Mean struct {
	colName string
	sum     float64
	count   uint64
}

// GetMean returns the mean of the values accumulated so far. Accumulating
// no eligible values is a NoEligibleValuesError.
func (a *Mean) GetMean() (float64, error) {
	if a.count == 0 {
		return 0, errors.NoEligibleValuesError{Column: a.colName}
	}
	return a.sum / float64(a.count), nil
}

// Accumulate adds a row to this Accumulator
func (a *Mean) Accumulate(row *tabular.Row) error {
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
	a.count++
	return nil
}

// Merge merges another Accumulator into this one
func (a *Mean) Merge(o tabular.Accumulator) error {
	ca, ok := o.(*Mean)
	if !ok {
		return fmt.Errorf("Incoming accumulator is not a Mean Accumulator")
	}
	if ca.colName != a.colName {
		return fmt.Errorf("Incoming Mean Accumulator tracks column %s, not %s", ca.colName, a.colName)
	}
	a.sum += ca.sum
	a.count += ca.count
	return nil
}
