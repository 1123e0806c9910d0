package tabular

import (
	"strconv"

	"github.com/go-tabular/tabular/errors"
)

// Mean computes the arithmetic mean of the named column, parsing each cell as
// a float64. Cells holding the MissingValue sentinel are skipped, and a column
// with no remaining values is a NoEligibleValuesError.
func (df *DataFrame) Mean(column string) (float64, error) {
	idx, err := df.schema.ColumnIndex(column)
	if err != nil {
		return 0, err
	}
	sum := 0.0
	count := 0
	for _, row := range df.rows {
		raw := row.cells[idx]
		if raw == MissingValue {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, errors.ConversionError{Column: column, Value: raw, Cause: err}
		}
		sum += v
		count++
	}
	if count == 0 {
		return 0, errors.NoEligibleValuesError{Column: column}
	}
	return sum / float64(count), nil
}
