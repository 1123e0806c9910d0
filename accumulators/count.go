package accumulators

import (
	"fmt"

	"github.com/go-tabular/tabular"
)

// Counter returns a new Count Accumulator
func Counter() *Count {
	return new(Count)
}

// Count counts records
type Count struct {
	count uint64
}

// GetCount returns the row count from this Accumulator
func (a *Count) GetCount() uint64 {
	return a.count
}

// Accumulate adds a row to this Accumulator
func (a *Count) Accumulate(row *tabular.Row) error {
	a.count++
	return nil
}

// Merge merges another Accumulator into this one
func (a *Count) Merge(o tabular.Accumulator) error {
	ca, ok := o.(*Count)
	if !ok {
		return fmt.Errorf("Incoming accumulator is not a Count Accumulator")
	}
	a.count += ca.count
	return nil
}
