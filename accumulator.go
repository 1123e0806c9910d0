package tabular

// An Accumulator is an alternative reduction technique, which siphons data from
// Rows into a custom data structure. The result is itself an Accumulator,
// rather than a DataFrame, thus ending the chain (no more operations may be
// performed against the data). The advantage, however, is full control over the
// reduction technique, and the ability to compute several results in a single
// pass over the rows.
type Accumulator interface {
	Accumulate(row *Row) error // Accumulate adds a row to this Accumulator
	Merge(o Accumulator) error // Merge merges another Accumulator into this one
}
