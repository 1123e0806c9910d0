package tabular

import (
	"fmt"
	"strings"
)

const (
	// largest number of rows rendered in full by String
	reprMaxRows = 10
	// number of leading and trailing rows rendered when a DataFrame is elided
	reprEdgeRows = 3
)

// String returns a textual representation of this DataFrame, one Row per
// line, ending with a row and column count. Large frames render only their
// first and last few Rows, separated by an ellipsis line.
func (df *DataFrame) String() string {
	var res strings.Builder
	if len(df.rows) > reprMaxRows {
		for _, row := range df.rows[:reprEdgeRows] {
			res.WriteString(row.String())
			res.WriteString("\n")
		}
		res.WriteString("...\n")
		for _, row := range df.rows[len(df.rows)-reprEdgeRows:] {
			res.WriteString(row.String())
			res.WriteString("\n")
		}
	} else {
		for _, row := range df.rows {
			res.WriteString(row.String())
			res.WriteString("\n")
		}
	}
	fmt.Fprintf(&res, "%d rows, %d columns", len(df.rows), df.schema.NumColumns())
	return res.String()
}
