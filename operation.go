package tabular

import (
	"fmt"
	"runtime"
	"strings"
)

// FilterOperation - A generic function for determining whether or not a Row should be retained
type FilterOperation func(row *Row) (bool, error)

// ApplyOperation - A generic function for rewriting a single cell value
type ApplyOperation func(value string) (string, error)

// ReduceOperation - A generic function for folding the raw values of a single column into a final result
type ReduceOperation func(values ValueIterator) (interface{}, error)

// safeFilterOperation wraps a FilterOperation such that panics are recovered and nice error messages are constructed
func safeFilterOperation(filterOp FilterOperation) FilterOperation {
	return func(row *Row) (shouldKeep bool, err error) {
		defer func() {
			if r := recover(); r != nil {
				if anErr, ok := r.(error); ok {
					err = fmt.Errorf("Filter Panic: %w\nRow: %s\n%s", anErr, row.String(), getTrace())
				} else {
					err = fmt.Errorf("Filter Panic: %v\nRow: %s\n%s", r, row.String(), getTrace())
				}
			} else if err != nil {
				err = fmt.Errorf("Filter Error: %w\nRow: %s", err, row.String())
			}
		}()
		shouldKeep, err = filterOp(row)
		return
	}
}

// safeApplyOperation wraps an ApplyOperation such that panics are recovered and nice error messages are constructed
func safeApplyOperation(applyOp ApplyOperation) ApplyOperation {
	return func(value string) (result string, err error) {
		defer func() {
			if r := recover(); r != nil {
				if anErr, ok := r.(error); ok {
					err = fmt.Errorf("Apply Panic: %w\nValue: %q\n%s", anErr, value, getTrace())
				} else {
					err = fmt.Errorf("Apply Panic: %v\nValue: %q\n%s", r, value, getTrace())
				}
			} else if err != nil {
				err = fmt.Errorf("Apply Error: %w\nValue: %q", err, value)
			}
		}()
		result, err = applyOp(value)
		return
	}
}

// safeReduceOperation wraps a ReduceOperation such that panics are recovered and nice error messages are constructed
func safeReduceOperation(reduceOp ReduceOperation) ReduceOperation {
	return func(values ValueIterator) (result interface{}, err error) {
		defer func() {
			if r := recover(); r != nil {
				if anErr, ok := r.(error); ok {
					err = fmt.Errorf("Reduce Panic: %w\n%s", anErr, getTrace())
				} else {
					err = fmt.Errorf("Reduce Panic: %v\n%s", r, getTrace())
				}
			}
		}()
		result, err = reduceOp(values)
		return
	}
}

// getTrace produces the string representation of a stack trace
func getTrace() string {
	var name, file string
	var line int
	var pc [16]uintptr
	var res strings.Builder
	n := runtime.Callers(3, pc[:])
	for _, pc := range pc[:n] {
		fn := runtime.FuncForPC(pc)
		if fn == nil {
			continue
		}
		file, line = fn.FileLine(pc)
		name = fn.Name()
		if !strings.HasPrefix(name, "runtime.") {
			fmt.Fprintf(&res, "%s\n\t%s:%d\n", name, file, line)
		}
	}
	return res.String()
}
