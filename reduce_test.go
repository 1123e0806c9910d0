package tabular

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/go-tabular/tabular/errors"
	"github.com/stretchr/testify/require"
)

func TestReduce(t *testing.T) {
	df := createExampleFrame(t)
	result, err := df.Reduce(func(values ValueIterator) (interface{}, error) {
		var parts []string
		for values.HasNext() {
			v, err := values.Next()
			if err != nil {
				return nil, err
			}
			parts = append(parts, v)
		}
		return strings.Join(parts, "-"), nil
	}, "b")
	require.Nil(t, err)
	require.Equal(t, "x-y-z", result)
}

func TestReduceSeesRawValues(t *testing.T) {
	df := createExampleFrame(t)
	result, err := df.Reduce(func(values ValueIterator) (interface{}, error) {
		collected := make([]string, 0, 3)
		for values.HasNext() {
			v, err := values.Next()
			if err != nil {
				return nil, err
			}
			collected = append(collected, v)
		}
		return collected, nil
	}, "a")
	require.Nil(t, err)
	require.Equal(t, []string{"1", MissingValue, "5"}, result)
}

func TestReduceSum(t *testing.T) {
	df := createNumberedFrame(t, 5)
	result, err := df.Reduce(func(values ValueIterator) (interface{}, error) {
		sum := 0
		for values.HasNext() {
			v, err := values.Next()
			if err != nil {
				return nil, err
			}
			n, err := strconv.Atoi(v)
			if err != nil {
				return nil, err
			}
			sum += n
		}
		return sum, nil
	}, "n")
	require.Nil(t, err)
	require.Equal(t, 10, result)
}

func TestReduceCountMatchesLen(t *testing.T) {
	df := createExampleFrame(t)
	result, err := df.Reduce(func(values ValueIterator) (interface{}, error) {
		count := 0
		for values.HasNext() {
			if _, err := values.Next(); err != nil {
				return nil, err
			}
			count++
		}
		return count, nil
	}, "a")
	require.Nil(t, err)
	require.Equal(t, df.Len(), result)
}

func TestReduceUnknownColumn(t *testing.T) {
	df := createExampleFrame(t)
	_, err := df.Reduce(func(values ValueIterator) (interface{}, error) {
		return nil, nil
	}, "missing")
	require.IsType(t, errors.ColumnNotFoundError{}, err)
}

func TestReduceIteratorExhaustion(t *testing.T) {
	df := createExampleFrame(t)
	_, err := df.Reduce(func(values ValueIterator) (interface{}, error) {
		for values.HasNext() {
			if _, err := values.Next(); err != nil {
				return nil, err
			}
		}
		_, err := values.Next()
		return nil, err
	}, "a")
	require.IsType(t, errors.NoMoreValuesError{}, err)
}

func TestReduceRecoversPanics(t *testing.T) {
	df := createExampleFrame(t)
	_, err := df.Reduce(func(values ValueIterator) (interface{}, error) {
		panic("reduction exploded")
	}, "a")
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "Reduce Panic")
}

func TestReducePropagatesErrors(t *testing.T) {
	df := createExampleFrame(t)
	_, err := df.Reduce(func(values ValueIterator) (interface{}, error) {
		return nil, fmt.Errorf("no result")
	}, "a")
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "no result")
}
