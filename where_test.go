package tabular

import (
	"fmt"
	"testing"

	"github.com/go-tabular/tabular/errors"
	"github.com/stretchr/testify/require"
)

func TestWhere(t *testing.T) {
	df := createExampleFrame(t)
	result, err := df.Where(func(row *Row) (bool, error) {
		v, err := row.Get("b")
		if err != nil {
			return false, err
		}
		return v != "y", nil
	})
	require.Nil(t, err)
	require.Equal(t, 2, result.Len())
	require.Equal(t, []string{"1", "5"}, columnValues(t, result, "a"))
	require.Equal(t, 3, df.Len())
}

func TestWhereCopiesRows(t *testing.T) {
	df := createExampleFrame(t)
	result, err := df.Where(func(row *Row) (bool, error) {
		return true, nil
	})
	require.Nil(t, err)
	require.Nil(t, result.rows[0].Set("a", "edited"))
	v, err := df.rows[0].Get("a")
	require.Nil(t, err)
	require.Equal(t, "1", v)
}

func TestWhereEmptyResult(t *testing.T) {
	df := createExampleFrame(t)
	_, err := df.Where(func(row *Row) (bool, error) {
		return false, nil
	})
	require.IsType(t, errors.EmptyFrameError{}, err)
}

func TestWhereAggregatesErrors(t *testing.T) {
	df := createExampleFrame(t)
	_, err := df.Where(func(row *Row) (bool, error) {
		if row.IsMissing("a") {
			return false, fmt.Errorf("missing value")
		}
		return true, nil
	})
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "1 error occurred")
	require.Contains(t, err.Error(), "Filter Error")

	_, err = df.Where(func(row *Row) (bool, error) {
		return false, fmt.Errorf("always failing")
	})
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "3 errors occurred")
}

func TestWhereRecoversPanics(t *testing.T) {
	df := createExampleFrame(t)
	_, err := df.Where(func(row *Row) (bool, error) {
		if row.IsMissing("a") {
			panic("unexpected missing value")
		}
		return true, nil
	})
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "Filter Panic")
	require.Equal(t, 3, df.Len())
}
