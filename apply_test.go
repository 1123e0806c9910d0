package tabular

import (
	"strconv"
	"strings"
	"testing"

	"github.com/go-tabular/tabular/errors"
	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	df := createExampleFrame(t)
	result, err := df.Apply(func(value string) (string, error) {
		return strings.ToUpper(value), nil
	}, "b")
	require.Nil(t, err)
	require.True(t, result == df)
	require.Equal(t, []string{"X", "Y", "Z"}, columnValues(t, df, "b"))
	require.Equal(t, []string{"1", MissingValue, "5"}, columnValues(t, df, "a"))
}

func TestApplyNoColumns(t *testing.T) {
	df := createTestFrame(t, []string{"a", "b"},
		[]string{"l", "m"},
		[]string{"n", "o"},
	)
	result, err := df.Apply(func(value string) (string, error) {
		return strings.ToUpper(value), nil
	})
	require.Nil(t, err)
	require.True(t, result == df)
	require.Equal(t, []string{"l", "n"}, columnValues(t, df, "a"))
	require.Equal(t, []string{"m", "o"}, columnValues(t, df, "b"))
}

func TestApplyThroughAtView(t *testing.T) {
	df := createExampleFrame(t)
	sub, err := df.At(2)
	require.Nil(t, err)
	_, err = sub.Apply(func(value string) (string, error) {
		return strings.ToUpper(value), nil
	}, "b")
	require.Nil(t, err)
	require.Equal(t, []string{"x", "y", "Z"}, columnValues(t, df, "b"))
}

func TestApplyThroughSliceView(t *testing.T) {
	df := createExampleFrame(t)
	sub, err := df.Slice(0, 2, 1)
	require.Nil(t, err)
	_, err = sub.Apply(func(value string) (string, error) {
		return strings.ToUpper(value), nil
	}, "b")
	require.Nil(t, err)
	require.Equal(t, []string{"X", "Y", "z"}, columnValues(t, df, "b"))
}

func TestApplyRejectsUnknownColumns(t *testing.T) {
	df := createExampleFrame(t)
	_, err := df.Apply(func(value string) (string, error) {
		return value, nil
	}, "b", "missing")
	require.IsType(t, errors.ColumnNotFoundError{}, err)
	require.Equal(t, []string{"x", "y", "z"}, columnValues(t, df, "b"))
}

func TestApplyAggregatesErrors(t *testing.T) {
	df := createExampleFrame(t)
	double := func(value string) (string, error) {
		v, err := strconv.Atoi(value)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(v * 2), nil
	}
	result, err := df.Apply(double, "a")
	require.NotNil(t, err)
	require.True(t, result == df)
	require.Contains(t, err.Error(), "1 error occurred")
	require.Contains(t, err.Error(), "Column a")
	require.Equal(t, []string{"2", MissingValue, "10"}, columnValues(t, df, "a"))
}

func TestApplyRecoversPanics(t *testing.T) {
	df := createExampleFrame(t)
	result, err := df.Apply(func(value string) (string, error) {
		if value == MissingValue {
			panic("unexpected missing value")
		}
		return strings.ToUpper(value), nil
	}, "a")
	require.NotNil(t, err)
	require.True(t, result == df)
	require.Contains(t, err.Error(), "Apply Panic")
	require.Equal(t, []string{"1", MissingValue, "5"}, columnValues(t, df, "a"))
}
