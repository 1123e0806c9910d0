package tabular

import (
	"math"
	"testing"

	"github.com/go-tabular/tabular/errors"
	"github.com/stretchr/testify/require"
)

func TestMean(t *testing.T) {
	df := createExampleFrame(t)
	mean, err := df.Mean("a")
	require.Nil(t, err)
	require.Equal(t, 3.0, mean)
}

func TestMeanSkipsOnlyTheExactSentinel(t *testing.T) {
	// "NaN" is not the sentinel, so it parses as the floating-point NaN
	// and poisons the mean, exactly as a raw float conversion would
	df := createTestFrame(t, []string{"a"},
		[]string{"1"},
		[]string{"NaN"},
	)
	mean, err := df.Mean("a")
	require.Nil(t, err)
	require.True(t, math.IsNaN(mean))
}

func TestMeanUnknownColumn(t *testing.T) {
	df := createExampleFrame(t)
	_, err := df.Mean("missing")
	require.IsType(t, errors.ColumnNotFoundError{}, err)
}

func TestMeanNonNumericColumn(t *testing.T) {
	df := createExampleFrame(t)
	_, err := df.Mean("b")
	require.IsType(t, errors.ConversionError{}, err)
	cerr := err.(errors.ConversionError)
	require.Equal(t, "b", cerr.Column)
	require.Equal(t, "x", cerr.Value)
}

func TestMeanNoEligibleValues(t *testing.T) {
	df := createTestFrame(t, []string{"a"},
		[]string{MissingValue},
		[]string{MissingValue},
	)
	_, err := df.Mean("a")
	require.IsType(t, errors.NoEligibleValuesError{}, err)
}

func TestMeanAfterWhere(t *testing.T) {
	df := createExampleFrame(t)
	filtered, err := df.Where(func(row *Row) (bool, error) {
		return !row.IsMissing("a"), nil
	})
	require.Nil(t, err)
	mean, err := filtered.Mean("a")
	require.Nil(t, err)
	require.Equal(t, 3.0, mean)
}
