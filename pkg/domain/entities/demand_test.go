package entities

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDemandSeries_Validation(t *testing.T) {
	input := []float64{10, 0, 2.5}
	series, err := NewDemandSeries(input)
	require.NoError(t, err)
	assert.Equal(t, 3, series.Len())
	assert.Equal(t, 12.5, series.Total())

	input[0] = 99
	assert.Equal(t, 10.0, series[0], "series must not alias the caller's slice")

	testCases := []struct {
		name        string
		demand      []float64
		expectError string
	}{
		{"negative demand", []float64{1, -1}, "invalid input: domain violation: demand for period 1 must be non-negative, got -1"},
		{"NaN demand", []float64{math.NaN()}, "invalid input: domain violation: demand for period 0 is not a number"},
		{"infinite demand", []float64{0, 0, math.Inf(1)}, "invalid input: domain violation: demand for period 2 must be finite, got +Inf"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewDemandSeries(tc.demand)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInput))
			assert.True(t, errors.Is(err, ErrDomainViolation))
			assert.EqualError(t, err, tc.expectError)
		})
	}
}

func TestDemandSeries_Empty(t *testing.T) {
	series, err := NewDemandSeries(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, series.Len())
	assert.Equal(t, 0.0, series.Total())
}

func TestNewCostParameters_Validation(t *testing.T) {
	params, err := NewCostParameters(1, 50)
	require.NoError(t, err)
	assert.Equal(t, 1.0, params.HoldingCost)
	assert.Equal(t, 50.0, params.OrderCost)

	_, err = NewCostParameters(-0.5, 50)
	assert.EqualError(t, err, "invalid input: domain violation: holding cost must be non-negative, got -0.5")

	_, err = NewCostParameters(1, math.Inf(-1))
	assert.ErrorIs(t, err, ErrDomainViolation)
	assert.ErrorContains(t, err, "order cost must be finite")
}
