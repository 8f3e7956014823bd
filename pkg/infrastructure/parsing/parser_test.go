package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/lotsizing/pkg/domain/entities"
)

func TestParseDemandList(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected []float64
	}{
		{"simple", "10,10", []float64{10, 10}},
		{"spaces", " 10 , 20.5 ,0 ", []float64{10, 20.5, 0}},
		{"single", "42", []float64{42}},
		{"blank", "   ", []float64{}},
		{"negative passes parsing", "5,-1", []float64{5, -1}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDemandList(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestParseDemandList_Invalid(t *testing.T) {
	testCases := []struct {
		name        string
		input       string
		expectError string
	}{
		{"word", "10,abc", `invalid input: demand value 2: "abc" is not a number`},
		{"empty token", "10,,20", "invalid input: demand value 2: value is empty"},
		{"trailing comma", "10,", "invalid input: demand value 2: value is empty"},
		{"semicolons", "1;2", `invalid input: demand value 1: "1;2" is not a number`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseDemandList(tc.input)
			require.ErrorIs(t, err, entities.ErrInvalidInput)
			assert.EqualError(t, err, tc.expectError)
		})
	}
}

func TestParseAmount(t *testing.T) {
	got, err := ParseAmount("holding cost", " 1.25 ")
	require.NoError(t, err)
	assert.Equal(t, 1.25, got)

	_, err = ParseAmount("order cost", "fifty")
	require.ErrorIs(t, err, entities.ErrInvalidInput)
	assert.EqualError(t, err, `invalid input: order cost: "fifty" is not a number`)

	_, err = ParseAmount("order cost", "")
	assert.EqualError(t, err, "invalid input: order cost: value is empty")
}

func TestCheckPeriods(t *testing.T) {
	demand := []float64{1, 2, 3}

	assert.NoError(t, CheckPeriods(demand, ""))
	assert.NoError(t, CheckPeriods(demand, " 3 "))

	err := CheckPeriods(demand, "4")
	require.ErrorIs(t, err, entities.ErrInvalidInput)
	assert.EqualError(t, err, "invalid input: expected 4 periods, got 3 demand values")

	err = CheckPeriods(demand, "three")
	assert.ErrorIs(t, err, entities.ErrInvalidInput)
}
