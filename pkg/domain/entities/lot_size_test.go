package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLotSizeRule(t *testing.T) {
	testCases := []struct {
		input    string
		expected LotSizeRule
	}{
		{"", DynamicLotSize},
		{"dynamic", DynamicLotSize},
		{" DP ", DynamicLotSize},
		{"lot-for-lot", LotForLot},
		{"L4L", LotForLot},
		{"single-order", SingleOrder},
		{"single", SingleOrder},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			rule, err := ParseLotSizeRule(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, rule)
		})
	}

	_, err := ParseLotSizeRule("eoq")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestLotSizeRule_StringRoundTrip(t *testing.T) {
	for _, rule := range LotSizeRules {
		parsed, err := ParseLotSizeRule(rule.String())
		require.NoError(t, err)
		assert.Equal(t, rule, parsed)
	}
	assert.Equal(t, "unknown", LotSizeRule(42).String())
}
