package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	defaults, err := LoadDefaults()
	require.NoError(t, err)
	assert.Equal(t, Defaults{MaxPeriods: 5000, Rule: "dynamic", Format: "text"}, defaults)
}

func TestLoadDefaults_FromEnv(t *testing.T) {
	t.Setenv("LOTSIZE_MAX_PERIODS", "250")
	t.Setenv("LOTSIZE_RULE", "lot-for-lot")
	t.Setenv("LOTSIZE_FORMAT", "json")

	defaults, err := LoadDefaults()
	require.NoError(t, err)
	assert.Equal(t, Defaults{MaxPeriods: 250, Rule: "lot-for-lot", Format: "json"}, defaults)
}

func TestLoadDefaults_Errors(t *testing.T) {
	t.Setenv("LOTSIZE_MAX_PERIODS", "many")
	_, err := LoadDefaults()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")

	t.Setenv("LOTSIZE_MAX_PERIODS", "-1")
	_, err = LoadDefaults()
	assert.EqualError(t, err, "LOTSIZE_MAX_PERIODS must be non-negative, got -1")
}
