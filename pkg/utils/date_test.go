package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2025-06-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), *date)

	date, err = ParseDate("")
	require.NoError(t, err)
	assert.True(t, date.IsZero())

	_, err = ParseDate("2025/06/01")
	assert.Error(t, err)
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()
	require.NoError(t, err)
	assert.Len(t, id, 10)

	other, err := GenerateID()
	require.NoError(t, err)
	assert.NotEqual(t, id, other)
}
