package otp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_SixDigitRange(t *testing.T) {
	for i := 0; i < 50; i++ {
		code, err := Generate()
		require.NoError(t, err)
		require.Len(t, code, 6)
		assert.GreaterOrEqual(t, code, "100000")
		assert.LessOrEqual(t, code, "999999")
	}
}

func TestHashAndCompare(t *testing.T) {
	code, err := Generate()
	require.NoError(t, err)

	hash, err := Hash(code)
	require.NoError(t, err)
	assert.NotEqual(t, code, hash)

	assert.True(t, Compare(hash, code))
	assert.False(t, Compare(hash, "000000"))
}
