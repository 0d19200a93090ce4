package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTemp(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		pwd, err := GenerateTemp()
		require.NoError(t, err)
		assert.Len(t, pwd, TempLength)
		for _, c := range pwd {
			assert.True(t, strings.ContainsRune(TempAlphabet, c), "unexpected character %q", c)
		}
		seen[pwd] = true
	}
	// 20 draws from a 68^8 space should never collide.
	assert.Greater(t, len(seen), 1)
}

func TestHashAndCompare(t *testing.T) {
	hash, err := Hash("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, Compare(hash, "secret123"))
	assert.False(t, Compare(hash, "secret124"))
	assert.False(t, Compare(hash, ""))
}

func TestCompareInvalidHash(t *testing.T) {
	assert.False(t, Compare("not-a-bcrypt-hash", "anything"))
}
