package hasher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcrypt_HashVerify_Roundtrip(t *testing.T) {
	b := NewBcrypt(bcrypt.MinCost)

	hash, err := b.Hash("pw1")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, b.Verify("pw1", hash))
	assert.False(t, b.Verify("pw2", hash))
}

func TestBcrypt_Hash_Salted(t *testing.T) {
	b := NewBcrypt(bcrypt.MinCost)

	first, err := b.Hash("same password")
	require.NoError(t, err)
	second, err := b.Hash("same password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, b.Verify("same password", first))
	assert.True(t, b.Verify("same password", second))
}

func TestBcrypt_Verify_MalformedHash(t *testing.T) {
	b := NewBcrypt(bcrypt.MinCost)

	assert.False(t, b.Verify("pw", ""))
	assert.False(t, b.Verify("pw", "not a bcrypt hash"))
	assert.False(t, b.Verify("pw", "$2a$garbage"))
}

func TestNewBcrypt_CostOutOfRange(t *testing.T) {
	b := NewBcrypt(100)

	hash, err := b.Hash("pw")
	require.NoError(t, err)
	assert.True(t, b.Verify("pw", hash))
}
