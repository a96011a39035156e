package cryptox

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-phrase")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-phrase", hash)

	assert.True(t, VerifyPassword(hash, "s3cret-phrase"))
	assert.False(t, VerifyPassword(hash, "wrong"))
	assert.False(t, VerifyPassword("not-a-hash", "s3cret-phrase"))
}

func TestSealer(t *testing.T) {
	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)

	sealer, err := NewSealer(key)
	require.NoError(t, err)

	t.Run("seal then unseal round-trips", func(t *testing.T) {
		sealed, err := sealer.Seal("hunter2")
		require.NoError(t, err)
		assert.NotContains(t, sealed, "hunter2")

		plain, err := sealer.Unseal(sealed)
		require.NoError(t, err)
		assert.Equal(t, "hunter2", plain)
	})

	t.Run("each seal uses a fresh nonce", func(t *testing.T) {
		a, err := sealer.Seal("same input")
		require.NoError(t, err)
		b, err := sealer.Seal("same input")
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})

	t.Run("wrong key fails to unseal", func(t *testing.T) {
		sealed, err := sealer.Seal("hunter2")
		require.NoError(t, err)

		otherKey := make([]byte, 32)
		_, err = rand.Read(otherKey)
		require.NoError(t, err)
		other, err := NewSealer(otherKey)
		require.NoError(t, err)

		_, err = other.Unseal(sealed)
		assert.ErrorIs(t, err, ErrUnsealFailed)
	})

	t.Run("garbage input fails to unseal", func(t *testing.T) {
		_, err := sealer.Unseal("!!not base64!!")
		assert.ErrorIs(t, err, ErrUnsealFailed)

		_, err = sealer.Unseal("c2hvcnQ=")
		assert.ErrorIs(t, err, ErrUnsealFailed)
	})

	t.Run("rejects short keys", func(t *testing.T) {
		_, err := NewSealer([]byte("too short"))
		assert.Error(t, err)
	})
}

func TestLoadOrCreateDeviceKey(t *testing.T) {
	dir := t.TempDir()

	key1, err := LoadOrCreateDeviceKey(dir)
	require.NoError(t, err)
	require.Len(t, key1, 32)

	key2, err := LoadOrCreateDeviceKey(dir)
	require.NoError(t, err)
	assert.Equal(t, key1, key2)
}
