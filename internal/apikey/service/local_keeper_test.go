package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSecret(t *testing.T) string {
	t.Helper()
	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)
	return base64.StdEncoding.EncodeToString(key)
}

func TestNewLocalKeeper(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		keeper, err := NewLocalKeeper(testSecret(t))
		require.NoError(t, err)
		assert.NotNil(t, keeper)
	})

	t.Run("Error_NotBase64", func(t *testing.T) {
		keeper, err := NewLocalKeeper("not base64!!!")
		assert.Error(t, err)
		assert.Nil(t, keeper)
	})

	t.Run("Error_WrongKeySize", func(t *testing.T) {
		keeper, err := NewLocalKeeper(base64.StdEncoding.EncodeToString([]byte("short")))
		assert.Error(t, err)
		assert.Nil(t, keeper)
	})
}

func TestLocalKeeper_EncryptDecrypt(t *testing.T) {
	keeper, err := NewLocalKeeper(testSecret(t))
	require.NoError(t, err)
	ctx := context.Background()

	plaintext := []byte("chk_super-secret-key-material")

	ciphertext, err := keeper.Encrypt(ctx, plaintext)
	require.NoError(t, err)
	assert.NotEqual(t, plaintext, ciphertext)

	decrypted, err := keeper.Decrypt(ctx, ciphertext)
	require.NoError(t, err)
	assert.Equal(t, plaintext, decrypted)
}

func TestLocalKeeper_Encrypt_UniqueNonces(t *testing.T) {
	keeper, err := NewLocalKeeper(testSecret(t))
	require.NoError(t, err)
	ctx := context.Background()

	plaintext := []byte("chk_super-secret-key-material")

	first, err := keeper.Encrypt(ctx, plaintext)
	require.NoError(t, err)
	second, err := keeper.Encrypt(ctx, plaintext)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestLocalKeeper_Decrypt_Errors(t *testing.T) {
	keeper, err := NewLocalKeeper(testSecret(t))
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("Error_TooShort", func(t *testing.T) {
		_, err := keeper.Decrypt(ctx, []byte("tiny"))
		assert.Error(t, err)
	})

	t.Run("Error_Tampered", func(t *testing.T) {
		ciphertext, err := keeper.Encrypt(ctx, []byte("chk_super-secret-key-material"))
		require.NoError(t, err)

		ciphertext[len(ciphertext)-1] ^= 0xff
		_, err = keeper.Decrypt(ctx, ciphertext)
		assert.Error(t, err)
	})

	t.Run("Error_WrongKey", func(t *testing.T) {
		ciphertext, err := keeper.Encrypt(ctx, []byte("chk_super-secret-key-material"))
		require.NoError(t, err)

		other, err := NewLocalKeeper(testSecret(t))
		require.NoError(t, err)

		_, err = other.Decrypt(ctx, ciphertext)
		assert.Error(t, err)
	})
}
