package encryption_test

import (
	"testing"

	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/card/encryption"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptor_RoundTrip(t *testing.T) {
	enc, err := encryption.NewEncryptor("test-passphrase")
	require.NoError(t, err)

	ciphertext, err := enc.Encrypt("1234123412341234")
	require.NoError(t, err)
	assert.NotEqual(t, "1234123412341234", ciphertext)

	plaintext, err := enc.Decrypt(ciphertext)
	require.NoError(t, err)
	assert.Equal(t, "1234123412341234", plaintext)
}

func TestEncryptor_OutputIsSalted(t *testing.T) {
	enc, err := encryption.NewEncryptor("test-passphrase")
	require.NoError(t, err)

	first, err := enc.Encrypt("1234123412341234")
	require.NoError(t, err)
	second, err := enc.Encrypt("1234123412341234")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestEncryptor_EmptyPassphrase(t *testing.T) {
	_, err := encryption.NewEncryptor("")

	assert.Error(t, err)
}

func TestEncryptor_DecryptRejectsGarbage(t *testing.T) {
	enc, err := encryption.NewEncryptor("test-passphrase")
	require.NoError(t, err)

	_, err = enc.Decrypt("not base64!!")
	assert.Error(t, err)

	_, err = enc.Decrypt("YWJj")
	assert.Error(t, err)
}

func TestEncryptor_WrongKeyFailsToDecrypt(t *testing.T) {
	enc, err := encryption.NewEncryptor("passphrase-one")
	require.NoError(t, err)
	other, err := encryption.NewEncryptor("passphrase-two")
	require.NoError(t, err)

	ciphertext, err := enc.Encrypt("1234123412341234")
	require.NoError(t, err)

	_, err = other.Decrypt(ciphertext)
	assert.Error(t, err)
}

func TestHasher_Deterministic(t *testing.T) {
	hasher := encryption.NewHasher("test-secret")

	first := hasher.SearchHash("1234123412341234")
	second := hasher.SearchHash("1234123412341234")

	assert.Equal(t, first, second)
	assert.Len(t, first, 64)
}

func TestHasher_SecretChangesHash(t *testing.T) {
	assert.NotEqual(t,
		encryption.NewHasher("secret-a").SearchHash("1234123412341234"),
		encryption.NewHasher("secret-b").SearchHash("1234123412341234"),
	)
}
