package cryptox

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSealOpen_RoundTrip(t *testing.T) {
	key := DeriveSealKey([]byte("device-secret"), []byte("salt-value"))
	require.Len(t, key, 32)

	plaintext := []byte("eyJhbGciOiJIUzI1NiJ9.payload.sig")

	ciphertext, nonce, err := Seal(plaintext, key)
	require.NoError(t, err)
	require.NotEqual(t, plaintext, ciphertext)
	require.Len(t, nonce, 12)

	opened, err := Open(ciphertext, nonce, key)
	require.NoError(t, err)
	require.Equal(t, plaintext, opened)
}

func TestOpen_WrongKeyFails(t *testing.T) {
	key := DeriveSealKey([]byte("secret-a"), []byte("salt"))
	other := DeriveSealKey([]byte("secret-b"), []byte("salt"))

	ciphertext, nonce, err := Seal([]byte("data"), key)
	require.NoError(t, err)

	_, err = Open(ciphertext, nonce, other)
	require.Error(t, err)
}

func TestSeal_NonceIsFreshPerCall(t *testing.T) {
	key := DeriveSealKey([]byte("secret"), []byte("salt"))

	_, n1, err := Seal([]byte("data"), key)
	require.NoError(t, err)
	_, n2, err := Seal([]byte("data"), key)
	require.NoError(t, err)

	require.NotEqual(t, n1, n2)
}

func TestDeriveSealKey_Deterministic(t *testing.T) {
	a := DeriveSealKey([]byte("secret"), []byte("salt"))
	b := DeriveSealKey([]byte("secret"), []byte("salt"))
	c := DeriveSealKey([]byte("secret"), []byte("other"))

	require.Equal(t, a, b)
	require.NotEqual(t, a, c)
}

func TestSeal_InvalidKeyLength(t *testing.T) {
	_, _, err := Seal([]byte("data"), []byte("short"))
	require.Error(t, err)
}
