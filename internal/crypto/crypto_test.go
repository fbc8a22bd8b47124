package crypto_test

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vigenere/internal/crypto"
)

func TestFingerprint_KeyedAndShort(t *testing.T) {
	secret := []byte("secret")
	a := crypto.Fingerprint(secret, []byte("DUH"))
	assert.Len(t, a, 20)
	assert.Equal(t, a, crypto.Fingerprint(secret, []byte("DUH")))
	assert.NotEqual(t, a, crypto.Fingerprint(secret, []byte("DUG")))
	assert.NotEqual(t, a, crypto.Fingerprint([]byte("other"), []byte("DUH")))

	plain := sha256.Sum256([]byte("DUH"))
	assert.NotEqual(t, hex.EncodeToString(plain[:10]), a, "must not be a bare hash of the data")
}

func TestNewSecret(t *testing.T) {
	a, b := crypto.NewSecret(32), crypto.NewSecret(32)
	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
}

func TestDeriveKEK_DependsOnPassphraseAndSalt(t *testing.T) {
	p := crypto.Argon2Params{Time: 1, Memory: 1 << 10, Threads: 1}
	salt := bytes.Repeat([]byte{1}, crypto.SaltBytes)

	k1, err := crypto.DeriveKEK("pass", salt, p)
	require.NoError(t, err)
	require.Len(t, k1, crypto.KeyBytes)

	k2, err := crypto.DeriveKEK("pass", salt, p)
	require.NoError(t, err)
	assert.Equal(t, k1, k2)

	k3, err := crypto.DeriveKEK("other", salt, p)
	require.NoError(t, err)
	assert.NotEqual(t, k1, k3)

	k4, err := crypto.DeriveKEK("pass", bytes.Repeat([]byte{2}, crypto.SaltBytes), p)
	require.NoError(t, err)
	assert.NotEqual(t, k1, k4)
}

func TestDeriveScrypt(t *testing.T) {
	p := crypto.ScryptParams{N: 1 << 10, R: 8, P: 1}
	salt := bytes.Repeat([]byte{7}, crypto.SaltBytes)

	k, err := crypto.DeriveScrypt("pass", salt, p)
	require.NoError(t, err)
	assert.Len(t, k, crypto.KeyBytes)
}

func TestDerive_RejectsBadParams(t *testing.T) {
	salt := bytes.Repeat([]byte{7}, crypto.SaltBytes)

	argonCases := map[string]crypto.Argon2Params{
		"zero threads": {Time: 1, Memory: 1 << 10, Threads: 0},
		"zero time":    {Time: 0, Memory: 1 << 10, Threads: 1},
		"zero memory":  {Time: 1, Memory: 0, Threads: 1},
		"huge memory":  {Time: 1, Memory: 1 << 30, Threads: 1},
	}
	for name, p := range argonCases {
		t.Run("argon2/"+name, func(t *testing.T) {
			_, err := crypto.DeriveKEK("pass", salt, p)
			assert.ErrorIs(t, err, crypto.ErrInvalidKDFParams)
		})
	}

	scryptCases := map[string]crypto.ScryptParams{
		"N not power of two": {N: 3, R: 8, P: 1},
		"N zero":             {N: 0, R: 8, P: 1},
		"zero r":             {N: 1 << 10, R: 0, P: 1},
		"zero p":             {N: 1 << 10, R: 8, P: 0},
		"huge N":             {N: 1 << 30, R: 8, P: 1},
	}
	for name, p := range scryptCases {
		t.Run("scrypt/"+name, func(t *testing.T) {
			_, err := crypto.DeriveScrypt("pass", salt, p)
			assert.ErrorIs(t, err, crypto.ErrInvalidKDFParams)
		})
	}

	_, err := crypto.DeriveScrypt("pass", []byte("short"), crypto.DefaultScrypt())
	assert.ErrorIs(t, err, crypto.ErrInvalidKDFParams)
}

func TestWipe(t *testing.T) {
	b := []byte("secret")
	crypto.Wipe(b)
	assert.Equal(t, make([]byte, 6), b)
	crypto.Wipe(nil)
}
