package cipher_test

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vigenere/internal/services/cipher"
	"vigenere/internal/vigenere"
)

func TestService_EncryptDecrypt(t *testing.T) {
	nopLogger := zerolog.Nop()

	testCases := []struct {
		name   string
		opts   cipher.Options
		key    string
		input  string
		want   string
		revert string
	}{
		{
			name:   "clean input",
			key:    "DUH",
			input:  "CRYPTO",
			want:   "FLFSNV",
			revert: "CRYPTO",
		},
		{
			name:   "lowercase key and prose",
			key:    "duh",
			input:  "They drink the tea.\n",
			want:   "WBLBXYLHRWBLWYH",
			revert: "THEYDRINKTHETEA",
		},
		{
			name:   "grouped output",
			opts:   cipher.Options{Group: 5},
			key:    "DUH",
			input:  "THEYDRINKTHETEA",
			want:   "WBLBX YLHRW BLWYH",
			revert: "THEYD RINKT HETEA",
		},
		{
			name:  "empty text",
			key:   "DUH",
			input: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := cipher.New(&nopLogger, tc.opts)

			got, err := svc.Encrypt(tc.key, []byte(tc.input))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)

			back, err := svc.Decrypt(tc.key, []byte(got))
			require.NoError(t, err)
			assert.Equal(t, tc.revert, back)
		})
	}
}

func TestService_Errors(t *testing.T) {
	nopLogger := zerolog.Nop()
	svc := cipher.New(&nopLogger, cipher.Options{Strict: true})

	_, err := svc.Encrypt("", []byte("ANY"))
	assert.ErrorIs(t, err, vigenere.ErrEmptyKey)

	_, err = svc.Decrypt("   ", []byte("ANY"))
	assert.ErrorIs(t, err, vigenere.ErrEmptyKey)

	_, err = svc.Encrypt("AB1", []byte("TEXT"))
	assert.ErrorIs(t, err, vigenere.ErrInvalidCharacter)
	assert.Contains(t, err.Error(), "key")

	_, err = svc.Encrypt("DUH", []byte("NO, THANKS"))
	assert.ErrorIs(t, err, vigenere.ErrInvalidCharacter)
}

func TestService_LogsFingerprintNotKey(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)
	svc := cipher.New(&log, cipher.Options{})

	_, err := svc.Encrypt("SECRETKEY", []byte("HELLO"))
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "key_fp")
	assert.Contains(t, buf.String(), `"component":"cipher_service"`)
	assert.NotContains(t, buf.String(), "SECRETKEY")
}

func TestService_LogFingerprintIsNotAnUnkeyedHash(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)
	svc := cipher.New(&log, cipher.Options{})

	_, err := svc.Encrypt("LEM", []byte("HELLO"))
	require.NoError(t, err)
	var line struct {
		KeyFP string `json:"key_fp"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Len(t, line.KeyFP, 20)

	sum := sha256.Sum256([]byte("LEM"))
	assert.NotEqual(t, hex.EncodeToString(sum[:10]), line.KeyFP)

	// A second service uses a different secret.
	buf.Reset()
	other := cipher.New(&log, cipher.Options{})
	_, err = other.Encrypt("LEM", []byte("HELLO"))
	require.NoError(t, err)
	var again struct {
		KeyFP string `json:"key_fp"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &again))
	assert.NotEqual(t, line.KeyFP, again.KeyFP)
}
