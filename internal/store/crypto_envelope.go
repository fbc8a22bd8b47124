package store

import (
	"crypto/rand"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"

	"vigenere/internal/crypto"
	"vigenere/internal/domain"
)

const (
	// The current supported version of the sealed key format stored on disk.
	envelopeFormatVersion = 1

	KDFScrypt   = "scrypt"
	KDFArgon2id = "argon2id"
)

// blob is the on-disk structure holding a sealed key and its KDF parameters.
type blob struct {
	V      int                  `json:"v"`
	KDF    string               `json:"kdf"`
	Salt   []byte               `json:"salt"`
	Scrypt *crypto.ScryptParams `json:"scrypt,omitempty"`
	Argon2 *crypto.Argon2Params `json:"argon2,omitempty"`
	Cipher []byte               `json:"cipher"`
}

// kdfParams selects the derivation used for new blobs.
type kdfParams struct {
	name   string
	scrypt crypto.ScryptParams
	argon2 crypto.Argon2Params
}

// ValidKDF reports whether name is a supported key derivation.
func ValidKDF(name string) bool { return name == KDFScrypt || name == KDFArgon2id }

// seal derives a key from passphrase and encrypts raw, binding the entry name
// as associated data so sealed entries cannot be swapped between names.
func seal(passphrase, name string, raw []byte, kp kdfParams) (blob, error) {
	b := blob{V: envelopeFormatVersion, KDF: kp.name, Salt: make([]byte, crypto.SaltBytes)}
	if _, err := rand.Read(b.Salt); err != nil {
		return blob{}, err
	}
	switch kp.name {
	case KDFScrypt:
		p := kp.scrypt
		b.Scrypt = &p
	case KDFArgon2id:
		p := kp.argon2
		b.Argon2 = &p
	default:
		return blob{}, fmt.Errorf("unsupported kdf %q", kp.name)
	}

	key, err := deriveKey(passphrase, b)
	if err != nil {
		return blob{}, err
	}
	defer crypto.Wipe(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return blob{}, err
	}
	var nonce [chacha20poly1305.NonceSize]byte // zero nonce; salt-bound key guarantees uniqueness
	b.Cipher = aead.Seal(nil, nonce[:], raw, associatedData(b.Salt, name))
	return b, nil
}

// open reverses seal. Damaged KDF parameters are reported as
// domain.ErrCorruptKeyFile rather than handed to the KDF.
func open(passphrase, name string, b blob) ([]byte, error) {
	if b.V > envelopeFormatVersion {
		return nil, fmt.Errorf("unsupported key file version %d", b.V)
	}
	key, err := deriveKey(passphrase, b)
	if errors.Is(err, crypto.ErrInvalidKDFParams) {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrCorruptKeyFile, name, err)
	}
	if err != nil {
		return nil, err
	}
	defer crypto.Wipe(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte
	pt, err := aead.Open(nil, nonce[:], b.Cipher, associatedData(b.Salt, name))
	if err != nil {
		return nil, domain.ErrWrongPassphrase
	}
	return pt, nil
}

func deriveKey(passphrase string, b blob) ([]byte, error) {
	switch {
	case b.KDF == KDFScrypt && b.Scrypt != nil:
		return crypto.DeriveScrypt(passphrase, b.Salt, *b.Scrypt)
	case b.KDF == KDFArgon2id && b.Argon2 != nil:
		return crypto.DeriveKEK(passphrase, b.Salt, *b.Argon2)
	default:
		return nil, fmt.Errorf("%w: kdf %q", crypto.ErrInvalidKDFParams, b.KDF)
	}
}

func associatedData(salt []byte, name string) []byte {
	ad := make([]byte, 0, len(salt)+len(name))
	ad = append(ad, salt...)
	return append(ad, name...)
}

// fingerprint identifies a sealed entry. It is keyed by the entry's random
// salt and covers only ciphertext, so it reveals nothing about the key.
func (b blob) fingerprint() string {
	return crypto.Fingerprint(b.Salt, b.Cipher)
}
