package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"
)

const (
	KeyBytes  = chacha20poly1305.KeySize
	SaltBytes = 16
)

// ErrInvalidKDFParams is returned for cost parameters the KDFs would reject
// or panic on, typically read from a damaged key file.
var ErrInvalidKDFParams = errors.New("invalid kdf parameters")

// Upper bounds keep a tampered file from demanding absurd time or memory.
const (
	maxArgon2Time   = 64
	maxArgon2Memory = 1 << 22 // KiB, 4 GiB
	maxScryptLogN   = 22
	maxScryptR      = 64
	maxScryptP      = 64
)

// Argon2Params are the Argon2id cost parameters stored beside a sealed key.
type Argon2Params struct {
	Time    uint32 `json:"t"`
	Memory  uint32 `json:"m"` // KiB
	Threads uint8  `json:"p"`
}

// Validate reports parameters argon2.IDKey cannot use.
func (p Argon2Params) Validate() error {
	switch {
	case p.Time < 1 || p.Time > maxArgon2Time:
		return fmt.Errorf("%w: argon2 time %d", ErrInvalidKDFParams, p.Time)
	case p.Threads < 1:
		return fmt.Errorf("%w: argon2 threads %d", ErrInvalidKDFParams, p.Threads)
	case p.Memory < 8*uint32(p.Threads) || p.Memory > maxArgon2Memory:
		return fmt.Errorf("%w: argon2 memory %d KiB", ErrInvalidKDFParams, p.Memory)
	}
	return nil
}

// ScryptParams are the scrypt cost parameters stored beside a sealed key.
type ScryptParams struct {
	N int `json:"N"`
	R int `json:"r"`
	P int `json:"p"`
}

// Validate reports parameters scrypt.Key cannot use.
func (p ScryptParams) Validate() error {
	switch {
	case p.N <= 1 || p.N&(p.N-1) != 0 || p.N > 1<<maxScryptLogN:
		return fmt.Errorf("%w: scrypt N %d", ErrInvalidKDFParams, p.N)
	case p.R < 1 || p.R > maxScryptR:
		return fmt.Errorf("%w: scrypt r %d", ErrInvalidKDFParams, p.R)
	case p.P < 1 || p.P > maxScryptP:
		return fmt.Errorf("%w: scrypt p %d", ErrInvalidKDFParams, p.P)
	}
	return nil
}

// DefaultArgon2 returns the Argon2id costs used for new keys.
func DefaultArgon2() Argon2Params { return Argon2Params{Time: 1, Memory: 1 << 16, Threads: 4} }

// DefaultScrypt returns the scrypt costs used for new keys.
func DefaultScrypt() ScryptParams { return ScryptParams{N: 1 << 15, R: 8, P: 1} }

// DeriveKEK derives a key-encryption key from a passphrase and salt using Argon2id.
func DeriveKEK(passphrase string, salt []byte, p Argon2Params) ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if len(salt) != SaltBytes {
		return nil, fmt.Errorf("%w: salt size %d", ErrInvalidKDFParams, len(salt))
	}
	return argon2.IDKey([]byte(passphrase), salt, p.Time, p.Memory, p.Threads, KeyBytes), nil
}

// DeriveScrypt derives a key-encryption key from a passphrase and salt using scrypt.
func DeriveScrypt(passphrase string, salt []byte, p ScryptParams) ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if len(salt) != SaltBytes {
		return nil, fmt.Errorf("%w: salt size %d", ErrInvalidKDFParams, len(salt))
	}
	return scrypt.Key([]byte(passphrase), salt, p.N, p.R, p.P, KeyBytes)
}
