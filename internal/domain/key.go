package domain

import (
	"errors"
	"time"
)

var (
	ErrKeyNotFound     = errors.New("key not found")
	ErrKeyExists       = errors.New("key already exists")
	ErrWrongPassphrase = errors.New("wrong passphrase or corrupted key file")
	ErrInvalidKeyName  = errors.New("invalid key name")
	ErrCorruptKeyFile  = errors.New("corrupt key file")
)

// KeyRecord describes a stored key without revealing it. Fingerprint
// identifies the sealed entry, not the key: it changes when the same key is
// stored again, and the key's length is not recorded at all.
type KeyRecord struct {
	Name        string    `json:"name"`
	Fingerprint string    `json:"fingerprint"`
	KDF         string    `json:"kdf"`
	CreatedAt   time.Time `json:"created_at"`
}
