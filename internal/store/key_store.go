package store

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"sync"
	"time"

	"vigenere/internal/crypto"
	"vigenere/internal/domain"
)

const (
	keysFile         = "keys.json"
	keyFileFormatV   = 1
	keyFileMode      = 0o600
	keyFileDirMode   = 0o700
	maxKeyNameLength = 64
)

var keyNameRE = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

type keyFile struct {
	V    int                 `json:"v"`
	Keys map[string]keyEntry `json:"keys"`
}

type keyEntry struct {
	domain.KeyRecord
	Sealed blob `json:"sealed"`
}

// KeyFileStore keeps named keys in a single JSON file under dir.
type KeyFileStore struct {
	dir string
	kdf kdfParams
	now func() time.Time
	mu  sync.Mutex
}

var _ domain.KeyStore = (*KeyFileStore)(nil)

// NewKeyFileStore returns a store rooted at dir that seals new keys with kdf
// (KDFScrypt or KDFArgon2id).
func NewKeyFileStore(dir, kdf string) (*KeyFileStore, error) {
	if !ValidKDF(kdf) {
		return nil, fmt.Errorf("unsupported kdf %q", kdf)
	}
	return &KeyFileStore{
		dir: dir,
		kdf: kdfParams{name: kdf, scrypt: crypto.DefaultScrypt(), argon2: crypto.DefaultArgon2()},
		now: time.Now,
	}, nil
}

// WithCosts overrides the KDF cost parameters used for new entries.
func (s *KeyFileStore) WithCosts(sp crypto.ScryptParams, ap crypto.Argon2Params) *KeyFileStore {
	s.kdf.scrypt = sp
	s.kdf.argon2 = ap
	return s
}

// Path returns the location of the key file.
func (s *KeyFileStore) Path() string { return filepath.Join(s.dir, keysFile) }

// SaveKey seals key under passphrase as rec.Name. The store fills in
// rec.KDF and rec.Fingerprint; a caller-supplied fingerprint is ignored.
func (s *KeyFileStore) SaveKey(rec domain.KeyRecord, key []byte, passphrase string) (domain.KeyRecord, error) {
	if err := validateName(rec.Name); err != nil {
		return domain.KeyRecord{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	kf, err := s.load()
	if err != nil {
		return domain.KeyRecord{}, err
	}
	if _, ok := kf.Keys[rec.Name]; ok {
		return domain.KeyRecord{}, fmt.Errorf("%w: %s", domain.ErrKeyExists, rec.Name)
	}

	sealed, err := seal(passphrase, rec.Name, key, s.kdf)
	if err != nil {
		return domain.KeyRecord{}, fmt.Errorf("seal key %s: %w", rec.Name, err)
	}
	rec.KDF = s.kdf.name
	rec.Fingerprint = sealed.fingerprint()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = s.now().UTC()
	}
	kf.Keys[rec.Name] = keyEntry{KeyRecord: rec, Sealed: sealed}

	if err := s.save(kf); err != nil {
		return domain.KeyRecord{}, err
	}
	return rec, nil
}

func (s *KeyFileStore) LoadKey(name, passphrase string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kf, err := s.load()
	if err != nil {
		return nil, err
	}
	e, ok := kf.Keys[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrKeyNotFound, name)
	}
	return open(passphrase, name, e.Sealed)
}

// ListKeys returns all records sorted by name.
func (s *KeyFileStore) ListKeys() ([]domain.KeyRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kf, err := s.load()
	if err != nil {
		return nil, err
	}
	out := make([]domain.KeyRecord, 0, len(kf.Keys))
	for _, e := range kf.Keys {
		out = append(out, e.KeyRecord)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *KeyFileStore) DeleteKey(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kf, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := kf.Keys[name]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrKeyNotFound, name)
	}
	delete(kf.Keys, name)
	return s.save(kf)
}

func (s *KeyFileStore) load() (keyFile, error) {
	kf := keyFile{V: keyFileFormatV}
	if err := readJSON(s.Path(), &kf); err != nil {
		return keyFile{}, fmt.Errorf("read key file: %w", err)
	}
	if kf.V > keyFileFormatV {
		return keyFile{}, fmt.Errorf("unsupported key file version %d", kf.V)
	}
	if kf.Keys == nil {
		kf.Keys = map[string]keyEntry{}
	}
	return kf, nil
}

func (s *KeyFileStore) save(kf keyFile) error {
	if err := os.MkdirAll(s.dir, keyFileDirMode); err != nil {
		return err
	}
	if err := writeJSON(s.Path(), kf, keyFileMode); err != nil {
		return fmt.Errorf("write key file: %w", err)
	}
	return nil
}

func validateName(name string) error {
	if len(name) == 0 || len(name) > maxKeyNameLength || !keyNameRE.MatchString(name) {
		return fmt.Errorf("%w: %q", domain.ErrInvalidKeyName, name)
	}
	return nil
}
