// Package keyring validates cipher keys and keeps them in a domain.KeyStore.
package keyring

import (
	"fmt"

	"github.com/rs/zerolog"

	"vigenere/internal/crypto"
	"vigenere/internal/domain"
	"vigenere/internal/text"
)

// Service implements domain.KeyService on top of a domain.KeyStore.
type Service struct {
	store domain.KeyStore
	log   zerolog.Logger
}

var _ domain.KeyService = (*Service)(nil)

// New creates a key service with its own component logger.
func New(store domain.KeyStore, baseLogger *zerolog.Logger) *Service {
	log := baseLogger.With().Str("component", "keyring_service").Logger()
	return &Service{store: store, log: log}
}

// Add normalises key, refusing anything that is not A–Z, and stores it
// sealed under passphrase.
func (s *Service) Add(name, key, passphrase string) (domain.KeyRecord, error) {
	if passphrase == "" {
		return domain.KeyRecord{}, fmt.Errorf("add key %s: passphrase required", name)
	}
	norm, err := text.NormalizeKey(key)
	if err != nil {
		return domain.KeyRecord{}, fmt.Errorf("add key %s: %w", name, err)
	}
	raw := []byte(norm)
	defer crypto.Wipe(raw)

	rec, err := s.store.SaveKey(domain.KeyRecord{Name: name}, raw, passphrase)
	if err != nil {
		return domain.KeyRecord{}, fmt.Errorf("add key %s: %w", name, err)
	}

	s.log.Info().Str("name", rec.Name).Str("entry_fp", rec.Fingerprint).Str("kdf", rec.KDF).Msg("Key stored")
	return rec, nil
}

// Resolve unseals the named key.
func (s *Service) Resolve(name, passphrase string) (string, error) {
	raw, err := s.store.LoadKey(name, passphrase)
	if err != nil {
		s.log.Warn().Err(err).Str("name", name).Msg("Failed to unseal key")
		return "", fmt.Errorf("resolve key %s: %w", name, err)
	}
	defer crypto.Wipe(raw)
	return string(raw), nil
}

// Get returns the record for name without unsealing it.
func (s *Service) Get(name string) (domain.KeyRecord, error) {
	recs, err := s.store.ListKeys()
	if err != nil {
		return domain.KeyRecord{}, fmt.Errorf("get key %s: %w", name, err)
	}
	for _, r := range recs {
		if r.Name == name {
			return r, nil
		}
	}
	return domain.KeyRecord{}, fmt.Errorf("get key %s: %w", name, domain.ErrKeyNotFound)
}

// List returns every stored record, sorted by name.
func (s *Service) List() ([]domain.KeyRecord, error) {
	recs, err := s.store.ListKeys()
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}
	return recs, nil
}

// Remove deletes the named key.
func (s *Service) Remove(name string) error {
	if err := s.store.DeleteKey(name); err != nil {
		return fmt.Errorf("remove key %s: %w", name, err)
	}
	s.log.Info().Str("name", name).Msg("Key removed")
	return nil
}
