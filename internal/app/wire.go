package app

import (
	"github.com/rs/zerolog"

	"vigenere/internal/domain"
	"vigenere/internal/logger"
	ciphersvc "vigenere/internal/services/cipher"
	"vigenere/internal/services/keyring"
	"vigenere/internal/store"
)

// Wire bundles the logger, store and services for the CLI.
type Wire struct {
	Config Config
	Log    zerolog.Logger
	Keys   domain.KeyService
	Cipher domain.CipherService
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	return NewWireWithLogger(cfg, logger.New(cfg.DevMode(), cfg.LogLevel))
}

// NewWireWithLogger is NewWire with a caller-supplied logger.
func NewWireWithLogger(cfg Config, log zerolog.Logger) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	keyStore, err := store.NewKeyFileStore(cfg.Home, cfg.KDF)
	if err != nil {
		return nil, err
	}

	w := &Wire{Config: cfg, Log: log}
	w.Keys = keyring.New(keyStore, &w.Log)
	w.Cipher = ciphersvc.New(&w.Log, ciphersvc.Options{Strict: cfg.Strict, Group: cfg.Group})

	w.Log.Debug().
		Str("home", cfg.Home).
		Str("kdf", cfg.KDF).
		Bool("strict", cfg.Strict).
		Int("group", cfg.Group).
		Msg("Configuration loaded")
	return w, nil
}
