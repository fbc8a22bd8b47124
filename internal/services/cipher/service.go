package cipher

import (
	"fmt"

	"github.com/rs/zerolog"

	"vigenere/internal/crypto"
	"vigenere/internal/domain"
	"vigenere/internal/text"
	"vigenere/internal/vigenere"
)

// Options controls input handling and output layout.
type Options struct {
	Strict bool // reject instead of drop characters outside A–Z
	Group  int  // block size for output; 0 disables grouping
}

// Service implements domain.CipherService.
type Service struct {
	opts Options
	log  zerolog.Logger
	// fpSecret keys the key fingerprints in log lines. It is random per
	// Service, so fingerprints correlate lines of one run and nothing else.
	fpSecret []byte
}

var _ domain.CipherService = (*Service)(nil)

// New creates a cipher service with its own component logger.
func New(baseLogger *zerolog.Logger, opts Options) *Service {
	log := baseLogger.With().Str("component", "cipher_service").Logger()
	return &Service{opts: opts, log: log, fpSecret: crypto.NewSecret(32)}
}

// Encrypt normalises key and raw, then encrypts.
func (s *Service) Encrypt(key string, raw []byte) (string, error) {
	return s.run("encrypt", key, raw, vigenere.Encrypt)
}

// Decrypt normalises key and raw, then decrypts.
func (s *Service) Decrypt(key string, raw []byte) (string, error) {
	return s.run("decrypt", key, raw, vigenere.Decrypt)
}

func (s *Service) run(op, rawKey string, raw []byte, fn func(key, in string) (string, error)) (string, error) {
	key, err := text.NormalizeKey(rawKey)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	in, err := text.Normalize(raw, s.opts.Strict)
	if err != nil {
		return "", fmt.Errorf("%s: text: %w", op, err)
	}

	out, err := fn(key, in)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	s.log.Debug().
		Str("op", op).
		Str("key_fp", crypto.Fingerprint(s.fpSecret, []byte(key))).
		Int("key_len", len(key)).
		Int("input_bytes", len(raw)).
		Int("letters", len(in)).
		Msg("Transformed text")

	return text.Group(out, s.opts.Group), nil
}
