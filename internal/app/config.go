package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"vigenere/internal/store"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Env      string // "dev" (console logs) or "prod" (JSON logs)
	LogLevel string
	Home     string // key file directory, e.g. $HOME/.vigenere
	Strict   bool   // reject instead of strip characters outside A–Z
	Group    int    // output block size; 0 disables grouping
	KDF      string // store.KDFScrypt or store.KDFArgon2id
	Key      string // default key when neither --key nor --key-name is given

	// Passphrase unlocks the key file. Prefer VIGENERE_PASSPHRASE (or .env)
	// to the --passphrase flag, which shows up in shell history and ps.
	Passphrase string
}

// Keys shared by viper, flags and environment bindings.
const (
	KeyEnv        = "env"
	KeyLogLevel   = "log_level"
	KeyHome       = "home"
	KeyStrict     = "strict"
	KeyGroup      = "group"
	KeyKDF        = "kdf"
	KeyKey        = "key"
	KeyPassphrase = "passphrase"
)

var envBindings = map[string]string{
	KeyEnv:        "VIGENERE_ENV",
	KeyLogLevel:   "VIGENERE_LOG_LEVEL",
	KeyHome:       "VIGENERE_HOME",
	KeyStrict:     "VIGENERE_STRICT",
	KeyGroup:      "VIGENERE_GROUP",
	KeyKDF:        "VIGENERE_KDF",
	KeyKey:        "VIGENERE_KEY",
	KeyPassphrase: "VIGENERE_PASSPHRASE",
}

// LoadConfig resolves configuration from v. Flags already bound to v take
// precedence over the environment, which takes precedence over defaults.
func LoadConfig(v *viper.Viper) (Config, error) {
	// A missing .env is fine; OS-set variables still apply.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("error loading .env file: %w", err)
	}

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return Config{}, fmt.Errorf("could not bind %s: %w", key, err)
		}
	}

	v.SetDefault(KeyEnv, "dev")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyStrict, false)
	v.SetDefault(KeyGroup, 0)
	v.SetDefault(KeyKDF, store.KDFScrypt)

	cfg := Config{
		Env:      v.GetString(KeyEnv),
		LogLevel: v.GetString(KeyLogLevel),
		Home:     v.GetString(KeyHome),
		Strict:   v.GetBool(KeyStrict),
		Group:    v.GetInt(KeyGroup),
		KDF:      v.GetString(KeyKDF),
		Key:      v.GetString(KeyKey),

		Passphrase: v.GetString(KeyPassphrase),
	}

	if cfg.Home == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home directory: %w", err)
		}
		cfg.Home = filepath.Join(dir, ".vigenere")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the values LoadConfig cannot default.
func (c Config) Validate() error {
	if c.Env != "dev" && c.Env != "prod" {
		return fmt.Errorf("VIGENERE_ENV must be dev or prod, got %q", c.Env)
	}
	if c.Group < 0 {
		return fmt.Errorf("group size must not be negative, got %d", c.Group)
	}
	if !store.ValidKDF(c.KDF) {
		return fmt.Errorf("kdf must be %s or %s, got %q", store.KDFScrypt, store.KDFArgon2id, c.KDF)
	}
	return nil
}

// DevMode reports whether logs should be human readable.
func (c Config) DevMode() bool { return c.Env == "dev" }
