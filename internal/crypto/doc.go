// Package crypto holds the small primitives used to protect stored keys.
//
// Contents
//
//   - Key-encryption-key derivation from a passphrase (DeriveKEK with
//     Argon2id, DeriveScrypt with scrypt); cost parameters are validated
//     first, since they are read back from disk
//   - Keyed short fingerprints (Fingerprint, NewSecret)
//   - Best-effort memory wiping for sensitive byte slices (Wipe)
//
// # Notes
//
// Vigenère keys are never logged, and never fingerprinted without a secret:
// an unkeyed hash of a short A–Z key is reversible by enumeration.
package crypto
