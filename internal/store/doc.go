// Package store provides file-based persistence for named cipher keys.
//
// KeyFileStore implements domain.KeyStore. Every key is sealed on its own
// with ChaCha20-Poly1305 under a key derived from the caller's passphrase
// (scrypt by default, Argon2id on request); the KDF parameters and salt are
// stored beside the ciphertext so old entries stay readable when defaults
// change. Names, fingerprints and creation times are stored in the clear so
// keys can be listed without a passphrase.
//
// Writes go through a temp file and rename. All methods are
// concurrency-safe via internal locking.
package store
