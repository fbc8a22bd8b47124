// Package cipher runs the Vigenère engine over raw user input.
//
// The service normalises the key (always strictly) and the text (strictly or
// leniently, per Options), calls internal/vigenere, and optionally groups the
// result into blocks. Keys are only ever logged by a fingerprint keyed
// with a per-service random secret.
package cipher
