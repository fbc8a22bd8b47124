// Package vigenere implements the classical Vigenère cipher over the
// uppercase Latin alphabet.
//
// Contents
//
//   - Alphabet mapping between 'A'..'Z' and positions 0..25 (ToIndex, ToChar)
//   - Modular rotation forward and backward (RotateForward, RotateBackward)
//   - Encryption and decryption with a cycled key (Encrypt, Decrypt, Cipher)
//
// # Notes
//
// Inputs must already be uppercase A–Z. Anything else is reported as an
// *InvalidCharacterError and an empty key as ErrEmptyKey; the package never
// produces output for input outside its domain. Normalising raw text is the
// job of internal/text.
//
// The cipher offers no confidentiality against frequency analysis.
package vigenere
