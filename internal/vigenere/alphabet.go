package vigenere

// AlphabetSize is the number of letters in the alphabet.
const AlphabetSize = 26

// ToIndex returns the position of c in the alphabet ('A' is 0).
func ToIndex(c byte) (int, error) {
	if c < 'A' || c > 'Z' {
		return 0, &InvalidCharacterError{Char: c}
	}
	return int(c - 'A'), nil
}

// ToChar returns the letter at position i.
func ToChar(i int) (byte, error) {
	if i < 0 || i >= AlphabetSize {
		return 0, ErrIndexOutOfRange
	}
	return byte(i) + 'A', nil
}

// RotateForward shifts i forward by amount, wrapping so that Z+1 is A.
func RotateForward(i, amount int) int {
	return mod(i+amount, AlphabetSize)
}

// RotateBackward undoes RotateForward. The result is always in 0..25, even
// when amount is larger than i.
func RotateBackward(i, amount int) int {
	return mod(i-amount, AlphabetSize)
}

// mod is floor modulo; Go's % keeps the sign of the dividend.
func mod(x, n int) int {
	return ((x % n) + n) % n
}
