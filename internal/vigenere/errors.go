package vigenere

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyKey is returned when the key has no characters to cycle over.
	ErrEmptyKey = errors.New("vigenere: empty key")

	// ErrInvalidCharacter matches any *InvalidCharacterError via errors.Is.
	ErrInvalidCharacter = errors.New("vigenere: invalid character")

	// ErrIndexOutOfRange is returned by ToChar for positions outside 0..25.
	ErrIndexOutOfRange = errors.New("vigenere: alphabet index out of range")
)

// InvalidCharacterError reports a byte outside 'A'..'Z'.
type InvalidCharacterError struct {
	Input string // "key" or "text"; empty when raised by ToIndex directly
	Char  byte
	Pos   int
}

func (e *InvalidCharacterError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("vigenere: invalid character %q", e.Char)
	}
	return fmt.Sprintf("vigenere: invalid character %q in %s at position %d", e.Char, e.Input, e.Pos)
}

func (e *InvalidCharacterError) Is(target error) bool { return target == ErrInvalidCharacter }
