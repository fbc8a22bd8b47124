package text

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"vigenere/internal/vigenere"
)

// InvalidRuneError reports a rune that strict normalisation could not map
// into A–Z. It unwraps to vigenere.ErrInvalidCharacter.
type InvalidRuneError struct {
	Rune rune
	Pos  int // rune offset in the caller's input, before folding
}

func (e *InvalidRuneError) Error() string {
	return fmt.Sprintf("invalid character %q at position %d", e.Rune, e.Pos)
}

func (e *InvalidRuneError) Unwrap() error { return vigenere.ErrInvalidCharacter }

func folder() transform.Transformer {
	return transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		cases.Upper(language.Und),
		norm.NFC,
	)
}

// Normalize maps raw into uppercase A–Z. Each input rune is folded on its
// own so errors can point at the rune the caller wrote: "ß" expands to
// "SS" and a lone combining mark folds to nothing, both at one position.
func Normalize(raw []byte, strict bool) (string, error) {
	t := folder()
	var b strings.Builder
	b.Grow(len(raw))

	pos := 0
	for _, r := range string(raw) {
		folded, _, err := transform.String(t, string(r))
		if err != nil {
			return "", fmt.Errorf("normalize input at position %d: %w", pos, err)
		}
		for _, f := range folded {
			switch {
			case f >= 'A' && f <= 'Z':
				b.WriteRune(f)
			case unicode.IsSpace(f):
			case strict:
				return "", &InvalidRuneError{Rune: r, Pos: pos}
			}
		}
		pos++
	}
	return b.String(), nil
}
// NormalizeKey is strict Normalize that also refuses an empty result.
func NormalizeKey(raw string) (string, error) {
	key, err := Normalize([]byte(raw), true)
	if err != nil {
		return "", fmt.Errorf("key: %w", err)
	}
	if key == "" {
		return "", vigenere.ErrEmptyKey
	}
	return key, nil
}
