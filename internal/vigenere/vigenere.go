package vigenere

// Encrypt rotates each letter of plaintext forward by the matching letter of
// key, cycling the key when it is shorter than the text.
func Encrypt(key, plaintext string) (string, error) {
	shifts, err := keyShifts(key)
	if err != nil {
		return "", err
	}
	return transform(shifts, plaintext, RotateForward)
}

// Decrypt reverses Encrypt.
func Decrypt(key, ciphertext string) (string, error) {
	shifts, err := keyShifts(key)
	if err != nil {
		return "", err
	}
	return transform(shifts, ciphertext, RotateBackward)
}

// Cipher holds a validated key for repeated use. Build one with New; a zero
// or nil Cipher has no key and fails with ErrEmptyKey. A Cipher is immutable
// and safe for concurrent use.
type Cipher struct {
	shifts []int
}

// New validates key once so later calls only check the text.
func New(key string) (*Cipher, error) {
	shifts, err := keyShifts(key)
	if err != nil {
		return nil, err
	}
	return &Cipher{shifts: shifts}, nil
}

// Encrypt is the package-level Encrypt with the stored key.
func (c *Cipher) Encrypt(plaintext string) (string, error) {
	if c.KeyLen() == 0 {
		return "", ErrEmptyKey
	}
	return transform(c.shifts, plaintext, RotateForward)
}

// Decrypt is the package-level Decrypt with the stored key.
func (c *Cipher) Decrypt(ciphertext string) (string, error) {
	if c.KeyLen() == 0 {
		return "", ErrEmptyKey
	}
	return transform(c.shifts, ciphertext, RotateBackward)
}

// KeyLen returns the period of the key.
func (c *Cipher) KeyLen() int {
	if c == nil {
		return 0
	}
	return len(c.shifts)
}

func keyShifts(key string) ([]int, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}
	shifts := make([]int, len(key))
	for i := 0; i < len(key); i++ {
		k, err := ToIndex(key[i])
		if err != nil {
			return nil, &InvalidCharacterError{Input: "key", Char: key[i], Pos: i}
		}
		shifts[i] = k
	}
	return shifts, nil
}

func transform(shifts []int, in string, rotate func(i, amount int) int) (string, error) {
	out := make([]byte, len(in))
	for i := 0; i < len(in); i++ {
		p, err := ToIndex(in[i])
		if err != nil {
			return "", &InvalidCharacterError{Input: "text", Char: in[i], Pos: i}
		}
		// rotate keeps the result in range, so ToChar cannot fail here.
		c, _ := ToChar(rotate(p, shifts[i%len(shifts)]))
		out[i] = c
	}
	return string(out), nil
}
