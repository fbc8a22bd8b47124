package crypto

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
)

const fingerprintBytes = 10

// Fingerprint returns a short keyed fingerprint of data: HMAC-SHA256 under
// secret, truncated to 10 bytes (20 hex chars). Without secret the value says
// nothing about data, so low-entropy inputs such as cipher keys cannot be
// recovered from it by enumeration.
func Fingerprint(secret, data []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(data)
	return hex.EncodeToString(mac.Sum(nil)[:fingerprintBytes])
}

// NewSecret returns n random bytes, e.g. a per-process fingerprint secret.
func NewSecret(n int) []byte {
	b := make([]byte, n)
	// crypto/rand.Read never returns an error; it aborts the process instead.
	_, _ = rand.Read(b)
	return b
}
