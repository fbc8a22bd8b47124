package crypto

import (
	"crypto/subtle"
	"runtime"
)

// Wipe overwrites b with zeros. Copies made before the call (for example a
// string the bytes came from) are out of reach.
func Wipe(b []byte) {
	if len(b) == 0 {
		return
	}
	subtle.ConstantTimeCopy(1, b, make([]byte, len(b)))
	runtime.KeepAlive(b)
}
