// Package security provides helpers for handling plaintext credentials.
package security

import (
	"crypto/subtle"
)

// Wipe zeroes the bytes of *data and sets it to nil. It is best-effort:
// copies made elsewhere (for example by string conversions) are not reached.
func Wipe(data *[]byte) {
	if data == nil || *data == nil {
		return
	}
	b := *data
	for i := range b {
		b[i] = 0
	}
	// Second pass through subtle so the stores are not optimized away.
	if len(b) > 0 {
		subtle.ConstantTimeCopy(1, b, make([]byte, len(b)))
	}
	*data = nil
}
