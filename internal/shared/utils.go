// Package shared provides small helpers used across GameBox components.
package shared

// WipeByteArray overwrites the contents of the provided byte slice with
// zeros. Used to scrub passwords and recovery phrases from memory once the
// digest has been computed.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}
