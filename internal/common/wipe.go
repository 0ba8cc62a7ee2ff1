// Package common contains small helpers shared across client components.
package common

// WipeByteArray overwrites the contents of the provided byte slice with
// zeros. Used to remove passwords and PINs from memory after they have been
// sent to the server. A nil slice is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
