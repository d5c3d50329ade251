package crypto

// Wipe zeroes b in place. Session keys and decrypted intermediates are
// wiped as soon as they are no longer needed, on error paths included.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
