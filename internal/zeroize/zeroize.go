// Package zeroize erases secret-dependent buffers in a way the compiler
// cannot optimize away, even though nothing reads the buffer afterward.
// This mirrors the volatile-pointer write loop used by the reference
// C implementation to wipe key material before returning.
package zeroize

import "runtime"

// Bytes overwrites every byte of b with zero. The loop is marked
// noinline so the compiler cannot prove the writes are dead and elide
// them, and runtime.KeepAlive pins b live through the final write so a
// stack buffer isn't reclaimed or reordered out from under the wipe.
func Bytes(b []byte) {
	zero(b)
	runtime.KeepAlive(b)
}

//go:noinline
func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// Uint32s overwrites every element of s with zero, for secret state
// carried as word arrays (a ChaCha20 key schedule, a Poly1305 limb set)
// rather than raw bytes.
func Uint32s(s []uint32) {
	zeroUint32(s)
	runtime.KeepAlive(s)
}

//go:noinline
func zeroUint32(s []uint32) {
	for i := range s {
		s[i] = 0
	}
}

// Uint64s overwrites every element of s with zero.
func Uint64s(s []uint64) {
	zeroUint64(s)
	runtime.KeepAlive(s)
}

//go:noinline
func zeroUint64(s []uint64) {
	for i := range s {
		s[i] = 0
	}
}
