//go:build amd64 || arm64 || riscv64 || ppc64le

package chacha20

import "unsafe"

// defaultBytePath is PathFastLE on architectures that are little-endian
// and tolerate unaligned word loads.
const defaultBytePath = PathFastLE

// loadWords32FastLE reinterprets four bytes at a time as a native uint32.
// On the little-endian architectures this file is built for, the
// in-memory byte layout already matches RFC 8439's little-endian word
// encoding, so no shifting is required.
func loadWords32FastLE(src []byte, dst []uint32) {
	for i := range dst {
		dst[i] = *(*uint32)(unsafe.Pointer(&src[i*4]))
	}
}

// storeWords32FastLE is the inverse of loadWords32FastLE.
func storeWords32FastLE(src []uint32, dst []byte) {
	for i, w := range src {
		*(*uint32)(unsafe.Pointer(&dst[i*4])) = w
	}
}
