//go:build !(amd64 || arm64 || riscv64 || ppc64le)

package chacha20

// defaultBytePath falls back to the portable, byte-shifting path on
// architectures with unknown endianness or without guaranteed unaligned
// word loads (32-bit ARM, MIPS, WASM, s390x, and anything else not
// covered by bytepath_fastle.go).
const defaultBytePath = PathPortable

// loadWords32FastLE has no accelerated form on this build; fall back to
// the portable path so PathFastLE remains a legal, if unaccelerated,
// choice everywhere.
func loadWords32FastLE(src []byte, dst []uint32) {
	loadWords32Portable(src, dst)
}

// storeWords32FastLE mirrors loadWords32FastLE's fallback.
func storeWords32FastLE(src []uint32, dst []byte) {
	storeWords32Portable(src, dst)
}
