package chacha20

import "encoding/binary"

// loadWords32 reads len(dst) little-endian uint32 words from src into dst,
// dispatching on the requested path. PathPortable (and any value other
// than PathFastLE) always takes the byte-shifting route; PathFastLE is
// handled by the architecture-specific files in this package.
func loadWords32(path BytePath, src []byte, dst []uint32) {
	if path == PathFastLE {
		loadWords32FastLE(src, dst)
		return
	}
	loadWords32Portable(src, dst)
}

// storeWords32 writes len(src) words to dst as little-endian bytes.
func storeWords32(path BytePath, src []uint32, dst []byte) {
	if path == PathFastLE {
		storeWords32FastLE(src, dst)
		return
	}
	storeWords32Portable(src, dst)
}

// loadWords32Portable composes each word from four explicit byte loads.
// It makes no assumption about host endianness or alignment and is
// correct everywhere.
func loadWords32Portable(src []byte, dst []uint32) {
	for i := range dst {
		dst[i] = binary.LittleEndian.Uint32(src[i*4 : i*4+4])
	}
}

// storeWords32Portable is the byte-shifting mirror of loadWords32Portable.
func storeWords32Portable(src []uint32, dst []byte) {
	for i, w := range src {
		binary.LittleEndian.PutUint32(dst[i*4:i*4+4], w)
	}
}
