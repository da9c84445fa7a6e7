// Package xchacha20 implements the XChaCha20 stream cipher, the
// extended-nonce variant of ChaCha20 described in
// https://datatracker.ietf.org/doc/html/draft-irtf-cfrg-xchacha-03.
package xchacha20

import "github.com/DavyLandman/portable8439/chacha20"

// HNonceSize is the size, in bytes, of an HChaCha20 nonce.
const HNonceSize = 16

// HChaCha20 derives a 32-byte subkey from key and a 16-byte nonce by
// running the unfinalized 20-round ChaCha20 permutation and keeping the
// first and last rows of the mixed state (the rows that started out
// holding the constants and the counter/nonce words; the two rows that
// started out holding the key are discarded). This is the building block XChaCha20 uses
// to stretch its nonce to 24 bytes without weakening ChaCha20 itself.
//
// The 16-byte nonce is laid into the ChaCha20 state exactly where a
// block counter and ordinary nonce would go: the first 4 bytes occupy
// the counter word, the remaining 12 occupy the nonce words. HChaCha20
// has no counter of its own; it runs the permutation exactly once.
func HChaCha20(key [chacha20.KeySize]byte, nonce [HNonceSize]byte) [chacha20.KeySize]byte {
	var counterBytes [4]byte
	copy(counterBytes[:], nonce[0:4])
	counter := uint32(counterBytes[0]) | uint32(counterBytes[1])<<8 |
		uint32(counterBytes[2])<<16 | uint32(counterBytes[3])<<24

	var innerNonce [chacha20.NonceSize]byte
	copy(innerNonce[:], nonce[4:16])

	state := chacha20.New(key, innerNonce, counter, chacha20.PathAuto).TwentyRounds()

	var subKey [chacha20.KeySize]byte
	putWordsLE(subKey[0:16], state[0:4])
	putWordsLE(subKey[16:32], state[12:16])
	return subKey
}

func putWordsLE(dst []byte, words []uint32) {
	for i, w := range words {
		dst[i*4] = byte(w)
		dst[i*4+1] = byte(w >> 8)
		dst[i*4+2] = byte(w >> 16)
		dst[i*4+3] = byte(w >> 24)
	}
}
