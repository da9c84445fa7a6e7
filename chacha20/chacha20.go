// Package chacha20 implements the ChaCha20 stream cipher as specified in
// https://datatracker.ietf.org/doc/html/rfc8439.
package chacha20

import "math/bits"

// KeySize is the size (in bytes) of a ChaCha20 key.
const KeySize = 32

// NonceSize is the size (in bytes) of a ChaCha20 nonce.
const NonceSize = 12

// BlockSize is the size (in bytes) of a single ChaCha20 block.
const BlockSize = 64

// BytePath selects how 32-bit state words are loaded from and stored to
// the byte stream. PathPortable is correct on every host, little- or
// big-endian, aligned or not. PathFastLE trades the explicit byte
// composition for a host-endian word copy and only has an effect on
// architectures built with fast-path support (see bytepath_fastle.go);
// elsewhere it silently behaves like PathPortable.
type BytePath int

const (
	// PathAuto resolves to PathFastLE where the build supports it, and to
	// PathPortable everywhere else.
	PathAuto BytePath = iota
	// PathPortable loads and stores words via explicit little-endian byte
	// shifting.
	PathPortable
	// PathFastLE loads and stores words via a host-endian word copy on
	// architectures known to be little-endian with tolerant unaligned
	// loads.
	PathFastLE
)

func (p BytePath) resolve() BytePath {
	if p != PathAuto {
		return p
	}
	return defaultBytePath
}

// constants are the four fixed "expand 32-byte k" words, RFC 8439 section 2.3.
var constants = [4]uint32{0x61707865, 0x3320646e, 0x79622d32, 0x6b206574}

// Cipher is a stateful, seekable ChaCha20 instance: the block counter is
// explicit, so producing block N does not require producing blocks
// 0..N-1 first. The zero value is not usable; construct with New.
type Cipher struct {
	key     [8]uint32
	nonce   [3]uint32
	counter uint32
	path    BytePath
}

// New creates a ChaCha20 cipher bound to key, nonce, and the starting
// block counter. Successive calls to Block/XORKeyStream consume
// counter, counter+1, counter+2, ... wrapping modulo 2^32. RFC 8439 caps
// a single message at 2^32 blocks (256 GiB); callers, not this package,
// are responsible for respecting that limit.
func New(key [KeySize]byte, nonce [NonceSize]byte, counter uint32, path BytePath) *Cipher {
	path = path.resolve()

	c := &Cipher{counter: counter, path: path}
	loadWords32(path, key[:], c.key[:])
	loadWords32(path, nonce[:], c.nonce[:])
	return c
}

// Block writes the next 64-byte keystream block to dst and advances the
// counter by one. dst must have length at least BlockSize.
func (c *Cipher) Block(dst []byte) {
	var block [16]uint32
	c.coreBlock(&block)
	storeWords32(c.path, block[:], dst[:BlockSize])
	c.counter++
}

// coreBlock runs the 20-round permutation over the current state and
// feeds the original state back in; it does not advance the counter.
func (c *Cipher) coreBlock(out *[16]uint32) {
	s := initState(c.key, c.nonce, c.counter)
	w := s

	for i := 0; i < 10; i++ {
		columnRound(&w)
		diagonalRound(&w)
	}

	for i := range w {
		w[i] += s[i]
	}

	*out = w
}

// TwentyRounds exposes the unfinalized 20-round permutation (column and
// diagonal rounds, no feed-forward addition, no counter advance). It is
// the primitive HChaCha20 builds on; plain ChaCha20 callers never need
// it directly.
func (c *Cipher) TwentyRounds() [16]uint32 {
	w := initState(c.key, c.nonce, c.counter)

	for i := 0; i < 10; i++ {
		columnRound(&w)
		diagonalRound(&w)
	}

	return w
}

// XORKeyStream XORs src with the ChaCha20 keystream and writes the
// result to dst. dst and src may be the identical slice for in-place
// operation but must not otherwise overlap. The counter advances by
// ceil(len(src)/64) blocks.
func (c *Cipher) XORKeyStream(dst, src []byte) {
	var block [16]uint32
	var buf [BlockSize]byte

	for len(src) >= BlockSize {
		c.coreBlock(&block)
		storeWords32(c.path, block[:], buf[:])
		c.counter++

		xorBytes(dst[:BlockSize], src[:BlockSize], buf[:])

		dst = dst[BlockSize:]
		src = src[BlockSize:]
	}

	if len(src) > 0 {
		c.coreBlock(&block)
		storeWords32(c.path, block[:], buf[:])
		c.counter++

		xorBytes(dst[:len(src)], src, buf[:len(src)])
	}
}

// KeyStreamBlock0 produces the 64-byte keystream block for counter zero
// directly, without encrypting a zero-filled plaintext buffer. The AEAD
// layer takes the first 32 bytes of the result as the one-time Poly1305
// key, per RFC 8439 section 2.6.
func KeyStreamBlock0(key [KeySize]byte, nonce [NonceSize]byte, path BytePath) [BlockSize]byte {
	c := New(key, nonce, 0, path)
	var out [BlockSize]byte
	c.Block(out[:])
	return out
}

func xorBytes(dst, a, b []byte) {
	for i := range a {
		dst[i] = a[i] ^ b[i]
	}
}

// initState lays out the 16-word ChaCha20 state per RFC 8439 section 2.3:
// four fixed constants, eight key words, the block counter, three nonce
// words.
func initState(key [8]uint32, nonce [3]uint32, counter uint32) [16]uint32 {
	var s [16]uint32
	copy(s[0:4], constants[:])
	copy(s[4:12], key[:])
	s[12] = counter
	copy(s[13:16], nonce[:])
	return s
}

// columnRound applies quarterRound to the state's four columns.
func columnRound(s *[16]uint32) {
	quarterRound(s, 0, 4, 8, 12)
	quarterRound(s, 1, 5, 9, 13)
	quarterRound(s, 2, 6, 10, 14)
	quarterRound(s, 3, 7, 11, 15)
}

// diagonalRound applies quarterRound to the state's four diagonals.
func diagonalRound(s *[16]uint32) {
	quarterRound(s, 0, 5, 10, 15)
	quarterRound(s, 1, 6, 11, 12)
	quarterRound(s, 2, 7, 8, 13)
	quarterRound(s, 3, 4, 9, 14)
}

// quarterRound mutates state words x, y, z, w in place, RFC 8439 section 2.1.
func quarterRound(s *[16]uint32, x, y, z, w int) {
	a, b, c, d := qr(s[x], s[y], s[z], s[w])
	s[x], s[y], s[z], s[w] = a, b, c, d
}

// qr is the bare ChaCha quarter round over four words.
func qr(a, b, c, d uint32) (uint32, uint32, uint32, uint32) {
	a += b
	d ^= a
	d = bits.RotateLeft32(d, 16)

	c += d
	b ^= c
	b = bits.RotateLeft32(b, 12)

	a += b
	d ^= a
	d = bits.RotateLeft32(d, 8)

	c += d
	b ^= c
	b = bits.RotateLeft32(b, 7)

	return a, b, c, d
}
