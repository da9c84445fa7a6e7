package xchacha20

import "github.com/DavyLandman/portable8439/chacha20"

// NonceSize is the size, in bytes, of an XChaCha20 nonce: the 16 bytes
// consumed by HChaCha20 plus an 8-byte nonce for the inner ChaCha20.
const NonceSize = 24

// Cipher is a stateful, seekable XChaCha20 instance, mirroring
// chacha20.Cipher's API over the wider 24-byte nonce.
type Cipher struct {
	inner *chacha20.Cipher
}

// New creates an XChaCha20 cipher. It first derives a ChaCha20 subkey
// via HChaCha20 from the leading 16 bytes of nonce, then builds an
// ordinary ChaCha20 cipher from that subkey, a 12-byte nonce consisting
// of 4 zero bytes followed by the trailing 8 bytes of nonce, and the
// given starting counter.
func New(key [chacha20.KeySize]byte, nonce [NonceSize]byte, counter uint32, path chacha20.BytePath) *Cipher {
	var hNonce [HNonceSize]byte
	copy(hNonce[:], nonce[0:16])
	subKey := HChaCha20(key, hNonce)

	var innerNonce [chacha20.NonceSize]byte
	copy(innerNonce[4:12], nonce[16:24])

	return &Cipher{inner: chacha20.New(subKey, innerNonce, counter, path)}
}

// Block writes the next 64-byte keystream block to dst and advances the
// counter by one.
func (c *Cipher) Block(dst []byte) {
	c.inner.Block(dst)
}

// XORKeyStream XORs src with the XChaCha20 keystream and writes the
// result to dst, per the same aliasing rules as chacha20.Cipher.
func (c *Cipher) XORKeyStream(dst, src []byte) {
	c.inner.XORKeyStream(dst, src)
}
