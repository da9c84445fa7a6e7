// Package xchacha20poly1305 implements the XChaCha20-Poly1305 authenticated
// encryption with associated data (AEAD) algorithm as specified in
// https://datatracker.ietf.org/doc/html/draft-irtf-cfrg-xchacha-03.
//
// It is a thin wrapper: XChaCha20-Poly1305 is defined as ordinary
// ChaCha20-Poly1305 run with a subkey and sub-nonce derived from the
// extended 24-byte nonce via HChaCha20, so this package delegates the
// entire AEAD composition — framing, overlap checks, constant-time tag
// comparison, zeroization — to chacha20poly1305 once that derivation is
// done.
package xchacha20poly1305

import (
	"github.com/DavyLandman/portable8439/chacha20"
	"github.com/DavyLandman/portable8439/chacha20poly1305"
	"github.com/DavyLandman/portable8439/xchacha20"
)

// KeySize is the size, in bytes, of an XChaCha20-Poly1305 key.
const KeySize = chacha20.KeySize

// NonceSize is the size, in bytes, of an XChaCha20-Poly1305 nonce.
const NonceSize = xchacha20.NonceSize

// Overhead is the size, in bytes, that Seal adds to the plaintext.
const Overhead = chacha20poly1305.Overhead

// ErrAuthFailed is returned by Open on any authentication or
// input-shape failure; see chacha20poly1305.ErrAuthFailed.
var ErrAuthFailed = chacha20poly1305.ErrAuthFailed

// deriveSubKeyAndNonce implements draft-irtf-cfrg-xchacha section 2.2:
// the subkey comes from HChaCha20(key, nonce[0:16]); the inner ChaCha20
// nonce is 4 zero bytes followed by nonce[16:24].
func deriveSubKeyAndNonce(key [KeySize]byte, nonce [NonceSize]byte) ([chacha20.KeySize]byte, [chacha20.NonceSize]byte) {
	var hNonce [xchacha20.HNonceSize]byte
	copy(hNonce[:], nonce[0:16])
	subKey := xchacha20.HChaCha20(key, hNonce)

	var innerNonce [chacha20.NonceSize]byte
	copy(innerNonce[4:12], nonce[16:24])

	return subKey, innerNonce
}

// Seal encrypts and authenticates plaintext and authenticates ad under
// the extended 24-byte nonce, appending the result to dst. See
// chacha20poly1305.Seal for the overlap and aliasing contract.
func Seal(dst []byte, key [KeySize]byte, nonce [NonceSize]byte, ad, plaintext []byte) []byte {
	subKey, innerNonce := deriveSubKeyAndNonce(key, nonce)
	return chacha20poly1305.Seal(dst, subKey, innerNonce, ad, plaintext)
}

// Open authenticates ad and the ciphertext, decrypts it, and appends
// the plaintext to dst. See chacha20poly1305.Open for the failure and
// aliasing contract.
func Open(dst []byte, key [KeySize]byte, nonce [NonceSize]byte, ad, ciphertextAndTag []byte) ([]byte, error) {
	subKey, innerNonce := deriveSubKeyAndNonce(key, nonce)
	return chacha20poly1305.Open(dst, subKey, innerNonce, ad, ciphertextAndTag)
}
