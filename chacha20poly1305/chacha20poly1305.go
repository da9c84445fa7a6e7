// Package chacha20poly1305 implements the ChaCha20-Poly1305 authenticated
// encryption with associated data (AEAD) algorithm as specified in
// https://datatracker.ietf.org/doc/html/rfc8439.
package chacha20poly1305

import (
	"errors"
	"unsafe"

	"github.com/DavyLandman/portable8439/chacha20"
	"github.com/DavyLandman/portable8439/internal/zeroize"
	"github.com/DavyLandman/portable8439/poly1305"
)

// KeySize is the size, in bytes, of a ChaCha20-Poly1305 key.
const KeySize = chacha20.KeySize

// NonceSize is the size, in bytes, of a ChaCha20-Poly1305 nonce.
const NonceSize = chacha20.NonceSize

// Overhead is the size, in bytes, that Seal adds to the plaintext: the
// Poly1305 tag.
const Overhead = poly1305.TagSize

// ErrAuthFailed is returned by Open when the authentication tag does
// not match, when the input is too short to contain one, and when dst
// and the ciphertext partially overlap. The cases are deliberately
// indistinguishable: an error channel that
// told a caller which failure occurred would hand an adversary a
// padding oracle.
var ErrAuthFailed = errors.New("chacha20poly1305: message authentication failed")

// poly1305KeyGen derives the one-time Poly1305 key by running the
// ChaCha20 block function at counter 0 and keeping the first 32 bytes
// of the resulting keystream block, per RFC 8439 section 2.6.
func poly1305KeyGen(key [KeySize]byte, nonce [NonceSize]byte, path chacha20.BytePath) [poly1305.KeySize]byte {
	block := chacha20.KeyStreamBlock0(key, nonce, path)
	var out [poly1305.KeySize]byte
	copy(out[:], block[:poly1305.KeySize])
	return out
}

// pad16Len returns the number of zero bytes pad16 would append after n
// bytes of input: (16 - n%16) % 16.
func pad16Len(n int) int {
	return (16 - n%16) % 16
}

var zeroPad [16]byte

func writeLen64(m *poly1305.MAC, n int) {
	var b [8]byte
	v := uint64(n)
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
	b[4] = byte(v >> 32)
	b[5] = byte(v >> 40)
	b[6] = byte(v >> 48)
	b[7] = byte(v >> 56)
	m.Write(b[:])
}

// computeTag absorbs the RFC 8439 section 2.8 framed transcript
// (ad, pad16(ad), ciphertext, pad16(ciphertext), LE64(|ad|), LE64(|ciphertext|))
// and returns the resulting tag.
func computeTag(onetimeKey [poly1305.KeySize]byte, ad, ciphertext []byte, profile poly1305.LimbProfile) [poly1305.TagSize]byte {
	m := poly1305.New(onetimeKey, profile)
	m.Write(ad)
	m.Write(zeroPad[:pad16Len(len(ad))])
	m.Write(ciphertext)
	m.Write(zeroPad[:pad16Len(len(ciphertext))])
	writeLen64(m, len(ad))
	writeLen64(m, len(ciphertext))
	return m.Sum()
}

// Seal encrypts and authenticates plaintext, authenticates ad, and
// appends the result to dst, returning the updated slice. The final
// Overhead bytes of the result are the authentication tag.
//
// dst and plaintext may alias exactly (in-place encryption into a
// buffer that starts at the same address dst was passed with) but must
// not otherwise overlap; Seal panics if they do, since that is a caller
// contract violation rather than adversarial input.
func Seal(dst []byte, key [KeySize]byte, nonce [NonceSize]byte, ad, plaintext []byte) []byte {
	ret, out := sliceForAppend(dst, len(plaintext)+Overhead)
	ciphertext, tag := out[:len(plaintext)], out[len(plaintext):]

	if inexactOverlap(out, plaintext) {
		panic("chacha20poly1305: invalid buffer overlap")
	}

	onetimeKey := poly1305KeyGen(key, nonce, chacha20.PathAuto)

	chacha20.New(key, nonce, 1, chacha20.PathAuto).XORKeyStream(ciphertext, plaintext)

	computed := computeTag(onetimeKey, ad, ciphertext, poly1305.ProfileAuto)
	copy(tag, computed[:])

	zeroize.Bytes(onetimeKey[:])
	zeroize.Bytes(computed[:])

	return ret
}

// Open authenticates ad and the ciphertext (the final Overhead bytes of
// which are the tag), decrypts the ciphertext, and appends the result
// to dst, returning the updated slice. If authentication fails, Open
// returns ErrAuthFailed and dst is unmodified; no plaintext is ever
// written or returned on failure.
//
// dst and ciphertext may alias exactly but must not otherwise overlap;
// if they do, Open returns ErrAuthFailed before any cryptographic work.
func Open(dst []byte, key [KeySize]byte, nonce [NonceSize]byte, ad, ciphertextAndTag []byte) ([]byte, error) {
	if len(ciphertextAndTag) < Overhead {
		return nil, ErrAuthFailed
	}

	ciphertext := ciphertextAndTag[:len(ciphertextAndTag)-Overhead]
	receivedTag := ciphertextAndTag[len(ciphertextAndTag)-Overhead:]

	ret, out := sliceForAppend(dst, len(ciphertext))
	if inexactOverlap(out, ciphertext) {
		return nil, ErrAuthFailed
	}

	onetimeKey := poly1305KeyGen(key, nonce, chacha20.PathAuto)
	expected := computeTag(onetimeKey, ad, ciphertext, poly1305.ProfileAuto)

	var got [poly1305.TagSize]byte
	copy(got[:], receivedTag)

	if !poly1305.Verify(expected, got) {
		zeroize.Bytes(onetimeKey[:])
		zeroize.Bytes(expected[:])
		return nil, ErrAuthFailed
	}

	chacha20.New(key, nonce, 1, chacha20.PathAuto).XORKeyStream(out, ciphertext)

	zeroize.Bytes(onetimeKey[:])
	zeroize.Bytes(expected[:])

	return ret, nil
}

// sliceForAppend extends in to hold an additional n bytes, allocating a
// fresh backing array only when in's existing capacity is insufficient.
// head is the full extended slice; tail is the newly appended region.
func sliceForAppend(in []byte, n int) (head, tail []byte) {
	if total := len(in) + n; cap(in) >= total {
		head = in[:total]
	} else {
		head = make([]byte, total)
		copy(head, in)
	}
	tail = head[len(in):]
	return
}

// inexactOverlap reports whether x and y share memory other than by
// starting at the same address, so exact in-place aliasing is allowed.
func inexactOverlap(x, y []byte) bool {
	if len(x) == 0 || len(y) == 0 || &x[0] == &y[0] {
		return false
	}
	return uintptr(unsafe.Pointer(&x[0])) <= uintptr(unsafe.Pointer(&y[len(y)-1])) &&
		uintptr(unsafe.Pointer(&y[0])) <= uintptr(unsafe.Pointer(&x[len(x)-1]))
}
