package xchacha20_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DavyLandman/portable8439/chacha20"
	"github.com/DavyLandman/portable8439/xchacha20"
)

// TestHChaCha20Deterministic checks that HChaCha20 is a pure function
// of (key, nonce): two calls with the same inputs must agree, and it
// must not silently ignore any part of either input.
func TestHChaCha20Deterministic(t *testing.T) {
	var key [chacha20.KeySize]byte
	var nonce [xchacha20.HNonceSize]byte
	for i := range key {
		key[i] = byte(i * 7)
	}
	for i := range nonce {
		nonce[i] = byte(i * 13)
	}

	got1 := xchacha20.HChaCha20(key, nonce)
	got2 := xchacha20.HChaCha20(key, nonce)
	require.Equal(t, got1, got2)

	mutatedKey := key
	mutatedKey[0] ^= 0x01
	require.NotEqual(t, got1, xchacha20.HChaCha20(mutatedKey, nonce))

	mutatedNonce := nonce
	mutatedNonce[15] ^= 0x01
	require.NotEqual(t, got1, xchacha20.HChaCha20(key, mutatedNonce))
}

func TestKeystreamDeterministic(t *testing.T) {
	var key [chacha20.KeySize]byte
	var nonce [xchacha20.NonceSize]byte
	for i := range key {
		key[i] = byte(i)
	}
	for i := range nonce {
		nonce[i] = byte(i * 3)
	}

	plaintext := bytes.Repeat([]byte{0x7}, 200)

	out1 := make([]byte, len(plaintext))
	xchacha20.New(key, nonce, 1, chacha20.PathAuto).XORKeyStream(out1, plaintext)

	out2 := make([]byte, len(plaintext))
	xchacha20.New(key, nonce, 1, chacha20.PathAuto).XORKeyStream(out2, plaintext)

	require.Equal(t, out1, out2)
}

// TestDistinctNoncesDivergeDistinctKeystream checks that extending the
// nonce actually changes the keystream: two XChaCha20 nonces that share
// a ChaCha20-sized prefix but differ further out must not collide,
// which would not hold if the extra nonce bytes were silently ignored.
func TestDistinctNoncesDivergeDistinctKeystream(t *testing.T) {
	var key [chacha20.KeySize]byte
	for i := range key {
		key[i] = byte(i)
	}
	var nonceA, nonceB [xchacha20.NonceSize]byte
	for i := range nonceA {
		nonceA[i] = byte(i)
		nonceB[i] = byte(i)
	}
	nonceB[23] ^= 0x01

	plaintext := make([]byte, 64)
	outA := make([]byte, len(plaintext))
	outB := make([]byte, len(plaintext))
	xchacha20.New(key, nonceA, 0, chacha20.PathAuto).XORKeyStream(outA, plaintext)
	xchacha20.New(key, nonceB, 0, chacha20.PathAuto).XORKeyStream(outB, plaintext)

	require.NotEqual(t, outA, outB)
}
