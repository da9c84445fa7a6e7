package xchacha20poly1305_test

import (
	"bytes"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"

	"github.com/DavyLandman/portable8439/xchacha20poly1305"
)

func TestRoundTrip(t *testing.T) {
	var key [xchacha20poly1305.KeySize]byte
	var nonce [xchacha20poly1305.NonceSize]byte
	for i := range key {
		key[i] = byte(i)
	}
	for i := range nonce {
		nonce[i] = byte(i + 1)
	}
	ad := []byte("extended nonce AEAD")
	plaintext := []byte("the 24-byte nonce makes random generation safe")

	sealed := xchacha20poly1305.Seal(nil, key, nonce, ad, plaintext)
	require.Len(t, sealed, len(plaintext)+xchacha20poly1305.Overhead)

	opened, err := xchacha20poly1305.Open(nil, key, nonce, ad, sealed)
	require.NoError(t, err)
	require.Equal(t, plaintext, opened)
}

func TestTagMutationIsRejected(t *testing.T) {
	var key [xchacha20poly1305.KeySize]byte
	var nonce [xchacha20poly1305.NonceSize]byte
	plaintext := []byte("message")

	sealed := xchacha20poly1305.Seal(nil, key, nonce, nil, plaintext)
	sealed[len(sealed)-1] ^= 0x01

	_, err := xchacha20poly1305.Open(nil, key, nonce, nil, sealed)
	require.ErrorIs(t, err, xchacha20poly1305.ErrAuthFailed)
}

func TestRoundTripProperty(t *testing.T) {
	f := func(key [32]byte, nonce [24]byte, ad, plaintext []byte) bool {
		sealed := xchacha20poly1305.Seal(nil, key, nonce, ad, plaintext)
		opened, err := xchacha20poly1305.Open(nil, key, nonce, ad, sealed)
		if err != nil {
			return false
		}
		return bytes.Equal(opened, plaintext)
	}
	require.NoError(t, quick.Check(f, &quick.Config{MaxCount: 100}))
}
