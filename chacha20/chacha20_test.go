package chacha20_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DavyLandman/portable8439/chacha20"
)

func testKeyNonce() (key [chacha20.KeySize]byte, nonce [chacha20.NonceSize]byte) {
	for i := range key {
		key[i] = byte(i)
	}
	for i := range nonce {
		nonce[i] = byte(0x4a + i)
	}
	return
}

// TestKeystreamDeterministic checks that two independent runs over the
// same (key, nonce, counter) produce byte-identical keystreams.
func TestKeystreamDeterministic(t *testing.T) {
	key, nonce := testKeyNonce()

	plaintext := bytes.Repeat([]byte{0x00}, 3*chacha20.BlockSize+17)

	out1 := make([]byte, len(plaintext))
	chacha20.New(key, nonce, 1, chacha20.PathAuto).XORKeyStream(out1, plaintext)

	out2 := make([]byte, len(plaintext))
	chacha20.New(key, nonce, 1, chacha20.PathAuto).XORKeyStream(out2, plaintext)

	require.Equal(t, out1, out2, "keystream must be a deterministic function of (key, nonce, counter)")
}

// TestSeekability checks that asking for block N directly produces the
// same bytes as running the stream forward N blocks, exercising the
// explicit block-counter seekability the AEAD layer depends on (keygen
// at counter 0, encryption starting at counter 1).
func TestSeekability(t *testing.T) {
	key, nonce := testKeyNonce()

	const numBlocks = 5
	seq := chacha20.New(key, nonce, 0, chacha20.PathAuto)
	var sequential [numBlocks][chacha20.BlockSize]byte
	for i := range sequential {
		seq.Block(sequential[i][:])
	}

	for i := 0; i < numBlocks; i++ {
		direct := chacha20.New(key, nonce, uint32(i), chacha20.PathAuto)
		var got [chacha20.BlockSize]byte
		direct.Block(got[:])

		require.Equal(t, sequential[i][:], got[:], "block %d computed directly must match block %d from the sequential run", i, i)
	}
}

// TestCounterCrossesBlockBoundary is spec.md Scenario 5: a 65-byte
// plaintext must have its final byte encrypted under the keystream of
// counter 2 (counter 1 covers bytes 0..63, counter 2 covers byte 64).
func TestCounterCrossesBlockBoundary(t *testing.T) {
	key, nonce := testKeyNonce()

	plaintext := make([]byte, chacha20.BlockSize+1)
	ciphertext := make([]byte, len(plaintext))
	chacha20.New(key, nonce, 1, chacha20.PathAuto).XORKeyStream(ciphertext, plaintext)

	var block2 [chacha20.BlockSize]byte
	chacha20.New(key, nonce, 2, chacha20.PathAuto).Block(block2[:])

	require.Equal(t, block2[0], ciphertext[chacha20.BlockSize], "65th byte must be encrypted under the counter-2 keystream")
}

// TestKeyStreamBlock0MatchesCounterZero checks that the dedicated keygen
// helper agrees with running the general block function at counter 0.
func TestKeyStreamBlock0MatchesCounterZero(t *testing.T) {
	key, nonce := testKeyNonce()

	helper := chacha20.KeyStreamBlock0(key, nonce, chacha20.PathAuto)

	var direct [chacha20.BlockSize]byte
	chacha20.New(key, nonce, 0, chacha20.PathAuto).Block(direct[:])

	require.Equal(t, direct, helper)
}

func BenchmarkXORKeyStream1KiB(b *testing.B) {
	key, nonce := testKeyNonce()
	plaintext := make([]byte, 1024)
	dst := make([]byte, 1024)

	b.SetBytes(int64(len(plaintext)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		chacha20.New(key, nonce, 1, chacha20.PathAuto).XORKeyStream(dst, plaintext)
	}
}
