package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DavyLandman/portable8439/chacha20poly1305"
	"github.com/DavyLandman/portable8439/xchacha20poly1305"
)

func registerCommonFlags(cmd *cobra.Command, keyHex, nonceHex, adHex *string, extended *bool) {
	cmd.Flags().StringVar(keyHex, "key", "", "hex-encoded 32-byte key")
	cmd.Flags().StringVar(nonceHex, "nonce", "", "hex-encoded nonce (12 bytes, or 24 with --xchacha)")
	cmd.Flags().StringVar(adHex, "ad", "", "hex-encoded associated data (optional)")
	cmd.Flags().BoolVar(extended, "xchacha", false, "use the XChaCha20-Poly1305 extended-nonce variant")
	cmd.MarkFlagRequired("key")   //nolint:errcheck
	cmd.MarkFlagRequired("nonce") //nolint:errcheck
}

func decodeOptionalHex(s string) ([]byte, error) {
	if s == "" {
		return nil, nil
	}
	return hex.DecodeString(s)
}

func decodeKeyNonce(keyHex, nonceHex string) (key [chacha20poly1305.KeySize]byte, nonce [chacha20poly1305.NonceSize]byte, err error) {
	keyBytes, err := hex.DecodeString(keyHex)
	if err != nil {
		return key, nonce, fmt.Errorf("decoding key: %w", err)
	}
	if len(keyBytes) != chacha20poly1305.KeySize {
		return key, nonce, fmt.Errorf("key must be %d bytes, got %d", chacha20poly1305.KeySize, len(keyBytes))
	}
	nonceBytes, err := hex.DecodeString(nonceHex)
	if err != nil {
		return key, nonce, fmt.Errorf("decoding nonce: %w", err)
	}
	if len(nonceBytes) != chacha20poly1305.NonceSize {
		return key, nonce, fmt.Errorf("nonce must be %d bytes, got %d", chacha20poly1305.NonceSize, len(nonceBytes))
	}
	copy(key[:], keyBytes)
	copy(nonce[:], nonceBytes)
	return key, nonce, nil
}

func decodeXKeyNonce(keyHex, nonceHex string) (key [xchacha20poly1305.KeySize]byte, nonce [xchacha20poly1305.NonceSize]byte, err error) {
	keyBytes, err := hex.DecodeString(keyHex)
	if err != nil {
		return key, nonce, fmt.Errorf("decoding key: %w", err)
	}
	if len(keyBytes) != xchacha20poly1305.KeySize {
		return key, nonce, fmt.Errorf("key must be %d bytes, got %d", xchacha20poly1305.KeySize, len(keyBytes))
	}
	nonceBytes, err := hex.DecodeString(nonceHex)
	if err != nil {
		return key, nonce, fmt.Errorf("decoding nonce: %w", err)
	}
	if len(nonceBytes) != xchacha20poly1305.NonceSize {
		return key, nonce, fmt.Errorf("nonce must be %d bytes, got %d", xchacha20poly1305.NonceSize, len(nonceBytes))
	}
	copy(key[:], keyBytes)
	copy(nonce[:], nonceBytes)
	return key, nonce, nil
}
