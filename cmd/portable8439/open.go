package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/DavyLandman/portable8439/chacha20poly1305"
	"github.com/DavyLandman/portable8439/xchacha20poly1305"
)

type openFlags struct {
	keyHex        string
	nonceHex      string
	adHex         string
	ciphertextHex string
	extended      bool
}

func newOpenCommand(logger *zap.Logger) *cobra.Command {
	var f openFlags

	cmd := &cobra.Command{
		Use:   "open",
		Short: "Verify and decrypt a hex-encoded ciphertext-and-tag",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := runOpen(f)
			if err != nil {
				// Deliberately log only that the call failed, never why —
				// the underlying error is already oracle-safe, but there is
				// no reason to give a log-reading attacker any more signal
				// than the caller itself receives.
				logger.Error("open failed")
				return err
			}
			logger.Info("open succeeded",
				zap.Int("plaintext_bytes", len(out)),
				zap.Bool("extended_nonce", f.extended),
			)
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(out))
			return nil
		},
	}

	registerCommonFlags(cmd, &f.keyHex, &f.nonceHex, &f.adHex, &f.extended)
	cmd.Flags().StringVar(&f.ciphertextHex, "ciphertext", "", "hex-encoded ciphertext followed by its 16-byte tag")
	cmd.MarkFlagRequired("ciphertext") //nolint:errcheck

	return cmd
}

func runOpen(f openFlags) ([]byte, error) {
	ciphertextAndTag, err := hex.DecodeString(f.ciphertextHex)
	if err != nil {
		return nil, fmt.Errorf("decoding ciphertext: %w", err)
	}
	ad, err := decodeOptionalHex(f.adHex)
	if err != nil {
		return nil, fmt.Errorf("decoding associated data: %w", err)
	}

	if f.extended {
		key, nonce, err := decodeXKeyNonce(f.keyHex, f.nonceHex)
		if err != nil {
			return nil, err
		}
		return xchacha20poly1305.Open(nil, key, nonce, ad, ciphertextAndTag)
	}

	key, nonce, err := decodeKeyNonce(f.keyHex, f.nonceHex)
	if err != nil {
		return nil, err
	}
	return chacha20poly1305.Open(nil, key, nonce, ad, ciphertextAndTag)
}
