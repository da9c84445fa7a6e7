package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/DavyLandman/portable8439/chacha20poly1305"
	"github.com/DavyLandman/portable8439/xchacha20poly1305"
)

type sealFlags struct {
	keyHex       string
	nonceHex     string
	adHex        string
	plaintextHex string
	extended     bool
}

func newSealCommand(logger *zap.Logger) *cobra.Command {
	var f sealFlags

	cmd := &cobra.Command{
		Use:   "seal",
		Short: "Encrypt and authenticate a hex-encoded plaintext",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := runSeal(f)
			if err != nil {
				logger.Error("seal failed", zap.Error(err))
				return err
			}
			logger.Info("seal succeeded",
				zap.Int("plaintext_bytes", len(f.plaintextHex)/2),
				zap.Int("output_bytes", len(out)),
				zap.Bool("extended_nonce", f.extended),
			)
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(out))
			return nil
		},
	}

	registerCommonFlags(cmd, &f.keyHex, &f.nonceHex, &f.adHex, &f.extended)
	cmd.Flags().StringVar(&f.plaintextHex, "plaintext", "", "hex-encoded plaintext")
	cmd.MarkFlagRequired("plaintext") //nolint:errcheck

	return cmd
}

func runSeal(f sealFlags) ([]byte, error) {
	plaintext, err := hex.DecodeString(f.plaintextHex)
	if err != nil {
		return nil, fmt.Errorf("decoding plaintext: %w", err)
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
		return xchacha20poly1305.Seal(nil, key, nonce, ad, plaintext), nil
	}

	key, nonce, err := decodeKeyNonce(f.keyHex, f.nonceHex)
	if err != nil {
		return nil, err
	}
	return chacha20poly1305.Seal(nil, key, nonce, ad, plaintext), nil
}
