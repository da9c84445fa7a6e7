package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRootCommand(logger *zap.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "portable8439",
		Short: "Seal and open messages with ChaCha20-Poly1305 and XChaCha20-Poly1305",
		Long: `portable8439 is a command-line driver around a from-scratch RFC 8439
implementation: the ChaCha20 stream cipher, the Poly1305 one-time
authenticator, and their AEAD composition.

It never logs key, plaintext, nonce, or tag material at any verbosity;
logging is limited to operational events (which subcommand ran, how
many bytes were processed, whether the call succeeded).`,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(newSealCommand(logger))
	root.AddCommand(newOpenCommand(logger))
	root.AddCommand(newBenchCommand(logger))

	return root
}
