// Command portable8439 is a CLI driver around the chacha20poly1305 and
// xchacha20poly1305 packages: it seals or opens hex-encoded messages
// from the command line, for manual testing against other RFC 8439
// implementations.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, "portable8439: failed to initialize logger:", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	if err := newRootCommand(logger).Execute(); err != nil {
		os.Exit(1)
	}
}
