package main

import (
	"fmt"
	"testing"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/DavyLandman/portable8439/chacha20poly1305"
)

func newBenchCommand(logger *zap.Logger) *cobra.Command {
	var sizeKiB int

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure Seal throughput at a given message size",
		RunE: func(cmd *cobra.Command, args []string) error {
			result := benchmarkSeal(sizeKiB * 1024)
			mbPerSec := result.mbPerSecond()
			logger.Info("benchmark complete",
				zap.Int("size_kib", sizeKiB),
				zap.Int("iterations", result.N),
				zap.Float64("mb_per_sec", mbPerSec),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "%d iterations, %.2f MB/s\n", result.N, mbPerSec)
			return nil
		},
	}

	cmd.Flags().IntVar(&sizeKiB, "size-kib", 1, "message size in KiB")

	return cmd
}

type benchResult struct {
	testing.BenchmarkResult
}

func (r benchResult) mbPerSecond() float64 {
	if r.T <= 0 {
		return 0
	}
	return (float64(r.Bytes) * float64(r.N) / 1e6) / r.T.Seconds()
}

// benchmarkSeal drives chacha20poly1305.Seal through testing.Benchmark,
// the standard library's entry point for running a benchmark function
// outside of `go test`.
func benchmarkSeal(size int) benchResult {
	var key [chacha20poly1305.KeySize]byte
	var nonce [chacha20poly1305.NonceSize]byte
	plaintext := make([]byte, size)
	dst := make([]byte, 0, size+chacha20poly1305.Overhead)

	result := testing.Benchmark(func(b *testing.B) {
		b.SetBytes(int64(size))
		for i := 0; i < b.N; i++ {
			chacha20poly1305.Seal(dst[:0], key, nonce, nil, plaintext)
		}
	})

	return benchResult{result}
}
