package main

import (
	"fmt"
	"testing"

	"github.com/spf13/cobra"

	"github.com/rishav/ringlog"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "run the push/claim benchmark and report throughput",
	RunE:  runBench,
}

// runBench is a thin wrapper around testing.Benchmark: it runs the same
// claim-publish loop the package's own benchmarks exercise, building a
// fresh buffer sized to each calibration round's b.N so the non-recycling
// buffer never runs dry mid-run.
func runBench(cmd *cobra.Command, args []string) error {
	result := testing.Benchmark(func(b *testing.B) {
		buf, err := ringlog.NewBuilder[int64]().Capacity(benchCapacity(b.N)).Build()
		if err != nil {
			b.Fatalf("build buffer: %v", err)
		}
		handle := buf.Start()
		defer func() {
			handle.Stop()
			_ = handle.Join()
		}()

		p := buf.Producer()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			p.PushBlocking(int64(i))
		}
	})

	fmt.Println(result.String())
	return nil
}

func benchCapacity(n int) uint64 {
	if n < 2 {
		return 2
	}
	v := uint64(n)
	v--
	v |= v >> 1
	v |= v >> 2
	v |= v >> 4
	v |= v >> 8
	v |= v >> 16
	v |= v >> 32
	v++
	return v
}
