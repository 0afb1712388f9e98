package main

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/rishav/ringlog"
)

var (
	runCapacity   uint64
	runProducers  int
	runPerProduce int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "spawn producers against a buffer and replay the sequenced stream",
	RunE:  runRun,
}

func init() {
	runCmd.Flags().Uint64Var(&runCapacity, "capacity", 1024, "ring buffer capacity (power of two)")
	runCmd.Flags().IntVar(&runProducers, "producers", 4, "number of concurrent producers")
	runCmd.Flags().IntVar(&runPerProduce, "events", 50, "events published per producer")
}

func runRun(cmd *cobra.Command, args []string) error {
	buf, err := ringlog.NewBuilder[int64]().Capacity(runCapacity).Build()
	if err != nil {
		return fmt.Errorf("build buffer: %w", err)
	}

	handle := buf.Start()
	defer func() {
		handle.Stop()
		_ = handle.Join()
	}()

	var wg sync.WaitGroup
	for p := 0; p < runProducers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			producer := buf.Producer()
			for i := 0; i < runPerProduce; i++ {
				producer.PushBlocking(int64(p)*1000 + int64(i))
			}
		}(p)
	}
	wg.Wait()

	consumer := buf.Consumer()
	total := runProducers * runPerProduce

	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
	defer cancel()

	for i := 0; i < total; i++ {
		for {
			event, ok := consumer.TryNext()
			if ok {
				fmt.Printf("seq=%d payload=%d ts=%d producer=%d\n", event.Sequence, event.Payload, event.Timestamp, event.ProducerID)
				break
			}
			select {
			case <-ctx.Done():
				return fmt.Errorf("timed out waiting for sequence %d", i)
			default:
			}
		}
	}
	return nil
}
