package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sync/atomic"
	"time"

	"fortio.org/fortio/stats"
	"github.com/geseq/blockpool"
	"golang.org/x/sync/errgroup"
)

func main() {
	workers := flag.Int("workers", 8, "number of concurrent workers")
	capacity := flag.Int("capacity", 4, "pool capacity")
	duration := flag.Int("duration", 10, "benchmark duration in seconds")
	pd := flag.Int("p", 2, "print interval in seconds")
	flag.Parse()

	items := make([][]byte, *capacity)
	for i := range items {
		items[i] = make([]byte, 4096)
	}
	pool := blockpool.New(items)

	var ops uint64
	end := time.Now().Add(time.Duration(*duration) * time.Second)

	log.Println("starting throughput benchmark")

	var g errgroup.Group
	for w := 0; w < *workers; w++ {
		g.Go(func() error {
			for time.Now().Before(end) {
				lease := pool.Take()
				buf := *lease.Value()
				buf[0]++
				lease.Release()
				atomic.AddUint64(&ops, 1)
			}
			return nil
		})
	}

	hist := stats.NewHistogram(0, 10000)
	start := time.Now()
	for time.Now().Before(end) {
		time.Sleep(time.Duration(*pd) * time.Second)

		n := atomic.SwapUint64(&ops, 0)
		rate := float64(n) / time.Since(start).Seconds()
		hist.Record(rate)
		fmt.Printf("ops/s: %.0f\n", rate)
		start = time.Now()
	}
	_ = g.Wait()

	hist.Print(os.Stdout, "ops/s", []float64{50, 75, 90, 99})
}
