package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/geseq/blockpool"
	"github.com/loov/hrtime"
	"golang.org/x/sync/errgroup"
)

func main() {
	workers := flag.Int("workers", 8, "number of concurrent workers")
	capacity := flag.Int("capacity", 4, "pool capacity")
	iterations := flag.Int("iterations", 10000, "take/release rounds per worker")
	hold := flag.Duration("hold", 0, "time each lease is held")
	flag.Parse()

	items := make([][]byte, *capacity)
	for i := range items {
		items[i] = make([]byte, 4096)
	}
	pool := blockpool.New(items)

	laps := make([][]time.Duration, *workers)

	var g errgroup.Group
	for w := 0; w < *workers; w++ {
		w := w
		g.Go(func() error {
			bench := hrtime.NewBenchmark(*iterations)
			for bench.Next() {
				lease := pool.Take()
				buf := *lease.Value()
				buf[0]++
				if *hold > 0 {
					time.Sleep(*hold)
				}
				lease.Release()
			}
			laps[w] = bench.Laps()
			return nil
		})
	}
	_ = g.Wait()

	var all []time.Duration
	for _, l := range laps {
		all = append(all, l...)
	}

	hist := hrtime.NewDurationHistogram(all, &hrtime.HistogramOptions{
		BinCount:        10,
		ClampPercentile: 0.999,
	})
	fmt.Println(hist)
}
