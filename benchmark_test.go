package blockpool

import (
	"sort"
	"sync"
	"testing"
	"time"
)

func BenchmarkTakeRelease(b *testing.B) {
	p := New(make([]int, 16))

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			lease := p.Take()
			*lease.Value()++
			lease.Release()
		}
	})
}

func BenchmarkTakeReleaseContended(b *testing.B) {
	// One item shared by all workers forces every taker through the
	// blocked path.
	p := New(make([]int, 1))

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			lease := p.Take()
			*lease.Value()++
			lease.Release()
		}
	})
}

func BenchmarkTakeLatency(b *testing.B) {
	var totalHist []float64
	var mu sync.Mutex

	p := New(make([][]byte, 8))

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		hist := make([]float64, 0, 1000)

		for pb.Next() {
			start := time.Now()
			lease := p.Take()
			elapsed := time.Since(start).Nanoseconds()
			hist = append(hist, float64(elapsed))

			lease.Release()
		}

		mu.Lock()
		totalHist = append(totalHist, hist...)
		mu.Unlock()
	})

	b.StopTimer()

	printResultsWithPercentiles(b, "Take", totalHist)
}

func printResultsWithPercentiles(b *testing.B, operationName string, data []float64) {
	sort.Float64s(data)
	percentiles := []float64{50, 75, 90, 95, 99, 99.9}

	b.Logf("Operation: %s", operationName)
	for _, p := range percentiles {
		value := calculatePercentile(data, p)
		b.Logf("%v: %f ns", p, value)
	}
}

func calculatePercentile(data []float64, percentile float64) float64 {
	if len(data) == 0 {
		return 0
	}
	index := int((percentile / 100) * float64(len(data)-1))
	return data[index]
}
