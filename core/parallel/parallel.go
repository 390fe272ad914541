// Package parallel provides chunked worker helpers for CPU-bound loops,
// such as decoding the trees of a forest concurrently.
package parallel

import (
	"runtime"
	"sync"
)

// Workers reports how many goroutines Parallelize starts for the given
// number of items. The count is capped by the number of CPU cores.
func Workers(items int) int {
	if items <= 0 {
		return 0
	}
	numWorkers := runtime.NumCPU()
	if numWorkers > items {
		numWorkers = items // No need for more workers than items
	}
	return numWorkers
}

// Parallelize splits the index range [0, items) into contiguous chunks, one
// per worker, and runs fn(start, end) on each chunk concurrently. It returns
// once every chunk has been processed.
func Parallelize(items int, fn func(start, end int)) {
	numWorkers := Workers(items)
	if numWorkers == 0 {
		return
	}

	// Ceiling division so the final chunk absorbs the remainder.
	chunkSize := (items + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup
	for start := 0; start < items; start += chunkSize {
		end := start + chunkSize
		if end > items {
			end = items
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}

// ParallelizeWithThreshold runs fn(0, items) on the calling goroutine when
// items does not exceed threshold, and falls back to Parallelize otherwise.
func ParallelizeWithThreshold(items int, threshold int, fn func(start, end int)) {
	if items <= threshold {
		fn(0, items)
		return
	}
	Parallelize(items, fn)
}
