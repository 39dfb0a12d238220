package msdf

import (
	"runtime"
	"sync"
)

// forEachRowParallel partitions [0, height) across a worker pool and
// calls fn once per partition with its [yStart, yEnd) row range. Zero
// workers means runtime.NumCPU(). This is the only concurrency pattern
// the pixel-level passes use: plain goroutines over a WaitGroup, since
// every row writes disjoint output and needs no message passing.
func forEachRowParallel(height, workers int, fn func(yStart, yEnd int)) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > height {
		workers = max(1, height)
	}

	var wg sync.WaitGroup
	rowsPerWorker := (height + workers - 1) / workers
	for w := 0; w < workers; w++ {
		yStart := w * rowsPerWorker
		yEnd := min(yStart+rowsPerWorker, height)
		if yStart >= yEnd {
			continue
		}
		wg.Add(1)
		go func(yStart, yEnd int) {
			defer wg.Done()
			fn(yStart, yEnd)
		}(yStart, yEnd)
	}
	wg.Wait()
}
