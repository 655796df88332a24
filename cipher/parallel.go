package cipher

import (
	"runtime"
	"sync"
)

// parallelThreshold число блоков, начиная с которого работа делится между горутинами
var parallelThreshold = 256

// forEachBlock вызывает fn(lo, hi) для непересекающихся диапазонов блоков [lo, hi),
// покрывающих [0, blocks). fn не должен писать за пределы своего диапазона.
func forEachBlock(blocks int, fn func(lo, hi int)) {
	workers := runtime.GOMAXPROCS(0)
	if blocks < parallelThreshold || workers < 2 {
		fn(0, blocks)
		return
	}
	if workers > blocks {
		workers = blocks
	}

	chunk := (blocks + workers - 1) / workers
	var wg sync.WaitGroup
	for lo := 0; lo < blocks; lo += chunk {
		hi := lo + chunk
		if hi > blocks {
			hi = blocks
		}

		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			fn(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}
