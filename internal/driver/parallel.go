package driver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// forEachFile runs fn for indexes 0..n-1 on at most jobs goroutines. Each
// call owns results[i] exclusively, so no locking is needed around it.
func forEachFile(ctx context.Context, n, jobs int, fn func(i int)) error {
	if n == 0 {
		return nil
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, n))
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			// Проверка отмены
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			fn(i)
			return nil
		})
	}
	return g.Wait()
}
