package equity

import "golang.org/x/sync/errgroup"

// shardRunouts splits n work items across workers goroutines managed by
// an errgroup.Group: each shard processes a contiguous [lo,hi) range of
// indices via fn and returns its own slice of results, which are
// concatenated in shard order once every worker completes.
//
// Because each runout is a pure function of (hero, villain-range, board,
// rank-table), sharding changes only floating-point summation order,
// never the algorithm's result — the single-worker path (workers<=1) is
// always equivalent to calling fn(0, n) directly and is what Calculator
// uses by default to preserve bit-identical determinism.
func shardRunouts[T any](n, workers int, fn func(lo, hi int) []T) ([]T, error) {
	if workers <= 1 || n <= 1 {
		return fn(0, n), nil
	}
	if workers > n {
		workers = n
	}
	shardSize := (n + workers - 1) / workers
	results := make([][]T, workers)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		lo := w * shardSize
		hi := lo + shardSize
		if hi > n {
			hi = n
		}
		if lo >= hi {
			continue
		}
		g.Go(func() error {
			results[w] = fn(lo, hi)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []T
	for _, r := range results {
		out = append(out, r...)
	}
	return out, nil
}
