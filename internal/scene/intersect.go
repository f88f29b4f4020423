package scene

import (
	"sync"
	"sync/atomic"

	"github.com/samber/lo"

	"github.com/lukaszgryglicki/triangles3d/internal/bvh"
	"github.com/lukaszgryglicki/triangles3d/internal/geometry"
)

// Result of an all-pairs search.
type Result struct {
	// Indices of every triangle that intersects at least one other, ascending.
	Indices []int
	// Pairs is the number of intersecting unordered pairs.
	Pairs int64
}

// FindIntersecting tests every unordered pair of triangles. Rows of the pair
// matrix are handed out to workers one at a time; a pair is only tested
// exactly when the bounding boxes overlap.
func FindIntersecting(tris []geometry.Triangle, workers int) Result {
	n := len(tris)
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}
	boxes := lo.Map(tris, func(t geometry.Triangle, _ int) bvh.AABB { return bvh.NewAABB(t) })

	hit := make([]bool, n)
	atomicHit := make([]atomic.Bool, n)
	locks := &shardLocks{}
	mark := func(i int) {
		if !UseLocks {
			atomicHit[i].Store(true)
			return
		}
		locks.lock(i)
		hit[i] = true
		locks.unlock(i)
	}

	var (
		pairs   int64
		nextRow int64 = -1
		tested  int64
		wg      sync.WaitGroup
	)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				i := int(atomic.AddInt64(&nextRow, 1))
				if i >= n {
					return
				}
				for j := i + 1; j < n; j++ {
					if !boxes[i].Intersects(boxes[j]) {
						continue
					}
					atomic.AddInt64(&tested, 1)
					if !tris[i].Intersects(tris[j]) {
						continue
					}
					atomic.AddInt64(&pairs, 1)
					mark(i)
					mark(j)
				}
			}
		}()
	}
	wg.Wait()
	DebugLog("pairs: total=%d tested=%d intersecting=%d", int64(n)*int64(n-1)/2, tested, pairs)

	indices := lo.FilterMap(hit, func(h bool, i int) (int, bool) {
		return i, h || atomicHit[i].Load()
	})
	return Result{Indices: indices, Pairs: pairs}
}
