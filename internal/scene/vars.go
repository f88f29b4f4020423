package scene

import "github.com/lukaszgryglicki/triangles3d/internal/config"

// NumShards is the number of locks guarding the per-triangle hit flags.
// Must be a power of 2.
const NumShards = 64

var (
	Debug    = false // set to true for verbose debug output and the BVH dump
	UseLocks = true  // set to false to record hits with atomics instead of shard locks
	log      = config.NamedLogger("scene")
)
