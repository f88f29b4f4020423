package scene

import (
	"bytes"
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/lukaszgryglicki/triangles3d/internal/bvh"
	"github.com/lukaszgryglicki/triangles3d/internal/config"
	"github.com/lukaszgryglicki/triangles3d/internal/geometry"
)

// Run reads a triangle soup from in, writes the indices of intersecting
// triangles to out and, when configured, logs BVH statistics.
func Run(cfg *config.Config, in io.Reader, out io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := geometry.SetTolerance(cfg.Tolerance()); err != nil {
		return err
	}

	tris, err := Read(in)
	if err != nil {
		return err
	}

	if cfg.BVHStats {
		if err := treeStats(tris, cfg.BVHOptions()); err != nil {
			return err
		}
	}

	start := time.Now()
	res := FindIntersecting(tris, cfg.Workers)
	DebugLog("triangles: %d, workers: %d, time: %s", len(tris), cfg.Workers, time.Since(start))
	log.Infof("%d of %d triangles intersect, %d pairs", len(res.Indices), len(tris), res.Pairs)

	return Write(out, res, cfg.PrintPairs)
}

func treeStats(tris []geometry.Triangle, opts bvh.Options) error {
	if len(tris) < 2 {
		log.Infof("bvh: skipped, %d triangles", len(tris))
		return nil
	}
	start := time.Now()
	tree, err := bvh.Build(tris, opts)
	if err != nil {
		return errors.Wrap(err, "build bvh")
	}
	if err := tree.Validate(); err != nil {
		return errors.Wrap(err, "validate bvh")
	}
	log.Infof("bvh: %v, built in %s", tree.Stats(), time.Since(start))
	if Debug {
		var buf bytes.Buffer
		if err := tree.Dump(&buf); err != nil {
			return errors.Wrap(err, "dump bvh")
		}
		DebugLog("%s", buf.String())
	}
	return nil
}
