package bvh

import (
	"github.com/pkg/errors"

	"github.com/lukaszgryglicki/triangles3d/internal/geometry"
)

// Validate walks the tree and checks its structural invariants: leaf sizes,
// boxes, coverage of every triangle exactly once and the depth bound.
func (t *Tree) Validate() error {
	if t.root < 0 || t.root >= len(t.nodes) {
		return errors.Wrapf(geometry.ErrLogic, "root %d out of %d nodes", t.root, len(t.nodes))
	}
	seen := make([]int, len(t.tris))
	if err := t.validateNode(t.root, 0, seen); err != nil {
		return err
	}
	for i, n := range seen {
		if n != 1 {
			return errors.Wrapf(geometry.ErrLogic, "triangle %d covered %d times", i, n)
		}
	}
	return nil
}

func (t *Tree) validateNode(idx, depth int, seen []int) error {
	if depth > t.opts.MaxDepth {
		return errors.Wrapf(geometry.ErrLogic, "node %d at depth %d exceeds %d", idx, depth, t.opts.MaxDepth)
	}
	n := t.nodes[idx]
	if n.IsLeaf() {
		if n.Start < 0 || n.Start+n.Count > len(t.tris) {
			return errors.Wrapf(geometry.ErrLogic, "leaf %d range [%d,%d) out of bounds", idx, n.Start, n.Start+n.Count)
		}
		if n.Count > t.opts.MaxLeafCapacity && depth < t.opts.MaxDepth {
			return errors.Wrapf(geometry.ErrLogic, "leaf %d holds %d triangles", idx, n.Count)
		}
		if n.Box != t.calculateBox(n.Start, n.Count) {
			return errors.Wrapf(geometry.ErrLogic, "leaf %d box %v does not fit its triangles", idx, n.Box)
		}
		for i := n.Start; i < n.Start+n.Count; i++ {
			seen[i]++
		}
		return nil
	}

	// children are appended after their parent
	if n.Left <= idx || n.Right <= idx || n.Left >= len(t.nodes) || n.Right >= len(t.nodes) {
		return errors.Wrapf(geometry.ErrLogic, "node %d has children %d, %d", idx, n.Left, n.Right)
	}
	if want := t.nodes[n.Left].Box.Merge(t.nodes[n.Right].Box); n.Box != want {
		return errors.Wrapf(geometry.ErrLogic, "node %d box %v, children merge to %v", idx, n.Box, want)
	}
	if err := t.validateNode(n.Left, depth+1, seen); err != nil {
		return err
	}
	return t.validateNode(n.Right, depth+1, seen)
}
