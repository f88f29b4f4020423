package bvh

import (
	"github.com/pkg/errors"

	"github.com/lukaszgryglicki/triangles3d/internal/geometry"
)

const (
	// DefaultMaxLeafCapacity is the largest triangle run a leaf holds.
	DefaultMaxLeafCapacity = 4
	// DefaultMaxDepth bounds recursion; a node at this depth is always a leaf.
	DefaultMaxDepth = 64
)

// Options tune construction.
type Options struct {
	MaxLeafCapacity int
	MaxDepth        int
}

// DefaultOptions returns capacity 4, depth 64.
func DefaultOptions() Options {
	return Options{MaxLeafCapacity: DefaultMaxLeafCapacity, MaxDepth: DefaultMaxDepth}
}

// Node is either a leaf (Count > 0) covering Triangles()[Start:Start+Count],
// or an internal node with two children indexed into Nodes().
type Node struct {
	Box   AABB
	Left  int
	Right int
	Start int
	Count int
}

// IsLeaf reports whether the node references triangles directly.
func (n Node) IsLeaf() bool { return n.Count > 0 }

// Tree is a median-split bounding volume hierarchy over triangles.
// Nodes live in an append-only arena; a parent always precedes its children.
type Tree struct {
	opts            Options
	nodes           []Node
	tris            []geometry.Triangle
	root            int
	maxDepthReached int
}

// Build constructs a tree over a copy of tris; the caller's slice is not
// reordered. At least two triangles are required.
func Build(tris []geometry.Triangle, opts Options) (*Tree, error) {
	if opts.MaxLeafCapacity < 1 || opts.MaxDepth < 0 {
		return nil, errors.Wrapf(geometry.ErrInvalidArgument,
			"bvh options capacity=%d depth=%d", opts.MaxLeafCapacity, opts.MaxDepth)
	}
	if len(tris) < 2 {
		return nil, errors.Wrapf(geometry.ErrLogic, "bvh needs at least 2 triangles, got %d", len(tris))
	}
	t := &Tree{
		opts:  opts,
		tris:  append([]geometry.Triangle(nil), tris...),
		nodes: make([]Node, 0, 2*len(tris)/opts.MaxLeafCapacity+1),
	}
	t.root = t.buildNode(0, len(t.tris), 0)
	return t, nil
}

// Nodes returns the node arena. It must not be modified.
func (t *Tree) Nodes() []Node { return t.nodes }

// Triangles returns the triangles in tree order. It must not be modified.
func (t *Tree) Triangles() []geometry.Triangle { return t.tris }

// Root returns the index of the root node.
func (t *Tree) Root() int { return t.root }

// MaxDepthReached is the deepest level any node was built at.
func (t *Tree) MaxDepthReached() int { return t.maxDepthReached }

// Options returns the options the tree was built with.
func (t *Tree) Options() Options { return t.opts }

func (t *Tree) calculateBox(start, count int) AABB {
	box := NewAABB(t.tris[start])
	for _, tr := range t.tris[start+1 : start+count] {
		box = box.Expand(tr)
	}
	return box
}

func (t *Tree) buildNode(start, count, depth int) int {
	idx := len(t.nodes)
	t.nodes = append(t.nodes, Node{})
	if depth > t.maxDepthReached {
		t.maxDepthReached = depth
	}

	box := t.calculateBox(start, count)
	half := count / 2
	if count <= t.opts.MaxLeafCapacity || depth >= t.opts.MaxDepth || half == 0 || half == count {
		t.nodes[idx] = Node{Box: box, Start: start, Count: count}
		return idx
	}

	selectNth(t.tris[start:start+count], half, box.WidestAxis())
	left := t.buildNode(start, half, depth+1)
	right := t.buildNode(start+half, count-half, depth+1)
	t.nodes[idx] = Node{
		Box:   t.nodes[left].Box.Merge(t.nodes[right].Box),
		Left:  left,
		Right: right,
	}
	return idx
}

// selectNth reorders ts so that ts[k] holds the element that would be there
// if ts were sorted by centroid on axis, with nothing greater before it and
// nothing smaller after it.
func selectNth(ts []geometry.Triangle, k, axis int) {
	key := func(i int) geometry.Real { return ts[i].Centroid().Component(axis) }
	lo, hi := 0, len(ts)-1
	for lo < hi {
		// three-way partition around the middle element
		pivot := key(lo + (hi-lo)/2)
		lt, i, gt := lo, lo, hi
		for i <= gt {
			switch c := key(i); {
			case c < pivot:
				ts[lt], ts[i] = ts[i], ts[lt]
				lt++
				i++
			case c > pivot:
				ts[i], ts[gt] = ts[gt], ts[i]
				gt--
			default:
				i++
			}
		}
		switch {
		case k < lt:
			hi = lt - 1
		case k > gt:
			lo = gt + 1
		default:
			return
		}
	}
}
