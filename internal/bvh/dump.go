package bvh

import (
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
)

// Stats summarizes a built tree.
type Stats struct {
	Nodes    int
	Leaves   int
	Objects  int
	MaxDepth int
}

func (s Stats) String() string {
	return fmt.Sprintf("nodes=%d leaves=%d objs=%d depth=%d", s.Nodes, s.Leaves, s.Objects, s.MaxDepth)
}

// Stats counts nodes, leaves and referenced triangles.
func (t *Tree) Stats() Stats {
	leaves := lo.Filter(t.nodes, func(n Node, _ int) bool { return n.IsLeaf() })
	return Stats{
		Nodes:    len(t.nodes),
		Leaves:   len(leaves),
		Objects:  lo.SumBy(leaves, func(n Node) int { return n.Count }),
		MaxDepth: t.maxDepthReached,
	}
}

type subtreeCounts struct {
	nodes  int
	leaves int
	objs   int
}

// Dump prints the tree with one tab of indentation per level, subtree counts
// for internal nodes and the box of every node.
func (t *Tree) Dump(w io.Writer) error {
	counts := make([]subtreeCounts, len(t.nodes))
	// children always follow their parent, so a reverse sweep sees them first
	for i := len(t.nodes) - 1; i >= 0; i-- {
		n := t.nodes[i]
		if n.IsLeaf() {
			counts[i] = subtreeCounts{nodes: 1, leaves: 1, objs: n.Count}
			continue
		}
		l, r := counts[n.Left], counts[n.Right]
		counts[i] = subtreeCounts{nodes: 1 + l.nodes + r.nodes, leaves: l.leaves + r.leaves, objs: l.objs + r.objs}
	}
	c := counts[t.root]
	if _, err := fmt.Fprintf(w, "[BVH] root: nodes=%d leaves=%d objs=%d depth=%d\n",
		c.nodes, c.leaves, c.objs, t.maxDepthReached); err != nil {
		return err
	}
	return t.dumpNode(w, t.root, 0, counts)
}

func (t *Tree) dumpNode(w io.Writer, idx, depth int, counts []subtreeCounts) error {
	n := t.nodes[idx]
	ind := strings.Repeat("\t", depth)
	if n.IsLeaf() {
		_, err := fmt.Fprintf(w, "%sLEAF  objs=%d start=%d | %v\n", ind, n.Count, n.Start, n.Box)
		return err
	}
	c := counts[idx]
	if _, err := fmt.Fprintf(w, "%sNODE  nodes=%d leaves=%d objs=%d | %v\n",
		ind, c.nodes, c.leaves, c.objs, n.Box); err != nil {
		return err
	}
	if err := t.dumpNode(w, n.Left, depth+1, counts); err != nil {
		return err
	}
	return t.dumpNode(w, n.Right, depth+1, counts)
}
