package bnb

import (
	"math"

	"github.com/cutstock2d/cutstock2d/colgen"
)

// Node is one branch-and-bound node: parent id (-1 for the root), depth,
// its own column set and branch-constraint list, the LP solve outcome
// once processed, and — if fractional — the chosen branch variable and
// its derived floor/ceil, per spec.md §3 "B&B node".
type Node struct {
	ID     int
	Parent int
	Depth  int

	Cols   colgen.ColumnSet
	Branch []colgen.BranchConstraint

	Solved  bool
	Pruned  bool
	Integer bool
	LB      float64
	YPrimal []float64
	XPrimal []float64

	Branched    bool
	BranchKind  colgen.VarKind
	BranchIndex int
	BranchValue float64
	Floor       float64
	Ceil        float64
}

// pool is the arena backing every Node: nodes are referenced by integer id
// into pool.nodes, never by pointer, so the tree is a set of indices
// rather than a pointer-linked structure (spec.md §9).
type pool struct {
	nodes []Node
}

func (p *pool) new(parent, depth int, cols colgen.ColumnSet, branch []colgen.BranchConstraint) int {
	id := len(p.nodes)
	p.nodes = append(p.nodes, Node{
		ID:     id,
		Parent: parent,
		Depth:  depth,
		Cols:   cols,
		Branch: branch,
		LB:     math.Inf(1),
	})

	return id
}

func (p *pool) get(id int) *Node {
	return &p.nodes[id]
}
