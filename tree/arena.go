// Package tree implements the arena-backed binary expression tree spec.md
// §3/§4.C describes: a contiguous vector of nodes addressed by integer
// index, with a cursor type that encapsulates (arena, index) and exposes
// navigation, insertion, ascent, collapse, and copy operations.
//
// Indices never invalidate within a tree's lifetime: destroy and
// recursively-destroy mark a node unused but the arena never reclaims its
// slot. This mirrors a known limitation of the original the spec is drawn
// from, and is an accepted tradeoff given that tree lifetimes here are
// short (one regex's worth of parsing and rewriting).
package tree

import (
	"github.com/go-relang/relang/value"
)

// nullIdx is the reserved sentinel representing "no node" throughout this
// package: the null parent of a root, the null child of a leaf, the null
// cursor itself.
const nullIdx = -1

type node struct {
	parent, left, right int
	val                 value.Value
	live                bool
}

// Arena owns the node storage for one or more trees built by repeated
// insertion and copy. Destroying a tree releases no memory; see the
// package doc.
type Arena struct {
	nodes []node
}

// NewArena returns an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

func (a *Arena) alloc(v value.Value) int {
	a.nodes = append(a.nodes, node{parent: nullIdx, left: nullIdx, right: nullIdx, val: v, live: true})
	return len(a.nodes) - 1
}

// NewTree allocates a fresh single-node tree in a (new) arena and returns a
// cursor to its root.
func NewTree(v value.Value) Cursor {
	a := NewArena()
	idx := a.alloc(v)
	return Cursor{arena: a, idx: idx}
}

// NewTreeIn allocates a fresh node carrying v as a new root within an
// existing arena — used when building several independent trees that will
// later be joined within that arena (the regex parser and the tree
// rewrites build every node of one tree this way).
func NewTreeIn(a *Arena, v value.Value) Cursor {
	idx := a.alloc(v)
	return Cursor{arena: a, idx: idx}
}

// destroy marks idx's slot unused without reclaiming it, leaving a
// tombstone in the arena. Children are not touched; callers are expected
// to walk the subtree themselves when a whole subtree must go (see
// DestroyLeftSubtree/DestroyRightSubtree in cursor.go).
func (a *Arena) destroy(idx int) {
	if idx == nullIdx {
		return
	}
	a.nodes[idx].live = false
}
