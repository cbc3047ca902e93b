package tree

import (
	"unsafe"

	"github.com/go-relang/relang/value"
)

// Cursor is a (arena, index) pair, comparable as a value the way spec.md
// §4.C requires: it sorts and compares as a pair (tree-id, index), with the
// null cursor strictly before any live cursor.
type Cursor struct {
	arena *Arena
	idx   int
}

// Null returns the null cursor for the same arena as c, usable as a
// sentinel return value or as the starting point of an Ensure* call.
func (c Cursor) Null() Cursor {
	return Cursor{arena: c.arena, idx: nullIdx}
}

// IsNull reports whether c denotes no node.
func (c Cursor) IsNull() bool {
	return c.idx == nullIdx
}

// Index returns c's arena slot, stable for the lifetime of the arena and
// usable as a map or set key by callers (e.g. De Simone's leaf-set
// compositions) that need cursor identity without carrying the arena
// pointer around.
func (c Cursor) Index() int {
	return c.idx
}

// AtIndex returns a cursor into c's arena at the given slot, the inverse of
// Index. Callers that collect node indices into a set (De Simone's
// compositions) use it to turn a stored index back into a navigable
// cursor.
func (c Cursor) AtIndex(idx int) Cursor {
	return Cursor{arena: c.arena, idx: idx}
}

// Equal reports whether c and d denote the same node of the same arena, or
// are both null cursors of the same arena.
func (c Cursor) Equal(d Cursor) bool {
	return c.arena == d.arena && c.idx == d.idx
}

// Less gives Cursor a strict total order: different arenas compare by
// pointer identity (an arbitrary but stable tie-break — callers needing
// ordering only ever do so within one arena), and within an arena the null
// cursor sorts before every live index, which then sort by index.
func (c Cursor) Less(d Cursor) bool {
	if c.arena != d.arena {
		return uintptr(unsafe.Pointer(c.arena)) < uintptr(unsafe.Pointer(d.arena))
	}
	return c.idx < d.idx
}

// Value reads the symbolic value carried by c's node.
func (c Cursor) Value() value.Value {
	return c.arena.nodes[c.idx].val
}

// SetValue overwrites the symbolic value carried by c's node.
func (c Cursor) SetValue(v value.Value) {
	c.arena.nodes[c.idx].val = v
}

// Parent returns a cursor to c's parent, or the null cursor if c is a root.
func (c Cursor) Parent() Cursor {
	return Cursor{arena: c.arena, idx: c.arena.nodes[c.idx].parent}
}

// LeftChild returns a cursor to c's left child, or the null cursor if none
// exists.
func (c Cursor) LeftChild() Cursor {
	return Cursor{arena: c.arena, idx: c.arena.nodes[c.idx].left}
}

// RightChild returns a cursor to c's right child, or the null cursor if
// none exists.
func (c Cursor) RightChild() Cursor {
	return Cursor{arena: c.arena, idx: c.arena.nodes[c.idx].right}
}

// SetLeftChild attaches child as c's left child, rewiring child's parent
// pointer. child must belong to the same arena as c.
func (c Cursor) SetLeftChild(child Cursor) {
	c.arena.nodes[c.idx].left = child.idx
	if !child.IsNull() {
		c.arena.nodes[child.idx].parent = c.idx
	}
}

// SetRightChild attaches child as c's right child, rewiring child's parent
// pointer. child must belong to the same arena as c.
func (c Cursor) SetRightChild(child Cursor) {
	c.arena.nodes[c.idx].right = child.idx
	if !child.IsNull() {
		c.arena.nodes[child.idx].parent = c.idx
	}
}

// EnsureLeftChild returns c's existing left child, or creates one bearing
// the default symbolic value (epsilon) and attaches it.
func (c Cursor) EnsureLeftChild() Cursor {
	if lc := c.LeftChild(); !lc.IsNull() {
		return lc
	}
	child := NewTreeIn(c.arena, value.Epsilon())
	c.SetLeftChild(child)
	return child
}

// EnsureRightChild returns c's existing right child, or creates one
// bearing the default symbolic value (epsilon) and attaches it.
func (c Cursor) EnsureRightChild() Cursor {
	if rc := c.RightChild(); !rc.IsNull() {
		return rc
	}
	child := NewTreeIn(c.arena, value.Epsilon())
	c.SetRightChild(child)
	return child
}

// RightAscent copies c's node into a new arena slot, re-parents the new
// slot as c's left child, clears c's right child, and leaves c pointing at
// the (now internal) original slot, per spec.md §3. The caller is expected
// to overwrite c's value with the new binary operator immediately after.
func (c Cursor) RightAscent() {
	newIdx := c.arena.alloc(c.Value())
	newNode := Cursor{arena: c.arena, idx: newIdx}

	// The new slot inherits c's former children.
	newNode.SetLeftChild(c.LeftChild())
	newNode.SetRightChild(c.RightChild())

	c.arena.nodes[c.idx].left = nullIdx
	c.arena.nodes[c.idx].right = nullIdx
	c.SetLeftChild(newNode)
}

// LeftAscent is the mirror image of RightAscent: it opens a left slot for
// the next operand while keeping c's subtree as the right child.
func (c Cursor) LeftAscent() {
	newIdx := c.arena.alloc(c.Value())
	newNode := Cursor{arena: c.arena, idx: newIdx}

	newNode.SetLeftChild(c.LeftChild())
	newNode.SetRightChild(c.RightChild())

	c.arena.nodes[c.idx].left = nullIdx
	c.arena.nodes[c.idx].right = nullIdx
	c.SetRightChild(newNode)
}

// CollapseLeft replaces c with its left subtree's root: c's right subtree
// is destroyed, and c's own slot becomes a tombstone once the caller drops
// its reference (the left subtree's root inherits c's former parent link).
// The returned cursor is the new home of what used to be c.
func (c Cursor) CollapseLeft() Cursor {
	left := c.LeftChild()
	c.DestroyRightSubtree()
	parent := c.Parent()
	if !parent.IsNull() {
		if parent.arena.nodes[parent.idx].left == c.idx {
			parent.SetLeftChild(left)
		} else {
			parent.SetRightChild(left)
		}
	} else if !left.IsNull() {
		c.arena.nodes[left.idx].parent = nullIdx
	}
	c.arena.destroy(c.idx)
	return left
}

// CollapseRight is the mirror image of CollapseLeft.
func (c Cursor) CollapseRight() Cursor {
	right := c.RightChild()
	c.DestroyLeftSubtree()
	parent := c.Parent()
	if !parent.IsNull() {
		if parent.arena.nodes[parent.idx].left == c.idx {
			parent.SetLeftChild(right)
		} else {
			parent.SetRightChild(right)
		}
	} else if !right.IsNull() {
		c.arena.nodes[right.idx].parent = nullIdx
	}
	c.arena.destroy(c.idx)
	return right
}

// DestroyLeftSubtree recursively tombstones every node of c's left
// subtree and detaches it from c.
func (c Cursor) DestroyLeftSubtree() {
	destroySubtree(c.arena, c.arena.nodes[c.idx].left)
	c.arena.nodes[c.idx].left = nullIdx
}

// DestroyRightSubtree recursively tombstones every node of c's right
// subtree and detaches it from c.
func (c Cursor) DestroyRightSubtree() {
	destroySubtree(c.arena, c.arena.nodes[c.idx].right)
	c.arena.nodes[c.idx].right = nullIdx
}

func destroySubtree(a *Arena, idx int) {
	if idx == nullIdx {
		return
	}
	destroySubtree(a, a.nodes[idx].left)
	destroySubtree(a, a.nodes[idx].right)
	a.destroy(idx)
}

// CopyInto performs a pre-order deep copy of c's subtree into dst (which
// may be c's own arena or a distinct one) and returns a cursor to the
// root of the copy, detached (no parent).
func (c Cursor) CopyInto(dst *Arena) Cursor {
	if c.IsNull() {
		return Cursor{arena: dst, idx: nullIdx}
	}
	newIdx := dst.alloc(c.Value())
	newRoot := Cursor{arena: dst, idx: newIdx}
	newRoot.SetLeftChild(c.LeftChild().CopyInto(dst))
	newRoot.SetRightChild(c.RightChild().CopyInto(dst))
	return newRoot
}

// Clone copies c's subtree within its own arena.
func (c Cursor) Clone() Cursor {
	return c.CopyInto(c.arena)
}
