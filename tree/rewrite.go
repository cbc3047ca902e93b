package tree

import "github.com/go-relang/relang/value"

// EliminateSigmaClosure rewrites every x:y node of root's subtree into its
// defining expansion x(yx)*, in place, bottom-up. spec.md §4.F treats σ-
// closure as syntactic sugar rather than a fifth primitive that every
// downstream synthesis algorithm would otherwise need to special-case.
func EliminateSigmaClosure(root Cursor) {
	if root.IsNull() {
		return
	}
	EliminateSigmaClosure(root.LeftChild())
	EliminateSigmaClosure(root.RightChild())

	op, err := root.Value().AsOperator()
	if err != nil || op != value.SigmaClosure {
		return
	}

	x := root.LeftChild()
	y := root.RightChild()
	xClone := x.Clone()

	// Detach x and y from root without destroying them: x is reused as the
	// new outer left operand, y as the left operand of (yx).
	root.arena.nodes[root.idx].left = nullIdx
	root.arena.nodes[root.idx].right = nullIdx
	root.arena.nodes[x.idx].parent = nullIdx
	root.arena.nodes[y.idx].parent = nullIdx

	// Build (y x) under a fresh concatenation node, close it under Kleene
	// star, and concatenate the original x back in front.
	yx := NewTreeIn(root.arena, value.NewOperator(value.Concatenation))
	yx.SetLeftChild(y)
	yx.SetRightChild(xClone)

	star := NewTreeIn(root.arena, value.NewOperator(value.KleeneClosure))
	star.SetLeftChild(yx)

	root.SetValue(value.NewOperator(value.Concatenation))
	root.SetLeftChild(x)
	root.SetRightChild(star)
}

// wrapUnary inserts a fresh unary-operator node above sub, taking sub's
// former place in its parent (if any) and making sub that node's left
// operand. The returned cursor is the new node.
func wrapUnary(sub Cursor, op value.Operator) Cursor {
	parent := sub.Parent()
	wasLeft := !parent.IsNull() && parent.arena.nodes[parent.idx].left == sub.idx

	newIdx := sub.arena.alloc(value.NewOperator(op))
	newNode := Cursor{arena: sub.arena, idx: newIdx}

	sub.arena.nodes[sub.idx].parent = nullIdx
	newNode.SetLeftChild(sub)

	if !parent.IsNull() {
		if wasLeft {
			parent.SetLeftChild(newNode)
		} else {
			parent.SetRightChild(newNode)
		}
	}
	return newNode
}

// PruneEpsilon simplifies every node of root's subtree, bottom-up, per the
// table in spec.md §4.F: unary closures of ε collapse to ε; a binary node
// with one ε operand degrades to the corresponding unary form over the
// surviving operand (`.` drops the ε operand entirely, `|` and `:` fold
// into `?` and `+`/`*`). It reports whether the rewritten subtree is itself
// equivalent to ε, so a caller higher up the tree can apply its own rule
// without re-inspecting the result. The rewriter never fails.
func PruneEpsilon(root Cursor) (Cursor, bool) {
	if root.IsNull() {
		return root, false
	}
	if root.Value().IsEpsilon() {
		return root, true
	}
	if root.Value().IsSymbol() {
		return root, false
	}

	op, err := root.Value().AsOperator()
	if err != nil {
		// Parenthesis nodes do not belong in a parsed tree; pass through.
		return root, false
	}

	if op.IsUnary() {
		_, childIsEps := PruneEpsilon(root.LeftChild())
		if childIsEps {
			return root.CollapseLeft(), true
		}
		return root, false
	}

	_, leftIsEps := PruneEpsilon(root.LeftChild())
	_, rightIsEps := PruneEpsilon(root.RightChild())

	switch op {
	case value.Concatenation:
		switch {
		case leftIsEps:
			return root.CollapseRight(), rightIsEps
		case rightIsEps:
			return root.CollapseLeft(), leftIsEps
		default:
			return root, false
		}
	case value.VerticalBar:
		switch {
		case leftIsEps:
			root.DestroyLeftSubtree()
			promoted := root.CollapseRight()
			return wrapUnary(promoted, value.Optional), rightIsEps
		case rightIsEps:
			root.DestroyRightSubtree()
			promoted := root.CollapseLeft()
			return wrapUnary(promoted, value.Optional), leftIsEps
		default:
			return root, false
		}
	case value.SigmaClosure:
		switch {
		case leftIsEps:
			root.DestroyLeftSubtree()
			promoted := root.CollapseRight()
			return wrapUnary(promoted, value.KleeneClosure), rightIsEps
		case rightIsEps:
			root.DestroyRightSubtree()
			promoted := root.CollapseLeft()
			return wrapUnary(promoted, value.PositiveClosure), leftIsEps
		default:
			return root, false
		}
	default:
		return root, false
	}
}
