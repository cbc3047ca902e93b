package tree

import (
	"testing"

	"github.com/go-relang/relang/value"
)

func collectInfix(root Cursor) []string {
	th := Thread(root)
	var order []string
	for cur := th.First(); !cur.IsNull(); cur = th.Next(cur) {
		order = append(order, cur.Value().String())
	}
	return order
}

func TestEliminateSigmaClosureExpandsToDefinition(t *testing.T) {
	// x:y, x = 'a', y = 'b'  =>  a(ba)*
	root := NewTree(value.NewOperator(value.SigmaClosure))
	a := root.EnsureLeftChild()
	a.SetValue(value.NewSymbol('a'))
	b := root.EnsureRightChild()
	b.SetValue(value.NewSymbol('b'))

	EliminateSigmaClosure(root)

	op, err := root.Value().AsOperator()
	if err != nil || op != value.Concatenation {
		t.Fatalf("want top-level concatenation after expansion, got %v", root.Value())
	}
	if !root.LeftChild().Value().Equal(value.NewSymbol('a')) {
		t.Fatalf("want outer left operand 'a', got %v", root.LeftChild().Value())
	}
	star := root.RightChild()
	starOp, err := star.Value().AsOperator()
	if err != nil || starOp != value.KleeneClosure {
		t.Fatalf("want right operand to be a Kleene closure, got %v", star.Value())
	}
	inner := star.LeftChild()
	innerOp, err := inner.Value().AsOperator()
	if err != nil || innerOp != value.Concatenation {
		t.Fatalf("want (y x) under the star, got %v", inner.Value())
	}
	if !inner.LeftChild().Value().Equal(value.NewSymbol('b')) {
		t.Fatalf("want y first under the star, got %v", inner.LeftChild().Value())
	}
	if !inner.RightChild().Value().Equal(value.NewSymbol('a')) {
		t.Fatalf("want x second under the star, got %v", inner.RightChild().Value())
	}
}

func TestEliminateSigmaClosureIsAppliedThroughoutSubtree(t *testing.T) {
	// Concatenation(a, x:y) must rewrite the nested sigma-closure too.
	outer := NewTree(value.NewOperator(value.Concatenation))
	a := outer.EnsureLeftChild()
	a.SetValue(value.NewSymbol('a'))
	inner := outer.EnsureRightChild()
	inner.SetValue(value.NewOperator(value.SigmaClosure))
	x := inner.EnsureLeftChild()
	x.SetValue(value.NewSymbol('x'))
	y := inner.EnsureRightChild()
	y.SetValue(value.NewSymbol('y'))

	EliminateSigmaClosure(outer)

	// No SigmaClosure operator should remain anywhere in the tree.
	var walk func(c Cursor) bool
	walk = func(c Cursor) bool {
		if c.IsNull() {
			return false
		}
		if op, err := c.Value().AsOperator(); err == nil && op == value.SigmaClosure {
			return true
		}
		return walk(c.LeftChild()) || walk(c.RightChild())
	}
	if walk(outer) {
		t.Fatal("sigma-closure operator must not survive elimination")
	}
}

func TestPruneEpsilonCollapsesConcatenation(t *testing.T) {
	// ε.a => a
	leftEps := NewTree(value.NewOperator(value.Concatenation))
	leftEps.EnsureLeftChild().SetValue(value.Epsilon())
	leftEps.EnsureRightChild().SetValue(value.NewSymbol('a'))
	got, isEps := PruneEpsilon(leftEps)
	if isEps {
		t.Fatal("ε.a must not itself be ε")
	}
	if !got.Value().Equal(value.NewSymbol('a')) {
		t.Fatalf("want ε.a to collapse to a, got %v", got.Value())
	}

	// a.ε => a
	rightEps := NewTree(value.NewOperator(value.Concatenation))
	rightEps.EnsureLeftChild().SetValue(value.NewSymbol('a'))
	rightEps.EnsureRightChild().SetValue(value.Epsilon())
	got, isEps = PruneEpsilon(rightEps)
	if isEps {
		t.Fatal("a.ε must not itself be ε")
	}
	if !got.Value().Equal(value.NewSymbol('a')) {
		t.Fatalf("want a.ε to collapse to a, got %v", got.Value())
	}
}

func TestPruneEpsilonConcatenationOfTwoEpsilonsStaysEpsilon(t *testing.T) {
	root := NewTree(value.NewOperator(value.Concatenation))
	root.EnsureLeftChild().SetValue(value.Epsilon())
	root.EnsureRightChild().SetValue(value.Epsilon())

	got, isEps := PruneEpsilon(root)
	if !isEps {
		t.Fatal("ε.ε must be reported as ε")
	}
	if !got.Value().IsEpsilon() {
		t.Fatalf("want the collapsed node to carry ε, got %v", got.Value())
	}
}

func TestPruneEpsilonLeavesNonEpsilonConcatenationAlone(t *testing.T) {
	root := NewTree(value.NewOperator(value.Concatenation))
	root.EnsureLeftChild().SetValue(value.NewSymbol('a'))
	root.EnsureRightChild().SetValue(value.NewSymbol('b'))

	got, isEps := PruneEpsilon(root)
	if isEps {
		t.Fatal("a.b must not be reported as ε")
	}
	if !got.Equal(root) {
		t.Fatal("non-epsilon concatenation must be left in place")
	}
	order := collectInfix(got)
	want := []string{"a", ".", "b"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("mismatch at %v; want %v, got %v", i, want, order)
		}
	}
}

func TestPruneEpsilonAlternationFoldsToOptional(t *testing.T) {
	// a|ε => a?
	root := NewTree(value.NewOperator(value.VerticalBar))
	root.EnsureLeftChild().SetValue(value.NewSymbol('a'))
	root.EnsureRightChild().SetValue(value.Epsilon())

	got, isEps := PruneEpsilon(root)
	if isEps {
		t.Fatal("a|ε must not itself be ε")
	}
	op, err := got.Value().AsOperator()
	if err != nil || op != value.Optional {
		t.Fatalf("want a|ε to fold to a?, got %v", got.Value())
	}
	if !got.LeftChild().Value().Equal(value.NewSymbol('a')) {
		t.Fatalf("want the operand of a? to be a, got %v", got.LeftChild().Value())
	}
}

func TestPruneEpsilonUnaryOfEpsilonBecomesEpsilon(t *testing.T) {
	root := NewTree(value.NewOperator(value.KleeneClosure))
	root.EnsureLeftChild().SetValue(value.Epsilon())

	got, isEps := PruneEpsilon(root)
	if !isEps {
		t.Fatal("(ε)* must be reported as ε")
	}
	if !got.Value().IsEpsilon() {
		t.Fatalf("want (ε)* to become ε, got %v", got.Value())
	}
}

func TestPruneEpsilonSigmaClosureFoldsToKleeneOrPositive(t *testing.T) {
	// ε:y => y*
	left := NewTree(value.NewOperator(value.SigmaClosure))
	left.EnsureLeftChild().SetValue(value.Epsilon())
	left.EnsureRightChild().SetValue(value.NewSymbol('y'))
	got, _ := PruneEpsilon(left)
	op, err := got.Value().AsOperator()
	if err != nil || op != value.KleeneClosure {
		t.Fatalf("want ε:y to fold to y*, got %v", got.Value())
	}

	// x:ε => x+
	right := NewTree(value.NewOperator(value.SigmaClosure))
	right.EnsureLeftChild().SetValue(value.NewSymbol('x'))
	right.EnsureRightChild().SetValue(value.Epsilon())
	got, _ = PruneEpsilon(right)
	op, err = got.Value().AsOperator()
	if err != nil || op != value.PositiveClosure {
		t.Fatalf("want x:ε to fold to x+, got %v", got.Value())
	}
}
