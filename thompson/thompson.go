// Package thompson implements inductive NFAε synthesis from a cleaned
// expression tree, per spec.md §4.G. The input tree must already have had
// σ-closure eliminated (package tree's EliminateSigmaClosure) — Thompson
// synthesis here only knows the five primitives Concatenation, VerticalBar,
// KleeneClosure, PositiveClosure and Optional, plus the two leaf kinds
// Symbol and ε.
package thompson

import (
	verr "github.com/go-relang/relang/error"
	"github.com/go-relang/relang/automaton"
	"github.com/go-relang/relang/tree"
	"github.com/go-relang/relang/value"
)

// Synthesize builds an NFAε recognising the language of root's subtree.
// Throughout, the invariant spec.md §4.G states holds for every
// intermediate automaton: its initial state has no incoming edges, and it
// has exactly one final state, distinct from the initial state, with no
// outgoing edges.
func Synthesize(root tree.Cursor) (*automaton.NFAEps, error) {
	if root.IsNull() {
		return nil, &verr.CoreError{Cause: verr.ExtraneousOperator, Detail: "empty tree"}
	}

	if root.Value().IsSymbol() {
		sym, _ := root.Value().AsSymbol()
		return leaf(value.NewSymbol(sym)), nil
	}
	if root.Value().IsEpsilon() {
		return leaf(value.Epsilon()), nil
	}

	op, err := root.Value().AsOperator()
	if err != nil {
		return nil, err
	}

	switch op {
	case value.Concatenation:
		a, err := Synthesize(root.LeftChild())
		if err != nil {
			return nil, err
		}
		b, err := Synthesize(root.RightChild())
		if err != nil {
			return nil, err
		}
		return concat(a, b), nil
	case value.VerticalBar:
		a, err := Synthesize(root.LeftChild())
		if err != nil {
			return nil, err
		}
		b, err := Synthesize(root.RightChild())
		if err != nil {
			return nil, err
		}
		return union(a, b), nil
	case value.KleeneClosure:
		a, err := Synthesize(root.LeftChild())
		if err != nil {
			return nil, err
		}
		return star(a), nil
	case value.PositiveClosure:
		a, err := Synthesize(root.LeftChild())
		if err != nil {
			return nil, err
		}
		return plus(a), nil
	case value.Optional:
		a, err := Synthesize(root.LeftChild())
		if err != nil {
			return nil, err
		}
		return opt(a), nil
	default:
		return nil, &verr.CoreError{Cause: verr.ExtraneousOperator, Detail: op.String()}
	}
}

// leaf builds the two-state NFAε with one transition that either a Symbol
// or ε leaf produces.
func leaf(label value.Value) *automaton.NFAEps {
	m := automaton.NewNFAEps(0)
	m.Q.Add(1)
	m.F.Add(1)
	if label.IsSymbol() {
		sym, _ := label.AsSymbol()
		m.Sigma.Add(sym)
		m.AddSymbolTransition(0, sym, 1)
	} else {
		m.AddEpsilonTransition(0, 1)
	}
	return m
}

// joined is the result of renumbering b's states disjoint from a's and
// merging Q, Σ, δ, plus the two fresh extremal states every inductive case
// appends.
type joined struct {
	m     *automaton.NFAEps
	initA automaton.State
	finA  automaton.State
	initB automaton.State
	finB  automaton.State
	start automaton.State
	end   automaton.State
}

// join merges a and b into one automaton with disjoint state sets and
// appends two fresh extremal states, per spec.md §4.G: "Joining two
// automata re-numbers one so its state set is disjoint from the other's,
// merges Q, Σ, and δ, then appends two fresh extremal states."
func join(a, b *automaton.NFAEps) joined {
	// Renumbering b is a flat shift past a's greatest state, so every
	// shifted state of b lies above every state of a.
	offset := automaton.FreshState(a.Q, automaton.NewSymbolSet())
	m := automaton.NewNFAEps(a.Q0)
	m.Q = a.Q.Clone()
	m.Sigma = unionSigma(a.Sigma, b.Sigma)
	m.F = a.F.Clone()

	a.Delta.Each(func(k automaton.NFAEpsKey, dest automaton.StateSet) {
		for _, r := range dest.Sorted() {
			m.AddTransition(k.State, k.Label, r)
		}
	})

	shift := func(q automaton.State) automaton.State { return q + offset }
	for _, q := range b.Q.Sorted() {
		m.Q.Add(shift(q))
	}
	for _, q := range b.F.Sorted() {
		m.F.Add(shift(q))
	}
	b.Delta.Each(func(k automaton.NFAEpsKey, dest automaton.StateSet) {
		for _, r := range dest.Sorted() {
			m.AddTransition(shift(k.State), k.Label, shift(r))
		}
	})

	start := automaton.FreshState(m.Q, m.Sigma)
	m.Q.Add(start)
	end := start + 1
	m.Q.Add(end)

	return joined{
		m:     m,
		initA: a.Q0,
		finA:  onlyFinal(a),
		initB: shift(b.Q0),
		finB:  shift(onlyFinal(b)),
		start: start,
		end:   end,
	}
}

func onlyFinal(m *automaton.NFAEps) automaton.State {
	return m.F.Sorted()[0]
}

func unionSigma(a, b automaton.SymbolSet) automaton.SymbolSet {
	out := automaton.NewSymbolSet(a.Sorted()...)
	for _, s := range b.Sorted() {
		out.Add(s)
	}
	return out
}

func concat(a, b *automaton.NFAEps) *automaton.NFAEps {
	j := join(a, b)
	m := j.m
	m.AddEpsilonTransition(j.start, j.initA)
	m.AddEpsilonTransition(j.finA, j.initB)
	m.AddEpsilonTransition(j.finB, j.end)
	return finalize(m, j)
}

func union(a, b *automaton.NFAEps) *automaton.NFAEps {
	j := join(a, b)
	m := j.m
	m.AddEpsilonTransition(j.start, j.initA)
	m.AddEpsilonTransition(j.start, j.initB)
	m.AddEpsilonTransition(j.finA, j.end)
	m.AddEpsilonTransition(j.finB, j.end)
	return finalize(m, j)
}

func plus(a *automaton.NFAEps) *automaton.NFAEps {
	j := joinSingle(a)
	m := j.m
	m.AddEpsilonTransition(j.start, j.initA)
	m.AddEpsilonTransition(j.finA, j.initA)
	m.AddEpsilonTransition(j.finA, j.end)
	return finalize(m, j)
}

func star(a *automaton.NFAEps) *automaton.NFAEps {
	j := joinSingle(a)
	m := j.m
	m.AddEpsilonTransition(j.start, j.initA)
	m.AddEpsilonTransition(j.finA, j.initA)
	m.AddEpsilonTransition(j.finA, j.end)
	m.AddEpsilonTransition(j.start, j.end)
	return finalize(m, j)
}

func opt(a *automaton.NFAEps) *automaton.NFAEps {
	j := joinSingle(a)
	m := j.m
	m.AddEpsilonTransition(j.start, j.initA)
	m.AddEpsilonTransition(j.finA, j.end)
	m.AddEpsilonTransition(j.start, j.end)
	return finalize(m, j)
}

// joinSingle is join's unary counterpart: one operand, two fresh extremal
// states, no renumbering required.
func joinSingle(a *automaton.NFAEps) joined {
	m := automaton.NewNFAEps(a.Q0)
	m.Q = a.Q.Clone()
	m.Sigma = automaton.NewSymbolSet(a.Sigma.Sorted()...)
	m.F = a.F.Clone()
	a.Delta.Each(func(k automaton.NFAEpsKey, dest automaton.StateSet) {
		for _, r := range dest.Sorted() {
			m.AddTransition(k.State, k.Label, r)
		}
	})

	start := automaton.FreshState(m.Q, m.Sigma)
	m.Q.Add(start)
	end := start + 1
	m.Q.Add(end)

	return joined{
		m:     m,
		initA: a.Q0,
		finA:  onlyFinal(a),
		start: start,
		end:   end,
	}
}

func finalize(m *automaton.NFAEps, j joined) *automaton.NFAEps {
	m.Q0 = j.start
	m.F = automaton.NewStateSet(j.end)
	return m
}
