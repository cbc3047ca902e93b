// Package desimone implements De Simone synthesis (spec.md §4.H): building
// a DFA directly from a right-threaded expression tree, without first
// building an NFAε the way package thompson does. The two constructions
// share their input (a σ-closure-eliminated, ε-pruned expression tree) and
// are expected to recognise the same language.
package desimone

import (
	"sort"
	"strconv"
	"strings"

	"github.com/go-relang/relang/automaton"
	"github.com/go-relang/relang/tree"
	"github.com/go-relang/relang/value"
)

// endOfWord is the sentinel composition member that deepen/advance add in
// place of a cursor when the traversal runs off the end of the tree; a DFA
// state whose composition contains it is final.
const endOfWord = -1

// composition is the unsorted leaf-cursor-index set that deepen/advance
// build; DFA states are compositions.
type composition map[int]struct{}

func newComposition() composition { return composition{} }

func (c composition) add(idx int) { c[idx] = struct{}{} }

func (c composition) merge(other composition) {
	for idx := range other {
		c.add(idx)
	}
}

// sorted returns c's members in ascending order, canonical for use as a map
// key and for deterministic iteration when building transitions.
func (c composition) sorted() []int {
	out := make([]int, 0, len(c))
	for idx := range c {
		out = append(out, idx)
	}
	sort.Ints(out)
	return out
}

func (c composition) key() string {
	s := c.sorted()
	parts := make([]string, len(s))
	for i, idx := range s {
		parts[i] = strconv.Itoa(idx)
	}
	return strings.Join(parts, ",")
}

// walker carries the per-node deepened/advanced flags spec.md §4.H requires
// to bound the mutual recursion; a fresh walker starts each composition
// with a cleared flag map.
type walker struct {
	th       *tree.Threaded
	deepened map[int]bool
	advanced map[int]bool
	set      composition
}

func newWalker(th *tree.Threaded) *walker {
	return &walker{th: th, deepened: map[int]bool{}, advanced: map[int]bool{}, set: newComposition()}
}

func isDotOrBar(c tree.Cursor) bool {
	if c.IsNull() || !c.Value().IsOperator() {
		return false
	}
	op, _ := c.Value().AsOperator()
	return op == value.Concatenation || op == value.VerticalBar
}

func (w *walker) deepen(c tree.Cursor) {
	if c.IsNull() {
		w.set.add(endOfWord)
		return
	}
	idx := c.Index()
	if w.deepened[idx] {
		return
	}
	w.deepened[idx] = true

	if c.Value().IsSymbol() {
		w.set.add(idx)
		return
	}
	if c.Value().IsEpsilon() {
		w.advance(w.th.RightThread(c))
		return
	}
	op, err := c.Value().AsOperator()
	if err != nil {
		return
	}
	switch op {
	case value.KleeneClosure, value.Optional:
		w.deepen(c.LeftChild())
		w.advance(w.th.RightThread(c))
	case value.PositiveClosure:
		w.deepen(c.LeftChild())
	case value.Concatenation:
		w.deepen(c.LeftChild())
	case value.VerticalBar:
		w.deepen(c.LeftChild())
		w.deepen(c.RightChild())
	}
}

func (w *walker) advance(c tree.Cursor) {
	if c.IsNull() {
		w.set.add(endOfWord)
		return
	}
	idx := c.Index()
	if w.advanced[idx] {
		return
	}
	w.advanced[idx] = true

	if c.Value().IsEpsilon() {
		// An ε leaf consumes no input, so advancing past it is advancing
		// past whatever its right-thread leads to. After PruneEpsilon an ε
		// leaf is either the whole tree or the operand of a unary node
		// (e.g. "&|&" prunes to ε?).
		w.advance(w.th.RightThread(c))
		return
	}
	if c.Value().IsSymbol() {
		w.advance(w.th.RightThread(c))
		return
	}
	op, err := c.Value().AsOperator()
	if err != nil {
		return
	}
	switch op {
	case value.KleeneClosure, value.PositiveClosure:
		w.deepen(c.LeftChild())
		w.advance(w.th.RightThread(c))
	case value.Optional:
		w.advance(w.th.RightThread(c))
	case value.Concatenation:
		w.deepen(c.RightChild())
	case value.VerticalBar:
		// Walk the right spine of the alternation down to its last
		// non-'.'/'|' node, whose thread leads past the whole alternation.
		n := c.RightChild()
		for isDotOrBar(n) {
			n = n.RightChild()
		}
		w.advance(w.th.RightThread(n))
	}
}

// deepenFrom runs deepen(c) in a fresh traversal and returns the resulting
// composition.
func deepenFrom(th *tree.Threaded, c tree.Cursor) composition {
	w := newWalker(th)
	w.deepen(c)
	return w.set
}

// adjacent runs advance(leaf) in a fresh traversal, the composition that
// follows consuming leaf's symbol.
func adjacent(th *tree.Threaded, leaf tree.Cursor) composition {
	w := newWalker(th)
	w.advance(leaf)
	return w.set
}

// Synthesize builds the DFA De Simone's threaded-tree composition produces
// for root's subtree. root must already have had σ-closure eliminated and
// ε pruned; Synthesize threads it itself. The returned DFA is compacted to
// start at state 0, per spec.md §4.H's "follow with compaction".
func Synthesize(root tree.Cursor) (*automaton.DFA, error) {
	th := tree.Thread(root)

	byKey := map[string]composition{}
	stateOf := map[string]automaton.State{}
	next := automaton.State(0)

	internState := func(c composition) (automaton.State, bool) {
		k := c.key()
		if q, ok := stateOf[k]; ok {
			return q, false
		}
		q := next
		next++
		byKey[k] = c
		stateOf[k] = q
		return q, true
	}

	dfa := automaton.NewDFA(0)
	start := deepenFrom(th, root)
	q0, _ := internState(start)
	dfa.Q0 = q0
	dfa.Q.Add(q0)

	// worklist over not-yet-expanded compositions, referenced by key.
	pending := []string{start.key()}

	for len(pending) > 0 {
		k := pending[0]
		pending = pending[1:]
		comp := byKey[k]
		q := stateOf[k]

		if _, ok := comp[endOfWord]; ok {
			dfa.F.Add(q)
		}

		bySymbol := map[value.Symbol]composition{}
		for _, idx := range comp.sorted() {
			if idx == endOfWord {
				continue
			}
			leaf := cursorAt(root, idx)
			if !leaf.Value().IsSymbol() {
				continue
			}
			sym, _ := leaf.Value().AsSymbol()
			dfa.Sigma.Add(sym)
			dest := bySymbol[sym]
			if dest == nil {
				dest = newComposition()
			}
			dest.merge(adjacent(th, leaf))
			bySymbol[sym] = dest
		}

		syms := make([]value.Symbol, 0, len(bySymbol))
		for sym := range bySymbol {
			syms = append(syms, sym)
		}
		sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })

		for _, sym := range syms {
			dest := bySymbol[sym]
			r, isNew := internState(dest)
			dfa.Q.Add(r)
			dfa.Delta.Insert(automaton.DFAKey{State: q, Symbol: sym}, r)
			if isNew {
				pending = append(pending, dest.key())
			}
		}
	}

	return automaton.Compact(dfa, 0), nil
}

// cursorAt rebuilds a cursor into root's arena from a raw node index; every
// composition member was produced by deepen/advance walking root's own
// tree, so the index is always valid in root's arena.
func cursorAt(root tree.Cursor, idx int) tree.Cursor {
	return root.AtIndex(idx)
}
