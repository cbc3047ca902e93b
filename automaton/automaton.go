// Package automaton implements the DFA, NFA and NFAε record types spec.md
// §3/§4.D describes, their shared state/alphabet bookkeeping, and the
// state generator conversions and reductions (convert.go, reduce.go,
// bool.go, decide.go, enumerate.go) build on.
package automaton

import (
	"sort"

	"github.com/go-relang/relang/pfunc"
	"github.com/go-relang/relang/value"
)

// State identifies an automaton state. fresh_state and compaction both
// assume states are small non-negative integers, per spec.md §4.D.
type State int

func stateLess(a, b State) bool { return a < b }

// Symbol is the automaton-level alphabet element; it is the same type the
// expression tree and its leaves carry.
type Symbol = value.Symbol

func symbolLess(a, b Symbol) bool { return a < b }

// StateSet is an ordered set of states, used for Q and F throughout this
// package so that every derived construction iterates deterministically.
type StateSet struct {
	m map[State]struct{}
}

// NewStateSet builds a StateSet containing the given states.
func NewStateSet(states ...State) StateSet {
	s := StateSet{m: map[State]struct{}{}}
	for _, q := range states {
		s.m[q] = struct{}{}
	}
	return s
}

func (s StateSet) Add(q State)      { s.m[q] = struct{}{} }
func (s StateSet) Has(q State) bool { _, ok := s.m[q]; return ok }
func (s StateSet) Remove(q State)   { delete(s.m, q) }
func (s StateSet) Len() int         { return len(s.m) }
func (s StateSet) IsEmpty() bool    { return len(s.m) == 0 }

// Sorted returns the set's members in ascending order.
func (s StateSet) Sorted() []State {
	out := make([]State, 0, len(s.m))
	for q := range s.m {
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Intersects reports whether s and t share at least one member.
func (s StateSet) Intersects(t StateSet) bool {
	for q := range s.m {
		if t.Has(q) {
			return true
		}
	}
	return false
}

// Clone returns a StateSet with the same members, independent storage.
func (s StateSet) Clone() StateSet {
	out := NewStateSet()
	for q := range s.m {
		out.Add(q)
	}
	return out
}

// SymbolSet is an ordered set of alphabet symbols.
type SymbolSet struct {
	m map[Symbol]struct{}
}

// NewSymbolSet builds a SymbolSet containing the given symbols.
func NewSymbolSet(syms ...Symbol) SymbolSet {
	s := SymbolSet{m: map[Symbol]struct{}{}}
	for _, a := range syms {
		s.m[a] = struct{}{}
	}
	return s
}

func (s SymbolSet) Add(a Symbol)      { s.m[a] = struct{}{} }
func (s SymbolSet) Has(a Symbol) bool { _, ok := s.m[a]; return ok }
func (s SymbolSet) Len() int          { return len(s.m) }

// Sorted returns the alphabet in ascending order.
func (s SymbolSet) Sorted() []Symbol {
	out := make([]Symbol, 0, len(s.m))
	for a := range s.m {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// DFAKey is the domain element of a DFA's transition function: a state and
// the symbol read in it.
type DFAKey struct {
	State  State
	Symbol Symbol
}

func dfaKeyLess(a, b DFAKey) bool {
	if a.State != b.State {
		return a.State < b.State
	}
	return a.Symbol < b.Symbol
}

// DFA is δ: (Q×Σ) ⇸ Q.
type DFA struct {
	Q     StateSet
	Sigma SymbolSet
	Delta *pfunc.Func[DFAKey, State]
	Q0    State
	F     StateSet
}

// NewDFA builds an empty-alphabet DFA whose sole state is q0, non-final.
func NewDFA(q0 State) *DFA {
	return &DFA{
		Q:     NewStateSet(q0),
		Sigma: NewSymbolSet(),
		Delta: pfunc.New[DFAKey, State](dfaKeyLess),
		Q0:    q0,
		F:     NewStateSet(),
	}
}

// Accepts runs w through m from Q0, per spec.md §4.D: it stops and rejects
// on the first absent transition, and otherwise accepts iff the state
// reached after consuming all of w is final.
func (m *DFA) Accepts(w []Symbol) bool {
	q := m.Q0
	for _, a := range w {
		next, err := m.Delta.Apply(DFAKey{State: q, Symbol: a})
		if err != nil {
			return false
		}
		q = next
	}
	return m.F.Has(q)
}

// NFAKey is the domain element of an NFA's transition function.
type NFAKey struct {
	State  State
	Symbol Symbol
}

func nfaKeyLess(a, b NFAKey) bool {
	if a.State != b.State {
		return a.State < b.State
	}
	return a.Symbol < b.Symbol
}

// NFA is δ: (Q×Σ) ⇸ 2^Q, with a missing key read as ∅.
type NFA struct {
	Q     StateSet
	Sigma SymbolSet
	Delta *pfunc.Func[NFAKey, StateSet]
	Q0    State
	F     StateSet
}

// NewNFA builds an empty-alphabet NFA whose sole state is q0, non-final.
func NewNFA(q0 State) *NFA {
	return &NFA{
		Q:     NewStateSet(q0),
		Sigma: NewSymbolSet(),
		Delta: pfunc.New[NFAKey, StateSet](nfaKeyLess),
		Q0:    q0,
		F:     NewStateSet(),
	}
}

// Move returns δ(q, a), or the empty StateSet if (q, a) is out of domain.
func (m *NFA) Move(q State, a Symbol) StateSet {
	s, err := m.Delta.Apply(NFAKey{State: q, Symbol: a})
	if err != nil {
		return NewStateSet()
	}
	return s
}

// NFAEpsKey is the domain element of an NFAε's transition function: the
// label is a symbolic value restricted to the Symbol or ε tags, reusing
// the same closed tagged union the expression tree uses for its leaves.
type NFAEpsKey struct {
	State State
	Label value.Value
}

func nfaEpsKeyLess(a, b NFAEpsKey) bool {
	if a.State != b.State {
		return a.State < b.State
	}
	return a.Label.Less(b.Label)
}

// NFAEps is δ: (Q×(Σ⊎{ε})) ⇸ 2^Q.
type NFAEps struct {
	Q     StateSet
	Sigma SymbolSet
	Delta *pfunc.Func[NFAEpsKey, StateSet]
	Q0    State
	F     StateSet
}

// NewNFAEps builds an empty-alphabet NFAε whose sole state is q0, non-final.
func NewNFAEps(q0 State) *NFAEps {
	return &NFAEps{
		Q:     NewStateSet(q0),
		Sigma: NewSymbolSet(),
		Delta: pfunc.New[NFAEpsKey, StateSet](nfaEpsKeyLess),
		Q0:    q0,
		F:     NewStateSet(),
	}
}

// AddSymbolTransition adds q -a-> r to m, creating the label value.
func (m *NFAEps) AddSymbolTransition(q State, a Symbol, r State) {
	m.addTransition(q, value.NewSymbol(a), r)
}

// AddEpsilonTransition adds q -ε-> r to m.
func (m *NFAEps) AddEpsilonTransition(q, r State) {
	m.addTransition(q, value.Epsilon(), r)
}

// AddTransition adds q -label-> r to m for an arbitrary symbolic label
// (Symbol or ε), used by callers copying transitions wholesale from
// another NFAε (renumbering states, joining automata).
func (m *NFAEps) AddTransition(q State, label value.Value, r State) {
	m.addTransition(q, label, r)
}

func (m *NFAEps) addTransition(q State, label value.Value, r State) {
	key := NFAEpsKey{State: q, Label: label}
	dest, err := m.Delta.Apply(key)
	if err != nil {
		dest = NewStateSet()
	}
	dest.Add(r)
	m.Delta.Insert(key, dest)
}

// FreshState returns a state guaranteed to be absent from Q, per spec.md
// §4.D: it is one past the greatest of Q ∪ Σ read as integers (the "∪ Σ"
// guard matters once compaction has made states and symbols the same
// underlying integer type); when Q ∪ Σ is empty it is state 0.
func FreshState(q StateSet, sigma SymbolSet) State {
	max := State(-1)
	for _, q := range q.Sorted() {
		if q > max {
			max = q
		}
	}
	for _, a := range sigma.Sorted() {
		if s := State(a); s > max {
			max = s
		}
	}
	return max + 1
}

// Complete fills in every missing (q,a) transition of a DFA by routing it
// to a single fresh non-final sink state, per spec.md §4.D. If m is
// already total, or Σ is empty, m is returned unchanged (but still a
// distinct value, consistent with the value-level lifecycle the rest of
// this module follows).
func Complete(m *DFA) *DFA {
	out := cloneDFA(m)
	if out.Sigma.Len() == 0 {
		return out
	}

	missing := false
	for _, q := range out.Q.Sorted() {
		for _, a := range out.Sigma.Sorted() {
			if !out.Delta.InDomain(DFAKey{State: q, Symbol: a}) {
				missing = true
			}
		}
	}
	if !missing {
		return out
	}

	sink := FreshState(out.Q, out.Sigma)
	out.Q.Add(sink)
	for _, q := range out.Q.Sorted() {
		for _, a := range out.Sigma.Sorted() {
			key := DFAKey{State: q, Symbol: a}
			if !out.Delta.InDomain(key) {
				out.Delta.Insert(key, sink)
			}
		}
	}
	return out
}

func cloneDFA(m *DFA) *DFA {
	out := &DFA{
		Q:     m.Q.Clone(),
		Sigma: NewSymbolSet(m.Sigma.Sorted()...),
		Delta: m.Delta.Clone(),
		Q0:    m.Q0,
		F:     m.F.Clone(),
	}
	return out
}
