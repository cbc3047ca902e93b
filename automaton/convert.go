package automaton

import (
	"strconv"
	"strings"

	"github.com/go-relang/relang/value"
)

// ToNFA wraps every DFA transition as a singleton set, per spec.md §4.I.
func ToNFA(m *DFA) *NFA {
	out := NewNFA(m.Q0)
	out.Q = m.Q.Clone()
	out.Sigma = NewSymbolSet(m.Sigma.Sorted()...)
	out.F = m.F.Clone()
	m.Delta.Each(func(k DFAKey, q State) {
		out.Delta.Insert(NFAKey{State: k.State, Symbol: k.Symbol}, NewStateSet(q))
	})
	return out
}

// stateSetKey is a canonical, comparable representation of a StateSet,
// used to recognise when subset construction revisits a subset it has
// already turned into a DFA state.
type stateSetKey string

func keyOf(s StateSet) stateSetKey {
	sorted := s.Sorted()
	parts := make([]string, len(sorted))
	for i, q := range sorted {
		parts[i] = strconv.Itoa(int(q))
	}
	return stateSetKey(strings.Join(parts, ","))
}

// ToDFA determinises an NFA by subset construction, per spec.md §4.I: the
// start state is {q0}; only subsets actually reachable are materialised,
// via a worklist queue, so the result's Q is no bigger than it needs to be.
func ToDFA(m *NFA) *DFA {
	start := NewStateSet(m.Q0)
	startKey := keyOf(start)

	subsets := map[stateSetKey]StateSet{startKey: start}
	labels := map[stateSetKey]State{startKey: 0}
	nextLabel := State(1)

	out := NewDFA(0)
	out.Sigma = NewSymbolSet(m.Sigma.Sorted()...)

	worklist := []stateSetKey{startKey}
	for len(worklist) > 0 {
		k := worklist[0]
		worklist = worklist[1:]
		subset := subsets[k]
		from := labels[k]
		out.Q.Add(from)
		if subset.Intersects(m.F) {
			out.F.Add(from)
		}

		for _, a := range out.Sigma.Sorted() {
			dest := NewStateSet()
			for _, q := range subset.Sorted() {
				for _, r := range m.Move(q, a).Sorted() {
					dest.Add(r)
				}
			}
			if dest.IsEmpty() {
				continue
			}
			dk := keyOf(dest)
			label, seen := labels[dk]
			if !seen {
				label = nextLabel
				nextLabel++
				labels[dk] = label
				subsets[dk] = dest
				worklist = append(worklist, dk)
			}
			out.Delta.Insert(DFAKey{State: from, Symbol: a}, label)
		}
	}
	return out
}

// EpsilonClosure computes the least fixed point of ε-reachability from q,
// always reflexive (q ∈ closure(q)).
func EpsilonClosure(m *NFAEps, q State) StateSet {
	closure := NewStateSet(q)
	worklist := []State{q}
	for len(worklist) > 0 {
		cur := worklist[0]
		worklist = worklist[1:]
		key := NFAEpsKey{State: cur, Label: value.Epsilon()}
		dest, err := m.Delta.Apply(key)
		if err != nil {
			continue
		}
		for _, r := range dest.Sorted() {
			if !closure.Has(r) {
				closure.Add(r)
				worklist = append(worklist, r)
			}
		}
	}
	return closure
}

// ToNFAFromEps removes ε-transitions, per spec.md §4.I:
// δ'(q,a) = ε-closure(⋃_{p ∈ ε-closure(q)} δ(p,a)); F' additionally
// contains q0 if ε-closure(q0) meets F.
func ToNFAFromEps(m *NFAEps) *NFA {
	out := NewNFA(m.Q0)
	out.Q = m.Q.Clone()
	out.Sigma = NewSymbolSet(m.Sigma.Sorted()...)
	out.F = m.F.Clone()

	closures := map[State]StateSet{}
	for _, q := range out.Q.Sorted() {
		closures[q] = EpsilonClosure(m, q)
	}
	if closures[m.Q0].Intersects(m.F) {
		out.F.Add(m.Q0)
	}

	for _, q := range out.Q.Sorted() {
		for _, a := range out.Sigma.Sorted() {
			dest := NewStateSet()
			for _, p := range closures[q].Sorted() {
				key := NFAEpsKey{State: p, Label: value.NewSymbol(a)}
				reached, err := m.Delta.Apply(key)
				if err != nil {
					continue
				}
				for _, r := range reached.Sorted() {
					for _, s := range closures[r].Sorted() {
						dest.Add(s)
					}
				}
			}
			if !dest.IsEmpty() {
				out.Delta.Insert(NFAKey{State: q, Symbol: a}, dest)
			}
		}
	}
	return out
}

// ToDFAFromEps lifts an NFAε all the way to a DFA via the NFA intermediate.
func ToDFAFromEps(m *NFAEps) *DFA {
	return ToDFA(ToNFAFromEps(m))
}
