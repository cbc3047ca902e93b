package rlgrammar

import (
	"fmt"
	"sort"

	"github.com/go-relang/relang/automaton"
	"github.com/go-relang/relang/value"
)

// ToNFA builds the NFA spec.md §4.I's Grammar → NFA rule describes:
// non-terminals become states plus one fresh accepting state f; for each
// production A → aB add (A, a) → B; for A → a add (A, a) → f; start = S;
// F = {f}.
func ToNFA(g *Grammar) *automaton.NFA {
	stateOf := map[value.Value]automaton.State{}
	order := sortedValues(g.N)
	for i, nt := range order {
		stateOf[nt] = automaton.State(i)
	}
	f := automaton.State(len(order))

	m := automaton.NewNFA(stateOf[g.S])
	for _, q := range stateOf {
		m.Q.Add(q)
	}
	m.Q.Add(f)
	m.F.Add(f)

	for _, p := range g.P {
		a, err := p.Body[0].AsSymbol()
		if err != nil {
			continue
		}
		m.Sigma.Add(a)
		q := stateOf[p.Head]
		var r automaton.State
		if p.isTerminal() {
			r = f
		} else {
			r = stateOf[p.Body[1]]
		}
		key := automaton.NFAKey{State: q, Symbol: a}
		dest, err := m.Delta.Apply(key)
		if err != nil {
			dest = automaton.NewStateSet()
		}
		dest.Add(r)
		m.Delta.Insert(key, dest)
	}
	return m
}

// FromNFA builds the grammar spec.md §4.I's NFA → Grammar rule describes:
// non-terminals = states, named "q<n>"; start = q0; for each (q, a) → r,
// emit q → a r always, and q → a additionally if r ∈ F.
func FromNFA(m *automaton.NFA) *Grammar {
	nt := func(q automaton.State) value.Value {
		return value.NewNonTerminal(value.NonTerminal(fmt.Sprintf("q%d", q)))
	}

	g := NewGrammar(nt(m.Q0))
	for _, q := range m.Q.Sorted() {
		g.AddNonTerminal(nt(q))
	}

	for _, q := range m.Q.Sorted() {
		for _, a := range m.Sigma.Sorted() {
			for _, r := range m.Move(q, a).Sorted() {
				g.AddProduction(nt(q), value.NewSymbol(a), nt(r))
				if m.F.Has(r) {
					g.AddProduction(nt(q), value.NewSymbol(a))
				}
			}
		}
	}
	return g
}

func sortedValues(vs []value.Value) []value.Value {
	out := cloneValues(vs)
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}
