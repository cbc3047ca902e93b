// Package rlgrammar implements the right-linear grammar record type
// spec.md §3 defines (G = (N, T, P, S)) and the conversions, dead/
// unreachable non-terminal removal, and decisions spec.md §4.I/§4.L state
// for it. It is kept separate from the teacher's own `grammar` package,
// which implements a different kind of grammar (a context-free grammar
// feeding an LALR parsing-table generator) over a disjoint domain.
package rlgrammar

import (
	"sort"

	"github.com/go-relang/relang/value"
)

// Production is a right-linear production A → α, where α is either a
// single terminal ([a]) or a terminal followed by a non-terminal ([a, B]),
// per spec.md §3.
type Production struct {
	Head value.Value
	Body []value.Value
}

func (p Production) isTerminal() bool { return len(p.Body) == 1 }

// equal reports whether p and q are the same production.
func (p Production) equal(q Production) bool {
	if !p.Head.Equal(q.Head) || len(p.Body) != len(q.Body) {
		return false
	}
	for i := range p.Body {
		if !p.Body[i].Equal(q.Body[i]) {
			return false
		}
	}
	return true
}

func productionLess(p, q Production) bool {
	if c := p.Head.Compare(q.Head); c != 0 {
		return c < 0
	}
	if len(p.Body) != len(q.Body) {
		return len(p.Body) < len(q.Body)
	}
	for i := range p.Body {
		if c := p.Body[i].Compare(q.Body[i]); c != 0 {
			return c < 0
		}
	}
	return false
}

// Grammar is a right-linear grammar G = (N, T, P, S): N (non-terminals)
// and T (terminals) are disjoint sets of symbolic values, P is a sorted
// set of productions, S ∈ N is the start symbol.
type Grammar struct {
	N []value.Value
	T []value.Value
	P []Production
	S value.Value
}

// NewGrammar builds an empty grammar with start symbol s, which is added
// to N.
func NewGrammar(s value.Value) *Grammar {
	return &Grammar{N: []value.Value{s}, S: s}
}

func containsValue(vs []value.Value, v value.Value) bool {
	for _, x := range vs {
		if x.Equal(v) {
			return true
		}
	}
	return false
}

// AddNonTerminal adds nt to N if it is not already present.
func (g *Grammar) AddNonTerminal(nt value.Value) {
	if !containsValue(g.N, nt) {
		g.N = append(g.N, nt)
	}
}

// AddTerminal adds t to T if it is not already present.
func (g *Grammar) AddTerminal(t value.Value) {
	if !containsValue(g.T, t) {
		g.T = append(g.T, t)
	}
}

// AddProduction adds head → body to P, keeping P sorted and free of
// duplicates. head is added to N and every terminal symbol in body is
// added to T.
func (g *Grammar) AddProduction(head value.Value, body ...value.Value) {
	g.AddNonTerminal(head)
	for _, sym := range body {
		if sym.IsSymbol() {
			g.AddTerminal(sym)
		}
	}
	p := Production{Head: head, Body: body}
	for _, existing := range g.P {
		if existing.equal(p) {
			return
		}
	}
	g.P = append(g.P, p)
	sort.Slice(g.P, func(i, j int) bool { return productionLess(g.P[i], g.P[j]) })
}

// ProductionsFrom returns every production whose head is nt.
func (g *Grammar) ProductionsFrom(nt value.Value) []Production {
	var out []Production
	for _, p := range g.P {
		if p.Head.Equal(nt) {
			out = append(out, p)
		}
	}
	return out
}

func cloneValues(vs []value.Value) []value.Value {
	out := make([]value.Value, len(vs))
	copy(out, vs)
	return out
}

func (g *Grammar) clone() *Grammar {
	out := &Grammar{N: cloneValues(g.N), T: cloneValues(g.T), S: g.S}
	out.P = make([]Production, len(g.P))
	copy(out.P, g.P)
	return out
}
