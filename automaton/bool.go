package automaton

// Phi is the Boolean predicate a product construction combines the two
// operand DFAs' "is this component final" bits with.
type Phi func(inF1, inF2 bool) bool

func Or(a, b bool) bool  { return a || b }
func And(a, b bool) bool { return a && b }

// AndNot is the predicate behind difference: m1 minus m2.
func AndNot(a, b bool) bool { return a && !b }

// productKey pairs one state from each operand; product states live in
// Q1×Q2, relabelled to a flat integer range as they are discovered.
type productKey struct {
	q1, q2 State
}

// Product runs two complete DFAs over a shared alphabet simultaneously and
// combines their acceptance under phi, per spec.md §4.K. Both inputs are
// completed first so that the simultaneous run never gets stuck early.
func Product(m1, m2 *DFA, phi Phi) *DFA {
	m1 = Complete(m1)
	m2 = Complete(m2)

	sigma := NewSymbolSet()
	for _, a := range m1.Sigma.Sorted() {
		sigma.Add(a)
	}
	for _, a := range m2.Sigma.Sorted() {
		sigma.Add(a)
	}

	labels := map[productKey]State{}
	var order []productKey
	labelOf := func(k productKey) State {
		if l, ok := labels[k]; ok {
			return l
		}
		l := State(len(labels))
		labels[k] = l
		order = append(order, k)
		return l
	}

	start := productKey{m1.Q0, m2.Q0}
	startLabel := labelOf(start)

	out := NewDFA(startLabel)
	out.Sigma = sigma

	worklist := []productKey{start}
	seen := map[productKey]bool{start: true}
	for len(worklist) > 0 {
		cur := worklist[0]
		worklist = worklist[1:]
		from := labelOf(cur)
		out.Q.Add(from)
		if phi(m1.F.Has(cur.q1), m2.F.Has(cur.q2)) {
			out.F.Add(from)
		}

		for _, a := range sigma.Sorted() {
			r1, err1 := m1.Delta.Apply(DFAKey{State: cur.q1, Symbol: a})
			r2, err2 := m2.Delta.Apply(DFAKey{State: cur.q2, Symbol: a})
			if err1 != nil || err2 != nil {
				continue
			}
			dest := productKey{r1, r2}
			to := labelOf(dest)
			out.Delta.Insert(DFAKey{State: from, Symbol: a}, to)
			if !seen[dest] {
				seen[dest] = true
				worklist = append(worklist, dest)
			}
		}
	}
	return out
}

// Union, Intersection and Difference are the named products spec.md §4.K
// calls out.
func Union(m1, m2 *DFA) *DFA        { return Product(m1, m2, Or) }
func Intersection(m1, m2 *DFA) *DFA { return Product(m1, m2, And) }
func Difference(m1, m2 *DFA) *DFA   { return Product(m1, m2, AndNot) }

// Complement flips the final set after completion, per spec.md §4.K.
func Complement(m *DFA) *DFA {
	out := Complete(m)
	flipped := out.Q.Clone()
	newF := NewStateSet()
	for _, q := range flipped.Sorted() {
		if !out.F.Has(q) {
			newF.Add(q)
		}
	}
	out.F = newF
	return out
}

// Reverse flips every transition of an NFAε, adds a fresh start state that
// ε-transitions to every old final state, and makes the old start state
// the unique new final state, per spec.md §4.K.
func Reverse(m *NFAEps) *NFAEps {
	newStart := FreshState(m.Q, m.Sigma)

	out := NewNFAEps(newStart)
	out.Sigma = NewSymbolSet(m.Sigma.Sorted()...)
	out.Q = m.Q.Clone()
	out.Q.Add(newStart)
	out.F = NewStateSet(m.Q0)

	m.Delta.Each(func(k NFAEpsKey, dest StateSet) {
		for _, r := range dest.Sorted() {
			out.addTransition(r, k.Label, k.State)
		}
	})
	for _, f := range m.F.Sorted() {
		out.AddEpsilonTransition(newStart, f)
	}
	return out
}
