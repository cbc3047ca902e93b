package automaton

import "strconv"

// Compact relabels Q as a contiguous integer range starting at offset,
// with q0 mapped to offset and the rest labelled in their iteration order,
// per spec.md §4.J. Transitions and the final set are carried over under
// the relabelling.
func Compact(m *DFA, offset State) *DFA {
	relabel := map[State]State{m.Q0: offset}
	next := offset + 1
	for _, q := range m.Q.Sorted() {
		if q == m.Q0 {
			continue
		}
		relabel[q] = next
		next++
	}

	out := NewDFA(offset)
	out.Sigma = NewSymbolSet(m.Sigma.Sorted()...)
	for _, q := range m.Q.Sorted() {
		out.Q.Add(relabel[q])
	}
	for _, q := range m.F.Sorted() {
		out.F.Add(relabel[q])
	}
	m.Delta.Each(func(k DFAKey, dest State) {
		out.Delta.Insert(DFAKey{State: relabel[k.State], Symbol: k.Symbol}, relabel[dest])
	})
	return out
}

// RemoveUnreachable discards every state not reached from Q0 by a
// breadth-first search through δ.
func RemoveUnreachable(m *DFA) *DFA {
	reachable := NewStateSet(m.Q0)
	worklist := []State{m.Q0}
	for len(worklist) > 0 {
		q := worklist[0]
		worklist = worklist[1:]
		for _, a := range m.Sigma.Sorted() {
			r, err := m.Delta.Apply(DFAKey{State: q, Symbol: a})
			if err != nil {
				continue
			}
			if !reachable.Has(r) {
				reachable.Add(r)
				worklist = append(worklist, r)
			}
		}
	}

	out := NewDFA(m.Q0)
	out.Sigma = NewSymbolSet(m.Sigma.Sorted()...)
	out.Q = reachable
	for _, q := range m.F.Sorted() {
		if reachable.Has(q) {
			out.F.Add(q)
		}
	}
	m.Delta.Each(func(k DFAKey, dest State) {
		if reachable.Has(k.State) && reachable.Has(dest) {
			out.Delta.Insert(k, dest)
		}
	})
	return out
}

// RemoveDead iteratively marks final states and any state with a
// transition into the live set, to a fixpoint, then discards the rest and
// any transition dangling into a removed state, per spec.md §4.J.
func RemoveDead(m *DFA) *DFA {
	live := m.F.Clone()
	for {
		grew := false
		m.Delta.Each(func(k DFAKey, dest State) {
			if live.Has(dest) && !live.Has(k.State) {
				live.Add(k.State)
				grew = true
			}
		})
		if !grew {
			break
		}
	}

	out := NewDFA(m.Q0)
	out.Sigma = NewSymbolSet(m.Sigma.Sorted()...)
	out.Q = live
	for _, q := range m.F.Sorted() {
		if live.Has(q) {
			out.F.Add(q)
		}
	}
	m.Delta.Each(func(k DFAKey, dest State) {
		if live.Has(k.State) && live.Has(dest) {
			out.Delta.Insert(k, dest)
		}
	})
	return out
}

// Minimise reduces m to its canonical minimal DFA, per spec.md §4.J: the
// exported composition is remove_redundant ∘ complete ∘ remove_dead ∘
// remove_unreachable; remove_redundant is partition refinement followed by
// choosing one representative per class.
func Minimise(m *DFA) *DFA {
	reduced := RemoveDead(RemoveUnreachable(m))
	completed := Complete(reduced)
	return removeRedundant(completed)
}

func removeRedundant(m *DFA) *DFA {
	classes := initialPartition(m)
	for {
		refined, changed := refinePartition(m, classes)
		classes = refined
		if !changed {
			break
		}
	}

	classOf := map[State]int{}
	for ci, class := range classes {
		for _, q := range class.Sorted() {
			classOf[q] = ci
		}
	}
	representative := map[int]State{}
	for ci, class := range classes {
		representative[ci] = class.Sorted()[0]
	}

	out := NewDFA(representative[classOf[m.Q0]])
	out.Sigma = NewSymbolSet(m.Sigma.Sorted()...)
	for ci := range classes {
		out.Q.Add(representative[ci])
	}
	for _, q := range m.F.Sorted() {
		out.F.Add(representative[classOf[q]])
	}
	m.Delta.Each(func(k DFAKey, dest State) {
		rep := representative[classOf[k.State]]
		key := DFAKey{State: rep, Symbol: k.Symbol}
		if !out.Delta.InDomain(key) {
			out.Delta.Insert(key, representative[classOf[dest]])
		}
	})
	return out
}

func initialPartition(m *DFA) []StateSet {
	final := NewStateSet()
	nonFinal := NewStateSet()
	for _, q := range m.Q.Sorted() {
		if m.F.Has(q) {
			final.Add(q)
		} else {
			nonFinal.Add(q)
		}
	}
	if final.IsEmpty() {
		return []StateSet{m.Q.Clone()}
	}
	if nonFinal.IsEmpty() {
		return []StateSet{final}
	}
	return []StateSet{final, nonFinal}
}

// refinePartition splits any class containing two states that disagree, for
// some symbol, on which class their transition target falls into.
func refinePartition(m *DFA, classes []StateSet) ([]StateSet, bool) {
	classOf := map[State]int{}
	for ci, class := range classes {
		for _, q := range class.Sorted() {
			classOf[q] = ci
		}
	}

	signature := func(q State) string {
		var b []byte
		for _, a := range m.Sigma.Sorted() {
			dest, err := m.Delta.Apply(DFAKey{State: q, Symbol: a})
			target := -1
			if err == nil {
				target = classOf[dest]
			}
			b = append(b, []byte(signatureField(target))...)
			b = append(b, '|')
		}
		return string(b)
	}

	var next []StateSet
	changed := false
	for _, class := range classes {
		groups := map[string]StateSet{}
		var order []string
		for _, q := range class.Sorted() {
			sig := signature(q)
			if _, ok := groups[sig]; !ok {
				groups[sig] = NewStateSet()
				order = append(order, sig)
			}
			groups[sig].Add(q)
		}
		if len(groups) > 1 {
			changed = true
		}
		for _, sig := range order {
			next = append(next, groups[sig])
		}
	}
	return next, changed
}

func signatureField(classIndex int) string {
	if classIndex < 0 {
		return "x"
	}
	return strconv.Itoa(classIndex)
}
