package automaton

// Empty reports whether m accepts no word, per spec.md §4.K:
// empty(M) ≡ minimise(compact(M)).F = ∅.
func Empty(m *DFA) bool {
	return Minimise(Compact(m, 0)).F.IsEmpty()
}

// Infinite reports whether m accepts infinitely many words, per spec.md
// §4.K and the resolution of its open question in §9: after remove_dead,
// some reachable state lies on a directed cycle (not after minimise —
// minimising first can hide or distort exactly the cycle being tested for,
// which is why the source's two disagreeing revisions are resolved toward
// the dead-state-free precondition). remove_unreachable runs first so the
// cycle search never considers a state m.Q0 cannot reach, mirroring
// rlgrammar.Infinite's DFS starting only from the grammar's start symbol.
func Infinite(m *DFA) bool {
	reduced := RemoveDead(RemoveUnreachable(m))
	if reduced.Q.IsEmpty() {
		return false
	}

	const (
		unvisited = 0
		onStack   = 1
		done      = 2
	)
	color := map[State]int{}
	var hasCycle bool

	var visit func(q State)
	visit = func(q State) {
		if hasCycle {
			return
		}
		color[q] = onStack
		for _, a := range reduced.Sigma.Sorted() {
			r, err := reduced.Delta.Apply(DFAKey{State: q, Symbol: a})
			if err != nil {
				continue
			}
			switch color[r] {
			case onStack:
				hasCycle = true
				return
			case unvisited:
				visit(r)
			}
		}
		color[q] = done
	}
	for _, q := range reduced.Q.Sorted() {
		if color[q] == unvisited {
			visit(q)
		}
		if hasCycle {
			return true
		}
	}
	return false
}

// Finite is the negation of Infinite.
func Finite(m *DFA) bool {
	return !Infinite(m)
}

// Included reports whether L(m1) ⊆ L(m2).
func Included(m1, m2 *DFA) bool {
	return Empty(Difference(m1, m2))
}

// Equivalent reports whether L(m1) = L(m2).
func Equivalent(m1, m2 *DFA) bool {
	return Included(m1, m2) && Included(m2, m1)
}

// Disjoint reports whether L(m1) ∩ L(m2) = ∅.
func Disjoint(m1, m2 *DFA) bool {
	return Empty(Intersection(m1, m2))
}

// Complementary reports whether L(m1) = Σ* ∖ L(m2).
func Complementary(m1, m2 *DFA) bool {
	return Equivalent(m1, Complement(m2))
}
