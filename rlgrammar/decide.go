package rlgrammar

import "github.com/go-relang/relang/value"

// Empty reports whether g derives no word, per spec.md §4.L:
// empty(G) ≡ productionsFrom(S) = ∅ after remove_dead.
func Empty(g *Grammar) bool {
	reduced := RemoveDead(g)
	return len(reduced.ProductionsFrom(reduced.S)) == 0
}

// Infinite reports whether g derives infinitely many words, per spec.md
// §4.L: after remove_unreachable ∘ remove_dead, the non-terminal
// derivation graph (an edge A → B per production A → aB) has a cycle
// reachable from S. The three-color DFS mirrors automaton.Infinite's.
func Infinite(g *Grammar) bool {
	reduced := RemoveUnreachable(RemoveDead(g))

	const (
		unvisited = 0
		onStack   = 1
		done      = 2
	)
	color := map[value.Value]int{}
	var hasCycle bool

	var visit func(nt value.Value)
	visit = func(nt value.Value) {
		if hasCycle {
			return
		}
		color[nt] = onStack
		for _, p := range reduced.ProductionsFrom(nt) {
			if p.isTerminal() {
				continue
			}
			b := p.Body[1]
			switch color[b] {
			case onStack:
				hasCycle = true
				return
			case unvisited:
				visit(b)
			}
		}
		color[nt] = done
	}
	visit(reduced.S)
	return hasCycle
}

// Finite is the negation of Infinite.
func Finite(g *Grammar) bool {
	return !Infinite(g)
}
