package thompson

import (
	"testing"

	"github.com/go-relang/relang/automaton"
	"github.com/go-relang/relang/rx"
	"github.com/go-relang/relang/tree"
)

func parseAndClean(t *testing.T, pattern string) tree.Cursor {
	root, _, err := rx.Parse(pattern)
	if err != nil {
		t.Fatalf("parse %q: %v", pattern, err)
	}
	tree.EliminateSigmaClosure(root)
	root, _ = tree.PruneEpsilon(root)
	return root
}

// checkExtremal verifies the invariant every intermediate and final
// automaton Synthesize produces must hold: a single initial state with no
// incoming edges, and a single final state, distinct from the initial
// state, with no outgoing edges.
func checkExtremal(t *testing.T, m *automaton.NFAEps) {
	if m.F.Len() != 1 {
		t.Fatalf("want exactly one final state, got %v", m.F.Sorted())
	}
	final := m.F.Sorted()[0]
	if final == m.Q0 {
		t.Fatalf("initial and final state must differ, both are %v", m.Q0)
	}
	m.Delta.Each(func(k automaton.NFAEpsKey, dest automaton.StateSet) {
		if dest.Has(m.Q0) {
			t.Fatalf("initial state %v has an incoming edge from %v", m.Q0, k.State)
		}
		if k.State == final {
			t.Fatalf("final state %v has an outgoing edge to %v", final, dest.Sorted())
		}
	})
}

func TestSynthesizeLeafSymbol(t *testing.T) {
	root := parseAndClean(t, "a")
	m, err := Synthesize(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	checkExtremal(t, m)
	if !m.Sigma.Has('a') {
		t.Fatalf("want 'a' in Σ, got %v", m.Sigma.Sorted())
	}
}

func TestSynthesizeConcatenationAndClosureExtremalInvariant(t *testing.T) {
	for _, pattern := range []string{"ab", "a*", "a+", "a?", "a|b", "ab*c|d+"} {
		root := parseAndClean(t, pattern)
		m, err := Synthesize(root)
		if err != nil {
			t.Fatalf("pattern %q: unexpected error: %v", pattern, err)
		}
		checkExtremal(t, m)
	}
}

// TestSynthesizeMatchesWorkedExample transcribes spec.md's "01*|1" worked
// example: applying Thompson, compacting and minimising the result yields a
// DFA recognising {01ⁿ : n ≥ 0} ∪ {1}, whose minimised form has 3 states,
// one initial, two final.
func TestSynthesizeMatchesWorkedExample(t *testing.T) {
	root := parseAndClean(t, "01*|1")
	eps, err := Synthesize(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	checkExtremal(t, eps)

	dfa := automaton.ToDFAFromEps(eps)
	dfa = automaton.Minimise(automaton.Compact(dfa, 0))

	if dfa.Q.Len() != 3 {
		t.Fatalf("want 3 states after minimise, got %v", dfa.Q.Len())
	}
	if dfa.F.Len() != 2 {
		t.Fatalf("want 2 final states after minimise, got %v", dfa.F.Len())
	}

	accept := [][]automaton.Symbol{
		{'1'},
		{'0'},
		{'0', '1'},
		{'0', '1', '1', '1'},
	}
	for _, w := range accept {
		if !dfa.Accepts(w) {
			t.Fatalf("want %q accepted", string(runeSlice(w)))
		}
	}
	reject := [][]automaton.Symbol{
		{},
		{'1', '1'},
		{'0', '0'},
	}
	for _, w := range reject {
		if dfa.Accepts(w) {
			t.Fatalf("want %q rejected", string(runeSlice(w)))
		}
	}
}

func runeSlice(w []automaton.Symbol) []rune {
	out := make([]rune, len(w))
	for i, s := range w {
		out[i] = rune(s)
	}
	return out
}
