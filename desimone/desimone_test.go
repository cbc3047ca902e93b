package desimone

import (
	"testing"

	"github.com/go-relang/relang/automaton"
	"github.com/go-relang/relang/rx"
	"github.com/go-relang/relang/thompson"
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

// TestSynthesizeMatchesWorkedExample transcribes spec.md's "01*|1" worked
// example directly against De Simone's own synthesis (it already produces
// a compacted DFA, so no separate ToDFA/Compact step is needed): minimised
// it has 3 states, one initial, two final.
func TestSynthesizeMatchesWorkedExample(t *testing.T) {
	root := parseAndClean(t, "01*|1")
	dfa, err := Synthesize(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dfa = automaton.Minimise(dfa)

	if dfa.Q.Len() != 3 {
		t.Fatalf("want 3 states after minimise, got %v", dfa.Q.Len())
	}
	if dfa.F.Len() != 2 {
		t.Fatalf("want 2 final states after minimise, got %v", dfa.F.Len())
	}

	accept := [][]automaton.Symbol{{'1'}, {'0'}, {'0', '1'}, {'0', '1', '1', '1'}}
	for _, w := range accept {
		if !dfa.Accepts(w) {
			t.Fatalf("want %v accepted", w)
		}
	}
	reject := [][]automaton.Symbol{{}, {'1', '1'}, {'0', '0'}}
	for _, w := range reject {
		if dfa.Accepts(w) {
			t.Fatalf("want %v rejected", w)
		}
	}
}

// TestSynthesizeAgreesWithThompson checks the algebraic identity spec.md
// §8 states: Thompson and De Simone built from the same cleaned expression
// tree recognise the same language, here sampled by acceptance rather than
// by automaton isomorphism.
func TestSynthesizeAgreesWithThompson(t *testing.T) {
	patterns := []string{"a", "ab", "a*", "a+b?", "a|b", "(a|b)*c", "&"}
	words := [][]automaton.Symbol{
		{}, {'a'}, {'b'}, {'c'}, {'a', 'b'}, {'a', 'a', 'a'}, {'b', 'c'}, {'a', 'b', 'c'},
	}
	for _, pattern := range patterns {
		root := parseAndClean(t, pattern)

		viaDeSimone, err := Synthesize(root)
		if err != nil {
			t.Fatalf("pattern %q: unexpected error: %v", pattern, err)
		}
		eps, err := thompson.Synthesize(root)
		if err != nil {
			t.Fatalf("pattern %q: unexpected error: %v", pattern, err)
		}
		viaThompson := automaton.ToDFAFromEps(eps)

		for _, w := range words {
			if viaDeSimone.Accepts(w) != viaThompson.Accepts(w) {
				t.Fatalf("pattern %q: De Simone and Thompson disagree on %v", pattern, w)
			}
		}
	}
}

// TestSynthesizeBareEpsilonAcceptsOnlyEmptyWord guards against treating an
// ε leaf like a Symbol leaf: PruneEpsilon reduces every all-ε pattern to an
// ε leaf, either bare or under a unary node ("&|&" becomes ε?), and the
// result must make q0 final with no outgoing transitions, recognising
// exactly {ε} rather than ∅.
func TestSynthesizeBareEpsilonAcceptsOnlyEmptyWord(t *testing.T) {
	for _, pattern := range []string{"&", "&&", "&|&", "&:&"} {
		root := parseAndClean(t, pattern)
		dfa, err := Synthesize(root)
		if err != nil {
			t.Fatalf("pattern %q: unexpected error: %v", pattern, err)
		}
		if !dfa.Accepts(nil) {
			t.Fatalf("pattern %q: want empty word accepted", pattern)
		}
		if dfa.Accepts([]automaton.Symbol{'a'}) {
			t.Fatalf("pattern %q: want non-empty word rejected", pattern)
		}
		if automaton.Empty(dfa) {
			t.Fatalf("pattern %q: language is {epsilon}, not empty", pattern)
		}
	}
}

func TestSynthesizeEmptyFinalSetWhenPatternRequiresInput(t *testing.T) {
	root := parseAndClean(t, "a")
	dfa, err := Synthesize(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dfa.Accepts(nil) {
		t.Fatal("empty word should not match a bare symbol")
	}
	if !dfa.Accepts([]automaton.Symbol{'a'}) {
		t.Fatal("want 'a' accepted")
	}
}
