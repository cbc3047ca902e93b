package main

import (
	"fmt"

	"github.com/go-relang/relang/automaton"
	"github.com/go-relang/relang/desimone"
	"github.com/go-relang/relang/rx"
	"github.com/go-relang/relang/thompson"
	"github.com/go-relang/relang/tree"
)

// compile parses pattern and applies the tree rewrites every synthesis
// algorithm requires as a precondition (σ-closure elimination, ε-pruning).
func compile(pattern string) (tree.Cursor, error) {
	root, _, err := rx.Parse(pattern)
	if err != nil {
		return tree.Cursor{}, err
	}
	tree.EliminateSigmaClosure(root)
	root, _ = tree.PruneEpsilon(root)
	return root, nil
}

// buildDFA synthesises a compacted DFA from pattern, via either Thompson
// (through ToDFAFromEps) or De Simone's direct construction.
func buildDFA(pattern, method string) (*automaton.DFA, error) {
	root, err := compile(pattern)
	if err != nil {
		return nil, err
	}
	switch method {
	case "", "thompson":
		eps, err := thompson.Synthesize(root)
		if err != nil {
			return nil, err
		}
		return automaton.Compact(automaton.ToDFAFromEps(eps), 0), nil
	case "desimone":
		return desimone.Synthesize(root)
	default:
		return nil, fmt.Errorf("unknown synthesis method %q, want thompson or desimone", method)
	}
}
