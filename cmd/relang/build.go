package main

import (
	"fmt"

	"github.com/go-relang/relang/automaton"
	"github.com/spf13/cobra"
)

var buildFlags = struct {
	method *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "build <pattern>",
		Short:   "Synthesise a DFA from a regex and print its transitions",
		Example: `  relang build '01*|1' --method=desimone`,
		Args:    cobra.ExactArgs(1),
		RunE:    runBuild,
	}
	buildFlags.method = cmd.Flags().String("method", "thompson", "synthesis method: thompson or desimone")
	rootCmd.AddCommand(cmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	m, err := buildDFA(args[0], *buildFlags.method)
	if err != nil {
		return err
	}
	printDFA(m)
	return nil
}

func printDFA(m *automaton.DFA) {
	fmt.Printf("states: %v\n", m.Q.Sorted())
	fmt.Printf("initial: %v\n", m.Q0)
	fmt.Printf("final: %v\n", m.F.Sorted())
	for _, q := range m.Q.Sorted() {
		for _, a := range m.Sigma.Sorted() {
			r, err := m.Delta.Apply(automaton.DFAKey{State: q, Symbol: a})
			if err != nil {
				continue
			}
			fmt.Printf("  %v -%c-> %v\n", q, rune(a), r)
		}
	}
}
