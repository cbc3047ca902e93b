package main

import (
	"fmt"

	"github.com/go-relang/relang/automaton"
	"github.com/spf13/cobra"
)

var decideFlags = struct {
	op     *string
	method *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "decide <pattern>",
		Short:   "Decide a property of the DFA a regex synthesises",
		Example: `  relang decide 'a*' --op=infinite`,
		Args:    cobra.ExactArgs(1),
		RunE:    runDecide,
	}
	decideFlags.op = cmd.Flags().String("op", "empty", "decision: empty, finite or infinite")
	decideFlags.method = cmd.Flags().String("method", "thompson", "synthesis method: thompson or desimone")
	rootCmd.AddCommand(cmd)
}

func runDecide(cmd *cobra.Command, args []string) error {
	m, err := buildDFA(args[0], *decideFlags.method)
	if err != nil {
		return err
	}
	switch *decideFlags.op {
	case "empty":
		fmt.Println(automaton.Empty(m))
	case "finite":
		fmt.Println(automaton.Finite(m))
	case "infinite":
		fmt.Println(automaton.Infinite(m))
	default:
		return fmt.Errorf("unknown decision %q, want empty, finite or infinite", *decideFlags.op)
	}
	return nil
}
