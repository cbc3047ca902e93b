package main

import (
	"fmt"

	"github.com/go-relang/relang/automaton"
	"github.com/spf13/cobra"
)

var enumerateFlags = struct {
	length *int
	method *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "enumerate <pattern>",
		Short:   "List every word of a given length the regex's DFA accepts",
		Example: `  relang enumerate '(0|1)+:\*:\+' -n 5`,
		Args:    cobra.ExactArgs(1),
		RunE:    runEnumerate,
	}
	enumerateFlags.length = cmd.Flags().IntP("length", "n", 0, "exact word length")
	enumerateFlags.method = cmd.Flags().String("method", "thompson", "synthesis method: thompson or desimone")
	rootCmd.AddCommand(cmd)
}

func runEnumerate(cmd *cobra.Command, args []string) error {
	m, err := buildDFA(args[0], *enumerateFlags.method)
	if err != nil {
		return err
	}
	m = automaton.Minimise(automaton.Compact(m, 0))
	for _, w := range automaton.AcceptanceList(m, *enumerateFlags.length) {
		runes := make([]rune, len(w))
		for i, a := range w {
			runes[i] = rune(a)
		}
		fmt.Println(string(runes))
	}
	return nil
}
