package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "relang",
	Short: "Build and inspect automata from regular expressions",
	Long: `relang provides a few debugging entry points onto the core library:
- Parses a regex into its cleaned expression tree.
- Synthesises a DFA from a regex, by either of two independent constructions.
- Decides emptiness, finiteness and infiniteness of the synthesised DFA.
- Enumerates the accepted words of a given length.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}
