package main

import (
	"fmt"

	"github.com/go-relang/relang/tree"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "parse <pattern>",
		Short:   "Parse a regex and print its cleaned expression tree",
		Example: `  relang parse 'ab*c:d'`,
		Args:    cobra.ExactArgs(1),
		RunE:    runParse,
	}
	rootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	root, err := compile(args[0])
	if err != nil {
		return err
	}
	th := tree.Thread(root)
	for c := th.First(); !c.IsNull(); c = th.Next(c) {
		fmt.Print(c.Value().String())
	}
	fmt.Println()
	return nil
}
