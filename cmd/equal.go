package cmd

import (
	"fmt"

	"github.com/cottand/typealg/term"
	"github.com/spf13/cobra"
)

var EqualCmd = &cobra.Command{
	Use:          "equal A B",
	Short:        "Print whether A and B are structurally equal, and their hashes",
	RunE:         runEqual,
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
}

func init() {
	scopeFlags(EqualCmd)
}

func runEqual(cmd *cobra.Command, args []string) error {
	scope, err := loadScope()
	if err != nil {
		return err
	}
	types, err := parseAll(scope, args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if _, err := fmt.Fprintln(out, term.Equal(types[0], types[1])); err != nil {
		return err
	}
	for _, t := range types {
		if _, err := fmt.Fprintf(out, "%016x %s\n", t.Hash(), t); err != nil {
			return err
		}
	}
	return nil
}
