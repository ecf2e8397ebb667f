package cmd

import (
	"fmt"

	"github.com/cottand/typealg/term"
	"github.com/spf13/cobra"
)

var SupertypesCmd = &cobra.Command{
	Use:          "supertypes TYPE",
	Short:        "Print every supertype of TYPE, most specific first",
	RunE:         runSupertypes,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
}

var directOnly bool

func init() {
	scopeFlags(SupertypesCmd)
	SupertypesCmd.Flags().BoolVarP(&directOnly, "direct", "d", false, "only print the direct supertypes")
}

func runSupertypes(cmd *cobra.Command, args []string) error {
	scope, err := loadScope()
	if err != nil {
		return err
	}
	types, err := parseAll(scope, args)
	if err != nil {
		return err
	}

	var supers []term.Type
	if directOnly {
		supers = term.DirectSupertypes(types[0])
	} else {
		supers = term.Supertypes(types[0])
	}
	for _, s := range supers {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), s); err != nil {
			return err
		}
	}
	return nil
}
