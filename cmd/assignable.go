package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/cottand/typealg/assign"
	"github.com/spf13/cobra"
)

var AssignableCmd = &cobra.Command{
	Use:   "assignable RECEIVER PAYLOAD",
	Short: "Print whether a PAYLOAD value can be used where a RECEIVER is expected",
	Example: `  typealg assignable 'List<? extends Number>' 'ArrayList<Integer>'
  typealg assignable --semantics cdi --var 'T extends Number' 'Comparable<T>' 'Integer'`,
	RunE:         runAssignable,
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
}

var (
	semanticsName string
	boxing        bool
)

var semantics = map[string]assign.Semantics{
	assign.Invariant.Name(): assign.Invariant,
	assign.Covariant.Name(): assign.Covariant,
	assign.CDI.Name():       assign.CDI,
}

func init() {
	scopeFlags(AssignableCmd)
	AssignableCmd.Flags().StringVarP(&semanticsName, "semantics", "s", assign.Covariant.Name(), "invariant, covariant or cdi")
	AssignableCmd.Flags().BoolVarP(&boxing, "boxing", "b", false, "box primitives before comparing (always on for cdi)")
}

func runAssignable(cmd *cobra.Command, args []string) error {
	sem, ok := semantics[semanticsName]
	if !ok {
		names := make([]string, 0, len(semantics))
		for name := range semantics {
			names = append(names, name)
		}
		slices.Sort(names)
		return fmt.Errorf("unknown semantics %q, expected one of %s", semanticsName, strings.Join(names, ", "))
	}

	scope, err := loadScope()
	if err != nil {
		return err
	}
	types, err := parseAll(scope, args)
	if err != nil {
		return err
	}

	engine := assign.New(sem, assign.WithBoxing(boxing))
	_, err = fmt.Fprintln(cmd.OutOrStdout(), engine.Assignable(types[0], types[1]))
	return err
}
