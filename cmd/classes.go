package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var ClassesCmd = &cobra.Command{
	Use:          "classes",
	Short:        "Print the declaration of every class in the universe",
	RunE:         runClasses,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
}

func init() {
	scopeFlags(ClassesCmd)
}

func runClasses(cmd *cobra.Command, _ []string) error {
	scope, err := loadScope()
	if err != nil {
		return err
	}
	for _, c := range scope.Universe().Classes() {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), c.Describe()); err != nil {
			return err
		}
	}
	return nil
}
