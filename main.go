//go:build !(js || wasm)

package main

import (
	"os"

	"github.com/cottand/typealg/cmd"
	"github.com/spf13/cobra"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "typealg [subcommand]",
	Short:        "typealg answers subtyping and assignability questions about Java-like generic types",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(cmd.AssignableCmd)
	rootCmd.AddCommand(cmd.SupertypesCmd)
	rootCmd.AddCommand(cmd.EqualCmd)
	rootCmd.AddCommand(cmd.ClassesCmd)
}
