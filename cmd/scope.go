package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/cottand/typealg/internal/log"
	"github.com/cottand/typealg/notation"
	"github.com/cottand/typealg/term"
	"github.com/spf13/cobra"
)

var (
	universePath string
	freeVars     []string
	logLevel     int
)

// scopeFlags registers the flags every command needs to resolve type names
func scopeFlags(c *cobra.Command) {
	c.Flags().StringVarP(&universePath, "universe", "u", "", "YAML file declaring classes on top of the builtin ones")
	c.Flags().StringArrayVar(&freeVars, "var", nil, "free type variable, like 'T extends Number' (repeatable)")
	c.Flags().IntVarP(&logLevel, "log-level", "l", int(slog.LevelWarn), "log level")
}

func loadScope() (*notation.Scope, error) {
	log.SetLevel(slog.Level(logLevel))

	u := notation.DefaultUniverse()
	if universePath != "" {
		f, err := os.Open(universePath)
		if err != nil {
			return nil, fmt.Errorf("could not open universe: %w", err)
		}
		defer f.Close()
		if err := notation.Load(u, f); err != nil {
			return nil, fmt.Errorf("could not load universe %s: %w", universePath, err)
		}
	}

	scope, err := notation.NewScope(u).Free(freeVars...)
	if err != nil {
		return nil, fmt.Errorf("could not declare type variables: %w", err)
	}
	return scope, nil
}

func parseAll(scope *notation.Scope, srcs []string) ([]term.Type, error) {
	types := make([]term.Type, 0, len(srcs))
	for _, src := range srcs {
		t, err := notation.Parse(src, scope)
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, nil
}
