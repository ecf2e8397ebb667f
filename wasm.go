//go:build js && wasm

package main

import (
	"fmt"
	"strings"
	"syscall/js"

	"github.com/cottand/typealg/assign"
	"github.com/cottand/typealg/notation"
	"github.com/cottand/typealg/term"
)

var scope = notation.NewScope(notation.DefaultUniverse())

func main() {
	js.Global().Set("TypealgAssignable", js.FuncOf(assignable))
	js.Global().Set("TypealgSupertypes", js.FuncOf(supertypes))

	// wait indefinitely so that Go does not terminate execution
	// and the functions remain available
	<-make(chan struct{})
}

// assignable(semantics, receiver, payload) returns "true", "false" or an error message
func assignable(_ js.Value, args []js.Value) any {
	if len(args) != 3 {
		return "expected semantics, receiver and payload"
	}
	var sem assign.Semantics
	switch name := args[0].String(); name {
	case assign.Invariant.Name():
		sem = assign.Invariant
	case assign.Covariant.Name():
		sem = assign.Covariant
	case assign.CDI.Name():
		sem = assign.CDI
	default:
		return fmt.Sprintf("unknown semantics %q", name)
	}
	r, err := notation.Parse(args[1].String(), scope)
	if err != nil {
		return err.Error()
	}
	p, err := notation.Parse(args[2].String(), scope)
	if err != nil {
		return err.Error()
	}
	return fmt.Sprint(assign.New(sem).Assignable(r, p))
}

// supertypes(type) returns the supertype closure, one type per line
func supertypes(_ js.Value, args []js.Value) any {
	if len(args) != 1 {
		return "expected a type"
	}
	t, err := notation.Parse(args[0].String(), scope)
	if err != nil {
		return err.Error()
	}
	sb := &strings.Builder{}
	for _, s := range term.Supertypes(t) {
		sb.WriteString(s.String())
		sb.WriteString("\n")
	}
	return sb.String()
}
