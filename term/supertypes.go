package term

import (
	"slices"
)

// Supertyped is implemented by terms that know their own direct supertypes, like
// Container. Adapters can implement it for class-like terms that are not a *Class.
type Supertyped interface {
	DirectSupertypes() []Type
}

// DirectSupertypes returns the immediate supertypes of t. The result never contains t,
// has no duplicates, and is in the same order every time.
//
//   - classes: the generic superclass (or the top type), the generic interfaces, and the
//     erasure of each of those that is parameterized
//   - interfaces: the generic superinterfaces with their erasures, or the top type
//   - primitives and the top type: none
//   - arrays of primitives or of the top type: the top type and the array markers
//   - other arrays: the arrays of the direct supertypes of the component, plus the array
//     of the superclass of the erased component
//   - parameterized types: the direct supertypes of the raw type, with the type parameters
//     replaced by the type arguments
//   - type variables: their upper bounds
//   - wildcards: none
func DirectSupertypes(t Type) []Type {
	var out []Type
	switch {
	case t.HasTypeArguments():
		out = parameterizedSupertypes(t)
	case t.ComponentType() != nil:
		out = arraySupertypes(t)
	case IsTypeVariable(t):
		out = t.UpperBounds()
	case IsWildcard(t):
		return nil
	default:
		switch t := t.(type) {
		case *Class:
			return t.directSupertypes()
		case Supertyped:
			out = t.DirectSupertypes()
		default:
			panic(NewUnsupportedShape(t, "direct supertype resolution"))
		}
	}
	return distinctExcluding(t, out)
}

func distinctExcluding(t Type, types []Type) []Type {
	out := make([]Type, 0, len(types))
	for _, s := range types {
		if s == t || Equal(s, t) || slices.ContainsFunc(out, func(other Type) bool { return Equal(s, other) }) {
			continue
		}
		out = append(out, s)
	}
	return out
}

func parameterizedSupertypes(t Type) []Type {
	raw := t.Type()
	params := raw.TypeParameters()
	args := t.TypeArguments()
	supers := DirectSupertypes(raw)
	out := make([]Type, len(supers))
	for i, s := range supers {
		out[i] = Substitute(s, params, args)
	}
	return out
}

func arraySupertypes(t Type) []Type {
	component := t.ComponentType()
	if component.Top() || IsPrimitive(component) {
		u := universeOf(component)
		if u == nil {
			panic(NewUnsupportedShape(t, "array supertype resolution, no universe for "+component.String()))
		}
		return []Type{u.object, u.cloneable, u.serializable}
	}
	var out []Type
	for _, s := range DirectSupertypes(component) {
		out = append(out, ArrayOf(s))
	}
	if erased, ok := Erasure(component).(*Class); ok && erased.superclass != nil {
		out = append(out, ArrayOf(Erasure(erased.superclass)))
	}
	return out
}

// universeOf finds the universe a term was declared in, through its raw type,
// component or first bound
func universeOf(t Type) *Universe {
	for range maxErasureDepth {
		if c, ok := t.(*Class); ok {
			return c.universe
		}
		switch {
		case t.HasTypeArguments():
			t = t.Type()
		case t.ComponentType() != nil:
			t = t.ComponentType()
		case len(t.UpperBounds()) > 0:
			t = t.UpperBounds()[0]
		default:
			s, ok := t.(Supertyped)
			if !ok {
				return nil
			}
			supers := s.DirectSupertypes()
			if len(supers) == 0 {
				return nil
			}
			t = supers[0]
		}
	}
	return nil
}

const maxErasureDepth = 64

// Erasure maps t to the class-like term (or array thereof) the runtime would see:
// raw types for parameterized types, the erasure of the first bound for type variables
// and wildcards, and arrays of erased components
func Erasure(t Type) Type {
	for range maxErasureDepth {
		switch {
		case t.HasTypeArguments():
			return t.Type()
		case t.ComponentType() != nil:
			if isPlain(t) {
				return t
			}
			if a, ok := t.(*Array); ok {
				return a.Type()
			}
			return ArrayOf(Erasure(t.ComponentType()))
		case t.UpperBounded() && len(t.UpperBounds()) > 0:
			t = t.UpperBounds()[0]
		default:
			return t
		}
	}
	// only cyclic type variable bounds get here
	return t
}

// Substitute replaces, anywhere inside t, each type variable in params by the argument
// at the same position in args. Terms that contain none of the variables are returned
// as they are.
// A variable inside an array replaced by a wildcard is replaced by the wildcard's
// upper bound instead, since arrays of wildcards do not exist.
func Substitute(t Type, params, args []Type) Type {
	if len(params) != len(args) {
		violation("cannot substitute %d arguments for %d parameters", len(args), len(params))
	}
	if len(params) == 0 {
		return t
	}
	return substitute(t, params, args)
}

func substitute(t Type, params, args []Type) Type {
	switch {
	case IsTypeVariable(t):
		for i, p := range params {
			if p == t || Equal(p, t) {
				return args[i]
			}
		}
		return t
	case t.HasTypeArguments():
		changed := false
		newArgs := make([]Type, len(t.TypeArguments()))
		for i, arg := range t.TypeArguments() {
			newArgs[i] = substitute(arg, params, args)
			changed = changed || newArgs[i] != arg
		}
		var owner Type
		if o, ok := t.Owner().(Type); ok {
			owner = substitute(o, params, args)
			changed = changed || owner != o
		}
		if !changed {
			return t
		}
		return ParameterizeIn(owner, t.Type(), newArgs...)
	case t.ComponentType() != nil:
		component := substitute(t.ComponentType(), params, args)
		if component == t.ComponentType() {
			return t
		}
		if IsWildcard(component) {
			component = component.UpperBounds()[0]
		}
		return ArrayOf(component)
	case IsWildcard(t):
		upper := substitute(t.UpperBounds()[0], params, args)
		var lower Type
		if t.LowerBounded() {
			lower = substitute(t.LowerBounds()[0], params, args)
		}
		if upper == t.UpperBounds()[0] && (lower == nil || lower == t.LowerBounds()[0]) {
			return t
		}
		// a wildcard cannot bound a wildcard, keep the outer one's bounds
		if IsWildcard(upper) {
			upper = upper.UpperBounds()[0]
		}
		if lower != nil && IsWildcard(lower) {
			if !lower.LowerBounded() {
				return Extends(upper)
			}
			lower = lower.LowerBounds()[0]
		}
		return NewWildcard(upper, lower)
	default:
		return t
	}
}
