package assign

import (
	"slices"

	"github.com/cottand/typealg/term"
)

// CDISemantics is typesafe resolution as dependency injection containers define it:
// Covariant, except that parameterized types only match parameterizations of the very
// same raw type, compared argument by argument with the rules of typeArgument.
// Primitives are always boxed.
type CDISemantics struct{ CovariantSemantics }

var CDI = CDISemantics{}

func (CDISemantics) Name() string       { return "cdi" }
func (CDISemantics) Boxing(_ bool) bool { return true }

// ClassParameterized accepts `Foo<Object>` or `Foo<T>` where raw `Foo` is required
func (CDISemantics) ClassParameterized(_ *Check, r, p term.Type) bool {
	return term.Equal(r, p.Type()) && unconstrainedArguments(p)
}

// ParameterizedClass accepts raw `Foo` where `Foo<Object>` or `Foo<T>` is required
func (CDISemantics) ParameterizedClass(_ *Check, r, p term.Type) bool {
	return term.Equal(r.Type(), p) && unconstrainedArguments(r)
}

func (CDISemantics) ParameterizedParameterized(c *Check, r, p term.Type) bool {
	if !term.Equal(r.Type(), p.Type()) {
		return false
	}
	ra, pa := r.TypeArguments(), p.TypeArguments()
	if len(ra) != len(pa) {
		return false
	}
	for i := range ra {
		if !typeArgument(c, ra[i], pa[i]) {
			return false
		}
	}
	return ownersRelated(r, p, term.Equal)
}

func unconstrainedArguments(t term.Type) bool {
	return !slices.ContainsFunc(t.TypeArguments(), func(arg term.Type) bool {
		return !arg.Top() && !term.UnboundedEquivalent(arg)
	})
}

// actual types are neither type variables nor wildcards
func actual(t term.Type) bool { return !t.UpperBounded() && !t.LowerBounded() }

// typeArgument decides whether the payload argument p matches the receiver argument r
// at the same position of two parameterizations of one raw type
func typeArgument(c *Check, r, p term.Type) bool {
	covariant := c.Covariant()
	switch {
	case actual(r) && actual(p):
		if !term.Equal(term.Erasure(r), term.Erasure(p)) {
			return false
		}
		if term.IsGenericArray(r) && term.IsGenericArray(p) {
			return typeArgument(c, r.ComponentType(), p.ComponentType())
		}
		if r.HasTypeArguments() || p.HasTypeArguments() {
			return c.Assignable(r, p)
		}
		return term.Equal(r, p)

	case term.IsWildcard(r) && actual(p):
		return wildcardAccepts(covariant, r, p)

	case term.IsWildcard(r) && term.IsTypeVariable(p):
		payloadBounds := condense(p.UpperBounds())
		upperMatch := false
		for _, rb := range r.UpperBounds() {
			upperMatch = slices.ContainsFunc(payloadBounds, func(pb term.Type) bool {
				return covariant.Assignable(rb, pb) || covariant.Assignable(pb, rb)
			})
			if upperMatch {
				break
			}
		}
		if !upperMatch {
			return false
		}
		return !r.LowerBounded() || slices.ContainsFunc(payloadBounds, func(pb term.Type) bool {
			return covariant.Assignable(pb, lower(r))
		})

	case actual(r) && term.IsTypeVariable(p):
		// the bounds of p must be assignable from r, not the other way around
		for _, pb := range condense(p.UpperBounds()) {
			if !covariant.Assignable(pb, r) {
				return false
			}
		}
		return true

	case term.IsTypeVariable(r) && term.IsTypeVariable(p):
		payloadBounds := condense(p.UpperBounds())
		for _, rb := range condense(r.UpperBounds()) {
			if !slices.ContainsFunc(payloadBounds, func(pb term.Type) bool { return covariant.Assignable(pb, rb) }) {
				return false
			}
		}
		return true

	case term.IsWildcard(r) && term.IsWildcard(p):
		return covariant.Assignable(r, p)

	default:
		return false
	}
}

// condense replaces a sole type variable bound by that variable's own bounds, repeatedly
func condense(bounds []term.Type) []term.Type {
	for range maxCondense {
		if len(bounds) != 1 || !term.IsTypeVariable(bounds[0]) {
			return bounds
		}
		bounds = bounds[0].UpperBounds()
	}
	return bounds
}

const maxCondense = 64
