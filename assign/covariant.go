package assign

import (
	"slices"

	"github.com/cottand/typealg/term"
)

// CovariantSemantics is Java-like assignability with covariant arrays:
// subtypes are assignable to their supertypes, parameterized types must match some
// supertype of the payload argument by argument (wildcards in either argument are
// compared covariantly) and raw types accept any parameterization.
//
// Embed it to override some of its rules.
type CovariantSemantics struct{ Base }

var Covariant = CovariantSemantics{}

func (CovariantSemantics) Name() string { return "covariant" }

func (CovariantSemantics) ClassClass(_ *Check, r, p term.Type) bool {
	if rc, ok := r.(*term.Class); ok {
		if pc, ok := p.(*term.Class); ok {
			return pc.IsSubclassOf(rc)
		}
	}
	return term.SupertypeOf(r, p)
}

func (CovariantSemantics) ClassParameterized(c *Check, r, p term.Type) bool {
	return c.Assignable(r, p.Type())
}

func (CovariantSemantics) ClassGenericArray(c *Check, r, p term.Type) bool {
	if term.IsArray(r) {
		return c.Assignable(r.ComponentType(), p.ComponentType())
	}
	return c.Assignable(r, p.Type())
}

func (CovariantSemantics) ClassTypeVariable(c *Check, r, p term.Type) bool {
	return anyBoundAssignable(c, r, p)
}

func (CovariantSemantics) ParameterizedClass(c *Check, r, p term.Type) bool {
	if !c.Assignable(r.Type(), p) {
		return false
	}
	return matchesSupertype(c, r, genericView(p))
}

func (CovariantSemantics) ParameterizedParameterized(c *Check, r, p term.Type) bool {
	if !c.Assignable(r.Type(), p.Type()) {
		return false
	}
	return matchesSupertype(c, r, p)
}

func (CovariantSemantics) ParameterizedTypeVariable(c *Check, r, p term.Type) bool {
	return anyBoundAssignable(c, r, p)
}

func (CovariantSemantics) GenericArrayClass(c *Check, r, p term.Type) bool {
	if !term.IsArray(p) {
		return false
	}
	return c.Assignable(r.ComponentType(), p.ComponentType())
}

func (CovariantSemantics) GenericArrayGenericArray(c *Check, r, p term.Type) bool {
	return c.Assignable(r.ComponentType(), p.ComponentType())
}

func (CovariantSemantics) GenericArrayTypeVariable(c *Check, r, p term.Type) bool {
	return anyBoundAssignable(c, r, p)
}

func (CovariantSemantics) TypeVariableTypeVariable(c *Check, r, p term.Type) bool {
	if term.Equal(r, p) {
		return true
	}
	// <T, U extends T>: a U is a T
	bounds := p.UpperBounds()
	return len(bounds) > 0 && term.IsTypeVariable(bounds[0]) && c.Assignable(r, bounds[0])
}

func (CovariantSemantics) WildcardClass(c *Check, r, p term.Type) bool {
	return wildcardAccepts(c, r, p)
}

func (CovariantSemantics) WildcardParameterized(c *Check, r, p term.Type) bool {
	return wildcardAccepts(c, r, p)
}

func (CovariantSemantics) WildcardGenericArray(c *Check, r, p term.Type) bool {
	return wildcardAccepts(c, r, p)
}

func (CovariantSemantics) WildcardTypeVariable(c *Check, r, p term.Type) bool {
	return wildcardAccepts(c, r, p)
}

func (CovariantSemantics) WildcardWildcard(c *Check, r, p term.Type) bool {
	if !c.Assignable(upper(r), upper(p)) {
		return false
	}
	if !r.LowerBounded() {
		return true
	}
	return p.LowerBounded() && c.Assignable(lower(p), lower(r))
}

// wildcardAccepts reports whether p lies within the bounds of the wildcard r
func wildcardAccepts(c *Check, r, p term.Type) bool {
	if !c.Assignable(upper(r), p) {
		return false
	}
	return !r.LowerBounded() || c.Assignable(p, lower(r))
}

// anyBoundAssignable reports whether some upper bound of p is assignable to r
func anyBoundAssignable(c *Check, r, p term.Type) bool {
	return slices.ContainsFunc(p.UpperBounds(), func(b term.Type) bool { return c.Assignable(r, b) })
}

// matchesSupertype reports whether some supertype of p is a parameterization of the raw
// type of r with compatible arguments
func matchesSupertype(c *Check, r, p term.Type) bool {
	raw := r.Type()
	for _, s := range term.Supertypes(p) {
		if !s.HasTypeArguments() || !term.Equal(s.Type(), raw) {
			continue
		}
		if compatibleArguments(c, r.TypeArguments(), s.TypeArguments()) && ownersRelated(r, s, c.Assignable) {
			return true
		}
	}
	return false
}

// compatibleArguments compares type arguments position by position: covariantly when
// either one is a wildcard, for equality otherwise
func compatibleArguments(c *Check, receiver, payload []term.Type) bool {
	if len(receiver) != len(payload) {
		return false
	}
	for i := range receiver {
		r, p := receiver[i], payload[i]
		if term.IsWildcard(r) || term.IsWildcard(p) {
			if !c.Covariant().Assignable(r, p) {
				return false
			}
			continue
		}
		if !term.Equal(r, p) {
			return false
		}
	}
	return true
}

// genericView sees a generic class whose type parameters are all unconstrained as its
// parameterization by the top type, `List` as `List<Object>`
func genericView(t term.Type) term.Type {
	class, ok := t.(*term.Class)
	if !ok || !class.HasTypeParameters() {
		return t
	}
	params := class.TypeParameters()
	if !slices.ContainsFunc(params, func(p term.Type) bool { return !term.UnboundedEquivalent(p) }) {
		args := make([]term.Type, len(params))
		for i := range args {
			args[i] = class.Universe().Object()
		}
		return term.Parameterize(class, args...)
	}
	return t
}

// ownersRelated reports whether r and p are both top-level types, or members of owners
// that related accepts, like `Outer<String>.Inner<T>` and `Outer<String>.Inner<T>`
func ownersRelated(r, p term.Type, related func(r, p term.Type) bool) bool {
	ro, po := ownerType(r), ownerType(p)
	if ro == nil || po == nil {
		return ro == nil && po == nil
	}
	return related(ro, po)
}

func ownerType(t term.Type) term.Type {
	owner, _ := t.Owner().(term.Type)
	return owner
}

func upper(t term.Type) term.Type {
	if bounds := t.UpperBounds(); len(bounds) > 0 {
		return bounds[0]
	}
	return nil
}

func lower(t term.Type) term.Type {
	if bounds := t.LowerBounds(); len(bounds) > 0 {
		return bounds[0]
	}
	return nil
}
