package assign

import (
	"github.com/cottand/typealg/term"
)

// InvariantSemantics only relates equal terms: classes must be equal after boxing,
// parameterized types must share their raw type and have invariant arguments.
// Anything involving a wildcard is decided by Covariant, so that `List<? extends Number>`
// still accepts `List<Integer>`.
type InvariantSemantics struct{ Base }

var Invariant = InvariantSemantics{}

func (InvariantSemantics) Name() string { return "invariant" }

func (InvariantSemantics) ClassClass(_ *Check, r, p term.Type) bool {
	return term.Equal(r, p)
}

func (InvariantSemantics) ParameterizedParameterized(c *Check, r, p term.Type) bool {
	if !term.Equal(r.Type(), p.Type()) {
		return false
	}
	ra, pa := r.TypeArguments(), p.TypeArguments()
	if len(ra) != len(pa) {
		return false
	}
	for i := range ra {
		if !c.Assignable(ra[i], pa[i]) {
			return false
		}
	}
	return ownersRelated(r, p, c.Assignable)
}

func (InvariantSemantics) GenericArrayGenericArray(c *Check, r, p term.Type) bool {
	return c.Assignable(r.ComponentType(), p.ComponentType())
}

func (InvariantSemantics) TypeVariableTypeVariable(_ *Check, r, p term.Type) bool {
	return term.Equal(r, p)
}

func (InvariantSemantics) ClassWildcard(c *Check, r, p term.Type) bool {
	return Covariant.ClassWildcard(c.Covariant(), r, p)
}

func (InvariantSemantics) ParameterizedWildcard(c *Check, r, p term.Type) bool {
	return Covariant.ParameterizedWildcard(c.Covariant(), r, p)
}

func (InvariantSemantics) GenericArrayWildcard(c *Check, r, p term.Type) bool {
	return Covariant.GenericArrayWildcard(c.Covariant(), r, p)
}

func (InvariantSemantics) TypeVariableWildcard(c *Check, r, p term.Type) bool {
	return Covariant.TypeVariableWildcard(c.Covariant(), r, p)
}

func (InvariantSemantics) WildcardClass(c *Check, r, p term.Type) bool {
	return Covariant.WildcardClass(c.Covariant(), r, p)
}

func (InvariantSemantics) WildcardParameterized(c *Check, r, p term.Type) bool {
	return Covariant.WildcardParameterized(c.Covariant(), r, p)
}

func (InvariantSemantics) WildcardGenericArray(c *Check, r, p term.Type) bool {
	return Covariant.WildcardGenericArray(c.Covariant(), r, p)
}

func (InvariantSemantics) WildcardTypeVariable(c *Check, r, p term.Type) bool {
	return Covariant.WildcardTypeVariable(c.Covariant(), r, p)
}

func (InvariantSemantics) WildcardWildcard(c *Check, r, p term.Type) bool {
	return Covariant.WildcardWildcard(c.Covariant(), r, p)
}
