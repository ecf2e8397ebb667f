// Package assign decides whether a value of a payload type may be used where a
// receiver type is expected, under pluggable variance rules.
//
// The decision dispatches on the shapes of the receiver and the payload. Each of the
// 5×5 shape pairs is a hook of Semantics; Base answers false to all of them and the
// shipped policies (Invariant, Covariant, CDI) override the ones their rules allow.
package assign

import (
	"github.com/cottand/typealg/term"
)

// Semantics is a variance policy. Hooks are named after the receiver shape followed by
// the payload shape, where the shapes are:
//   - Class: class-like terms, containers and plain arrays
//   - Parameterized: terms with type arguments
//   - GenericArray: arrays of parameterized types, type variables or generic arrays
//   - TypeVariable
//   - Wildcard
//
// Hooks recurse through c, never by calling each other directly, so that the recursion
// goes through boxing and the cycle guard.
//
// Implementations should embed Base (or one of the shipped policies) and must be
// stateless: one value is shared by every Engine and goroutine using it.
type Semantics interface {
	// Name identifies the policy in logs and in the cycle guard
	Name() string
	// Boxing decides whether primitives are boxed, given what the Engine was asked for
	Boxing(requested bool) bool

	ClassClass(c *Check, r, p term.Type) bool
	ClassParameterized(c *Check, r, p term.Type) bool
	ClassGenericArray(c *Check, r, p term.Type) bool
	ClassTypeVariable(c *Check, r, p term.Type) bool
	ClassWildcard(c *Check, r, p term.Type) bool

	ParameterizedClass(c *Check, r, p term.Type) bool
	ParameterizedParameterized(c *Check, r, p term.Type) bool
	ParameterizedGenericArray(c *Check, r, p term.Type) bool
	ParameterizedTypeVariable(c *Check, r, p term.Type) bool
	ParameterizedWildcard(c *Check, r, p term.Type) bool

	GenericArrayClass(c *Check, r, p term.Type) bool
	GenericArrayParameterized(c *Check, r, p term.Type) bool
	GenericArrayGenericArray(c *Check, r, p term.Type) bool
	GenericArrayTypeVariable(c *Check, r, p term.Type) bool
	GenericArrayWildcard(c *Check, r, p term.Type) bool

	TypeVariableClass(c *Check, r, p term.Type) bool
	TypeVariableParameterized(c *Check, r, p term.Type) bool
	TypeVariableGenericArray(c *Check, r, p term.Type) bool
	TypeVariableTypeVariable(c *Check, r, p term.Type) bool
	TypeVariableWildcard(c *Check, r, p term.Type) bool

	WildcardClass(c *Check, r, p term.Type) bool
	WildcardParameterized(c *Check, r, p term.Type) bool
	WildcardGenericArray(c *Check, r, p term.Type) bool
	WildcardTypeVariable(c *Check, r, p term.Type) bool
	WildcardWildcard(c *Check, r, p term.Type) bool
}

// Base is the policy under which nothing is assignable to anything else
// (identical terms are still assignable, the Engine checks identity before any hook)
type Base struct{}

var _ Semantics = Base{}

func (Base) Name() string               { return "base" }
func (Base) Boxing(requested bool) bool { return requested }

func (Base) ClassClass(*Check, term.Type, term.Type) bool         { return false }
func (Base) ClassParameterized(*Check, term.Type, term.Type) bool { return false }
func (Base) ClassGenericArray(*Check, term.Type, term.Type) bool  { return false }
func (Base) ClassTypeVariable(*Check, term.Type, term.Type) bool  { return false }
func (Base) ClassWildcard(*Check, term.Type, term.Type) bool      { return false }

func (Base) ParameterizedClass(*Check, term.Type, term.Type) bool         { return false }
func (Base) ParameterizedParameterized(*Check, term.Type, term.Type) bool { return false }
func (Base) ParameterizedGenericArray(*Check, term.Type, term.Type) bool  { return false }
func (Base) ParameterizedTypeVariable(*Check, term.Type, term.Type) bool  { return false }
func (Base) ParameterizedWildcard(*Check, term.Type, term.Type) bool      { return false }

func (Base) GenericArrayClass(*Check, term.Type, term.Type) bool         { return false }
func (Base) GenericArrayParameterized(*Check, term.Type, term.Type) bool { return false }
func (Base) GenericArrayGenericArray(*Check, term.Type, term.Type) bool  { return false }
func (Base) GenericArrayTypeVariable(*Check, term.Type, term.Type) bool  { return false }
func (Base) GenericArrayWildcard(*Check, term.Type, term.Type) bool      { return false }

func (Base) TypeVariableClass(*Check, term.Type, term.Type) bool         { return false }
func (Base) TypeVariableParameterized(*Check, term.Type, term.Type) bool { return false }
func (Base) TypeVariableGenericArray(*Check, term.Type, term.Type) bool  { return false }
func (Base) TypeVariableTypeVariable(*Check, term.Type, term.Type) bool  { return false }
func (Base) TypeVariableWildcard(*Check, term.Type, term.Type) bool      { return false }

func (Base) WildcardClass(*Check, term.Type, term.Type) bool         { return false }
func (Base) WildcardParameterized(*Check, term.Type, term.Type) bool { return false }
func (Base) WildcardGenericArray(*Check, term.Type, term.Type) bool  { return false }
func (Base) WildcardTypeVariable(*Check, term.Type, term.Type) bool  { return false }
func (Base) WildcardWildcard(*Check, term.Type, term.Type) bool      { return false }

type shape int

const (
	classShape shape = iota
	parameterizedShape
	genericArrayShape
	typeVariableShape
	wildcardShape
	shapeCount
)

func (s shape) String() string {
	switch s {
	case classShape:
		return "class"
	case parameterizedShape:
		return "parameterized"
	case genericArrayShape:
		return "generic-array"
	case typeVariableShape:
		return "type-variable"
	case wildcardShape:
		return "wildcard"
	default:
		return "unknown"
	}
}

// shapeOf classifies t from its capabilities alone
func shapeOf(t term.Type) shape {
	hasComponent := t.ComponentType() != nil
	switch {
	case t.HasTypeArguments():
		if hasComponent || t.UpperBounded() || t.LowerBounded() {
			break
		}
		return parameterizedShape
	case !hasComponent:
		switch {
		case t.LowerBounded() && t.Named():
			break
		case t.LowerBounded():
			return wildcardShape
		case t.UpperBounded() && !t.Named():
			return wildcardShape
		case t.UpperBounded():
			return typeVariableShape
		default:
			return classShape
		}
	case t.UpperBounded() || t.LowerBounded():
		break
	case t.Type() == t:
		return classShape
	default:
		return genericArrayShape
	}
	panic(term.NewUnsupportedShape(t, "assignability dispatch"))
}

type hook func(s Semantics, c *Check, r, p term.Type) bool

// hooks is indexed by receiver shape then payload shape
var hooks = [shapeCount][shapeCount]hook{
	classShape: {
		classShape:         Semantics.ClassClass,
		parameterizedShape: Semantics.ClassParameterized,
		genericArrayShape:  Semantics.ClassGenericArray,
		typeVariableShape:  Semantics.ClassTypeVariable,
		wildcardShape:      Semantics.ClassWildcard,
	},
	parameterizedShape: {
		classShape:         Semantics.ParameterizedClass,
		parameterizedShape: Semantics.ParameterizedParameterized,
		genericArrayShape:  Semantics.ParameterizedGenericArray,
		typeVariableShape:  Semantics.ParameterizedTypeVariable,
		wildcardShape:      Semantics.ParameterizedWildcard,
	},
	genericArrayShape: {
		classShape:         Semantics.GenericArrayClass,
		parameterizedShape: Semantics.GenericArrayParameterized,
		genericArrayShape:  Semantics.GenericArrayGenericArray,
		typeVariableShape:  Semantics.GenericArrayTypeVariable,
		wildcardShape:      Semantics.GenericArrayWildcard,
	},
	typeVariableShape: {
		classShape:         Semantics.TypeVariableClass,
		parameterizedShape: Semantics.TypeVariableParameterized,
		genericArrayShape:  Semantics.TypeVariableGenericArray,
		typeVariableShape:  Semantics.TypeVariableTypeVariable,
		wildcardShape:      Semantics.TypeVariableWildcard,
	},
	wildcardShape: {
		classShape:         Semantics.WildcardClass,
		parameterizedShape: Semantics.WildcardParameterized,
		genericArrayShape:  Semantics.WildcardGenericArray,
		typeVariableShape:  Semantics.WildcardTypeVariable,
		wildcardShape:      Semantics.WildcardWildcard,
	},
}
