// Package term models type terms (classes, parameterized types, arrays,
// type variables, wildcards and containers with hand-specified supertypes)
// together with their structural equality, direct supertypes and the cached
// supertype closure.
//
// Terms are immutable once built and safe to share between goroutines.
package term

import (
	"fmt"
)

// Owner is what a type variable or a nested class belongs to: either a Type
// (usually a *Class) or an *Executable.
type Owner interface {
	fmt.Stringer
	Hash() uint64
}

// Type is a type term. It deliberately exposes no kind: callers classify a term
// through its capabilities (IsArray, IsTypeVariable, ...), so that terms produced
// by different adapters can be mixed freely.
//
// Slices returned by the accessors belong to the term and must not be modified.
// Implementations must be comparable (pointer types, like every Type in this package),
// since identity is used as a fast path.
type Type interface {
	fmt.Stringer
	// Hash is the structural hash of the term, see Hash
	Hash() uint64

	// Named is true for class-like terms and type variables
	Named() bool
	// Name is "" unless Named
	Name() string
	// Top is true only for the universal supertype
	Top() bool
	// Type is the raw-type projection: the raw class of a parameterized type,
	// the erased array of a generic array, and the term itself otherwise
	Type() Type
	// Owner may be nil
	Owner() Owner

	HasTypeParameters() bool
	TypeParameters() []Type
	HasTypeArguments() bool
	TypeArguments() []Type
	// ComponentType is nil unless the term is an array
	ComponentType() Type

	UpperBounded() bool
	LowerBounded() bool
	UpperBounds() []Type
	LowerBounds() []Type
}

func IsArray(t Type) bool { return t.ComponentType() != nil }

func IsGenericArray(t Type) bool { return IsArray(t) && t.Type() != t }

func IsParameterized(t Type) bool { return t.HasTypeArguments() }

func IsTypeVariable(t Type) bool { return t.Named() && t.UpperBounded() }

func IsWildcard(t Type) bool { return !t.Named() && (t.UpperBounded() || t.LowerBounded()) }

func IsClassOrInterface(t Type) bool { return t.Named() && !t.UpperBounded() }

// IsPrimitive reports whether t is one of the primitive classes of a Universe
func IsPrimitive(t Type) bool {
	c, ok := t.(*Class)
	return ok && c.kind == PrimitiveKind
}

// IsInterface reports whether t, once erased, is an interface class
func IsInterface(t Type) bool {
	c, ok := Erasure(t).(*Class)
	return ok && c.kind == InterfaceKind
}

// isPlain is true for terms whose raw-type projection is themselves and which are neither
// variables nor wildcards: class-like terms, containers, and arrays of those
func isPlain(t Type) bool {
	if t.HasTypeArguments() || t.UpperBounded() || t.LowerBounded() {
		return false
	}
	if c := t.ComponentType(); c != nil {
		return isPlain(c)
	}
	return true
}

// UnboundedEquivalent reports whether t is a type variable that places no constraint on
// its values: it has no bounds, or its only bound is the top type
func UnboundedEquivalent(t Type) bool {
	if !IsTypeVariable(t) {
		return false
	}
	bounds := t.UpperBounds()
	return len(bounds) == 0 || len(bounds) == 1 && bounds[0].Top()
}
