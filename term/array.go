package term

import (
	"sync"
)

// Array is an array of some component type.
// It is plain when its component is a class-like term or a plain array, and generic
// otherwise (List<String>[], T[]); the raw-type projection of a generic array is
// the array of the erased component.
type Array struct {
	component Type
	plain     bool
	erased    func() Type

	supertypes closureCell
}

var _ Type = (*Array)(nil)

// ArrayOf builds the array of component, which can be anything but a wildcard
func ArrayOf(component Type) *Array {
	if component == nil {
		violation("array without a component type")
	}
	if IsWildcard(component) {
		violation("array of wildcard %s", component)
	}
	a := &Array{component: component, plain: isPlain(component)}
	// bounds of type variables may still be under construction in a builder, so the
	// erasure is taken on first use
	a.erased = sync.OnceValue(func() Type {
		if a.plain {
			return a
		}
		return ArrayOf(Erasure(a.component))
	})
	return a
}

func (a *Array) Named() bool             { return false }
func (a *Array) Name() string            { return "" }
func (a *Array) Top() bool               { return false }
func (a *Array) Owner() Owner            { return nil }
func (a *Array) HasTypeParameters() bool { return false }
func (a *Array) TypeParameters() []Type  { return nil }
func (a *Array) HasTypeArguments() bool  { return false }
func (a *Array) TypeArguments() []Type   { return nil }
func (a *Array) ComponentType() Type     { return a.component }
func (a *Array) UpperBounded() bool      { return false }
func (a *Array) LowerBounded() bool      { return false }
func (a *Array) UpperBounds() []Type     { return nil }
func (a *Array) LowerBounds() []Type     { return nil }
func (a *Array) Hash() uint64            { return Hash(a) }
func (a *Array) String() string          { return a.component.String() + "[]" }
func (a *Array) closure() *closureCell   { return &a.supertypes }

func (a *Array) Type() Type {
	if a.plain {
		return a
	}
	return a.erased()
}
