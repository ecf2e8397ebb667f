package term

import (
	"github.com/cottand/typealg/util"
)

// Parameterized is a generic class applied to type arguments, like List<String>
type Parameterized struct {
	raw   Type
	args  []Type
	owner Type

	supertypes closureCell
}

var _ Type = (*Parameterized)(nil)

// Parameterize applies raw to args, which must match raw's type parameters in number
func Parameterize(raw Type, args ...Type) *Parameterized {
	return ParameterizeIn(nil, raw, args...)
}

// ParameterizeIn is Parameterize for member classes of a parameterized owner,
// like Outer<String>.Inner<Integer>
func ParameterizeIn(owner Type, raw Type, args ...Type) *Parameterized {
	if raw == nil {
		violation("parameterized type without a raw type")
	}
	if raw.HasTypeArguments() || !IsClassOrInterface(raw) {
		violation("%s cannot be parameterized, it is not a class", raw)
	}
	if len(args) == 0 {
		violation("parameterized %s needs at least one type argument", raw)
	}
	if got, want := len(args), len(raw.TypeParameters()); got != want {
		violation("%s takes %d type arguments, got %d", raw, want, got)
	}
	for i, arg := range args {
		if arg == nil {
			violation("type argument %d of %s is nil", i, raw)
		}
		if IsPrimitive(arg) {
			violation("type argument %d of %s is primitive %s", i, raw, arg)
		}
	}
	return &Parameterized{raw: raw, args: append([]Type(nil), args...), owner: owner}
}

func (p *Parameterized) Named() bool             { return false }
func (p *Parameterized) Name() string            { return "" }
func (p *Parameterized) Top() bool               { return false }
func (p *Parameterized) Type() Type              { return p.raw }
func (p *Parameterized) HasTypeParameters() bool { return false }
func (p *Parameterized) TypeParameters() []Type  { return nil }
func (p *Parameterized) HasTypeArguments() bool  { return true }
func (p *Parameterized) TypeArguments() []Type   { return p.args }
func (p *Parameterized) ComponentType() Type     { return nil }
func (p *Parameterized) UpperBounded() bool      { return false }
func (p *Parameterized) LowerBounded() bool      { return false }
func (p *Parameterized) UpperBounds() []Type     { return nil }
func (p *Parameterized) LowerBounds() []Type     { return nil }
func (p *Parameterized) Hash() uint64            { return Hash(p) }
func (p *Parameterized) closure() *closureCell   { return &p.supertypes }

func (p *Parameterized) Owner() Owner {
	if p.owner == nil {
		return nil
	}
	return p.owner
}

func (p *Parameterized) String() string {
	name := p.raw.String()
	if p.owner != nil {
		name = p.owner.String() + "." + p.raw.Name()
	}
	return name + "<" + util.JoinString(p.args, ", ") + ">"
}
