package term

import (
	"slices"

	"github.com/cottand/typealg/util"
)

// Container is a synthetic type made only of hand-specified direct supertypes.
// It has no name and no identity beyond its supertypes: two containers with the same
// supertype closure are equal.
type Container struct {
	supertypes []Type
	// direct is supertypes with the erasure of each parameterized one after it
	direct    []Type
	closureOf closureCell
}

var _ Type = (*Container)(nil)

func NewContainer(supertypes ...Type) *Container {
	var unique, direct []Type
	add := func(s Type) {
		if !slices.ContainsFunc(direct, func(other Type) bool { return Equal(s, other) }) {
			direct = append(direct, s)
		}
	}
	for _, s := range supertypes {
		if s == nil {
			violation("container with a nil supertype")
		}
		if IsWildcard(s) {
			violation("container cannot have wildcard %s as a supertype", s)
		}
		if !slices.ContainsFunc(unique, func(other Type) bool { return Equal(s, other) }) {
			unique = append(unique, s)
		}
		add(s)
		if s.HasTypeArguments() {
			add(s.Type())
		}
	}
	return &Container{supertypes: unique, direct: direct}
}

// DirectSupertypes are the supertypes the container was built with, deduplicated and
// each followed by its erasure when parameterized, as for classes
func (c *Container) DirectSupertypes() []Type { return slices.Clone(c.direct) }

func (c *Container) Named() bool             { return false }
func (c *Container) Name() string            { return "" }
func (c *Container) Top() bool               { return false }
func (c *Container) Type() Type              { return c }
func (c *Container) Owner() Owner            { return nil }
func (c *Container) HasTypeParameters() bool { return false }
func (c *Container) TypeParameters() []Type  { return nil }
func (c *Container) HasTypeArguments() bool  { return false }
func (c *Container) TypeArguments() []Type   { return nil }
func (c *Container) ComponentType() Type     { return nil }
func (c *Container) UpperBounded() bool      { return false }
func (c *Container) LowerBounded() bool      { return false }
func (c *Container) UpperBounds() []Type     { return nil }
func (c *Container) LowerBounds() []Type     { return nil }
func (c *Container) Hash() uint64            { return Hash(c) }
func (c *Container) closure() *closureCell   { return &c.closureOf }
func (c *Container) String() string          { return "{" + util.JoinString(c.supertypes, ", ") + "}" }
