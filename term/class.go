package term

import (
	"slices"
	"strings"
	"sync/atomic"

	"github.com/cottand/typealg/util"
	"github.com/hashicorp/go-set/v3"
)

type Kind int

const (
	ClassKind Kind = iota
	InterfaceKind
	PrimitiveKind
)

func (k Kind) String() string {
	switch k {
	case ClassKind:
		return "class"
	case InterfaceKind:
		return "interface"
	case PrimitiveKind:
		return "primitive"
	default:
		return "unknown"
	}
}

// Class is a class-like term: a class, an interface or a primitive, possibly generic.
// A Class used as a Type without arguments is the raw type.
//
// Construct with Universe.Declare
type Class struct {
	universe  *Universe
	name      string
	kind      Kind
	top       bool
	enclosing *Class

	typeParams []Type
	superclass Type
	interfaces []Type
	built      bool

	supertypes closureCell
	// ancestors holds the qualified names of every erased supertype, see IsSubclassOf
	ancestors atomic.Pointer[set.Set[string]]
}

var _ Type = (*Class)(nil)

func (c *Class) Named() bool  { return true }
func (c *Class) Name() string { return c.name }
func (c *Class) Top() bool    { return c.top }
func (c *Class) Type() Type   { return c }
func (c *Class) Owner() Owner {
	if c.enclosing == nil {
		return nil
	}
	return c.enclosing
}
func (c *Class) HasTypeParameters() bool { return len(c.typeParams) > 0 }
func (c *Class) TypeParameters() []Type  { return c.typeParams }
func (c *Class) HasTypeArguments() bool  { return false }
func (c *Class) TypeArguments() []Type   { return nil }
func (c *Class) ComponentType() Type     { return nil }
func (c *Class) UpperBounded() bool      { return false }
func (c *Class) LowerBounded() bool      { return false }
func (c *Class) UpperBounds() []Type     { return nil }
func (c *Class) LowerBounds() []Type     { return nil }
func (c *Class) Hash() uint64            { return Hash(c) }
func (c *Class) closure() *closureCell   { return &c.supertypes }

func (c *Class) Kind() Kind          { return c.kind }
func (c *Class) IsInterface() bool   { return c.kind == InterfaceKind }
func (c *Class) IsPrimitive() bool   { return c.kind == PrimitiveKind }
func (c *Class) Universe() *Universe { return c.universe }

// Superclass is the generic superclass, nil for interfaces, primitives and the top type
func (c *Class) Superclass() Type { return c.superclass }

// Interfaces are the generic interfaces the class implements (or, for an interface, extends)
func (c *Class) Interfaces() []Type { return c.interfaces }

// String is the name qualified by the enclosing classes, if any
func (c *Class) String() string {
	if c.enclosing != nil {
		return c.enclosing.String() + "." + c.name
	}
	return c.name
}

// Describe renders the declaration of c, for example
// `class ArrayList<E> extends AbstractList<E> implements List<E>`
func (c *Class) Describe() string {
	s := c.kind.String() + " " + c.String()
	if c.HasTypeParameters() {
		params := make([]string, len(c.typeParams))
		for i, p := range c.typeParams {
			params[i] = p.(*TypeVariable).Describe()
		}
		s += "<" + strings.Join(params, ", ") + ">"
	}
	if c.superclass != nil && !c.superclass.Top() {
		s += " extends " + c.superclass.String()
	}
	if len(c.interfaces) > 0 {
		if c.kind == InterfaceKind {
			s += " extends "
		} else {
			s += " implements "
		}
		s += util.JoinString(c.interfaces, ", ")
	}
	return s
}

// IsSubclassOf is a fast ancestor check between raw classes: it reports whether other,
// erased, is among the erased supertypes of c. Every class is a subclass of itself.
func (c *Class) IsSubclassOf(other *Class) bool {
	if c == other {
		return true
	}
	ancestors := c.ancestors.Load()
	if ancestors == nil {
		computed := set.New[string](8)
		for _, s := range Supertypes(c) {
			if erased, ok := Erasure(s).(*Class); ok {
				computed.Insert(erased.String())
			}
		}
		c.ancestors.CompareAndSwap(nil, computed)
		ancestors = c.ancestors.Load()
	}
	return ancestors.Contains(other.String())
}

func (c *Class) mustBeBuilt() {
	if !c.built {
		violation("class %s was used before it was built", c)
	}
}

// directSupertypes follows the direct supertype relation for classes and interfaces:
// the generic superclass and interfaces, each followed by its erasure when parameterized.
// Classes without superclass and interfaces without superinterfaces get the top type.
// A class with a superclass does not list the top type, even without interfaces: it
// reaches the top type through its superclass, and `C extends B` has exactly [B].
func (c *Class) directSupertypes() []Type {
	c.mustBeBuilt()
	if c.top || c.kind == PrimitiveKind {
		return nil
	}
	var out []Type
	add := func(s Type) {
		if s == Type(c) || slices.ContainsFunc(out, func(other Type) bool { return Equal(s, other) }) {
			return
		}
		out = append(out, s)
	}
	addWithErasure := func(s Type) {
		add(s)
		if s.HasTypeArguments() {
			add(s.Type())
		}
	}
	if c.kind == ClassKind {
		if c.superclass != nil {
			addWithErasure(c.superclass)
		} else {
			add(c.universe.object)
		}
	}
	for _, iface := range c.interfaces {
		addWithErasure(iface)
	}
	if c.kind == InterfaceKind && len(c.interfaces) == 0 {
		add(c.universe.object)
	}
	return out
}

// ClassBuilder is the only way to give a declared Class its type parameters and
// supertypes. Once Build is called the Class is frozen.
type ClassBuilder struct {
	class *Class
	scope typeParameterScope
}

// Class is the class under construction, useful for self-referencing supertypes
// such as `Enum<E extends Enum<E>>`
func (b *ClassBuilder) Class() *Class { return b.class }

// TypeParameter declares the next type parameter, bounded by the top type until Bound
// is called for it
func (b *ClassBuilder) TypeParameter(name string) *TypeVariable {
	b.mustNotBeBuilt()
	tv := b.scope.declare(name, b.class, b.class.universe.object)
	b.class.typeParams = append(b.class.typeParams, tv)
	return tv
}

// Bound replaces the upper bounds of a type parameter declared by this builder
func (b *ClassBuilder) Bound(tv *TypeVariable, bounds ...Type) *ClassBuilder {
	b.mustNotBeBuilt()
	b.scope.bound(tv, bounds)
	return b
}

// EnclosedBy makes c a member class of owner
func (b *ClassBuilder) EnclosedBy(owner *Class) *ClassBuilder {
	b.mustNotBeBuilt()
	b.class.enclosing = owner
	return b
}

// Extends sets the generic superclass. Only classes have one.
func (b *ClassBuilder) Extends(superclass Type) *ClassBuilder {
	b.mustNotBeBuilt()
	if b.class.kind != ClassKind || b.class.top {
		violation("%s %s cannot extend a class", b.class.kind, b.class)
	}
	if superclass == nil || IsWildcard(superclass) || IsTypeVariable(superclass) || IsArray(superclass) {
		violation("superclass of %s must be a class or a parameterized class, got %v", b.class, superclass)
	}
	if IsInterface(superclass) {
		violation("superclass %s of %s is an interface", superclass, b.class)
	}
	b.class.superclass = superclass
	return b
}

// Implements appends generic interfaces (superinterfaces, when building an interface)
func (b *ClassBuilder) Implements(interfaces ...Type) *ClassBuilder {
	b.mustNotBeBuilt()
	if b.class.kind == PrimitiveKind {
		violation("primitive %s cannot implement interfaces", b.class)
	}
	for _, iface := range interfaces {
		if iface == nil || IsWildcard(iface) || IsTypeVariable(iface) || IsArray(iface) {
			violation("%v cannot be implemented by %s", iface, b.class)
		}
		b.class.interfaces = append(b.class.interfaces, iface)
	}
	return b
}

// Build freezes the class and returns it
func (b *ClassBuilder) Build() *Class {
	b.mustNotBeBuilt()
	c := b.class
	if c.kind == ClassKind && !c.top && c.superclass == nil {
		c.superclass = c.universe.object
	}
	b.scope.close()
	c.built = true
	logger.Debug("built class", "class", c.Describe())
	return c
}

func (b *ClassBuilder) mustNotBeBuilt() {
	if b.class.built {
		violation("class %s is already built", b.class)
	}
}

// typeParameterScope holds the type variables declared by a class or executable builder
// while their bounds can still change
type typeParameterScope struct {
	vars   []*TypeVariable
	closed bool
}

func (s *typeParameterScope) declare(name string, owner Owner, top Type) *TypeVariable {
	if s.closed {
		violation("cannot declare type parameter %s on %s after it was built", name, owner)
	}
	for _, v := range s.vars {
		if v.name == name {
			violation("type parameter %s declared twice on %s", name, owner)
		}
	}
	tv := &TypeVariable{name: name, owner: owner, bounds: []Type{top}}
	s.vars = append(s.vars, tv)
	return tv
}

func (s *typeParameterScope) bound(tv *TypeVariable, bounds []Type) {
	if !slices.Contains(s.vars, tv) {
		violation("type variable %s was not declared by this builder", tv)
	}
	tv.bounds = checkBounds(tv.name, bounds)
}

func (s *typeParameterScope) close() { s.closed = true }
