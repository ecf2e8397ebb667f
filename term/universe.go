package term

import (
	"cmp"
	"slices"
	"sync"

	"github.com/benbjohnson/immutable"
)

// Universe is a namespace of classes together with the few classes the type algebra
// itself relies on: the top type, the markers every array implements, and the
// primitives with their wrappers.
//
// Declaring classes is safe for concurrent use; the classes themselves are immutable
// once built.
type Universe struct {
	mu      sync.RWMutex
	classes map[string]*Class

	object, cloneable, serializable *Class

	// boxes maps primitives to their wrappers
	boxes *immutable.Map[Type, Type]
}

// primitive names and their wrappers, in declaration order
var primitiveWrappers = [...][2]string{
	{"boolean", "Boolean"},
	{"byte", "Byte"},
	{"char", "Character"},
	{"double", "Double"},
	{"float", "Float"},
	{"int", "Integer"},
	{"long", "Long"},
	{"short", "Short"},
	{"void", "Void"},
}

// NewUniverse returns a universe holding the bootstrap classes:
//
//	class Object
//	interface Cloneable, Serializable, CharSequence, Comparable<T>
//	class Number implements Serializable
//	class String implements Serializable, Comparable<String>, CharSequence
//	the primitives boolean, byte, char, double, float, int, long, short and void
//	their wrappers Boolean, Byte, Character, Double, Float, Integer, Long, Short and Void
func NewUniverse() *Universe {
	u := &Universe{classes: make(map[string]*Class)}

	objectB := u.Declare("Object", ClassKind)
	objectB.class.top = true
	u.object = objectB.Build()
	u.cloneable = u.Declare("Cloneable", InterfaceKind).Build()
	u.serializable = u.Declare("Serializable", InterfaceKind).Build()
	charSequence := u.Declare("CharSequence", InterfaceKind).Build()

	comparableB := u.Declare("Comparable", InterfaceKind)
	comparableB.TypeParameter("T")
	comparable := comparableB.Build()

	number := u.Declare("Number", ClassKind).Implements(u.serializable).Build()

	stringB := u.Declare("String", ClassKind)
	stringB.Implements(u.serializable, Parameterize(comparable, stringB.Class()), charSequence).Build()

	boxes := immutable.NewMap[Type, Type](Hasher{})
	for _, pair := range primitiveWrappers {
		primitive := u.Declare(pair[0], PrimitiveKind).Build()
		wrapperB := u.Declare(pair[1], ClassKind)
		switch pair[1] {
		case "Void":
		case "Boolean", "Character":
			wrapperB.Implements(u.serializable, Parameterize(comparable, wrapperB.Class()))
		default:
			wrapperB.Extends(number).Implements(Parameterize(comparable, wrapperB.Class()))
		}
		boxes = boxes.Set(primitive, wrapperB.Build())
	}
	u.boxes = boxes
	return u
}

// Declare registers a new class named name and returns the builder that defines it.
// The class can be looked up (and referenced by other declarations) straight away, but
// its supertypes can only be computed once it is built.
// Declaring the same name twice is a contract violation.
func (u *Universe) Declare(name string, kind Kind) *ClassBuilder {
	if name == "" {
		violation("class without a name")
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	if _, exists := u.classes[name]; exists {
		violation("class %s declared twice", name)
	}
	c := &Class{universe: u, name: name, kind: kind}
	u.classes[name] = c
	return &ClassBuilder{class: c}
}

// Lookup finds a declared class by name. Member classes are registered under their
// qualified name, like `Map.Entry`.
func (u *Universe) Lookup(name string) (*Class, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	c, ok := u.classes[name]
	return c, ok
}

// MustLookup is Lookup for classes that are known to exist
func (u *Universe) MustLookup(name string) *Class {
	c, ok := u.Lookup(name)
	if !ok {
		violation("class %s is not declared", name)
	}
	return c
}

// DeclareMember declares a class nested inside owner, registered as `Owner.Name`
func (u *Universe) DeclareMember(owner *Class, name string, kind Kind) *ClassBuilder {
	b := u.Declare(owner.String()+"."+name, kind)
	b.class.name = name
	b.class.enclosing = owner
	return b
}

// Classes lists every declared class sorted by qualified name
func (u *Universe) Classes() []*Class {
	u.mu.RLock()
	defer u.mu.RUnlock()
	out := make([]*Class, 0, len(u.classes))
	for _, c := range u.classes {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b *Class) int { return cmp.Compare(a.String(), b.String()) })
	return out
}

func (u *Universe) Object() *Class       { return u.object }
func (u *Universe) Cloneable() *Class    { return u.cloneable }
func (u *Universe) Serializable() *Class { return u.serializable }

// Unbounded returns the wildcard `?`
func (u *Universe) Unbounded() *Wildcard { return NewWildcard(u.object, nil) }

// Super returns the wildcard `? super lower`
func (u *Universe) Super(lower Type) *Wildcard { return NewWildcard(u.object, lower) }

// Box returns the wrapper of a primitive term, and any other term unchanged.
// Primitives are matched structurally, so primitives of other universes box too.
func (u *Universe) Box(t Type) Type {
	if boxed, ok := u.boxes.Get(t); ok {
		return boxed
	}
	return t
}

// Box is Universe.Box for the universe t was declared in
func Box(t Type) Type {
	if c, ok := t.(*Class); ok && c.kind == PrimitiveKind && c.universe != nil {
		return c.universe.Box(c)
	}
	return t
}
