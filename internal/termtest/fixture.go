// Package termtest builds the class hierarchy the tests of this module share
package termtest

import (
	"github.com/cottand/typealg/term"
)

// Fixture is a universe with a small collections hierarchy declared on top of the
// bootstrap classes:
//
//	interface Iterable<T>
//	interface Collection<E> extends Iterable<E>
//	interface List<E> extends Collection<E>
//	interface RandomAccess
//	class AbstractList<E> implements List<E>
//	class ArrayList<E> extends AbstractList<E> implements List<E>, RandomAccess, Cloneable, Serializable
//	interface Map<K, V>
//	class Map.Entry<K, V>
//	class HashMap<K, V> implements Map<K, V>
//	class Enum<E extends Enum<E>> implements Comparable<E>, Serializable
//	class A, class B extends A, class C extends B
//	class Foo<T>
//	class NumberBox<N extends Number>
type Fixture struct {
	U *term.Universe

	Object, Number, Integer, Long, String, Int *term.Class
	Comparable, Serializable, Cloneable        *term.Class

	Iterable, Collection, List, RandomAccess *term.Class
	AbstractList, ArrayList                  *term.Class
	Map, Entry, HashMap                      *term.Class
	Enum                                     *term.Class
	A, B, C                                  *term.Class
	Foo, NumberBox                           *term.Class
}

func NewFixture() *Fixture {
	u := term.NewUniverse()
	f := &Fixture{
		U:            u,
		Object:       u.Object(),
		Number:       u.MustLookup("Number"),
		Integer:      u.MustLookup("Integer"),
		Long:         u.MustLookup("Long"),
		String:       u.MustLookup("String"),
		Int:          u.MustLookup("int"),
		Comparable:   u.MustLookup("Comparable"),
		Serializable: u.Serializable(),
		Cloneable:    u.Cloneable(),
	}

	iterable := u.Declare("Iterable", term.InterfaceKind)
	iterable.TypeParameter("T")
	f.Iterable = iterable.Build()

	collection := u.Declare("Collection", term.InterfaceKind)
	e := collection.TypeParameter("E")
	f.Collection = collection.Implements(term.Parameterize(f.Iterable, e)).Build()

	list := u.Declare("List", term.InterfaceKind)
	e = list.TypeParameter("E")
	f.List = list.Implements(term.Parameterize(f.Collection, e)).Build()

	f.RandomAccess = u.Declare("RandomAccess", term.InterfaceKind).Build()

	abstractList := u.Declare("AbstractList", term.ClassKind)
	e = abstractList.TypeParameter("E")
	f.AbstractList = abstractList.Implements(term.Parameterize(f.List, e)).Build()

	arrayList := u.Declare("ArrayList", term.ClassKind)
	e = arrayList.TypeParameter("E")
	f.ArrayList = arrayList.
		Extends(term.Parameterize(f.AbstractList, e)).
		Implements(term.Parameterize(f.List, e), f.RandomAccess, f.Cloneable, f.Serializable).
		Build()

	mapB := u.Declare("Map", term.InterfaceKind)
	mapB.TypeParameter("K")
	mapB.TypeParameter("V")
	f.Map = mapB.Build()

	entry := u.DeclareMember(f.Map, "Entry", term.ClassKind)
	entry.TypeParameter("K")
	entry.TypeParameter("V")
	f.Entry = entry.Build()

	hashMap := u.Declare("HashMap", term.ClassKind)
	k, v := hashMap.TypeParameter("K"), hashMap.TypeParameter("V")
	f.HashMap = hashMap.Implements(term.Parameterize(f.Map, k, v)).Build()

	enum := u.Declare("Enum", term.ClassKind)
	e = enum.TypeParameter("E")
	enum.Bound(e, term.Parameterize(enum.Class(), e))
	f.Enum = enum.Implements(term.Parameterize(f.Comparable, e), f.Serializable).Build()

	f.A = u.Declare("A", term.ClassKind).Build()
	f.B = u.Declare("B", term.ClassKind).Extends(f.A).Build()
	f.C = u.Declare("C", term.ClassKind).Extends(f.B).Build()

	foo := u.Declare("Foo", term.ClassKind)
	foo.TypeParameter("T")
	f.Foo = foo.Build()

	numberBox := u.Declare("NumberBox", term.ClassKind)
	n := numberBox.TypeParameter("N")
	numberBox.Bound(n, f.Number)
	f.NumberBox = numberBox.Build()

	return f
}

// Of parameterizes raw with args
func Of(raw term.Type, args ...term.Type) term.Type {
	return term.Parameterize(raw, args...)
}

// TypeVar returns a free-standing type variable, bounded by the top type of f when no
// bounds are given
func (f *Fixture) TypeVar(name string, bounds ...term.Type) *term.TypeVariable {
	if len(bounds) == 0 {
		bounds = []term.Type{f.Object}
	}
	return term.NewTypeVariable(name, nil, bounds...)
}
