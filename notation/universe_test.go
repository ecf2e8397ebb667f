package notation_test

import (
	"os"
	"strings"
	"testing"

	"github.com/cottand/typealg/assign"
	"github.com/cottand/typealg/notation"
	"github.com/cottand/typealg/term"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultUniverse(t *testing.T) {
	u := notation.DefaultUniverse()
	for name, expected := range map[string]string{
		"ArrayList":  "class ArrayList<E> extends AbstractList<E> implements List<E>, RandomAccess, Cloneable, Serializable",
		"List":       "interface List<E> extends Collection<E>",
		"Map.Entry":  "interface Map.Entry<K, V>",
		"Enum":       "class Enum<E extends Enum<E>> implements Comparable<E>, Serializable",
		"String":     "class String implements Serializable, Comparable<String>, CharSequence",
		"Integer":    "class Integer extends Number implements Comparable<Integer>",
		"Comparable": "interface Comparable<T>",
	} {
		t.Run(name, func(t *testing.T) {
			c, ok := u.Lookup(name)
			require.True(t, ok)
			assert.Equal(t, expected, c.Describe())
		})
	}

	// every declared class can compute its supertypes
	for _, c := range u.Classes() {
		supers := term.Supertypes(c)
		assert.NotEmpty(t, supers)
		assert.Same(t, c, supers[0].(*term.Class))
	}
}

func TestLoadBeans(t *testing.T) {
	scope := beansScope(t)
	u := scope.Universe()

	for name, expected := range map[string]string{
		"Kennel":      "class Kennel<A extends Animal> implements Iterable<A>",
		"DogKennel":   "class DogKennel extends Kennel<Dog>",
		"Graph":       "class Graph<N extends Node<N, E>, E extends Edge<N, E>>",
		"Ranked":      "interface Ranked<T extends Number & Comparable<T>>",
		"Outer.Inner": "class Outer.Inner<U>",
		"Dog":         "class Dog extends Animal",
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, expected, u.MustLookup(name).Describe())
		})
	}

	supers := term.Supertypes(u.MustLookup("DogKennel"))
	iterableOfDog := notation.MustParse("Iterable<Dog>", scope)
	assert.True(t, containsType(supers, iterableOfDog), "%s is missing from %v", iterableOfDog, supers)

	inner := u.MustLookup("Outer.Inner")
	assert.Equal(t, term.Owner(u.MustLookup("Outer")), inner.Owner())
}

func containsType(types []term.Type, t term.Type) bool {
	for _, member := range types {
		if term.Equal(member, t) {
			return true
		}
	}
	return false
}

func TestAssignableFromNotation(t *testing.T) {
	scope := beansScope(t)
	covariant, cdi := assign.New(assign.Covariant), assign.New(assign.CDI)
	cases := []struct {
		r, p          string
		covariant, cd bool
	}{
		{"Iterable<? extends Animal>", "DogKennel", true, false},
		{"Iterable<Dog>", "DogKennel", true, false},
		{"Kennel<Dog>", "DogKennel", true, false},
		{"Kennel<? extends Animal>", "Kennel<Dog>", true, true},
		{"Kennel<Animal>", "Kennel<Dog>", false, false},
		{"Comparable<Animal>", "Dog", true, false},
		{"Collection<? super Integer>", "ArrayList<Number>", true, false},
		{"List<? super Integer>", "List<Number>", true, true},
		{"Map<String, ? extends List<? extends Number>>", "HashMap<String, ArrayList<Integer>>", true, false},
		{"Object[]", "Dog[]", true, true},
		{"Animal[]", "Object[]", false, false},
		{"Number", "int", false, true},
		{"Optional<Object>", "Optional", true, true},
		{"Optional<String>", "Optional", false, false},
		{"Deque<String>", "LinkedList<String>", true, false},
		{"SortedSet<String>", "HashSet<String>", false, false},
	}
	for _, c := range cases {
		t.Run(c.r+" <- "+c.p, func(t *testing.T) {
			r, p := notation.MustParse(c.r, scope), notation.MustParse(c.p, scope)
			assert.Equal(t, c.covariant, covariant.Assignable(r, p), "covariant")
			assert.Equal(t, c.cd, cdi.Assignable(r, p), "cdi")
		})
	}
}

func TestLoadErrors(t *testing.T) {
	cases := map[string]string{
		"unknown_superclass.yaml":   "unknown type Parent",
		"interface_superclass.yaml": "is an interface",
		"bad_kind.yaml":             "unknown kind \"record\"",
		"unknown_field.yaml":        "permits",
	}
	for file, message := range cases {
		t.Run(file, func(t *testing.T) {
			f, err := os.Open("testdata/" + file)
			require.NoError(t, err)
			defer f.Close()
			err = notation.Load(notation.DefaultUniverse(), f)
			require.Error(t, err)
			assert.Contains(t, err.Error(), message)
		})
	}
}

func TestLoadUniverse(t *testing.T) {
	u, err := notation.LoadUniverse(strings.NewReader(`
classes:
  - name: Shape
    kind: interface
  - name: Circle
    implements: [Shape, Comparable<Circle>]
`))
	require.NoError(t, err)
	circle := u.MustLookup("Circle")
	assert.True(t, circle.IsSubclassOf(u.MustLookup("Shape")))
	assert.True(t, circle.IsSubclassOf(u.Object()))

	empty, err := notation.LoadUniverse(strings.NewReader(""))
	require.NoError(t, err)
	_, ok := empty.Lookup("Object")
	assert.True(t, ok)

	_, err = notation.LoadUniverse(strings.NewReader("classes:\n  - name: Object\n"))
	assert.ErrorContains(t, err, "declared twice")

	_, err = notation.LoadUniverse(strings.NewReader("classes:\n  - name: Missing.Member\n"))
	assert.ErrorContains(t, err, "enclosing class Missing is not declared")
}
