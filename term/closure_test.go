package term_test

import (
	"sync"
	"testing"

	"github.com/cottand/typealg/internal/termtest"
	"github.com/cottand/typealg/term"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertTypes(t *testing.T, expected, actual []term.Type) {
	t.Helper()
	if !assert.Len(t, actual, len(expected), "got %v", actual) {
		return
	}
	for i := range expected {
		assert.True(t, term.Equal(expected[i], actual[i]), "at %d: expected %s, got %s", i, expected[i], actual[i])
	}
}

func containsType(types []term.Type, t term.Type) bool {
	for _, member := range types {
		if term.Equal(member, t) {
			return true
		}
	}
	return false
}

func TestDirectSupertypes(t *testing.T) {
	f := termtest.NewFixture()
	e := f.Enum.TypeParameters()[0]
	cases := map[string]struct {
		t        term.Type
		expected []term.Type
	}{
		"top":               {f.Object, nil},
		"primitive":         {f.Int, nil},
		"plain class":       {f.C, []term.Type{f.B}},
		"root class":        {f.A, []term.Type{f.Object}},
		"root interface":    {f.RandomAccess, []term.Type{f.Object}},
		"sub interface":     {f.List, []term.Type{termtest.Of(f.Collection, f.List.TypeParameters()[0]), f.Collection}},
		"wrapper":           {f.Integer, []term.Type{f.Number, termtest.Of(f.Comparable, f.Integer), f.Comparable}},
		"parameterized":     {termtest.Of(f.List, f.String), []term.Type{termtest.Of(f.Collection, f.String), f.Collection}},
		"type variable":     {e, []term.Type{termtest.Of(f.Enum, e)}},
		"wildcard":          {f.U.Unbounded(), nil},
		"primitive array":   {term.ArrayOf(f.Int), []term.Type{f.Object, f.Cloneable, f.Serializable}},
		"top array":         {term.ArrayOf(f.Object), []term.Type{f.Object, f.Cloneable, f.Serializable}},
		"class array":       {term.ArrayOf(f.C), []term.Type{term.ArrayOf(f.B)}},
		"container":         {term.NewContainer(f.A, f.Serializable, f.A), []term.Type{f.A, f.Serializable}},
		"generic container": {term.NewContainer(termtest.Of(f.List, f.String)), []term.Type{termtest.Of(f.List, f.String), f.List}},
		"enum":              {f.Enum, []term.Type{f.Object, termtest.Of(f.Comparable, e), f.Comparable, f.Serializable}},
		"parameterized ab": {termtest.Of(f.ArrayList, f.String), []term.Type{
			termtest.Of(f.AbstractList, f.String), f.AbstractList,
			termtest.Of(f.List, f.String), f.List,
			f.RandomAccess, f.Cloneable, f.Serializable,
		}},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			assertTypes(t, c.expected, term.DirectSupertypes(c.t))
		})
	}
}

func TestSupertypesOfHierarchy(t *testing.T) {
	f := termtest.NewFixture()

	assertTypes(t, []term.Type{f.C, f.B, f.A, f.Object}, term.Supertypes(f.C))
	assertTypes(t, []term.Type{f.Object}, term.Supertypes(f.Object))

	assert.True(t, term.SupertypeOf(f.A, f.C))
	assert.False(t, term.SupertypeOf(f.C, f.A))
	assert.True(t, term.SubtypeOf(f.C, f.A))
	assert.True(t, term.SupertypeOf(f.C, f.C))
	assert.True(t, f.C.IsSubclassOf(f.A))
	assert.False(t, f.A.IsSubclassOf(f.C))
}

func TestSupertypesOfParameterized(t *testing.T) {
	f := termtest.NewFixture()
	supers := term.Supertypes(termtest.Of(f.ArrayList, f.String))

	for _, expected := range []term.Type{
		termtest.Of(f.ArrayList, f.String),
		termtest.Of(f.List, f.String),
		termtest.Of(f.Collection, f.String),
		termtest.Of(f.Iterable, f.String),
		f.List, f.Collection, f.Iterable, f.RandomAccess, f.Object,
	} {
		assert.True(t, containsType(supers, expected), "%s is missing from %v", expected, supers)
	}
	assert.False(t, containsType(supers, termtest.Of(f.List, f.Integer)))
	assert.True(t, term.Equal(supers[0], termtest.Of(f.ArrayList, f.String)))

	for i, a := range supers {
		for _, b := range supers[i+1:] {
			assert.False(t, term.Equal(a, b), "%s appears twice", a)
		}
	}
}

func TestSupertypesOfArrays(t *testing.T) {
	f := termtest.NewFixture()
	supers := term.Supertypes(term.ArrayOf(f.Integer))
	for _, expected := range []term.Type{
		term.ArrayOf(f.Number),
		term.ArrayOf(termtest.Of(f.Comparable, f.Integer)),
		term.ArrayOf(f.Object),
		f.Object, f.Cloneable, f.Serializable,
	} {
		assert.True(t, containsType(supers, expected), "%s is missing from %v", expected, supers)
	}
	assert.True(t, term.SupertypeOf(term.ArrayOf(f.Number), term.ArrayOf(f.Integer)))
	assert.False(t, term.SupertypeOf(term.ArrayOf(f.Integer), term.ArrayOf(f.Number)))
	assert.False(t, term.SupertypeOf(term.ArrayOf(f.Object), term.ArrayOf(f.Int)))
}

func TestSupertypesTerminateOnCyclicBounds(t *testing.T) {
	f := termtest.NewFixture()
	b := term.NewExecutable(f.A, "cyclic")
	t1, t2 := b.TypeParameter("T1"), b.TypeParameter("T2")
	b.Bound(t1, t2).Bound(t2, t1).Build()

	assertTypes(t, []term.Type{t1, t2}, term.Supertypes(t1))
	assertTypes(t, []term.Type{t2, t1}, term.Supertypes(t2))

	e := f.Enum.TypeParameters()[0]
	supers := term.Supertypes(e)
	assert.True(t, containsType(supers, termtest.Of(f.Comparable, e)))
	assert.True(t, containsType(supers, f.Object))
}

func TestSupertypesAreDeterministic(t *testing.T) {
	f := termtest.NewFixture()
	listOfString := termtest.Of(f.ArrayList, f.String)
	first := term.Supertypes(listOfString)
	assertTypes(t, first, term.Supertypes(listOfString))
	assertTypes(t, first, term.Supertypes(termtest.Of(f.ArrayList, f.String)))
	assertTypes(t, first, term.Supertypes(termtest.Of(termtest.NewFixture().ArrayList, f.String)))

	// callers own the result
	first[0] = f.Object
	assert.True(t, term.Equal(listOfString, term.Supertypes(listOfString)[0]))
}

func TestSupertypesOfBoundedTerms(t *testing.T) {
	f := termtest.NewFixture()
	w := term.Extends(f.Number)
	first := term.Supertypes(w)
	assertTypes(t, []term.Type{w}, first)
	first[0] = f.Object
	assert.Same(t, w, term.Supertypes(w)[0].(*term.Wildcard))

	// a type variable follows bounds given after its closure was first asked for
	b := term.NewExecutable(f.A, "widen")
	tv := b.TypeParameter("N")
	assertTypes(t, []term.Type{tv, f.Object}, term.Supertypes(tv))
	b.Bound(tv, f.Integer).Build()
	assert.True(t, containsType(term.Supertypes(tv), f.Number))
}

func TestSupertypesConcurrently(t *testing.T) {
	f := termtest.NewFixture()
	shared := termtest.Of(f.HashMap, f.String, termtest.Of(f.List, f.Integer))
	expected := term.Supertypes(termtest.Of(f.HashMap, f.String, termtest.Of(f.List, f.Integer)))

	var wg sync.WaitGroup
	results := make([][]term.Type, 16)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = term.Supertypes(shared)
		}()
	}
	wg.Wait()
	for _, result := range results {
		assertTypes(t, expected, result)
	}
}

func TestContainers(t *testing.T) {
	f := termtest.NewFixture()
	c := term.NewContainer(f.C, f.Serializable)
	assertTypes(t, []term.Type{c, f.C, f.Serializable, f.B, f.Object, f.A}, term.Supertypes(c))
	assert.True(t, term.SupertypeOf(f.A, c))
	assert.True(t, term.SupertypeOf(f.Serializable, c))
	assert.False(t, term.SupertypeOf(f.Cloneable, c))
}

func TestSubstitute(t *testing.T) {
	f := termtest.NewFixture()
	e := f.List.TypeParameters()[0]
	params := []term.Type{e}
	args := []term.Type{f.String}

	assert.True(t, term.Equal(termtest.Of(f.Collection, f.String), term.Substitute(termtest.Of(f.Collection, e), params, args)))
	assert.True(t, term.Equal(term.ArrayOf(f.String), term.Substitute(term.ArrayOf(e), params, args)))
	assert.True(t, term.Equal(term.Extends(f.String), term.Substitute(term.Extends(e), params, args)))
	assert.True(t, term.Equal(
		termtest.Of(f.Map, f.String, termtest.Of(f.List, f.String)),
		term.Substitute(termtest.Of(f.Map, e, termtest.Of(f.List, e)), params, args)))

	unrelated := termtest.Of(f.List, f.Integer)
	assert.Same(t, unrelated, term.Substitute(unrelated, params, args))

	// arrays cannot hold wildcards: their upper bound is used instead
	assert.True(t, term.Equal(term.ArrayOf(f.Number), term.Substitute(term.ArrayOf(e), params, []term.Type{term.Extends(f.Number)})))

	assertViolation(t, func() { term.Substitute(e, params, nil) })
}

func TestErasure(t *testing.T) {
	f := termtest.NewFixture()
	cases := map[string]struct {
		t, erased term.Type
	}{
		"class":         {f.String, f.String},
		"parameterized": {termtest.Of(f.List, f.String), f.List},
		"generic array": {term.ArrayOf(termtest.Of(f.List, f.String)), term.ArrayOf(f.List)},
		"type variable": {f.Enum.TypeParameters()[0], f.Enum},
		"bounded":       {f.NumberBox.TypeParameters()[0], f.Number},
		"wildcard":      {term.Extends(f.Number), f.Number},
		"plain array":   {term.ArrayOf(f.Int), term.ArrayOf(f.Int)},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			assert.True(t, term.Equal(c.erased, term.Erasure(c.t)), "expected %s, got %s", c.erased, term.Erasure(c.t))
		})
	}
}

func TestMostSpecialized(t *testing.T) {
	f := termtest.NewFixture()
	always := func(term.Type) bool { return true }

	assert.Equal(t, term.Type(f.C), term.MostSpecialized([]term.Type{f.A, f.C, f.B}, always))
	assert.Equal(t, term.Type(f.B), term.MostSpecialized([]term.Type{f.A, f.C, f.B}, func(t term.Type) bool { return t != f.C }))
	assert.Nil(t, term.MostSpecialized([]term.Type{f.A, f.B}, func(term.Type) bool { return false }))
	assert.Nil(t, term.MostSpecialized(nil, always))

	mostSpecificInterface := term.MostSpecializedSupertype(termtest.Of(f.ArrayList, f.String), term.IsInterface)
	require.NotNil(t, mostSpecificInterface)
	assert.True(t, term.Equal(termtest.Of(f.List, f.String), mostSpecificInterface), "got %s", mostSpecificInterface)

	mostSpecificClass := term.MostSpecializedSupertype(f.C, func(t term.Type) bool {
		return !term.IsInterface(t) && t != term.Type(f.C)
	})
	assert.Equal(t, term.Type(f.B), mostSpecificClass)
}
