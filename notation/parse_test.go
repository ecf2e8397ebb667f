package notation_test

import (
	"errors"
	"os"
	"testing"

	"github.com/cottand/typealg/notation"
	"github.com/cottand/typealg/term"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func beansScope(t *testing.T) *notation.Scope {
	t.Helper()
	u := notation.DefaultUniverse()
	f, err := os.Open("testdata/beans.yaml")
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, notation.Load(u, f))
	return notation.NewScope(u)
}

func TestParseRoundTrip(t *testing.T) {
	scope := beansScope(t)
	cases := map[string]string{
		"String":                               "String",
		"int":                                  "int",
		"List<String>":                         "List<String>",
		"List<?>":                              "List<?>",
		"List< ? extends Number >":             "List<? extends Number>",
		"Comparable<? super Integer>":          "Comparable<? super Integer>",
		"Map<String,List<? extends Number>>[]": "Map<String, List<? extends Number>>[]",
		"int[][]":                              "int[][]",
		"Map.Entry<String, Long>":              "Map.Entry<String, Long>",
		"Outer<String>.Inner<Integer>":         "Outer<String>.Inner<Integer>",
		"Enum<?>[]":                            "Enum<?>[]",
		"BiFunction<Kennel<Dog>, ? super Dog, Optional<Animal>>": "BiFunction<Kennel<Dog>, ? super Dog, Optional<Animal>>",
	}
	for src, expected := range cases {
		t.Run(src, func(t *testing.T) {
			parsed, err := notation.Parse(src, scope)
			require.NoError(t, err)
			assert.Equal(t, expected, parsed.String())
		})
	}
}

func TestParseBuildsStructurallyEqualTerms(t *testing.T) {
	scope := beansScope(t)
	u := scope.Universe()
	list, str, number := u.MustLookup("List"), u.MustLookup("String"), u.MustLookup("Number")

	parsed := notation.MustParse("List<List<? extends Number>>", scope)
	built := term.Parameterize(list, term.Parameterize(list, term.Extends(number)))
	assert.True(t, term.Equal(built, parsed))
	assert.Equal(t, built.Hash(), parsed.Hash())

	arr := notation.MustParse("List<String>[]", scope)
	assert.True(t, term.IsGenericArray(arr))
	assert.True(t, term.Equal(term.ArrayOf(term.Parameterize(list, str)), arr))

	inner := notation.MustParse("Outer<String>.Inner<Integer>", scope)
	assert.True(t, term.Equal(term.Parameterize(u.MustLookup("Outer"), str), inner.Owner().(term.Type)))
}

func TestParseTypeVariablesInScope(t *testing.T) {
	scope := beansScope(t)
	u := scope.Universe()
	tv := term.NewTypeVariable("T", nil, u.MustLookup("Number"))
	list := notation.MustParse("List<T>", scope.With(tv))
	assert.Same(t, tv, list.TypeArguments()[0].(*term.TypeVariable))

	// variables shadow classes
	shadow := term.NewTypeVariable("String", nil, u.Object())
	parsed := notation.MustParse("String", scope.With(tv).With(shadow))
	assert.True(t, term.IsTypeVariable(parsed))
	assert.True(t, term.IsClassOrInterface(notation.MustParse("String", scope)))

	_, err := notation.Parse("T", scope)
	assert.Error(t, err)
}

func TestFreeTypeVariables(t *testing.T) {
	scope, err := beansScope(t).Free("N extends Number & Comparable<Integer>", "L extends List<N>", "X")
	require.NoError(t, err)

	n := notation.MustParse("N", scope)
	assert.Equal(t, "N extends Number & Comparable<Integer>", n.(*term.TypeVariable).Describe())
	l := notation.MustParse("L", scope).(*term.TypeVariable)
	assert.Same(t, n, l.UpperBounds()[0].TypeArguments()[0])
	assert.True(t, notation.MustParse("X", scope).UpperBounds()[0].Top())

	_, err = beansScope(t).Free("R extends Comparable<R>")
	var syntaxErr *notation.SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	assert.Contains(t, syntaxErr.Msg, "unknown type R")

	_, err = beansScope(t).Free("T super Integer")
	assert.Error(t, err)
}

func TestParseErrors(t *testing.T) {
	scope := beansScope(t)
	cases := map[string]struct {
		offset  int
		message string
	}{
		"List<Nope>":            {5, "unknown type Nope"},
		"List<String":           {11, "expected >"},
		"":                      {0, "expected a name"},
		"List<>":                {5, "expected a name"},
		"? foo String":          {0, "unexpected foo"},
		"?[]":                   {1, "expected end of input"},
		"List<String> String":   {13, "expected end of input"},
		"Outer<String>.Nope<T>": {14, "unknown member class Outer.Nope"},
		"List<String, Integer>": {-1, "takes 1 type arguments"},
		"List<int>":             {-1, "primitive"},
		"int<String>":           {-1, "takes 0 type arguments"},
	}
	for src, c := range cases {
		t.Run(src, func(t *testing.T) {
			_, err := notation.Parse(src, scope)
			require.Error(t, err)
			var syntaxErr *notation.SyntaxError
			require.True(t, errors.As(err, &syntaxErr), "got %v (%T)", err, err)
			assert.Contains(t, syntaxErr.Msg, c.message)
			assert.Equal(t, src, syntaxErr.Source)
			if c.offset >= 0 {
				assert.Equal(t, c.offset, syntaxErr.Offset, "error: %v", err)
			}
		})
	}
}
