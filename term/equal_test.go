package term_test

import (
	"fmt"
	"testing"

	"github.com/benbjohnson/immutable"
	"github.com/cottand/typealg/internal/termtest"
	"github.com/cottand/typealg/term"
	"github.com/stretchr/testify/assert"
)

// pairs builds each term twice, independently
func pairs(f *termtest.Fixture) map[string][2]term.Type {
	build := map[string]func() term.Type{
		"class":          func() term.Type { return f.String },
		"parameterized":  func() term.Type { return termtest.Of(f.List, f.String) },
		"nested":         func() term.Type { return termtest.Of(f.Map, f.String, termtest.Of(f.List, f.Integer)) },
		"wildcard arg":   func() term.Type { return termtest.Of(f.List, term.Extends(f.Number)) },
		"super wildcard": func() term.Type { return f.U.Super(f.Integer) },
		"plain array":    func() term.Type { return term.ArrayOf(term.ArrayOf(f.Int)) },
		"generic array":  func() term.Type { return term.ArrayOf(termtest.Of(f.List, f.String)) },
		"type variable":  func() term.Type { return term.NewTypeVariable("T", f.Foo, f.Object) },
		"self bounded":   func() term.Type { return termtest.Of(f.Enum, f.Enum.TypeParameters()[0]) },
		"container":      func() term.Type { return term.NewContainer(f.A, f.Serializable) },
		"member":         func() term.Type { return termtest.Of(f.Entry, f.String, f.Long) },
	}
	out := make(map[string][2]term.Type, len(build))
	for name, b := range build {
		out[name] = [2]term.Type{b(), b()}
	}
	return out
}

func TestEqualAndHash(t *testing.T) {
	f := termtest.NewFixture()
	for name, pair := range pairs(f) {
		t.Run(name, func(t *testing.T) {
			a, b := pair[0], pair[1]
			assert.True(t, term.Equal(a, a), "%s is not equal to itself", a)
			assert.True(t, term.Equal(a, b), "%s is not equal to %s", a, b)
			assert.True(t, term.Equal(b, a), "%s is not equal to %s", b, a)
			assert.Equal(t, a.Hash(), b.Hash(), "equal terms %s hash differently", a)
			assert.Equal(t, term.Hash(a), a.Hash())
		})
	}
}

func TestEqualAcrossUniverses(t *testing.T) {
	f, g := termtest.NewFixture(), termtest.NewFixture()
	for name := range pairs(f) {
		t.Run(name, func(t *testing.T) {
			a, b := pairs(f)[name][0], pairs(g)[name][0]
			assert.True(t, term.Equal(a, b), "%s differs across universes", a)
			assert.Equal(t, a.Hash(), b.Hash())
		})
	}
}

func TestNotEqual(t *testing.T) {
	f := termtest.NewFixture()
	tv := f.Foo.TypeParameters()[0]
	cases := []struct {
		a, b term.Type
	}{
		{f.String, f.Integer},
		{f.List, termtest.Of(f.List, f.String)},
		{termtest.Of(f.List, f.String), termtest.Of(f.List, f.Integer)},
		{termtest.Of(f.List, f.String), termtest.Of(f.Collection, f.String)},
		{termtest.Of(f.List, term.Extends(f.Number)), termtest.Of(f.List, f.U.Super(f.Number))},
		{f.U.Unbounded(), term.Extends(f.Number)},
		{term.ArrayOf(f.String), f.String},
		{term.ArrayOf(f.Int), term.ArrayOf(f.Integer)},
		{term.ArrayOf(f.List), term.ArrayOf(termtest.Of(f.List, f.String))},
		{tv, term.NewTypeVariable("T", f.List, f.Object)},
		{tv, term.NewTypeVariable("U", f.Foo, f.Object)},
		{term.NewContainer(f.A), term.NewContainer(f.B)},
		{term.NewContainer(f.A), f.A},
		{f.Entry, f.U.Declare("Entry", term.ClassKind).Build()},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("%s != %s", c.a, c.b), func(t *testing.T) {
			assert.False(t, term.Equal(c.a, c.b))
			assert.False(t, term.Equal(c.b, c.a))
		})
	}
	assert.False(t, term.Equal(nil, f.String))
	assert.True(t, term.Equal(nil, nil))
}

func TestTypeVariablesOwnedByExecutables(t *testing.T) {
	f := termtest.NewFixture()
	declare := func(name string) *term.TypeVariable {
		b := term.NewExecutable(f.ArrayList, name)
		tv := b.TypeParameter("T")
		b.Parameters(termtest.Of(f.List, tv)).Returns(tv).Build()
		return tv
	}
	get, get2, set := declare("get"), declare("get"), declare("set")

	assert.True(t, term.Equal(get, get2))
	assert.Equal(t, get.Hash(), get2.Hash())
	assert.False(t, term.Equal(get, set))
	assert.Equal(t, "ArrayList.get(List<T>)", get.Owner().String())
}

func TestHasherKeysImmutableMaps(t *testing.T) {
	f := termtest.NewFixture()
	m := immutable.NewMap[term.Type, string](term.Hasher{})
	m = m.Set(termtest.Of(f.List, f.String), "strings")
	m = m.Set(term.ArrayOf(f.Int), "ints")

	v, ok := m.Get(termtest.Of(f.List, f.String))
	assert.True(t, ok)
	assert.Equal(t, "strings", v)
	v, ok = m.Get(term.ArrayOf(f.Int))
	assert.True(t, ok)
	assert.Equal(t, "ints", v)
	_, ok = m.Get(termtest.Of(f.List, f.Integer))
	assert.False(t, ok)
}
