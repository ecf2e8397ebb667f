package notation

import (
	_ "embed"
	"io"
	"strings"

	"github.com/cottand/typealg/term"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Document is the YAML form of a set of class declarations:
//
//	classes:
//	  - name: ArrayList
//	    kind: class
//	    params: [E]
//	    extends: AbstractList<E>
//	    implements: [List<E>, RandomAccess]
//	  - name: Map.Entry
//	    kind: interface
//	    params: [K, V]
//
// Classes may refer to each other in any order. A dotted name declares a member of the
// class before the last dot, which must be declared earlier in the document or already
// be known to the universe.
type Document struct {
	Classes []ClassDecl `yaml:"classes"`
}

type ClassDecl struct {
	Name string `yaml:"name"`
	// Kind is class (the default) or interface
	Kind string `yaml:"kind,omitempty"`
	// Params are type parameter declarations like `E extends Comparable<E>`
	Params     []string `yaml:"params,omitempty"`
	Extends    string   `yaml:"extends,omitempty"`
	Implements []string `yaml:"implements,omitempty"`
}

//go:embed builtin.yaml
var builtin string

// DefaultUniverse is a fresh universe with the bootstrap classes and a few collection
// interfaces and classes (Iterable, Collection, List, ArrayList, Map, HashMap, ...)
func DefaultUniverse() *term.Universe {
	u := term.NewUniverse()
	if err := Load(u, strings.NewReader(builtin)); err != nil {
		panic(errors.Wrap(err, "builtin universe"))
	}
	return u
}

// LoadUniverse declares the classes of a YAML Document on top of the bootstrap classes
// of a new universe
func LoadUniverse(r io.Reader) (*term.Universe, error) {
	u := term.NewUniverse()
	if err := Load(u, r); err != nil {
		return nil, err
	}
	return u, nil
}

// Load declares the classes of a YAML Document in u
func Load(u *term.Universe, r io.Reader) error {
	var doc Document
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil && err != io.EOF {
		return errors.Wrap(err, "could not decode class declarations")
	}
	return Declare(u, doc)
}

// Declare adds the classes of doc to u. Nothing is built unless every declaration is
// valid, but classes declared before an error stay registered in u.
func Declare(u *term.Universe, doc Document) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		violation, ok := r.(*term.ContractViolation)
		if !ok {
			panic(r)
		}
		err = errors.Wrap(violation, "invalid class declarations")
	}()

	builders := make([]*term.ClassBuilder, len(doc.Classes))
	params := make([][]*term.TypeVariable, len(doc.Classes))

	// names first, so that declarations can refer to classes declared after them
	for i, decl := range doc.Classes {
		kind, err := parseKind(decl.Kind)
		if err != nil {
			return errors.Wrapf(err, "class %s", decl.Name)
		}
		if owner, member, nested := cutLast(decl.Name, "."); nested {
			ownerClass, ok := u.Lookup(owner)
			if !ok {
				return errors.Errorf("class %s: enclosing class %s is not declared", decl.Name, owner)
			}
			builders[i] = u.DeclareMember(ownerClass, member, kind)
		} else {
			builders[i] = u.Declare(decl.Name, kind)
		}
		for _, p := range decl.Params {
			name, err := declaredName(p)
			if err != nil {
				return errors.Wrapf(err, "type parameter of class %s", decl.Name)
			}
			params[i] = append(params[i], builders[i].TypeParameter(name))
		}
	}

	for i, decl := range doc.Classes {
		b := builders[i]
		scope := NewScope(u).With(params[i]...)
		for j, p := range decl.Params {
			_, bounds, err := parseDeclaration(p, scope)
			if err != nil {
				return errors.Wrapf(err, "type parameter of class %s", decl.Name)
			}
			if len(bounds) > 0 {
				b.Bound(params[i][j], bounds...)
			}
		}
		if decl.Extends != "" {
			superclass, err := Parse(decl.Extends, scope)
			if err != nil {
				return errors.Wrapf(err, "superclass of %s", decl.Name)
			}
			b.Extends(superclass)
		}
		for _, src := range decl.Implements {
			iface, err := Parse(src, scope)
			if err != nil {
				return errors.Wrapf(err, "interface of %s", decl.Name)
			}
			b.Implements(iface)
		}
	}

	for _, b := range builders {
		b.Build()
	}
	return nil
}

func parseKind(kind string) (term.Kind, error) {
	switch kind {
	case "", "class":
		return term.ClassKind, nil
	case "interface":
		return term.InterfaceKind, nil
	default:
		return 0, errors.Errorf("unknown kind %q, expected class or interface", kind)
	}
}

func cutLast(s, sep string) (before, after string, found bool) {
	i := strings.LastIndex(s, sep)
	if i < 0 {
		return "", s, false
	}
	return s[:i], s[i+len(sep):], true
}
