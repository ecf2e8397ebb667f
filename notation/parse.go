// Package notation reads type terms and class declarations from text, so that the
// command line and tests can talk about types as `Map<String, List<? extends Number>>`.
//
// The grammar of a type is
//
//	type  := '?' [('extends' | 'super') type]
//	       | class ['<' type {',' type} '>'] {'.' class} {'[' ']'}
//	class := ident {'.' ident}
//
// where an ident may be a primitive such as `int`. A name resolves to a type variable of
// the Scope first, then to a class of its universe. A member of a parameterized class is
// written `Outer<String>.Inner<Integer>`.
package notation

import (
	"fmt"
	"strings"
	"text/scanner"

	"github.com/cottand/typealg/term"
)

// SyntaxError is a malformed or unresolvable type expression
type SyntaxError struct {
	Source string
	// Offset is the byte offset of the offending token in Source
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%d: %s in `%s`", e.Offset, e.Msg, e.Source)
}

// Scope resolves names to terms: type variables first, then the classes of a universe
type Scope struct {
	parent   *Scope
	universe *term.Universe
	vars     map[string]*term.TypeVariable
}

func NewScope(u *term.Universe) *Scope {
	return &Scope{universe: u}
}

// With returns a child scope where vars shadow the names of s
func (s *Scope) With(vars ...*term.TypeVariable) *Scope {
	child := &Scope{parent: s, universe: s.universe, vars: make(map[string]*term.TypeVariable, len(vars))}
	for _, v := range vars {
		child.vars[v.Name()] = v
	}
	return child
}

func (s *Scope) Universe() *term.Universe { return s.universe }

// Free declares ownerless type variables from declarations such as `T extends Number`.
// A declaration may mention the variables declared before it, but not itself.
func (s *Scope) Free(decls ...string) (*Scope, error) {
	scope := s
	for _, decl := range decls {
		name, bounds, err := parseDeclaration(decl, scope)
		if err != nil {
			return nil, err
		}
		if len(bounds) == 0 {
			bounds = []term.Type{s.universe.Object()}
		}
		scope = scope.With(term.NewTypeVariable(name, nil, bounds...))
	}
	return scope, nil
}

// Lookup finds the type variable or class called name
func (s *Scope) Lookup(name string) (term.Type, bool) {
	for scope := s; scope != nil; scope = scope.parent {
		if v, ok := scope.vars[name]; ok {
			return v, true
		}
	}
	if c, ok := s.universe.Lookup(name); ok {
		return c, true
	}
	return nil, false
}

// Parse reads a single type expression
func Parse(src string, scope *Scope) (t term.Type, err error) {
	p := newParser(src, scope)
	defer p.recover(&err)
	t = p.parseType()
	p.expect(scanner.EOF, "end of input")
	return t, nil
}

// MustParse is Parse for expressions known to be valid, it panics otherwise
func MustParse(src string, scope *Scope) term.Type {
	t, err := Parse(src, scope)
	if err != nil {
		panic(err)
	}
	return t
}

// parseDeclaration reads a type parameter declaration such as `E extends Comparable<E> & Serializable`,
// returning its name and bounds (none when it has no extends clause)
func parseDeclaration(src string, scope *Scope) (name string, bounds []term.Type, err error) {
	p := newParser(src, scope)
	defer p.recover(&err)
	name = p.ident()
	if p.tok == scanner.Ident && p.s.TokenText() == "extends" {
		p.next()
		bounds = append(bounds, p.parseType())
		for p.tok == '&' {
			p.next()
			bounds = append(bounds, p.parseType())
		}
	}
	p.expect(scanner.EOF, "end of input")
	return name, bounds, nil
}

// declaredName reads just the name of a type parameter declaration
func declaredName(src string) (name string, err error) {
	p := newParser(src, nil)
	defer p.recover(&err)
	return p.ident(), nil
}

type parser struct {
	src   string
	scope *Scope
	s     scanner.Scanner
	tok   rune
}

// bail carries a SyntaxError up to Parse
type bail struct{ err *SyntaxError }

func newParser(src string, scope *Scope) *parser {
	p := &parser{src: src, scope: scope}
	p.s.Init(strings.NewReader(src))
	p.s.Mode = scanner.ScanIdents
	p.s.IsIdentRune = func(ch rune, i int) bool {
		return ch == '_' || ch == '$' || 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || i > 0 && '0' <= ch && ch <= '9'
	}
	p.s.Error = func(s *scanner.Scanner, msg string) {
		p.fail(s.Pos().Offset, "%s", msg)
	}
	p.next()
	return p
}

func (p *parser) recover(err *error) {
	r := recover()
	if r == nil {
		return
	}
	switch r := r.(type) {
	case bail:
		*err = r.err
	case *term.ContractViolation:
		*err = &SyntaxError{Source: p.src, Offset: p.s.Position.Offset, Msg: r.Unwrap().Error()}
	default:
		panic(r)
	}
}

func (p *parser) fail(offset int, format string, args ...any) {
	panic(bail{&SyntaxError{Source: p.src, Offset: offset, Msg: fmt.Sprintf(format, args...)}})
}

func (p *parser) next() { p.tok = p.s.Scan() }

func (p *parser) expect(tok rune, what string) {
	if p.tok != tok {
		p.fail(p.s.Position.Offset, "expected %s, found %s", what, scanner.TokenString(p.tok))
	}
	p.next()
}

func (p *parser) ident() string {
	if p.tok != scanner.Ident {
		p.fail(p.s.Position.Offset, "expected a name, found %s", scanner.TokenString(p.tok))
	}
	name := p.s.TokenText()
	p.next()
	return name
}

func (p *parser) parseType() term.Type {
	if p.tok == '?' {
		return p.parseWildcard()
	}
	t := p.parseClassType()
	for p.tok == '[' {
		p.next()
		p.expect(']', "]")
		t = term.ArrayOf(t)
	}
	return t
}

func (p *parser) parseWildcard() term.Type {
	offset := p.s.Position.Offset
	p.next()
	top := p.scope.universe.Object()
	if p.tok != scanner.Ident {
		return term.NewWildcard(top, nil)
	}
	switch keyword := p.s.TokenText(); keyword {
	case "extends":
		p.next()
		return term.Extends(p.parseType())
	case "super":
		p.next()
		return term.NewWildcard(top, p.parseType())
	default:
		p.fail(offset, "unexpected %s after ?", keyword)
		return nil
	}
}

func (p *parser) parseClassType() term.Type {
	offset := p.s.Position.Offset
	name := p.ident()
	for p.tok == '.' {
		p.next()
		name += "." + p.ident()
	}
	resolved, ok := p.scope.Lookup(name)
	if !ok {
		p.fail(offset, "unknown type %s", name)
	}
	if p.tok != '<' {
		return resolved
	}
	t := term.Type(term.Parameterize(resolved, p.parseArguments()...))

	// members of parameterized classes
	for p.tok == '.' {
		p.next()
		memberOffset := p.s.Position.Offset
		member := resolved.String() + "." + p.ident()
		raw, ok := p.scope.universe.Lookup(member)
		if !ok {
			p.fail(memberOffset, "unknown member class %s", member)
		}
		resolved = raw
		if p.tok == '<' {
			t = term.ParameterizeIn(t, raw, p.parseArguments()...)
		} else {
			p.fail(memberOffset, "member class %s of a parameterized type needs type arguments", member)
		}
	}
	return t
}

func (p *parser) parseArguments() []term.Type {
	p.expect('<', "<")
	args := []term.Type{p.parseType()}
	for p.tok == ',' {
		p.next()
		args = append(args, p.parseType())
	}
	p.expect('>', ">")
	return args
}
