package term

import (
	"hash/fnv"

	"github.com/cottand/typealg/util"
)

// TypeVariable is a named type parameter of a class or an executable.
// It always has at least one upper bound: the top type when nothing else was declared.
type TypeVariable struct {
	name   string
	owner  Owner
	bounds []Type
}

var _ Type = (*TypeVariable)(nil)

// NewTypeVariable builds a type variable whose bounds are known upfront.
// owner may be nil for free-standing variables.
// Use ClassBuilder.TypeParameter or ExecutableBuilder.TypeParameter for variables whose
// bounds mention themselves.
func NewTypeVariable(name string, owner Owner, bounds ...Type) *TypeVariable {
	if name == "" {
		violation("type variable without a name")
	}
	return &TypeVariable{name: name, owner: owner, bounds: checkBounds(name, bounds)}
}

func checkBounds(name string, bounds []Type) []Type {
	if len(bounds) == 0 {
		violation("type variable %s has no upper bounds, the top type must be supplied explicitly", name)
	}
	for _, b := range bounds {
		if b == nil {
			violation("type variable %s has a nil upper bound", name)
		}
		if IsWildcard(b) {
			violation("type variable %s cannot be bounded by wildcard %s", name, b)
		}
	}
	return append([]Type(nil), bounds...)
}

func (t *TypeVariable) Named() bool             { return true }
func (t *TypeVariable) Name() string            { return t.name }
func (t *TypeVariable) Top() bool               { return false }
func (t *TypeVariable) Type() Type              { return t }
func (t *TypeVariable) Owner() Owner            { return t.owner }
func (t *TypeVariable) HasTypeParameters() bool { return false }
func (t *TypeVariable) TypeParameters() []Type  { return nil }
func (t *TypeVariable) HasTypeArguments() bool  { return false }
func (t *TypeVariable) TypeArguments() []Type   { return nil }
func (t *TypeVariable) ComponentType() Type     { return nil }
func (t *TypeVariable) UpperBounded() bool      { return true }
func (t *TypeVariable) LowerBounded() bool      { return false }
func (t *TypeVariable) UpperBounds() []Type     { return t.bounds }
func (t *TypeVariable) LowerBounds() []Type     { return nil }
func (t *TypeVariable) Hash() uint64            { return Hash(t) }
func (t *TypeVariable) String() string          { return t.name }

// Describe renders the variable with its bounds, like `E extends Comparable<E>`
func (t *TypeVariable) Describe() string {
	if len(t.bounds) == 1 && t.bounds[0].Top() {
		return t.name
	}
	return t.name + " extends " + util.JoinString(t.bounds, " & ")
}

// Executable is a method or constructor, as far as type variables need to know:
// it can own type variables but is not a Type itself.
//
// Construct with NewExecutable
type Executable struct {
	name       string
	declaring  *Class
	typeParams []Type
	params     []Type
	ret        Type
}

var _ Owner = (*Executable)(nil)

func (e *Executable) Name() string            { return e.name }
func (e *Executable) DeclaringClass() *Class  { return e.declaring }
func (e *Executable) TypeParameters() []Type  { return e.typeParams }
func (e *Executable) ParameterTypes() []Type  { return e.params }
func (e *Executable) ReturnType() Type        { return e.ret }
func (e *Executable) HasTypeParameters() bool { return len(e.typeParams) > 0 }

func (e *Executable) String() string {
	return e.declaring.String() + "." + e.name + "(" + util.JoinString(e.params, ", ") + ")"
}

// Hash combines the name, the declaring class, and the shallow shape of the signature.
// Parameter and return types only contribute their names, since they may mention
// the executable's own type variables.
func (e *Executable) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(e.name))
	hash := h.Sum64()
	hash = hash*prime ^ Hash(e.declaring)
	for _, p := range e.params {
		hash = hash*prime ^ shallowHash(p)
	}
	if e.ret != nil {
		hash = hash*prime ^ shallowHash(e.ret)
	}
	return hash
}

func equalExecutables(a, b *Executable) bool {
	if a == b {
		return true
	}
	if a.name != b.name || len(a.params) != len(b.params) || !Equal(a.declaring, b.declaring) {
		return false
	}
	for i := range a.params {
		if shallowString(a.params[i]) != shallowString(b.params[i]) {
			return false
		}
	}
	return shallowString(a.ret) == shallowString(b.ret)
}

// shallowString renders t without following the owners of type variables
func shallowString(t Type) string {
	if t == nil {
		return ""
	}
	return t.String()
}

func shallowHash(t Type) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(shallowString(t)))
	return h.Sum64()
}

// ExecutableBuilder declares the type parameters and signature of an Executable
type ExecutableBuilder struct {
	exec  *Executable
	scope typeParameterScope
	built bool
}

// NewExecutable starts the declaration of a method or constructor of declaring
func NewExecutable(declaring *Class, name string) *ExecutableBuilder {
	if declaring == nil {
		violation("executable %s has no declaring class", name)
	}
	return &ExecutableBuilder{exec: &Executable{name: name, declaring: declaring}}
}

// TypeParameter declares the next type parameter, bounded by the top type until Bound
// is called for it
func (b *ExecutableBuilder) TypeParameter(name string) *TypeVariable {
	b.mustNotBeBuilt()
	tv := b.scope.declare(name, b.exec, b.exec.declaring.universe.object)
	b.exec.typeParams = append(b.exec.typeParams, tv)
	return tv
}

func (b *ExecutableBuilder) Bound(tv *TypeVariable, bounds ...Type) *ExecutableBuilder {
	b.mustNotBeBuilt()
	b.scope.bound(tv, bounds)
	return b
}

func (b *ExecutableBuilder) Parameters(params ...Type) *ExecutableBuilder {
	b.mustNotBeBuilt()
	for _, p := range params {
		if p == nil || IsWildcard(p) {
			violation("invalid parameter type %v for %s", p, b.exec.name)
		}
	}
	b.exec.params = append(b.exec.params, params...)
	return b
}

// Returns sets the return type. Executables without one are constructors or return void.
func (b *ExecutableBuilder) Returns(ret Type) *ExecutableBuilder {
	b.mustNotBeBuilt()
	b.exec.ret = ret
	return b
}

func (b *ExecutableBuilder) Build() *Executable {
	b.mustNotBeBuilt()
	b.scope.close()
	b.built = true
	return b.exec
}

func (b *ExecutableBuilder) mustNotBeBuilt() {
	if b.built {
		violation("executable %s is already built", b.exec.name)
	}
}
