package term

import (
	"hash/fnv"

	"github.com/benbjohnson/immutable"
)

const (
	prime      uint64 = 1099511628211
	offset     uint64 = 14695981039346656037
	nilHash    uint64 = 16777619
	ownerPrime uint64 = 7919
)

// Equal is structural equality of type terms. It only looks at the capabilities of
// the terms, so that terms built by different adapters compare equal when they
// describe the same type:
//   - parameterized types compare their arguments, then their raw types and owners
//   - arrays compare their components, then whether both are generic
//   - type variables compare name and owner (their bounds are not compared)
//   - wildcards compare their bounds
//   - class-like terms compare name and owner
//   - containers compare their supertype closures element by element
func Equal(a, b Type) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a == b {
		return true
	}

	if a.HasTypeArguments() != b.HasTypeArguments() {
		return false
	}
	if a.HasTypeArguments() {
		return equalLists(a.TypeArguments(), b.TypeArguments()) &&
			Equal(a.Type(), b.Type()) &&
			equalOwners(a.Owner(), b.Owner())
	}

	ac, bc := a.ComponentType(), b.ComponentType()
	if (ac == nil) != (bc == nil) {
		return false
	}
	if ac != nil {
		return Equal(ac, bc) && (a.Type() == a) == (b.Type() == b)
	}

	if a.Named() != b.Named() || a.UpperBounded() != b.UpperBounded() || a.LowerBounded() != b.LowerBounded() {
		return false
	}
	if a.UpperBounded() || a.LowerBounded() {
		if !equalLists(a.LowerBounds(), b.LowerBounds()) {
			return false
		}
		if a.Named() {
			return a.Name() == b.Name() && equalOwners(a.Owner(), b.Owner())
		}
		return equalLists(a.UpperBounds(), b.UpperBounds())
	}
	if a.Named() {
		return a.Name() == b.Name() && a.Top() == b.Top() && equalOwners(a.Owner(), b.Owner())
	}
	return equalClosures(a, b)
}

func equalLists(as, bs []Type) bool {
	if len(as) != len(bs) {
		return false
	}
	for i := range as {
		if !Equal(as[i], bs[i]) {
			return false
		}
	}
	return true
}

func equalOwners(a, b Owner) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch a := a.(type) {
	case Type:
		bt, ok := b.(Type)
		return ok && Equal(a, bt)
	case *Executable:
		be, ok := b.(*Executable)
		return ok && equalExecutables(a, be)
	default:
		return a == b
	}
}

// equalClosures compares two nameless, boundless terms by their supertype closures.
// Closures start with the term itself, so the pair being compared is taken as equal
// rather than compared again, which would never terminate.
func equalClosures(a, b Type) bool {
	as, bs := Supertypes(a), Supertypes(b)
	if len(as) != len(bs) {
		return false
	}
	for i := range as {
		x, y := as[i], bs[i]
		if (x == a || x == b) && (y == a || y == b) {
			continue
		}
		if !Equal(x, y) {
			return false
		}
	}
	return true
}

// Hash is the structural hash matching Equal: equal terms always hash the same.
// It combines type arguments, component, lower bounds, the upper bounds of wildcards,
// the name (or the supertype closure of nameless, boundless terms), the raw-type
// projection when it differs, and the owner.
// The upper bounds of type variables are left out, since Equal ignores them and they
// may refer back to the variable.
func Hash(t Type) uint64 {
	if t == nil {
		return nilHash
	}
	hash := offset
	for _, arg := range t.TypeArguments() {
		hash = hash*prime ^ Hash(arg)
	}
	component := t.ComponentType()
	if component != nil {
		hash = hash*prime ^ Hash(component)
		if t.Type() != t {
			hash = hash*prime ^ 2
		}
	}
	for _, lb := range t.LowerBounds() {
		hash = hash*prime ^ (Hash(lb) * 3)
	}
	if !t.Named() {
		for _, ub := range t.UpperBounds() {
			hash = hash*prime ^ (Hash(ub) * 5)
		}
	}
	if t.Named() {
		hash = hash*prime ^ hashString(t.Name())
	} else if !t.UpperBounded() && !t.LowerBounded() && !t.HasTypeArguments() && component == nil {
		closure := Supertypes(t)
		for _, s := range closure[1:] {
			hash = hash*prime ^ Hash(s)
		}
	}
	if t.HasTypeArguments() {
		hash = hash*prime ^ Hash(t.Type())
	}
	return hash*ownerPrime ^ ownerHash(t.Owner())
}

func ownerHash(o Owner) uint64 {
	switch o := o.(type) {
	case nil:
		return nilHash
	case Type:
		return Hash(o)
	default:
		return o.Hash()
	}
}

func hashString(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}

// Hasher lets terms key the benbjohnson/immutable collections and util/hset sets
// structurally
type Hasher struct{}

var _ immutable.Hasher[Type] = Hasher{}

func (Hasher) Hash(t Type) uint32 {
	h := Hash(t)
	return uint32(h ^ h>>32)
}

func (Hasher) Equal(a, b Type) bool { return Equal(a, b) }
