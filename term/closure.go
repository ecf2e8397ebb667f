package term

import (
	"slices"
	"sync/atomic"

	"github.com/cottand/typealg/internal/log"
	"github.com/cottand/typealg/util/hset"
)

var logger = log.Section("term")

// closureCell holds the supertype closure of a term once computed.
// Concurrent first calls may each compute it; the first one stored wins and every
// caller returns that one, so readers only ever see a complete list.
type closureCell struct {
	p atomic.Pointer[[]Type]
}

func (c *closureCell) load(compute func() []Type) []Type {
	if l := c.p.Load(); l != nil {
		return *l
	}
	computed := compute()
	c.p.CompareAndSwap(nil, &computed)
	return *c.p.Load()
}

type cachedClosure interface {
	closure() *closureCell
}

// Supertypes returns the reflexive, transitive closure of DirectSupertypes over t, in
// breadth-first order starting with t itself. Structurally equal supertypes reached
// through different paths appear once, and cycles in the direct supertype relation
// (which only malformed type variable bounds produce) are cut.
//
// The closure of the terms of this package is computed once per term and cached, except
// for type variables: their bounds may still change while their owner is being built.
// The returned slice is a copy the caller may keep.
func Supertypes(t Type) []Type {
	if c, ok := t.(cachedClosure); ok {
		return slices.Clone(c.closure().load(func() []Type { return computeClosure(t) }))
	}
	return computeClosure(t)
}

func computeClosure(t Type) []Type {
	// t itself is never hashed: hashing a container needs its closure
	out := []Type{t}
	seen := hset.Empty[Type](Hasher{})
	queue := DirectSupertypes(t)
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if next == t || !seen.Add(next) {
			continue
		}
		out = append(out, next)
		queue = append(queue, DirectSupertypes(next)...)
	}
	logger.Debug("computed supertypes", "type", t, "count", len(out))
	return out
}

// SupertypeOf reports whether t is structurally equal to a member of the supertype
// closure of s
func SupertypeOf(t, s Type) bool {
	if t == s {
		return true
	}
	return slices.ContainsFunc(Supertypes(s), func(member Type) bool { return Equal(t, member) })
}

// SubtypeOf reports whether s is among the supertypes of t
func SubtypeOf(t, s Type) bool {
	return SupertypeOf(s, t)
}

// MostSpecialized picks, among the candidates satisfying pred, the most specific one:
// the first one which is not a proper supertype of another satisfying candidate.
// It returns nil when no candidate satisfies pred.
func MostSpecialized(candidates []Type, pred func(Type) bool) Type {
	var matching []Type
	for _, c := range candidates {
		if pred(c) {
			matching = append(matching, c)
		}
	}
	for _, c := range matching {
		mostSpecific := true
		for _, other := range matching {
			if other == c || Equal(other, c) {
				continue
			}
			if SupertypeOf(c, other) {
				mostSpecific = false
				break
			}
		}
		if mostSpecific {
			return c
		}
	}
	return nil
}

// MostSpecializedSupertype is MostSpecialized over the supertype closure of t, for
// example to find the most specific interface t implements
func MostSpecializedSupertype(t Type, pred func(Type) bool) Type {
	return MostSpecialized(Supertypes(t), pred)
}
