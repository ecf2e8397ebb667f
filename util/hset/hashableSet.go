// Package hset implements a set of hashable elements, JVM style
package hset

import (
	"github.com/benbjohnson/immutable"
	"iter"
)

// HSet buckets elements by their hash and tells them apart with the hasher's Equal,
// so elements whose hashes collide are still kept separately.
// Use immutable.Set if you are not going to be modifying this
// as it is more copy efficient
type HSet[A any] struct {
	hasher     immutable.Hasher[A]
	underlying map[uint32][]A
	len        int
}

func Empty[A any](hasher immutable.Hasher[A]) *HSet[A] {
	return &HSet[A]{
		hasher:     hasher,
		underlying: make(map[uint32][]A),
	}
}

func New[A any](hasher immutable.Hasher[A], elems ...A) *HSet[A] {
	n := Empty(hasher)
	n.Add(elems...)
	return n
}

// Add inserts elems and reports whether at least one of them was not present yet
func (s *HSet[A]) Add(elems ...A) (added bool) {
	for _, elem := range elems {
		h := s.hasher.Hash(elem)
		if s.bucketContains(h, elem) {
			continue
		}
		s.underlying[h] = append(s.underlying[h], elem)
		s.len++
		added = true
	}
	return added
}

func (s *HSet[A]) Remove(elems ...A) {
	for _, elem := range elems {
		h := s.hasher.Hash(elem)
		bucket := s.underlying[h]
		for i, other := range bucket {
			if s.hasher.Equal(elem, other) {
				bucket = append(bucket[:i:i], bucket[i+1:]...)
				s.len--
				break
			}
		}
		if len(bucket) == 0 {
			delete(s.underlying, h)
		} else {
			s.underlying[h] = bucket
		}
	}
}

func (s *HSet[A]) Contains(elem A) bool {
	return s.bucketContains(s.hasher.Hash(elem), elem)
}

func (s *HSet[A]) bucketContains(h uint32, elem A) bool {
	for _, other := range s.underlying[h] {
		if s.hasher.Equal(elem, other) {
			return true
		}
	}
	return false
}

func (s *HSet[A]) Len() int {
	return s.len
}

func (s *HSet[A]) All() iter.Seq[A] {
	return func(yield func(A) bool) {
		for _, bucket := range s.underlying {
			for _, elem := range bucket {
				if !yield(elem) {
					return
				}
			}
		}
	}
}
