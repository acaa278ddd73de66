// internal/runutil/lru_set.go
package runutil

import "container/list"

// DefaultDedupeCap bounds the recently-seen set when no capacity is given.
const DefaultDedupeCap = 200_000

// LRUSet is a size-bounded set with O(1) hit/insert. The least recently
// seen key is evicted first. Not safe for concurrent use.
type LRUSet[K comparable] struct {
	cap int
	ll  *list.List
	m   map[K]*list.Element
}

func NewLRUSet[K comparable](capacity int) *LRUSet[K] {
	if capacity <= 0 {
		capacity = DefaultDedupeCap
	}
	return &LRUSet[K]{cap: capacity, ll: list.New(), m: make(map[K]*list.Element, min(capacity, 1<<16))}
}

// Add inserts k; returns true if it was already present.
func (s *LRUSet[K]) Add(k K) bool {
	if e, ok := s.m[k]; ok {
		s.ll.MoveToFront(e)
		return true
	}
	s.m[k] = s.ll.PushFront(k)
	if s.ll.Len() > s.cap {
		tail := s.ll.Back()
		s.ll.Remove(tail)
		delete(s.m, tail.Value.(K))
	}
	return false
}

// Len returns the number of keys currently held.
func (s *LRUSet[K]) Len() int { return s.ll.Len() }
