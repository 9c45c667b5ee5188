// Package sets contains a generic Set implementation whose iteration order is the insertion order of its elements.
package sets

import (
	"github.com/denismitr/dll"
)

// Set represents a finite set (in the sense of Discrete mathematics) of comparable elements. It supports standard set
// operations such as union and set difference. Unlike a plain map-backed set, a Set remembers the order in which its
// elements were first added: Items and all derived sets visit elements in that order, so repeated calls over the same
// input produce identical output.
type Set[T comparable] struct {
	items map[T]*dll.Element[T]
	order *dll.DoublyLinkedList[T]
}

// New constructs a new set with the provided elements. Duplicate elements are collapsed; the first occurrence of each
// element determines its position in the iteration order.
func New[T comparable](elems ...T) *Set[T] {
	result := &Set[T]{
		items: make(map[T]*dll.Element[T], len(elems)),
		order: dll.New[T](),
	}
	for _, elem := range elems {
		result.Add(elem)
	}
	return result
}

// Add adds the provided element to this set, modifying it if it does not already exist.
func (s *Set[T]) Add(elem T) {
	if _, ok := s.items[elem]; ok {
		return
	}
	el := dll.NewElement(elem)
	s.items[elem] = el
	s.order.PushTail(el)
}

// Contains returns true if and only if this set contains the provided element.
func (s *Set[T]) Contains(elem T) bool {
	_, ok := s.items[elem]
	return ok
}

// ContainsSet returns true if and only if this set contains the other set.
func (s *Set[T]) ContainsSet(other *Set[T]) bool {
	for b := range other.items {
		if !s.Contains(b) {
			return false
		}
	}
	return true
}

// Equals returns true if and only if this set is equal to other.
func (s *Set[T]) Equals(other *Set[T]) bool {
	return len(s.items) == len(other.items) && s.ContainsSet(other)
}

// Len returns the number of distinct elements in this set.
func (s *Set[T]) Len() int {
	return len(s.items)
}

// Items returns the elements of this set in insertion order.
func (s *Set[T]) Items() []T {
	result := make([]T, 0, len(s.items))
	for el := s.order.Head(); el != nil; el = el.Next() {
		result = append(result, el.Value())
	}
	return result
}

// Union returns the union of sets A and B. The result contains all elements of A followed by the elements of B not
// already present in A.
func Union[T comparable](A, B *Set[T]) *Set[T] {
	result := New[T]()
	for _, a := range A.Items() {
		result.Add(a)
	}
	for _, b := range B.Items() {
		result.Add(b)
	}
	return result
}

// Intersect returns the intersection of sets A and B. The result contains all elements of A which are also in B, in
// A's order.
func Intersect[T comparable](A, B *Set[T]) *Set[T] {
	result := New[T]()
	for _, a := range A.Items() {
		if B.Contains(a) {
			result.Add(a)
		}
	}
	return result
}

// Difference returns the set difference of sets A and B. The result contains all elements of A which cannot be found
// in B, in A's order.
func Difference[T comparable](A, B *Set[T]) *Set[T] {
	result := New[T]()
	for _, a := range A.Items() {
		if !B.Contains(a) {
			result.Add(a)
		}
	}
	return result
}

// SymmetricDiff returns the symmetric difference of sets A and B. The result contains all elements of A and B, except
// those elements which are found in both A and B. Elements unique to A precede elements unique to B.
func SymmetricDiff[T comparable](A, B *Set[T]) *Set[T] {
	result := New[T]()
	for _, a := range A.Items() {
		if !B.Contains(a) {
			result.Add(a)
		}
	}
	for _, b := range B.Items() {
		if !A.Contains(b) {
			result.Add(b)
		}
	}
	return result
}
