// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vector

// Vector is an immutable, indexed sequence of values of type T, backed by
// a bit-partitioned trie with a tail buffer (see the package doc comment).
// The zero Vector[T] has no elements and answers reads as an empty
// vector, but it is not Empty[T](): its shift is 0 rather than bits, and
// Push and ToTransient do not correct for that, so a zero Vector cannot
// be grown past branches elements.
//
// Vector is a small value type (a handful of words plus two pointers); the
// trie and tail it points to are shared, structurally, with every other
// Vector derived from or leading to it. Copying a Vector is cheap and
// always safe.
type Vector[T any] struct {
	start, end uint32
	shift      uint32
	root       *branch[T]
	tail       *leaf[T]
}

// Empty returns the empty Vector of T: no elements, shift set to bits.
// Unlike the original C++
// implementation's pinned-refcount singleton, it requires no special
// lifetime handling — Go's garbage collector owns it like any other value
// (spec.md §3, "The empty Vector"; DESIGN.md O1).
func Empty[T any]() Vector[T] {
	return Vector[T]{shift: bits}
}

// Size returns the number of elements in v.
func (v Vector[T]) Size() int {
	return int(v.end - v.start)
}

// IsEmpty reports whether v has no elements.
func (v Vector[T]) IsEmpty() bool {
	return v.start == v.end
}

// Get returns the element at index i. It does not check i: an
// out-of-range i may panic or may return an arbitrary value; for a
// checked accessor, use Find. Precondition: 0 <= i < v.Size() (spec.md
// §4.4, "get... unchecked").
func (v Vector[T]) Get(i int) T {
	return getAt(v.end, v.shift, v.root, v.tail, v.start+uint32(i))
}

// Find returns the element at index i and true, or the zero value and
// false if i is out of range (spec.md §4.4, "find... checked").
func (v Vector[T]) Find(i int) (T, bool) {
	if i < 0 {
		var zero T
		return zero, false
	}
	return findAt(v.end, v.shift, v.root, v.tail, v.start+uint32(i))
}

// First returns the first element and true, or the zero value and false
// if v is empty.
//
// When v.start is 0 this takes the O(1) path straight into the root/tail;
// an aliased slice (v.start > 0, see Slice) instead looks up index
// v.start directly, because slot 0 of the underlying root/tail is not the
// slice's logical first element once it has been windowed
// (original_source/immutable/array.h lines 620-636; SPEC_FULL.md §9).
func (v Vector[T]) First() (T, bool) {
	var zero T
	if v.IsEmpty() {
		return zero, false
	}
	if v.start == 0 {
		return firstValue(v.end, v.shift, v.root, v.tail), true
	}
	return getAt(v.end, v.shift, v.root, v.tail, v.start), true
}

// Last returns the last element and true, or the zero value and false if
// v is empty.
func (v Vector[T]) Last() (T, bool) {
	var zero T
	if v.IsEmpty() {
		return zero, false
	}
	return getAt(v.end, v.shift, v.root, v.tail, v.end-1), true
}

// Rest returns every element but the first, and true — equivalent to
// Slice(1, End) — or false if v is empty (spec.md §6, "rest() ≡
// slice(1, END)").
func (v Vector[T]) Rest() (Vector[T], bool) {
	return v.Slice(1, End)
}

func firstValue[T any](end, shift uint32, root *branch[T], tail *leaf[T]) T {
	n := uncheckedSlotsFor(end, shift, root, tail, 0)
	return n.slots[0]
}

// Same reports whether v and other are the same value: identical root,
// tail, and windowing. Two Vectors with equal contents built independently
// are not Same — use Compare == 0 for content equality (spec.md §6,
// "Comparator"; this is the Go restatement of the original's
// identity-based operator==, since a generic struct can't override ==).
func (v Vector[T]) Same(other Vector[T]) bool {
	return v.start == other.start && v.end == other.end &&
		v.shift == other.shift && v.root == other.root && v.tail == other.tail
}

// Compare returns -1, 0, or 1 according to whether v sorts before, the
// same as, or after other: first by size, then lexicographically by
// element using cmp. Same vectors compare equal without visiting any
// elements (spec.md §6, "Comparator").
func (v Vector[T]) Compare(other Vector[T], cmp func(a, b T) int) int {
	if v.Same(other) {
		return 0
	}
	if v.Size() != other.Size() {
		if v.Size() < other.Size() {
			return -1
		}
		return 1
	}
	ai, bi := v.Begin(), other.Begin()
	for ai.Valid() {
		a, b := ai.mustValue(), bi.mustValue()
		if c := cmp(a, b); c != 0 {
			if c < 0 {
				return -1
			}
			return 1
		}
		ai.Next()
		bi.Next()
	}
	return 0
}
