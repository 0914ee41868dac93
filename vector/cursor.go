// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vector

import "iter"

// Cursor is a forward iterator over a Vector's elements. It caches the
// leaf it is currently positioned in, so stepping from one element to the
// next is O(1) amortized rather than a fresh O(log branches n) descent
// from the root every time (original_source/immutable/array.h's
// Array<T>::Iterator).
type Cursor[T any] struct {
	end, shift uint32
	root       *branch[T]
	tail       *leaf[T]
	i          uint32
	node       *leaf[T]
	base       uint32 // absolute index of node.slots[0]
}

// Begin returns a Cursor positioned at v's first element.
func (v Vector[T]) Begin() Cursor[T] {
	return v.cursorAt(v.start)
}

// BeginAt returns a Cursor positioned at v's element i (relative to the
// vector's own indexing, like Get).
func (v Vector[T]) BeginAt(i int) Cursor[T] {
	return v.cursorAt(v.start + uint32(i))
}

// End returns the unique end sentinel: a Cursor positioned one past v's
// last element, with no backing node (spec.md §4.8, "the unique end
// sentinel has slots = nil").
func (v Vector[T]) End() Cursor[T] {
	return v.cursorAt(v.end)
}

func (v Vector[T]) cursorAt(abs uint32) Cursor[T] {
	c := Cursor[T]{end: v.end, shift: v.shift, root: v.root, tail: v.tail, i: abs}
	c.reload()
	return c
}

func (c *Cursor[T]) reload() {
	if c.i >= c.end {
		c.node = nil
		return
	}
	c.node = uncheckedSlotsFor(c.end, c.shift, c.root, c.tail, c.i)
	c.base = c.i &^ mask
}

// Valid reports whether the cursor is positioned at an existing element.
func (c *Cursor[T]) Valid() bool {
	return c.i < c.end
}

// Value returns the element at the cursor's current position and true,
// or the zero value and false if the cursor is not Valid.
func (c *Cursor[T]) Value() (T, bool) {
	if !c.Valid() {
		var zero T
		return zero, false
	}
	return c.node.slots[c.i&mask], true
}

func (c *Cursor[T]) mustValue() T {
	v, _ := c.Value()
	return v
}

// Next advances the cursor by one element.
func (c *Cursor[T]) Next() {
	c.i++
	if !c.Valid() {
		c.node = nil
		return
	}
	if c.i&mask == 0 || c.i < c.base || c.i >= c.base+branches {
		c.reload()
	}
}

// DistanceTo returns the number of elements between c and other, in O(1)
// and without stepping through them: if either cursor is at end, the
// other's own end-i; otherwise |c.i - other.i| (spec.md §4.8,
// "distance_to"; original_source/immutable/array.h's distanceTo).
func (c Cursor[T]) DistanceTo(other Cursor[T]) int {
	if !c.Valid() {
		return int(other.end - other.i)
	}
	if !other.Valid() {
		return int(c.end - c.i)
	}
	d := int(other.i) - int(c.i)
	if d < 0 {
		d = -d
	}
	return d
}

// All returns a Seq2 ranging over v's (index, value) pairs in order, for
// use with a for ... range statement.
func (v Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		c := v.Begin()
		for idx := 0; c.Valid(); idx++ {
			if !yield(idx, c.mustValue()) {
				return
			}
			c.Next()
		}
	}
}

// Values returns a Seq ranging over v's elements in order, without their
// indices; it is the source PushAll and Concat pull from.
func (v Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		c := v.Begin()
		for c.Valid() {
			if !yield(c.mustValue()) {
				return
			}
			c.Next()
		}
	}
}
