// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vector

import "iter"

// Slice returns the elements [start, end) of v as a Vector, and true; or
// the zero Vector and false if the range is invalid. end may be End,
// meaning "through the last element" (spec.md §4.6, "slice").
//
// When the requested range runs to v's actual end and covers at least
// half of v, Slice returns a windowed header sharing v's root and tail
// rather than copying: the classic slice-aliasing optimization
// (original_source/immutable/array.cc's ArrayImp::slice). Any other range
// is materialized by copying the requested elements into a fresh Vector.
func (v Vector[T]) Slice(start, end uint32) (Vector[T], bool) {
	size := v.end - v.start
	if end == End {
		end = size
	}
	if start > end || end > size {
		var zero Vector[T]
		return zero, false
	}
	if start == end {
		return Empty[T](), true
	}
	if start == 0 && end == size {
		return v, true
	}

	absStart := v.start + start
	absEnd := v.start + end
	if absEnd == v.end && (absEnd-absStart)*2 >= size {
		return Vector[T]{start: absStart, end: absEnd, shift: v.shift, root: v.root, tail: v.tail}, true
	}
	return v.copyRange(absStart, absEnd), true
}

// copyRange materializes the half-open absolute range [absStart, absEnd)
// of v into a freshly built Vector.
func (v Vector[T]) copyRange(absStart, absEnd uint32) Vector[T] {
	out := Empty[T]().ToTransient()
	c := v.cursorAt(absStart)
	for c.i < absEnd {
		out.Push(c.mustValue())
		c.Next()
	}
	frozen, _ := out.Freeze()
	return frozen
}

// Without returns v with the elements [start, end) removed, and true; or
// the zero Vector and false if the range is invalid (spec.md §4.6,
// "without"). end may be End. A zero-length range returns v unchanged,
// by identity, as original_source/immutable/array.cc's without does.
func (v Vector[T]) Without(start, end uint32) (Vector[T], bool) {
	size := v.end - v.start
	if end == End {
		end = size
	}
	if start > end || end > size {
		var zero Vector[T]
		return zero, false
	}
	if start == end {
		return v, true
	}
	if start == 0 {
		return v.Slice(end, End)
	}
	if end == size {
		return v.Slice(0, start)
	}
	head, _ := v.Slice(0, start)
	tail, _ := v.Slice(end, End)
	return head.Concat(tail), true
}

// Concat returns a new Vector holding v's elements followed by other's
// (spec.md §6, "concat"; a supplemented feature recovered from
// original_source/immutable/array.cc — spec.md's distillation names
// concat in its operation table but gives its algorithm only for splice,
// so bulk-push over other's elements, the same mechanism splice itself
// uses, is what grounds this implementation).
func (v Vector[T]) Concat(other Vector[T]) Vector[T] {
	if v.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return v
	}
	return v.PushAll(other.Values())
}

// Cons returns a new Vector with val prepended before every existing
// element (spec.md §4.6, "cons"): push val, then bulk-push v's own
// elements, onto a fresh transient.
func (v Vector[T]) Cons(val T) Vector[T] {
	t := Empty[T]().ToTransient()
	t.Push(val)
	for val := range v.Values() {
		t.Push(val)
	}
	frozen, _ := t.Freeze()
	return frozen
}

// Splice returns v with [start, end) replaced by the elements of
// inserts, and true; or the zero Vector and false if the range is
// invalid (spec.md §4.6, "splice"). inserts is consumed exactly once,
// left to right, and may be nil for "remove with no replacement". end
// may be End.
func (v Vector[T]) Splice(start, end uint32, inserts iter.Seq[T]) (Vector[T], bool) {
	size := v.end - v.start
	if end == End {
		end = size
	}
	if start > end || end > size {
		var zero Vector[T]
		return zero, false
	}

	if start == 0 && end == size {
		return FromSeq(inserts), true
	}
	if start == 0 {
		tail, _ := v.Slice(end, End)
		return tail.consAll(inserts), true
	}
	if end == size {
		head, _ := v.Slice(0, start)
		return head.PushAll(inserts), true
	}

	head, _ := v.Slice(0, start)
	tail, _ := v.Slice(end, End)
	return head.PushAll(inserts).Concat(tail), true
}

// SpliceVector is Splice with the replacement given as another Vector,
// rather than an iter.Seq (spec.md §6's "splice(s, e, other_vector)"
// overload).
func (v Vector[T]) SpliceVector(start, end uint32, other Vector[T]) (Vector[T], bool) {
	return v.Splice(start, end, other.Values())
}

// consAll prepends every element of vals, in order, before v's own
// elements — the bulk form Splice's prefix-replace case needs, since
// Cons only prepends a single value.
func (v Vector[T]) consAll(vals iter.Seq[T]) Vector[T] {
	t := Empty[T]().ToTransient()
	if vals != nil {
		for val := range vals {
			t.Push(val)
		}
	}
	for val := range v.Values() {
		t.Push(val)
	}
	frozen, _ := t.Freeze()
	return frozen
}
