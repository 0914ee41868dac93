// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vector

// tailoff returns the first absolute index stored in the tail: the tail
// holds elements [tailoff(end), end). Below branches elements everything
// lives in the tail and tailoff is 0 (spec.md glossary, "Tailoff").
func tailoff(end uint32) uint32 {
	if end < branches {
		return 0
	}
	return ((end - 1) >> bits) << bits
}

// uncheckedSlotsFor returns the leaf holding absolute index i. The caller
// must guarantee i < end; violating it is undefined behavior (a nil
// dereference or incorrect slot), matching spec.md §4.4's "get"/
// "slots_for" contract.
func uncheckedSlotsFor[T any](end, shift uint32, root *branch[T], tail *leaf[T], i uint32) *leaf[T] {
	if i >= tailoff(end) {
		return tail
	}
	cur := root
	for level := shift; level > bits; level -= bits {
		idx := (i >> level) & mask
		cur = asBranch[T](childAt(cur, idx))
	}
	idx := (i >> bits) & mask
	return asLeaf[T](childAt(cur, idx))
}

// checkedSlotsFor is uncheckedSlotsFor's safe sibling: it returns nil
// instead of panicking when a traversed branch is absent or too short, a
// situation that can only arise inside sparse branches left behind by a
// transient pop (spec.md §4.4's "find").
func checkedSlotsFor[T any](end, shift uint32, root *branch[T], tail *leaf[T], i uint32) *leaf[T] {
	if i >= tailoff(end) {
		return tail
	}
	cur := root
	for level := shift; level > bits; level -= bits {
		idx := (i >> level) & mask
		if cur == nil || int(idx) >= cur.length {
			return nil
		}
		cur = asBranch[T](childAt(cur, idx))
	}
	idx := (i >> bits) & mask
	if cur == nil || int(idx) >= cur.length {
		return nil
	}
	return asLeaf[T](childAt(cur, idx))
}

// editableSlotsFor is uncheckedSlotsFor's transient counterpart: it
// ensure-editables every branch and, finally, the leaf itself on the path
// to i, writing each freshly owned node back into its parent's slot, so
// the returned leaf is safe to mutate in place and so is everything
// between it and newRoot.
func editableSlotsFor[T any](end, shift uint32, root *branch[T], tail *leaf[T], i uint32, edit editID) (*branch[T], *leaf[T]) {
	if i >= tailoff(end) {
		return root, tail.ensureEditable(edit)
	}
	cur := root.ensureEditable(edit)
	newRoot := cur
	for level := shift; level > bits; level -= bits {
		idx := (i >> level) & mask
		child := asBranch[T](childAt(cur, idx)).ensureEditable(edit)
		cur.slots[idx] = child
		cur = child
	}
	idx := (i >> bits) & mask
	leafNode := asLeaf[T](childAt(cur, idx)).ensureEditable(edit)
	cur.slots[idx] = leafNode
	return newRoot, leafNode
}

// findAt is the checked element accessor: absent if i is out of bounds or
// falls in a hole (spec.md §4.4's "find").
func findAt[T any](end, shift uint32, root *branch[T], tail *leaf[T], i uint32) (T, bool) {
	var zero T
	if i >= end {
		return zero, false
	}
	n := checkedSlotsFor(end, shift, root, tail, i)
	k := i & mask
	if n != nil && int(k) < n.length {
		return n.slots[k], true
	}
	return zero, false
}

// getAt is the unchecked element accessor. Precondition: i < end.
func getAt[T any](end, shift uint32, root *branch[T], tail *leaf[T], i uint32) T {
	n := uncheckedSlotsFor(end, shift, root, tail, i)
	return n.slots[i&mask]
}
