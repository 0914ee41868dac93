// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vector

// child is the type stored in a branch's slots: either another *branch[T]
// (an interior node one level further down) or a *leaf[T] (a leaf holding
// up to branches values of T). It plays the role the original C++
// implementation gives to a type-erased ref<Object> slot; Go's generics
// let us keep it statically typed per T instead.
//
// A nil child (the interface's zero value) is a "hole": a branch position
// that holds nothing. Holes arise where newPath declares a single-child
// branch at full length, and where pop (persistent or transient, see
// pop.go) clears a slot without shortening the branch; no documented
// operation reads one for an index inside the vector.
type child[T any] interface {
	isVectorNode()
}

// branch is an interior trie node: up to branches pointers to the next
// level down (either more branches, or leaves once level reaches bits).
type branch[T any] struct {
	edit   editID
	length int
	slots  [branches]child[T]
}

// leaf is a trie node at depth 0 (or the tail buffer): up to branches
// values of T, stored directly rather than behind a value-cell
// indirection, since Go generics make that indirection unnecessary (see
// SPEC_FULL.md §2 and DESIGN.md O4).
type leaf[T any] struct {
	edit   editID
	length int
	slots  [branches]T
}

func (*branch[T]) isVectorNode() {}
func (*leaf[T]) isVectorNode()   {}

// branchLen and leafLen treat a nil pointer as length 0, so callers don't
// need to special-case an empty root or tail.
func branchLen[T any](b *branch[T]) int {
	if b == nil {
		return 0
	}
	return b.length
}

func leafLen[T any](l *leaf[T]) int {
	if l == nil {
		return 0
	}
	return l.length
}

// childAt returns parent.slots[i], or the zero (nil) child if parent is
// nil — an empty subtree.
func childAt[T any](parent *branch[T], i uint32) child[T] {
	if parent == nil {
		return nil
	}
	return parent.slots[i]
}

// asBranch type-asserts c to *branch[T], returning nil if c is a *leaf[T]
// or itself nil.
func asBranch[T any](c child[T]) *branch[T] {
	b, _ := c.(*branch[T])
	return b
}

// asLeaf type-asserts c to *leaf[T].
func asLeaf[T any](c child[T]) *leaf[T] {
	l, _ := c.(*leaf[T])
	return l
}

// copy returns a shallow clone of b with the given length and edit,
// retaining the first min(newLength, b.length) slots. A nil receiver
// behaves like an empty branch. This is the trie's path-copy primitive
// (spec.md §4.1's "copy"): the original and the copy share every
// retained child.
func (b *branch[T]) copy(newLength int, edit editID) *branch[T] {
	n := &branch[T]{edit: edit, length: newLength}
	m := newLength
	if bl := branchLen(b); bl < m {
		m = bl
	}
	if m > 0 {
		copy(n.slots[:m], b.slots[:m])
	}
	return n
}

// copyAssign is copy(b.length, edit) with slot i then overwritten by obj
// (spec.md §4.1's "copy_assign"). With no reference counts to maintain,
// copying slot i before overwriting it costs nothing extra.
func (b *branch[T]) copyAssign(i int, obj child[T], edit editID) *branch[T] {
	n := b.copy(branchLen(b), edit)
	n.slots[i] = obj
	return n
}

// ensureEditable returns b if it is already owned by edit, else a copy
// stamped with edit (spec.md §4.1's "ensure_editable").
func (b *branch[T]) ensureEditable(edit editID) *branch[T] {
	if b != nil && b.edit == edit {
		return b
	}
	return b.copy(branchLen(b), edit)
}

// copy returns a shallow clone of l with the given length and edit. A nil
// receiver behaves like an empty leaf.
func (l *leaf[T]) copy(newLength int, edit editID) *leaf[T] {
	n := &leaf[T]{edit: edit, length: newLength}
	m := newLength
	if ll := leafLen(l); ll < m {
		m = ll
	}
	if m > 0 {
		copy(n.slots[:m], l.slots[:m])
	}
	return n
}

// copyAssign is copy(l.length, edit) with slot i overwritten by val.
func (l *leaf[T]) copyAssign(i int, val T, edit editID) *leaf[T] {
	n := l.copy(leafLen(l), edit)
	n.slots[i] = val
	return n
}

// ensureEditable returns l if already owned by edit, else a copy stamped
// with edit.
func (l *leaf[T]) ensureEditable(edit editID) *leaf[T] {
	if l != nil && l.edit == edit {
		return l
	}
	return l.copy(leafLen(l), edit)
}

// newPath unfolds a chain of single-child branches from level down to 0,
// terminating in leafNode — used to seed a newly populated branch of the
// trie (spec.md §4.2's "new_path").
func newPath[T any](level uint32, leafNode *leaf[T], edit editID) child[T] {
	if level == 0 {
		return leafNode
	}
	b := &branch[T]{edit: edit, length: branches}
	b.slots[0] = newPath[T](level-bits, leafNode, edit)
	return b
}
