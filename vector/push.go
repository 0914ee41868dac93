// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vector

import "iter"

// Push returns a new Vector with val appended after the last element.
// The receiver is unmodified (spec.md §4.2, "push").
func (v Vector[T]) Push(val T) Vector[T] {
	tailLen := v.end - tailoff(v.end)
	if tailLen < branches {
		newTail := v.tail.copy(int(tailLen)+1, noEdit)
		newTail.slots[tailLen] = val
		checkInvariants(v.root, newTail)
		return Vector[T]{start: v.start, end: v.end + 1, shift: v.shift, root: v.root, tail: newTail}
	}

	newRoot, newShift := incorporateTail(v.end, v.shift, v.root, v.tail)
	newTail := &leaf[T]{length: 1}
	newTail.slots[0] = val
	checkInvariants(newRoot, newTail)
	return Vector[T]{start: v.start, end: v.end + 1, shift: newShift, root: newRoot, tail: newTail}
}

// PushAll returns a new Vector with each element of vals appended, in
// order, after the last element (spec.md §4.2, "push_all"; grounded on
// original_source/immutable/array.cc's pushAllIt, which loops a single
// push rather than trying to batch-fill the tail, so we do the same).
func (v Vector[T]) PushAll(vals iter.Seq[T]) Vector[T] {
	if vals == nil {
		return v
	}
	for val := range vals {
		v = v.Push(val)
	}
	return v
}

// incorporateTail folds a full tail into the trie, growing the root a
// level if the trie's current shift can't address the new leaf position
// (Clojure's PersistentVector.cons "overflow root?" branch).
func incorporateTail[T any](end, shift uint32, root *branch[T], tailNode *leaf[T]) (*branch[T], uint32) {
	if (end >> bits) > (uint32(1) << shift) {
		newRoot := &branch[T]{length: 2}
		newRoot.slots[0] = root
		newRoot.slots[1] = newPath(shift, tailNode, noEdit)
		return newRoot, shift + bits
	}
	return pushTailBranch(end, shift, root, tailNode), shift
}

// pushTailBranch path-copies the branch chain from root down to the
// (possibly new) leaf position holding tailNode.
func pushTailBranch[T any](end, shift uint32, parent *branch[T], tailNode *leaf[T]) *branch[T] {
	subidx := ((end - 1) >> shift) & mask
	ret := parent.copy(branchLen(parent), noEdit)
	if int(subidx) >= ret.length {
		ret.length = int(subidx) + 1
	}
	var nodeToInsert child[T]
	if shift == bits {
		nodeToInsert = tailNode
	} else if kid := asBranch[T](childAt(parent, subidx)); kid != nil {
		nodeToInsert = pushTailBranch(end, shift-bits, kid, tailNode)
	} else {
		nodeToInsert = newPath[T](shift-bits, tailNode, noEdit)
	}
	ret.slots[subidx] = nodeToInsert
	return ret
}

// Push appends val in place, mutating t under its own edit token, and
// returns (t, true); or (t, false) — leaving t unmodified — if t is
// already sealed (spec.md §4.2, "tpush"; §7, "sealed-transient").
func (t *Transient[T]) Push(val T) (*Transient[T], bool) {
	if t.edit == noEdit {
		return t, false
	}
	i := t.end
	if i-tailoff(i) < branches {
		if t.tail == nil || t.tail.edit != t.edit {
			t.tail = t.tail.ensureEditable(t.edit)
		}
		t.tail.slots[i&mask] = val
		t.tailLength++
		t.tail.length = t.tailLength
		t.end++
		checkInvariants(t.root, t.tail)
		return t, true
	}

	tailNode := t.tail
	newTail := &leaf[T]{edit: t.edit, length: 1}
	newTail.slots[0] = val

	var newRoot *branch[T]
	newShift := t.shift
	if (t.end >> bits) > (uint32(1) << t.shift) {
		newRoot = &branch[T]{edit: t.edit, length: 2}
		newRoot.slots[0] = t.root
		newRoot.slots[1] = newPath(t.shift, tailNode, t.edit)
		newShift = t.shift + bits
	} else {
		newRoot = tpushTailBranch(t.end, t.shift, t.root, tailNode, t.edit)
	}

	t.root = newRoot
	t.shift = newShift
	t.tail = newTail
	t.tailLength = 1
	t.end++
	checkInvariants(t.root, t.tail)
	return t, true
}

// tpushTailBranch is pushTailBranch's transient counterpart: it mutates
// any branch already owned by edit in place instead of copying it.
func tpushTailBranch[T any](end, shift uint32, parent *branch[T], tailNode *leaf[T], edit editID) *branch[T] {
	ret := parent.ensureEditable(edit)
	subidx := ((end - 1) >> shift) & mask
	if int(subidx) >= ret.length {
		ret.length = int(subidx) + 1
	}
	var nodeToInsert child[T]
	if shift == bits {
		nodeToInsert = tailNode
	} else if kid := asBranch[T](childAt(ret, subidx)); kid != nil {
		nodeToInsert = tpushTailBranch(end, shift-bits, kid, tailNode, edit)
	} else {
		nodeToInsert = newPath[T](shift-bits, tailNode, edit)
	}
	ret.slots[subidx] = nodeToInsert
	return ret
}
