// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vector

// Pop returns a new Vector with the last element removed. It panics if v
// is empty (spec.md §4.2, "pop").
func (v Vector[T]) Pop() Vector[T] {
	switch v.end - v.start {
	case 0:
		panic("vector: Pop of empty Vector")
	case 1:
		return Empty[T]()
	}

	tailLen := v.end - tailoff(v.end)
	if tailLen > 1 {
		newTail := v.tail.copy(int(tailLen)-1, noEdit)
		checkInvariants(v.root, newTail)
		return Vector[T]{start: v.start, end: v.end - 1, shift: v.shift, root: v.root, tail: newTail}
	}

	newTail := uncheckedSlotsFor(v.end, v.shift, v.root, v.tail, v.end-2)
	newRoot := popTailBranch(v.end, v.shift, v.root)
	newShift := v.shift
	if newRoot == nil {
		newRoot = &branch[T]{}
	}
	if v.shift > bits && childAt(newRoot, 1) == nil {
		newRoot = asBranch[T](childAt(newRoot, 0))
		newShift -= bits
	}
	checkInvariants(newRoot, newTail)
	return Vector[T]{start: v.start, end: v.end - 1, shift: newShift, root: newRoot, tail: newTail}
}

// popTailBranch path-copies the branch chain from node down to and
// including the now-vacated leaf slot that held the second-to-last
// element, nilling it out; it returns nil if node itself becomes entirely
// empty (spec.md §4.2, "pop_tail").
func popTailBranch[T any](end, shift uint32, node *branch[T]) *branch[T] {
	subidx := ((end - 2) >> shift) & mask
	if shift > bits {
		newChild := popTailBranch(end, shift-bits, asBranch[T](childAt(node, subidx)))
		if newChild == nil && subidx == 0 {
			return nil
		}
		ret := node.copy(branchLen(node), noEdit)
		ret.slots[subidx] = newChild
		return ret
	}
	if subidx == 0 {
		return nil
	}
	ret := node.copy(branchLen(node), noEdit)
	ret.slots[subidx] = nil
	return ret
}

// Pop removes the last element in place and returns (t, true); or (t,
// false) — leaving t unmodified — if t is already sealed. It panics if t
// is empty, matching Vector.Pop (spec.md §5.2, "tpop"; §7,
// "sealed-transient").
func (t *Transient[T]) Pop() (*Transient[T], bool) {
	if t.edit == noEdit {
		return t, false
	}
	switch t.end - t.start {
	case 0:
		panic("vector: Pop of empty Transient")
	case 1:
		t.end--
		t.root = nil
		t.tail = &leaf[T]{edit: t.edit}
		t.tailLength = 0
		t.shift = bits
		checkInvariants(t.root, t.tail)
		return t, true
	}

	tailLen := t.end - tailoff(t.end)
	if tailLen > 1 {
		t.tailLength--
		t.end--
		t.tail.length = t.tailLength
		var zero T
		t.tail.slots[t.tailLength] = zero
		checkInvariants(t.root, t.tail)
		return t, true
	}

	_, newTail := editableSlotsFor(t.end, t.shift, t.root, t.tail, t.end-2, t.edit)
	newRoot := tpopTailBranch(t.end, t.shift, t.root, t.edit)
	newShift := t.shift
	if newRoot == nil {
		newRoot = &branch[T]{edit: t.edit}
	}
	if t.shift > bits && childAt(newRoot, 1) == nil {
		newRoot = asBranch[T](childAt(newRoot, 0))
		newShift -= bits
	}

	t.root = newRoot
	t.shift = newShift
	t.tail = newTail
	t.tailLength = leafLen(newTail)
	t.end--
	checkInvariants(t.root, t.tail)
	return t, true
}

// tpopTailBranch is popTailBranch's transient counterpart: it mutates any
// branch already owned by edit in place instead of copying it.
func tpopTailBranch[T any](end, shift uint32, node *branch[T], edit editID) *branch[T] {
	ret := node.ensureEditable(edit)
	subidx := ((end - 2) >> shift) & mask
	if shift > bits {
		newChild := tpopTailBranch(end, shift-bits, asBranch[T](childAt(ret, subidx)), edit)
		if newChild == nil && subidx == 0 {
			return nil
		}
		ret.slots[subidx] = newChild
		return ret
	}
	if subidx == 0 {
		return nil
	}
	ret.slots[subidx] = nil
	return ret
}
