// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vector

// Set returns a new Vector with the element at index i replaced by val,
// and true; or the zero Vector and false if i is out of range (spec.md
// §4.3, "set"/"assoc" — out-of-bounds is a documented sentinel result,
// not a panic).
func (v Vector[T]) Set(i int, val T) (Vector[T], bool) {
	if i < 0 || uint32(i) >= v.end-v.start {
		var zero Vector[T]
		return zero, false
	}
	return v.doSet(v.start+uint32(i), val), true
}

func (v Vector[T]) doSet(idx uint32, val T) Vector[T] {
	if idx >= tailoff(v.end) {
		tailLen := v.end - tailoff(v.end)
		newTail := v.tail.copy(int(tailLen), noEdit)
		newTail.slots[idx&mask] = val
		checkInvariants(v.root, newTail)
		return Vector[T]{start: v.start, end: v.end, shift: v.shift, root: v.root, tail: newTail}
	}
	newRoot := doAssoc(v.shift, v.root, idx, val)
	checkInvariants(newRoot, v.tail)
	return Vector[T]{start: v.start, end: v.end, shift: v.shift, root: newRoot, tail: v.tail}
}

// doAssoc path-copies the branch chain from node down to the leaf holding
// index i, overwriting the value there.
func doAssoc[T any](level uint32, node *branch[T], i uint32, val T) *branch[T] {
	ret := node.copy(branchLen(node), noEdit)
	subidx := (i >> level) & mask
	if level == bits {
		newLeaf := asLeaf[T](childAt(node, subidx)).copyAssign(int(i&mask), val, noEdit)
		ret.slots[subidx] = newLeaf
	} else {
		ret.slots[subidx] = doAssoc(level-bits, asBranch[T](childAt(node, subidx)), i, val)
	}
	return ret
}

// Set overwrites the element at index i in place and returns (t, true),
// or (t, false) — leaving t unmodified — if i is out of range or t is
// already sealed (spec.md §4.3, "tset"; §7, "sealed-transient").
func (t *Transient[T]) Set(i int, val T) (*Transient[T], bool) {
	if t.edit == noEdit {
		return t, false
	}
	if i < 0 || uint32(i) >= t.end-t.start {
		return t, false
	}
	idx := t.start + uint32(i)
	if idx >= tailoff(t.end) {
		tail := t.tail.ensureEditable(t.edit)
		tail.slots[idx&mask] = val
		t.tail = tail
	} else {
		t.root = tdoAssoc(t.shift, t.root, idx, val, t.edit)
	}
	checkInvariants(t.root, t.tail)
	return t, true
}

// tdoAssoc is doAssoc's transient counterpart: it mutates any branch or
// leaf already owned by edit in place instead of copying it.
func tdoAssoc[T any](level uint32, node *branch[T], i uint32, val T, edit editID) *branch[T] {
	ret := node.ensureEditable(edit)
	subidx := (i >> level) & mask
	if level == bits {
		lf := asLeaf[T](childAt(ret, subidx)).ensureEditable(edit)
		lf.slots[i&mask] = val
		ret.slots[subidx] = lf
	} else {
		ret.slots[subidx] = tdoAssoc(level-bits, asBranch[T](childAt(ret, subidx)), i, val, edit)
	}
	return ret
}
