// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vector

// ToTransient returns a Transient sharing v's structure, mutable in
// place under a fresh edit token until Freeze is called on it (spec.md
// §5.1, "as_transient").
func (v Vector[T]) ToTransient() *Transient[T] {
	edit := nextEdit()
	tailLen := int(v.end - tailoff(v.end))
	return &Transient[T]{
		start:      v.start,
		end:        v.end,
		shift:      v.shift,
		root:       v.root.ensureEditable(edit),
		tail:       v.tail.copy(branches, edit),
		tailLength: tailLen,
		edit:       edit,
	}
}

// Freeze seals t: its edit token is retired, so every node it currently
// owns becomes immutable, and the resulting Vector is returned along with
// true. Calling Freeze again (or any other mutating method) on an
// already-sealed t reports false and leaves t unchanged (spec.md §4.7,
// "freeze"; §7, "sealed-transient" — a second freeze is itself a sealed
// operation, not an error).
func (t *Transient[T]) Freeze() (Vector[T], bool) {
	if t.edit == noEdit {
		var zero Vector[T]
		return zero, false
	}
	trimmed := t.tail.copy(t.tailLength, noEdit)
	out := Vector[T]{start: t.start, end: t.end, shift: t.shift, root: t.root, tail: trimmed}
	t.edit = noEdit
	return out, true
}

// Modify applies fn to a Transient view of v and returns the resulting
// Vector, a convenience for batches of edits that would otherwise
// path-copy on every step (spec.md §6, "modify(fn)"). It panics if fn
// itself seals the Transient (by calling Freeze) before returning, since
// that leaves Modify nothing to freeze.
func (v Vector[T]) Modify(fn func(t *Transient[T])) Vector[T] {
	t := v.ToTransient()
	fn(t)
	out, ok := t.Freeze()
	if !ok {
		panic("vector: Modify's function sealed the transient before returning")
	}
	return out
}
