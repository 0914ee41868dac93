// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vector

import "iter"

// Of returns a new Vector holding vals, in order (grounded on
// original_source/immutable/array.h's Array<T>::create(std::initializer_list)
// overload).
func Of[T any](vals ...T) Vector[T] {
	t := Empty[T]().ToTransient()
	for _, val := range vals {
		t.Push(val)
	}
	v, _ := t.Freeze()
	return v
}

// FromSlice returns a new Vector holding a copy of s's elements
// (Array<T>::create(const T*, size_t)).
func FromSlice[T any](s []T) Vector[T] {
	t := Empty[T]().ToTransient()
	for _, val := range s {
		t.Push(val)
	}
	v, _ := t.Freeze()
	return v
}

// FromSeq returns a new Vector holding the elements produced by seq, in
// order (Array<T>::create(Iterator, Iterator)).
func FromSeq[T any](seq iter.Seq[T]) Vector[T] {
	v := Empty[T]()
	if seq == nil {
		return v
	}
	return v.PushAll(seq)
}
