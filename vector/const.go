// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vector implements a persistent, indexed sequence similar to
// [Clojure's persistent vectors]: a bit-partitioned trie of fixed-width
// nodes with a separately stored tail buffer, so that append, index,
// and update are all O(log branches n) with small constant factors.
//
// [Vector] is immutable: every mutating-looking method returns a new
// [Vector] sharing structure with the receiver. For bulk edits,
// [Vector.ToTransient] produces a [Transient], which supports the same
// operations mutated in place under an ownership token, and
// [Transient.Freeze] seals it back into a [Vector].
//
// [Clojure's persistent vectors]: https://hypirion.com/musings/understanding-persistent-vector-pt-1
package vector

// The trie uses BITS-bit indexing, giving BRANCHES-way fanout at every
// level. 5 bits (32-way) is the classic Clojure/original-immutable choice
// and is what this package's boundary tests (growth past BRANCHES and
// BRANCHES*BRANCHES) are phrased in terms of.
const (
	bits     = 5
	branches = 1 << bits
	mask     = branches - 1
)

// End is the sentinel upper bound meaning "to the end of the vector", for
// use with Slice, Without, and Splice.
const End = ^uint32(0)
