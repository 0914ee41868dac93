// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vector

import (
	"fmt"
	"reflect"
	"sync/atomic"
)

// boundsChecking gates the expensive length-invariant re-verification
// push/pop/set perform after every mutation — the direct analogue of the
// original C++ implementation's DCHECK-gated ImmutableAssertTypeTag
// (original_source/immutable/array.cc): compiled out by default, toggled
// at runtime here instead of by a build tag so one binary can flip it on
// via the CLI's --debug bounds flag.
var boundsChecking atomic.Bool

// SetBoundsChecking enables or disables length-invariant re-verification
// inside push, pop, and set. Off by default; see cmd/bpvec/main.go for
// the --debug bounds wiring.
func SetBoundsChecking(on bool) {
	boundsChecking.Store(on)
}

// checkInvariants walks root and tail and panics if any branch or leaf
// holds a non-zero slot at or beyond its own declared length — the one
// invariant every node in the trie must maintain. It is a no-op unless
// bounds checking is enabled.
func checkInvariants[T any](root *branch[T], tail *leaf[T]) {
	if !boundsChecking.Load() {
		return
	}
	checkLeafInvariant(tail)
	var walk func(b *branch[T])
	walk = func(b *branch[T]) {
		if b == nil {
			return
		}
		checkBranchInvariant(b)
		for i := 0; i < b.length; i++ {
			switch c := b.slots[i].(type) {
			case *branch[T]:
				walk(c)
			case *leaf[T]:
				checkLeafInvariant(c)
			}
		}
	}
	walk(root)
}

// checkBranchInvariant panics if node has a non-nil slot at or beyond its
// declared length.
func checkBranchInvariant[T any](node *branch[T]) {
	if !boundsChecking.Load() || node == nil {
		return
	}
	for i := node.length; i < branches; i++ {
		if node.slots[i] != nil {
			panic(fmt.Sprintf("vector: length invariant violated: branch.slots[%d] non-nil beyond length %d", i, node.length))
		}
	}
}

// checkLeafInvariant panics if node has a non-zero slot at or beyond its
// declared length.
func checkLeafInvariant[T any](node *leaf[T]) {
	if !boundsChecking.Load() || node == nil {
		return
	}
	var zero T
	for i := node.length; i < branches; i++ {
		if !reflect.DeepEqual(node.slots[i], zero) {
			panic(fmt.Sprintf("vector: length invariant violated: leaf.slots[%d] non-zero beyond length %d", i, node.length))
		}
	}
}
