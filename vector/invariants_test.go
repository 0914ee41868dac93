// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vector

import "testing"

// withBoundsChecking enables bounds checking for the duration of fn and
// restores the prior setting afterward, so tests don't leak state into
// each other.
func withBoundsChecking(t *testing.T, fn func()) {
	t.Helper()
	prev := boundsChecking.Load()
	SetBoundsChecking(true)
	defer SetBoundsChecking(prev)
	fn()
}

func TestInvariantsHoldAcrossPushPopSet(t *testing.T) {
	withBoundsChecking(t, func() {
		v := Empty[int]()
		for _, n := range []int{branches - 1, branches, branches + 1,
			branches * branches, branches*branches + 1} {
			for v.Size() < n {
				v = v.Push(v.Size())
			}
			for i := 0; i < v.Size(); i += 7 {
				var ok bool
				v, ok = v.Set(i, -i)
				if !ok {
					t.Fatalf("Set(%d, ...) = _, false, want true", i)
				}
			}
			for v.Size() > n/2 {
				v = v.Pop()
			}
		}
	})
}

func TestInvariantsHoldAcrossTransientPushPopSet(t *testing.T) {
	withBoundsChecking(t, func() {
		got := Empty[int]().Modify(func(tr *Transient[int]) {
			for i := 0; i < branches*branches+50; i++ {
				tr.Push(i)
			}
			for i := 0; i < tr.Size(); i += 11 {
				tr.Set(i, -i)
			}
			for tr.Size() > branches {
				tr.Pop()
			}
		})
		if got.Size() != branches {
			t.Fatalf("Size() = %d, want %d", got.Size(), branches)
		}
	})
}

func TestInvariantsCatchCorruptedBranch(t *testing.T) {
	withBoundsChecking(t, func() {
		defer func() {
			if recover() == nil {
				t.Fatalf("checkInvariants did not panic on a corrupted branch")
			}
		}()
		b := &branch[int]{length: 1}
		b.slots[1] = &leaf[int]{length: 1}
		checkInvariants(b, &leaf[int]{})
	})
}

func TestInvariantsCatchCorruptedLeaf(t *testing.T) {
	withBoundsChecking(t, func() {
		defer func() {
			if recover() == nil {
				t.Fatalf("checkInvariants did not panic on a corrupted leaf")
			}
		}()
		l := &leaf[int]{length: 1}
		l.slots[1] = 42
		checkInvariants[int](nil, l)
	})
}

func TestBoundsCheckingOffByDefault(t *testing.T) {
	if boundsChecking.Load() {
		t.Fatalf("bounds checking must default to off")
	}
	// A deliberately corrupted node must not panic while checking is off.
	l := &leaf[int]{length: 1}
	l.slots[1] = 99
	checkInvariants[int](nil, l)
}
