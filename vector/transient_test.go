// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vector

import "testing"

func TestTransientMatchesPersistentPush(t *testing.T) {
	for _, n := range []int{0, 1, branches - 1, branches, branches + 1,
		branches * branches, branches*branches + 1, 5000} {
		want := buildPush(n)

		got := Empty[int]().Modify(func(tr *Transient[int]) {
			for i := 0; i < n; i++ {
				tr.Push(i)
			}
		})
		checkContents(t, got, n)
		if got.Compare(want, intCmp) != 0 {
			t.Fatalf("transient build of %d elements mismatched persistent build", n)
		}
	}
}

func TestTransientPopMatchesPersistentPop(t *testing.T) {
	for _, n := range []int{1, branches, branches + 1, branches * branches, 4000} {
		want := buildPush(n)
		for want.Size() > 0 {
			want = want.Pop()
		}

		got := Empty[int]().Modify(func(tr *Transient[int]) {
			for i := 0; i < n; i++ {
				tr.Push(i)
			}
			for tr.Size() > 0 {
				tr.Pop()
			}
		})
		if got.Size() != 0 {
			t.Fatalf("n=%d: transient pop-to-empty left Size()=%d, want 0", n, got.Size())
		}
	}
}

func TestTransientSet(t *testing.T) {
	got := Empty[int]().Modify(func(tr *Transient[int]) {
		for i := 0; i < 200; i++ {
			tr.Push(i)
		}
		for i := 0; i < 200; i += 17 {
			tr.Set(i, -i)
		}
	})
	for i := 0; i < 200; i++ {
		want := i
		if i%17 == 0 {
			want = -i
		}
		if got := got.Get(i); got != want {
			t.Fatalf("Get(%d) = %d, want %d", i, got, want)
		}
	}
}

func TestTransientDoesNotMutateSourceVector(t *testing.T) {
	v := buildPush(100)
	_ = v.Modify(func(tr *Transient[int]) {
		for i := 0; i < 100; i++ {
			tr.Set(i, -1)
		}
		tr.Push(1000)
	})
	checkContents(t, v, 100)
}

func TestTransientAfterFreezeReportsFailure(t *testing.T) {
	tr := Empty[int]().ToTransient()
	tr.Push(1)
	tr.Freeze()

	if _, ok := tr.Push(2); ok {
		t.Fatalf("Push after Freeze = _, true, want false")
	}
	if _, ok := tr.Set(0, 9); ok {
		t.Fatalf("Set after Freeze = _, true, want false")
	}
	if _, ok := tr.Pop(); ok {
		t.Fatalf("Pop after Freeze = _, true, want false")
	}
	if _, ok := tr.Freeze(); ok {
		t.Fatalf("second Freeze = _, true, want false")
	}
	if got := tr.Get(0); got != 1 {
		t.Fatalf("Get(0) after Freeze = %d, want 1 (reads must still work)", got)
	}
}

func TestTwoTransientsFromSameVectorAreIndependent(t *testing.T) {
	v := buildPush(50)
	a := v.Modify(func(tr *Transient[int]) { tr.Push(1) })
	b := v.Modify(func(tr *Transient[int]) { tr.Push(2) })
	if a.Get(50) == b.Get(50) {
		t.Fatalf("independent transients built from the same vector collided: both read %d at index 50", a.Get(50))
	}
	checkContents(t, v, 50)
}
