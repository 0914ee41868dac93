// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vector

import "testing"

func TestCursorWalksInOrder(t *testing.T) {
	v := buildPush(300)
	c := v.Begin()
	for i := 0; i < 300; i++ {
		if !c.Valid() {
			t.Fatalf("cursor invalid at i=%d", i)
		}
		if got, ok := c.Value(); !ok || got != i {
			t.Fatalf("Value() at i=%d = %d, %v, want %d, true", i, got, ok, i)
		}
		c.Next()
	}
	if c.Valid() {
		t.Fatalf("cursor still valid after walking past the end")
	}
}

func TestCursorDistanceTo(t *testing.T) {
	v := buildPush(300)
	a := v.BeginAt(10)
	b := v.BeginAt(250)
	if got := a.DistanceTo(b); got != 240 {
		t.Fatalf("DistanceTo = %d, want 240", got)
	}
	if got := b.DistanceTo(a); got != 240 {
		t.Fatalf("DistanceTo = %d, want 240", got)
	}
}

func TestIteratorDistance(t *testing.T) {
	// spec.md §8, scenario 8: for any v, begin().distance_to(end()) and
	// end().distance_to(begin()) both equal v.size(), symmetrically.
	for _, n := range []int{0, 1, branches, branches + 1, 300} {
		v := buildPush(n)
		begin, end := v.Begin(), v.End()
		if got := begin.DistanceTo(end); got != n {
			t.Fatalf("n=%d: begin().DistanceTo(end()) = %d, want %d", n, got, n)
		}
		if got := end.DistanceTo(begin); got != n {
			t.Fatalf("n=%d: end().DistanceTo(begin()) = %d, want %d", n, got, n)
		}
	}
}

func TestValuesSeq(t *testing.T) {
	v := Of(1, 2, 3)
	var got []int
	for val := range v.Values() {
		got = append(got, val)
	}
	want := []int{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
