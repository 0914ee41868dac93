// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vector

import "testing"

func buildPush(n int) Vector[int] {
	v := Empty[int]()
	for i := 0; i < n; i++ {
		v = v.Push(i)
	}
	return v
}

func checkContents(t *testing.T, v Vector[int], n int) {
	t.Helper()
	if got := v.Size(); got != n {
		t.Fatalf("Size() = %d, want %d", got, n)
	}
	for i := 0; i < n; i++ {
		if got := v.Get(i); got != i {
			t.Fatalf("Get(%d) = %d, want %d", i, got, i)
		}
		if got, ok := v.Find(i); !ok || got != i {
			t.Fatalf("Find(%d) = %d, %v, want %d, true", i, got, ok, i)
		}
	}
	if _, ok := v.Find(n); ok {
		t.Fatalf("Find(%d) = _, true, want false", n)
	}
	if _, ok := v.Find(-1); ok {
		t.Fatalf("Find(-1) = _, true, want false")
	}
}

func TestPushSmall(t *testing.T) {
	for n := range 100 {
		checkContents(t, buildPush(n), n)
	}
}

func TestPushAcrossBoundaries(t *testing.T) {
	// Pushing past branches elements moves the first full tail into the
	// trie; pushing past branches*branches+branches gives the root a
	// second level, which the branches*branches*branches build passes
	// through on its way up.
	for _, n := range []int{branches - 1, branches, branches + 1,
		branches * branches, branches*branches + 1,
		branches * branches * branches} {
		checkContents(t, buildPush(n), n)
	}
}

func TestPushLarge(t *testing.T) {
	checkContents(t, buildPush(50001), 50001)
}

func TestPersistence(t *testing.T) {
	// Every intermediate Vector produced along the way must keep
	// reading back its own original contents even after later pushes.
	const n = 3000
	var snapshots []Vector[int]
	v := Empty[int]()
	for i := 0; i < n; i++ {
		snapshots = append(snapshots, v)
		v = v.Push(i)
	}
	for i, snap := range snapshots {
		checkContents(t, snap, i)
	}
}

func TestSetOverwrite(t *testing.T) {
	v := buildPush(2000)
	for i := 0; i < v.Size(); i += 37 {
		v2, ok := v.Set(i, -i)
		if !ok {
			t.Fatalf("Set(%d, ...) = _, false, want true", i)
		}
		if got := v2.Get(i); got != -i {
			t.Fatalf("after Set(%d): Get(%d) = %d, want %d", i, i, got, -i)
		}
		if got := v.Get(i); got != i {
			t.Fatalf("Set mutated receiver: Get(%d) = %d, want %d", i, got, i)
		}
	}
}

func TestSetOutOfRange(t *testing.T) {
	v := buildPush(5)
	if _, ok := v.Set(5, 999); ok {
		t.Fatalf("Set(5, ...) on a 5-element vector = _, true, want false")
	}
	if _, ok := v.Set(-1, 999); ok {
		t.Fatalf("Set(-1, ...) = _, true, want false")
	}
	if _, ok := v.Set(10, 1); ok {
		t.Fatalf("Set(10, ...) = _, true, want false")
	}
}

func TestPopUndoesPush(t *testing.T) {
	for _, n := range []int{1, branches, branches + 1, branches * branches, 5000} {
		v := buildPush(n)
		for i := n; i > 0; i-- {
			checkContents(t, v, i)
			v = v.Pop()
		}
		if v.Size() != 0 {
			t.Fatalf("after popping to empty: Size() = %d, want 0", v.Size())
		}
	}
}

func TestPopEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("Pop of empty Vector did not panic")
		}
	}()
	Empty[int]().Pop()
}

func TestFirstLast(t *testing.T) {
	v := buildPush(200)
	if got, ok := v.First(); !ok || got != 0 {
		t.Fatalf("First() = %d, %v, want 0, true", got, ok)
	}
	if got, ok := v.Last(); !ok || got != 199 {
		t.Fatalf("Last() = %d, %v, want 199, true", got, ok)
	}
	if _, ok := Empty[int]().First(); ok {
		t.Fatalf("First() of empty Vector reported ok")
	}
	if _, ok := Empty[int]().Last(); ok {
		t.Fatalf("Last() of empty Vector reported ok")
	}
}

func TestSame(t *testing.T) {
	v := buildPush(100)
	v2 := v.Push(1).Pop()
	if v.Same(v2) {
		t.Fatalf("Same reported two independently derived vectors as identical")
	}
	if !v.Same(v) {
		t.Fatalf("Same(v, v) = false, want true")
	}
}

func intCmp(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func TestCompare(t *testing.T) {
	a := Of(1, 2, 3)
	b := Of(1, 2, 3)
	c := Of(1, 2, 4)
	short := Of(1, 2)

	if got := a.Compare(b, intCmp); got != 0 {
		t.Fatalf("Compare(a, b) = %d, want 0", got)
	}
	if got := a.Compare(c, intCmp); got >= 0 {
		t.Fatalf("Compare(a, c) = %d, want < 0", got)
	}
	if got := a.Compare(short, intCmp); got <= 0 {
		t.Fatalf("Compare(a, short) = %d, want > 0", got)
	}
}

func TestAll(t *testing.T) {
	v := buildPush(70)
	i := 0
	for idx, val := range v.All() {
		if idx != i || val != i {
			t.Fatalf("All() yielded (%d, %d) at position %d, want (%d, %d)", idx, val, i, i, i)
		}
		i++
	}
	if i != v.Size() {
		t.Fatalf("All() yielded %d pairs, want %d", i, v.Size())
	}
}

func TestOf(t *testing.T) {
	v := Of(0, 1, 2, 3)
	checkContents(t, v, 4)
	if got := v.Get(2); got != 2 {
		t.Fatalf("Get(2) = %d, want 2", got)
	}
}

func TestFromSlice(t *testing.T) {
	s := []int{5, 6, 7, 8, 9}
	v := FromSlice(s)
	for i, want := range s {
		if got := v.Get(i); got != want {
			t.Fatalf("Get(%d) = %d, want %d", i, got, want)
		}
	}
}
