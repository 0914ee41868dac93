// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromSeq(t *testing.T) {
	src := Of(1, 2, 3, 4, 5)
	got := FromSeq[int](src.Values())
	require.Equal(t, src.Size(), got.Size())
	for i := 0; i < src.Size(); i++ {
		assert.Equal(t, src.Get(i), got.Get(i))
	}
}

func TestFromSeqNil(t *testing.T) {
	got := FromSeq[int](nil)
	assert.True(t, got.IsEmpty())
}

func TestZeroValueReadsAsEmpty(t *testing.T) {
	var v Vector[string]
	assert.True(t, v.IsEmpty())
	assert.Equal(t, 0, v.Size())
	_, ok := v.First()
	assert.False(t, ok)
}

func TestModifyComposesMultipleEdits(t *testing.T) {
	v := Of("a", "b", "c")
	got := v.Modify(func(tr *Transient[string]) {
		tr.Push("d")
		tr.Set(0, "A")
		tr.Pop()
	})
	require.Equal(t, 3, got.Size())
	assert.Equal(t, "A", got.Get(0))
	assert.Equal(t, "c", got.Get(2))
}
