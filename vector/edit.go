// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vector

import "sync/atomic"

// editID marks which live Transient, if any, may mutate a node or leaf in
// place. noEdit marks a frozen/persistent node: it must always be
// path-copied rather than mutated.
//
// The original C++ implementation used the calling thread's id as the
// token. A monotonically increasing generation counter is an equally
// valid choice and is what this package uses, since it does not tie a
// Transient to the goroutine that created it.
type editID uint64

const noEdit editID = 0

// editSeq hands out editIDs. It starts at 1 so the zero value stays
// reserved for noEdit.
var editSeq atomic.Uint64

// nextEdit mints a fresh editID, unique for the lifetime of the process.
func nextEdit() editID {
	return editID(editSeq.Add(1))
}
