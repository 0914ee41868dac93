// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/bitpart/bpvec/config"
	"github.com/bitpart/bpvec/vector"
)

// demoCommand walks through the vector operations end to end, tagging
// the run with a correlation id so its output can be matched up against
// bench/build runs in a shared log stream.
func demoCommand(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "demo",
		Usage: "walk through push, set, slice, splice, cons, and pop",
		Action: func(c *cli.Context) error {
			run := uuid.New()
			fmt.Printf("run %s\n", run)

			v := vector.Of(10, 20, 30, 40, 50)
			fmt.Printf("[%s] built:   size=%d first,_=%v last,_=%v\n", run, v.Size(), first(v), last(v))

			v = v.Push(60)
			fmt.Printf("[%s] push:    %v\n", run, materialize(v))

			v, ok := v.Set(0, 11)
			if !ok {
				return fmt.Errorf("set out of range")
			}
			fmt.Printf("[%s] set:     %v\n", run, materialize(v))

			mid, _ := v.Slice(1, 4)
			fmt.Printf("[%s] slice:   %v\n", run, materialize(mid))

			spliced, _ := v.Splice(1, 2, vector.Of(100, 200).Values())
			fmt.Printf("[%s] splice:  %v\n", run, materialize(spliced))

			consed := v.Cons(0)
			fmt.Printf("[%s] cons:    %v\n", run, materialize(consed))

			popped := v.Pop()
			fmt.Printf("[%s] pop:     %v\n", run, materialize(popped))

			if cfg.Debug("trie") {
				fmt.Printf("[%s] debug: final size=%d\n", run, v.Size())
			}
			return nil
		},
	}
}

func first[T any](v vector.Vector[T]) T {
	val, _ := v.First()
	return val
}

func last[T any](v vector.Vector[T]) T {
	val, _ := v.Last()
	return val
}

func materialize[T any](v vector.Vector[T]) []T {
	out := make([]T, 0, v.Size())
	for _, val := range v.All() {
		out = append(out, val)
	}
	return out
}
