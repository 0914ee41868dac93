// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/bitpart/bpvec/config"
	"github.com/bitpart/bpvec/vector"
)

// benchCommand times two ways of building an n-element vector: one Push
// per persistent Vector (path-copying at every step) versus the same n
// pushes against a single Transient (mutating in place, then Freeze).
// The gap between the two numbers is the whole reason Transient exists.
func benchCommand(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "bench",
		Usage: "compare persistent push against a batched transient push",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "n",
				Aliases: []string{"count"},
				Value:   100000,
				Usage:   "number of elements to push",
			},
		},
		Action: func(c *cli.Context) error {
			logger, err := zap.NewProduction()
			if err != nil {
				return fmt.Errorf("bench: %w", err)
			}
			defer logger.Sync()

			n := c.Int("n")

			persistentStart := time.Now()
			pv := vector.Empty[int]()
			for i := 0; i < n; i++ {
				pv = pv.Push(i)
			}
			persistentElapsed := time.Since(persistentStart)

			transientStart := time.Now()
			tv := vector.Empty[int]().Modify(func(t *vector.Transient[int]) {
				for i := 0; i < n; i++ {
					t.Push(i)
				}
			})
			transientElapsed := time.Since(transientStart)

			logger.Info("bench complete",
				zap.Int("n", n),
				zap.Duration("persistent_push", persistentElapsed),
				zap.Duration("transient_push", transientElapsed),
				zap.Int("persistent_size", pv.Size()),
				zap.Int("transient_size", tv.Size()),
			)
			return nil
		},
	}
}
