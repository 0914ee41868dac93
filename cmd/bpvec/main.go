// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command bpvec builds, benchmarks, and demonstrates the vector package
// from the command line.
package main

import (
	"log"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/bitpart/bpvec/config"
	"github.com/bitpart/bpvec/vector"
)

func main() {
	cfg := &config.Config{}

	app := &cli.App{
		Name:  "bpvec",
		Usage: "build, benchmark, and demonstrate persistent vectors",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "debug",
				Usage: "enable a debug category (bounds, trie); may be repeated",
			},
			&cli.IntFlag{
				Name:  "branches",
				Value: 32,
				Usage: "trie fanout to report; informational only, the compiled-in fanout always governs behavior",
			},
		},
		Before: func(c *cli.Context) error {
			for _, cat := range c.StringSlice("debug") {
				cfg.SetDebug(strings.TrimSpace(cat), true)
			}
			cfg.SetBranches(c.Int("branches"))
			vector.SetBoundsChecking(cfg.Debug("bounds"))
			return nil
		},
		Commands: []*cli.Command{
			buildCommand(cfg),
			benchCommand(cfg),
			demoCommand(cfg),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
