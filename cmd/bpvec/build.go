// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/bitpart/bpvec/config"
	"github.com/bitpart/bpvec/vector"
)

// buildCommand reads newline-delimited records (from a file or stdin)
// into a Vector of strings, one element per line, and prints the
// resulting element count.
func buildCommand(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "build",
		Usage: "load newline-delimited input into a vector and report its element count",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "file to read from (default is stdin)",
			},
		},
		Action: func(c *cli.Context) error {
			var reader io.Reader = os.Stdin
			if c.IsSet("input") {
				f, err := os.Open(c.String("input"))
				if err != nil {
					return fmt.Errorf("build: %w", err)
				}
				defer f.Close()
				reader = f
			}

			v := vector.Empty[string]()
			t := v.ToTransient()
			scanner := bufio.NewScanner(reader)
			for scanner.Scan() {
				t.Push(scanner.Text())
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("build: %w", err)
			}
			v, ok := t.Freeze()
			if !ok {
				return fmt.Errorf("build: internal error: transient already sealed")
			}

			if cfg.Debug("bounds") {
				if _, ok := v.Find(v.Size()); ok {
					return fmt.Errorf("build: internal error: one-past-end index unexpectedly readable")
				}
			}

			fmt.Printf("elements: %d\n", v.Size())
			return nil
		},
	}
}
