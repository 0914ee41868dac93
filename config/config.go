// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the run-time settings shared by the bpvec command
// and its subcommands: a trie fanout value to report, debug-category flags,
// and the display format used when printing elements.
package config

// Config holds settings threaded through a bpvec CLI invocation.
type Config struct {
	format   string
	branches int
	debug    map[string]bool
}

// Format returns the fmt verb used to print a single element, "%v" if
// none has been set.
func (c *Config) Format() string {
	if c.format == "" {
		return "%v"
	}
	return c.format
}

// SetFormat sets the fmt verb used to print a single element.
func (c *Config) SetFormat(s string) {
	c.format = s
}

// Branches returns the configured trie fanout, 32 if none has been set.
func (c *Config) Branches() int {
	if c.branches == 0 {
		return 32
	}
	return c.branches
}

// SetBranches sets the trie fanout reported by Branches. It does not
// itself change vector package's compiled-in fanout; it exists so
// commands can report and validate against the fanout they were built
// with.
func (c *Config) SetBranches(n int) {
	c.branches = n
}

// Debug reports whether the named debug category is enabled. The bpvec
// command reads "bounds" (turns on the vector package's length-invariant
// checks, and build's one-past-end check) and "trie" (demo prints the
// final vector size).
func (c *Config) Debug(s string) bool {
	return c.debug[s]
}

// SetDebug enables or disables the named debug category.
func (c *Config) SetDebug(s string, state bool) {
	if c.debug == nil {
		c.debug = make(map[string]bool)
	}
	c.debug[s] = state
}
