// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tinyfasta provides reading, querying and rewriting of FASTA
// formatted sequence files.
//
// A Parser produces Records lazily from a file. Each Record holds a
// Description, the header line, and a Sequence, the sequence lines as
// they were read. Records can be searched with a literal or regular
// expression Term and rewrapped to a fixed line width.
package tinyfasta

import (
	"regexp"
	"strings"
)

// Term is a search term that can be tested against text.
type Term interface {
	Match(text string) bool
}

// Literal is a case-sensitive substring search term.
type Literal string

// Match returns whether t occurs in text.
func (t Literal) Match(text string) bool { return strings.Contains(text, string(t)) }

// Pattern is a regular expression search term. A match anywhere
// in the text satisfies the term.
type Pattern struct {
	*regexp.Regexp
}

// Regexp returns a Pattern for re.
func Regexp(re *regexp.Regexp) Pattern { return Pattern{re} }

// MustCompile returns a Pattern for the regular expression expr,
// panicking if expr does not compile.
func MustCompile(expr string) Pattern { return Pattern{regexp.MustCompile(expr)} }

// Match returns whether the pattern matches within text.
func (t Pattern) Match(text string) bool { return t.MatchString(text) }
