// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tinyfasta

import "strings"

// DefaultLineLength is the sequence line width used by Create.
const DefaultLineLength = 80

// Sequence holds the lines of a FASTA sequence in the order they were
// added. The lines are used verbatim when a Record is rendered.
type Sequence struct {
	lines []string
}

// AddLine appends raw, stripped of surrounding white space, to s.
// A blank line is kept as an empty line.
func (s *Sequence) AddLine(raw string) {
	s.lines = append(s.lines, strings.TrimSpace(raw))
}

// String returns the complete sequence without line breaks.
func (s *Sequence) String() string { return strings.Join(s.lines, "") }

// Len returns the length of the complete sequence.
func (s *Sequence) Len() int {
	var n int
	for _, l := range s.lines {
		n += len(l)
	}
	return n
}

// Lines returns a copy of the sequence lines.
func (s *Sequence) Lines() []string {
	return append([]string(nil), s.lines...)
}

// FormatLineLength rewraps the sequence into lines of n bytes, the
// last line holding any remainder. If n is not positive the sequence
// is held on a single line.
func (s *Sequence) FormatLineLength(n int) {
	s.lines = wrap(s.String(), n)
}

// Contains returns whether the complete sequence matches t.
func (s *Sequence) Contains(t Term) bool { return t.Match(s.String()) }

func wrap(seq string, n int) []string {
	if seq == "" {
		return nil
	}
	if n <= 0 {
		return []string{seq}
	}
	lines := make([]string, 0, (len(seq)+n-1)/n)
	for len(seq) > n {
		lines = append(lines, seq[:n])
		seq = seq[n:]
	}
	return append(lines, seq)
}
