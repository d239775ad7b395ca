// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tinyfasta

import (
	"fmt"
	"strconv"
	"strings"
)

// Record is a FASTA record, a description line and its sequence.
type Record struct {
	Description Description
	Sequence    Sequence
}

// NewRecord returns a Record with the given header line and an
// empty sequence.
func NewRecord(header string) *Record {
	return &Record{Description: NewDescription(header)}
}

// Create returns a Record with the given description and complete
// sequence, wrapped at DefaultLineLength.
func Create(description, sequence string) *Record {
	r := NewRecord(description)
	r.AddSequenceLine(sequence)
	r.FormatSequenceLineLength(DefaultLineLength)
	return r
}

// AddSequenceLine appends a sequence line to the record.
func (r *Record) AddSequenceLine(line string) { r.Sequence.AddLine(line) }

// DescriptionContains returns whether the record's description matches t.
func (r *Record) DescriptionContains(t Term) bool { return r.Description.Contains(t) }

// SequenceContains returns whether the record's sequence matches t.
func (r *Record) SequenceContains(t Term) bool { return r.Sequence.Contains(t) }

// FormatSequenceLineLength rewraps the record's sequence to lines of n bytes.
func (r *Record) FormatSequenceLineLength(n int) { r.Sequence.FormatLineLength(n) }

// Len returns the length of the record's sequence.
func (r *Record) Len() int { return r.Sequence.Len() }

// Name returns the record identifier, the description text up to the
// first white space without the leading '>'.
func (r *Record) Name() string {
	name, _ := r.split()
	return name
}

// Desc returns the description text following the record identifier.
func (r *Record) Desc() string {
	_, desc := r.split()
	return desc
}

func (r *Record) split() (name, desc string) {
	s := strings.TrimPrefix(r.Description.String(), ">")
	i := strings.IndexFunc(s, isSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i:])
}

func isSpace(r rune) bool { return r == ' ' || r == '\t' }

// String returns the FASTA text of the record without a trailing newline.
func (r *Record) String() string {
	return render(r.Description.String(), r.Sequence.lines)
}

func render(desc string, lines []string) string {
	var b strings.Builder
	b.WriteString(desc)
	for _, l := range lines {
		b.WriteByte('\n')
		b.WriteString(l)
	}
	return b.String()
}

// Format is a support routine for fmt.Formatter. It accepts the formats
// 'v' and 's' (record text), 'q' (quoted record text) and 'a' (record
// text with the sequence wrapped to the format width). The 'a' verb
// does not alter the record; a missing width writes the sequence on a
// single line.
//
//	fmt.Fprintf(w, "%60a\n", r)
func (r *Record) Format(fs fmt.State, c rune) {
	if r == nil {
		fmt.Fprint(fs, "<nil>")
		return
	}
	switch c {
	case 'v', 's':
		fmt.Fprint(fs, r.String())
	case 'q':
		fmt.Fprint(fs, strconv.Quote(r.String()))
	case 'a':
		w, _ := fs.Width()
		fmt.Fprint(fs, render(r.Description.String(), wrap(r.Sequence.String(), w)))
	default:
		fmt.Fprintf(fs, "%%!%c(*tinyfasta.Record=%s)", c, r.Description)
	}
}
