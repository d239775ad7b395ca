// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tinyfasta

import (
	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/seq/linear"
)

// Seq returns the record as a biogo linear sequence in the given
// alphabet. The sequence ID and description are taken from Name
// and Desc. Letters are not validated against alpha.
func (r *Record) Seq(alpha alphabet.Alphabet) *linear.Seq {
	s := linear.NewSeq(r.Name(), alphabet.BytesToLetters([]byte(r.Sequence.String())), alpha)
	s.Desc = r.Desc()
	return s
}

// FromSeq returns a Record holding the ID, description and letters of s,
// wrapped at DefaultLineLength.
func FromSeq(s *linear.Seq) *Record {
	desc := s.ID
	if s.Desc != "" {
		desc += " " + s.Desc
	}
	return Create(desc, string(alphabet.LettersToBytes(s.Seq)))
}
