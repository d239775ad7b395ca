// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/kortschak/tinyfasta"
)

func TestMatchAll(t *testing.T) {
	r := tinyfasta.NewRecord(">seq3|ends with ATTA motif in second line")
	r.AddSequenceLine("CCCCCCCCCCCC")
	r.AddSequenceLine("GGGGGGGGGATTA")

	for _, test := range []struct {
		desc []tinyfasta.Term
		seq  []tinyfasta.Term
		want bool
	}{
		{want: true},
		{desc: []tinyfasta.Term{tinyfasta.Literal("seq3")}, want: true},
		{desc: []tinyfasta.Term{tinyfasta.Literal("seq4")}, want: false},
		{seq: []tinyfasta.Term{tinyfasta.Literal("CGGG")}, want: true},
		{seq: []tinyfasta.Term{tinyfasta.MustCompile("G{9}AT{2}A$")}, want: true},
		{
			desc: []tinyfasta.Term{tinyfasta.Literal("seq3")},
			seq:  []tinyfasta.Term{tinyfasta.Literal("ATTA"), tinyfasta.MustCompile("^A")},
			want: false,
		},
	} {
		if got := matchAll(r, test.desc, test.seq); got != test.want {
			t.Errorf("unexpected match for desc=%v seq=%v: got:%t want:%t", test.desc, test.seq, got, test.want)
		}
	}
}
