// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tinyfasta

import (
	"fmt"
	"strings"
	"testing"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/seq/linear"
)

func TestNewRecord(t *testing.T) {
	r := NewRecord(">seq101|testing\n")
	if got, want := r.Description.String(), ">seq101|testing"; got != want {
		t.Errorf("unexpected description: got:%q want:%q", got, want)
	}
	r.AddSequenceLine("atta\n")
	r.AddSequenceLine("TAAT")
	if got, want := r.Sequence.String(), "attaTAAT"; got != want {
		t.Errorf("unexpected sequence: got:%q want:%q", got, want)
	}
	if got, want := r.Len(), 8; got != want {
		t.Errorf("unexpected length: got:%d want:%d", got, want)
	}
	if got, want := r.String(), ">seq101|testing\natta\nTAAT"; got != want {
		t.Errorf("unexpected record text: got:%q want:%q", got, want)
	}
}

func TestRecordContains(t *testing.T) {
	r := NewRecord(">seq101|testing\n")
	r.AddSequenceLine("AAAT")
	r.AddSequenceLine("TAAA")
	if !r.SequenceContains(Literal("ATTA")) {
		t.Error("expected sequence literal match")
	}
	if r.SequenceContains(Literal("ACCA")) {
		t.Error("unexpected sequence literal match")
	}
	if !r.SequenceContains(MustCompile("A[T]{2}A")) {
		t.Error("expected sequence regexp match")
	}
	if r.SequenceContains(MustCompile("A[T]{3}A")) {
		t.Error("unexpected sequence regexp match")
	}
	if !r.DescriptionContains(Literal("seq101")) {
		t.Error("expected description match")
	}
	if r.DescriptionContains(Literal("AAAT")) {
		t.Error("unexpected description match")
	}
}

func TestCreate(t *testing.T) {
	r := Create(">seq101|testing", strings.Repeat("ATCG", 30))
	lines := r.Sequence.Lines()
	if len(lines) != 2 {
		t.Fatalf("unexpected number of lines: got:%d want:2", len(lines))
	}
	if len(lines[0]) != 80 || len(lines[1]) != 40 {
		t.Errorf("unexpected line lengths: got:[%d %d] want:[80 40]", len(lines[0]), len(lines[1]))
	}
	want := ">seq101|testing\n" + strings.Repeat("ATCG", 20) + "\n" + strings.Repeat("ATCG", 10)
	if got := r.String(); got != want {
		t.Errorf("unexpected record text:\ngot:\n%s\nwant:\n%s", got, want)
	}

	r = Create("seq102", "")
	if got, want := r.String(), ">seq102"; got != want {
		t.Errorf("unexpected record text for empty sequence: got:%q want:%q", got, want)
	}
}

func TestRecordNameDesc(t *testing.T) {
	for _, test := range []struct {
		header string
		name   string
		desc   string
	}{
		{header: ">seq1|short sequence", name: "seq1|short", desc: "sequence"},
		{header: ">chr1\tassembled  molecule", name: "chr1", desc: "assembled  molecule"},
		{header: ">seq3", name: "seq3", desc: ""},
		{header: ">", name: "", desc: ""},
	} {
		r := NewRecord(test.header)
		if got := r.Name(); got != test.name {
			t.Errorf("unexpected name for %q: got:%q want:%q", test.header, got, test.name)
		}
		if got := r.Desc(); got != test.desc {
			t.Errorf("unexpected desc for %q: got:%q want:%q", test.header, got, test.desc)
		}
	}
}

func TestRecordFormat(t *testing.T) {
	r := NewRecord(">seq6|crazy formatting")
	r.AddSequenceLine("ACG")
	r.AddSequenceLine("TACGTAC")

	for _, test := range []struct {
		format string
		want   string
	}{
		{format: "%v", want: ">seq6|crazy formatting\nACG\nTACGTAC"},
		{format: "%s", want: ">seq6|crazy formatting\nACG\nTACGTAC"},
		{format: "%q", want: `">seq6|crazy formatting\nACG\nTACGTAC"`},
		{format: "%4a", want: ">seq6|crazy formatting\nACGT\nACGT\nAC"},
		{format: "%a", want: ">seq6|crazy formatting\nACGTACGTAC"},
	} {
		if got := fmt.Sprintf(test.format, r); got != test.want {
			t.Errorf("unexpected formatting for %q: got:%q want:%q", test.format, got, test.want)
		}
	}
	if got, want := r.Sequence.Lines(), []string{"ACG", "TACGTAC"}; strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("formatting altered record lines: got:%q want:%q", got, want)
	}
}

func TestRecordSeq(t *testing.T) {
	r := NewRecord(">seq1|short sequence")
	r.AddSequenceLine("AAATTT")
	r.AddSequenceLine("CCCGGG")

	s := r.Seq(alphabet.DNA)
	if s.ID != "seq1|short" || s.Desc != "sequence" {
		t.Errorf("unexpected sequence name: got:%q %q want:%q %q", s.ID, s.Desc, "seq1|short", "sequence")
	}
	if got, want := string(alphabet.LettersToBytes(s.Seq)), "AAATTTCCCGGG"; got != want {
		t.Errorf("unexpected sequence letters: got:%q want:%q", got, want)
	}

	back := FromSeq(s)
	if got, want := back.String(), ">seq1|short sequence\nAAATTTCCCGGG"; got != want {
		t.Errorf("unexpected record from sequence: got:%q want:%q", got, want)
	}

	long := linear.NewSeq("chr", alphabet.BytesToLetters([]byte(strings.Repeat("A", 100))), alphabet.DNA)
	if got, want := len(FromSeq(long).Sequence.Lines()), 2; got != want {
		t.Errorf("unexpected number of lines: got:%d want:%d", got, want)
	}
}
