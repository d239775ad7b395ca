// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"strings"
	"testing"

	"github.com/kortschak/tinyfasta"
)

const text = `>seq1|short sequence
AAATTTCCCGGG
>seq2|contains ATTA motif
AAAAATTAAAAA
CCCC
`

func textParser(text string) *tinyfasta.Parser {
	return tinyfasta.NewParser("dummy.fasta", func(string) (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader(text)), nil
	})
}

func TestMangleRoundTrip(t *testing.T) {
	var table, mangled strings.Builder
	err := mangle(textParser(text), &table, &mangled)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantMangled := `>bffa25e5f7205b38007f0d33bb9ed24c84122b18
AAATTTCCCGGG
>366c6948f92a487b82cd3a1ad01f1d23f2ef3c88
AAAAATTAAAAA
CCCC
`
	if got := mangled.String(); got != wantMangled {
		t.Errorf("unexpected mangled output:\ngot:\n%s\nwant:\n%s", got, wantMangled)
	}
	wantTable := "bffa25e5f7205b38007f0d33bb9ed24c84122b18\tseq1|short sequence\n" +
		"366c6948f92a487b82cd3a1ad01f1d23f2ef3c88\tseq2|contains ATTA motif\n"
	if got := table.String(); got != wantTable {
		t.Errorf("unexpected table:\ngot:\n%s\nwant:\n%s", got, wantTable)
	}

	var restored strings.Builder
	err = unmangle(textParser(mangled.String()), strings.NewReader(table.String()), &restored)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := restored.String(); got != text {
		t.Errorf("unexpected unmangled output:\ngot:\n%s\nwant:\n%s", got, text)
	}
}

func TestMangleDuplicate(t *testing.T) {
	var table, mangled strings.Builder
	err := mangle(textParser(">a\nAC\n>a\nGT\n"), &table, &mangled)
	if err == nil || !strings.Contains(err.Error(), "duplicate sha1") {
		t.Errorf("unexpected error: got:%v want duplicate sha1 error", err)
	}
}

func TestUnmangleMissing(t *testing.T) {
	var out strings.Builder
	err := unmangle(textParser(">unknown\nAC\n"), strings.NewReader(""), &out)
	if err == nil {
		t.Error("expected error for unknown sequence")
	}
}
