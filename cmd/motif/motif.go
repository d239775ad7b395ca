// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// motif writes a GFF feature for each match of a set of regular
// expressions in the sequences of a fasta file.
package main

import (
	"flag"
	"os"
	"regexp"
	"strings"

	"github.com/biogo/biogo/io/featio/gff"
	"github.com/biogo/biogo/seq"
	"github.com/biogo/store/interval"
	"github.com/charmbracelet/log"

	"github.com/kortschak/tinyfasta"
)

// patterns is a list of regular expressions given by repeated flags.
type patterns []*regexp.Regexp

func (p *patterns) Set(s string) error {
	re, err := regexp.Compile(s)
	if err != nil {
		return err
	}
	*p = append(*p, re)
	return nil
}

func (p *patterns) String() string {
	s := make([]string, len(*p))
	for i, re := range *p {
		s[i] = re.String()
	}
	return strings.Join(s, ",")
}

var motifs patterns

var (
	in       = flag.String("in", "", "specify input fasta file (required)")
	gz       = flag.Bool("gz", false, "decompress gzip input")
	distinct = flag.Bool("distinct", false, "drop matches overlapping a match of an earlier pattern or position")
)

func main() {
	flag.Var(&motifs, "pattern", "specify a motif regular expression (may be repeated)")
	flag.Parse()
	if *in == "" || len(motifs) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	open := tinyfasta.Open
	if *gz {
		open = tinyfasta.OpenAuto
	}

	w := gff.NewWriter(os.Stdout, 60, true)
	gf := &gff.Feature{
		Source:         "tinyfasta",
		Feature:        "motif",
		FeatStrand:     seq.Plus,
		FeatFrame:      gff.NoFrame,
		FeatAttributes: gff.Attributes{{Tag: "Pattern"}},
	}
	for r, err := range tinyfasta.NewParser(*in, open).All() {
		if err != nil {
			log.Fatalf("error during fasta read: %v", err)
		}
		for _, h := range hits(r, motifs, *distinct) {
			gf.SeqName = r.Name()
			gf.FeatStart = h.start
			gf.FeatEnd = h.end
			gf.FeatAttributes[0].Value = h.pattern.String()
			_, err = w.Write(gf)
			if err != nil {
				log.Fatalf("failed to write feature: %v", err)
			}
		}
	}
}

// hits returns the non-empty matches of each pattern in the sequence
// of r in pattern then position order. If distinct is true, matches
// overlapping an earlier match are omitted.
func hits(r *tinyfasta.Record, motifs patterns, distinct bool) []hit {
	var (
		found []hit
		t     interval.IntTree
		s     string
	)
	for _, re := range motifs {
		if !r.SequenceContains(tinyfasta.Regexp(re)) {
			continue
		}
		if s == "" {
			s = r.Sequence.String()
		}
		for _, m := range re.FindAllStringIndex(s, -1) {
			h := hit{start: m[0], end: m[1], pattern: re, id: uintptr(len(found))}
			if h.start == h.end {
				continue
			}
			if distinct {
				if len(t.Get(h)) != 0 {
					continue
				}
				err := t.Insert(h, false)
				if err != nil {
					log.Fatalf("failed to insert match: %v", err)
				}
			}
			found = append(found, h)
		}
	}
	return found
}

// hit is a half-open interval of a sequence matched by a pattern.
type hit struct {
	start, end int
	pattern    *regexp.Regexp
	id         uintptr
}

func (h hit) ID() uintptr { return h.id }
func (h hit) Range() interval.IntRange {
	return interval.IntRange{Start: h.start, End: h.end}
}
func (h hit) Overlap(b interval.IntRange) bool {
	// Half-open interval indexing.
	return h.end > b.Start && h.start < b.End
}
