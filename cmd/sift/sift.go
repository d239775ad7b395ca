// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// sift writes the fasta records of a file whose description and
// sequence contain all of the given search terms.
package main

import (
	"flag"
	"fmt"
	"os"
	"regexp"

	"github.com/charmbracelet/log"

	"github.com/kortschak/tinyfasta"
	"github.com/kortschak/tinyfasta/pigz"
)

var (
	in       = flag.String("in", "", "specify input fasta file (required)")
	gz       = flag.Bool("gz", false, "decompress gzip input")
	pigzPath = flag.String("pigz", "", "decompress input with the pigz or gzip at this path")

	desc   = flag.String("desc", "", "specify literal description search term")
	seq    = flag.String("seq", "", "specify literal sequence search term")
	descRe = flag.String("desc-re", "", "specify regular expression description search term")
	seqRe  = flag.String("seq-re", "", "specify regular expression sequence search term")
	invert = flag.Bool("v", false, "write records that do not match")
	width  = flag.Int("width", 0, "rewrap output sequences to this width (0 retains input lines)")
)

func main() {
	flag.Parse()
	if *in == "" || (*desc == "" && *seq == "" && *descRe == "" && *seqRe == "") {
		flag.Usage()
		os.Exit(1)
	}

	var descTerms, seqTerms []tinyfasta.Term
	if *desc != "" {
		descTerms = append(descTerms, tinyfasta.Literal(*desc))
	}
	if *seq != "" {
		seqTerms = append(seqTerms, tinyfasta.Literal(*seq))
	}
	if *descRe != "" {
		descTerms = append(descTerms, mustPattern(*descRe))
	}
	if *seqRe != "" {
		seqTerms = append(seqTerms, mustPattern(*seqRe))
	}

	var n, hits int
	for r, err := range newParser(*in).All() {
		if err != nil {
			log.Fatalf("error during fasta read: %v", err)
		}
		n++
		if matchAll(r, descTerms, seqTerms) == *invert {
			continue
		}
		hits++
		if *width > 0 {
			fmt.Printf("%*a\n", *width, r)
		} else {
			fmt.Printf("%v\n", r)
		}
	}
	log.Infof("wrote %d of %d records", hits, n)
}

func mustPattern(expr string) tinyfasta.Pattern {
	re, err := regexp.Compile(expr)
	if err != nil {
		log.Fatalf("failed to compile %q: %v", expr, err)
	}
	return tinyfasta.Regexp(re)
}

func matchAll(r *tinyfasta.Record, descTerms, seqTerms []tinyfasta.Term) bool {
	for _, t := range descTerms {
		if !r.DescriptionContains(t) {
			return false
		}
	}
	for _, t := range seqTerms {
		if !r.SequenceContains(t) {
			return false
		}
	}
	return true
}

func newParser(path string) *tinyfasta.Parser {
	switch {
	case *pigzPath != "":
		return tinyfasta.NewParser(path, pigz.PIGZ{Cmd: *pigzPath}.Open)
	case *gz:
		return tinyfasta.NewParser(path, tinyfasta.OpenAuto)
	default:
		return tinyfasta.NewParser(path, nil)
	}
}
