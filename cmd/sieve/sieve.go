// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// sieve filters the records of a fasta file for low complexity.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/complexity"
	"github.com/biogo/biogo/seq"
	"github.com/charmbracelet/log"

	"github.com/kortschak/tinyfasta"
)

var (
	in     = flag.String("in", "", "specify input fasta file (required)")
	gz     = flag.Bool("gz", false, "decompress gzip input")
	thresh = flag.Float64("thresh", 6, "specify minimum total sequence complexity")
	dist   = flag.Bool("dist", false, "only calculate complexity distribution")
	typ    = flag.Int("type", 0, "specify complexity calculation function (0 - WF, 1 - entropic, 2 - Z)")
)

func main() {
	flag.Parse()
	if *in == "" || *typ < 0 || 2 < *typ {
		flag.Usage()
		os.Exit(1)
	}

	cfn := []func(s seq.Sequence, start, end int) (float64, error){
		0: complexity.WF,
		1: complexity.Entropic,
		2: complexity.Z,
	}[*typ]

	open := tinyfasta.Open
	if *gz {
		open = tinyfasta.OpenAuto
	}

	for r, err := range tinyfasta.NewParser(*in, open).All() {
		if err != nil {
			log.Fatalf("error during fasta read: %v", err)
		}
		if r.Len() == 0 {
			log.Warnf("skipping empty sequence %q", r.Name())
			continue
		}
		s := r.Seq(alphabet.DNAgapped)

		c, err := cfn(s, s.Start(), s.End())
		if err != nil {
			log.Fatalf("failed to calculate complexity of %q: %v", r.Name(), err)
		}

		if *dist {
			fmt.Printf("%s\t%v\t%d\n", r.Name(), c, r.Len())
			continue
		}
		if c >= *thresh {
			fmt.Printf("%v\n", r)
		}
	}
}
