// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// excise outputs a set of fasta sequences based on a reference and
// set of bed files.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/biogo/biogo/io/featio"
	"github.com/biogo/biogo/io/featio/bed"
	"github.com/charmbracelet/log"

	"github.com/kortschak/tinyfasta"
)

var (
	ref   = flag.String("ref", "", "specify reference fasta file (required)")
	gz    = flag.Bool("gz", false, "decompress gzip reference")
	flank = flag.Int("flank", 0, "specify flank length added to each region")
)

func main() {
	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "need at least one bed3 file input")
		os.Exit(1)
	}
	if *ref == "" || *flank < 0 {
		flag.Usage()
		os.Exit(1)
	}

	open := tinyfasta.Open
	if *gz {
		open = tinyfasta.OpenAuto
	}
	seqs, err := readContigs(*ref, open)
	if err != nil {
		log.Fatalf("failed to read reference file: %v", err)
	}

	for _, in := range flag.Args() {
		err := excise(in, basename(in)+".mfa", seqs, *flank)
		if err != nil {
			log.Fatalf("failed to excise regions in %q: %v", in, err)
		}
	}
}

// excise writes the regions described in the bed3 file in from the
// sequences in seqs to the multiple fasta file out.
func excise(in, out string, seqs map[string]string, flank int) error {
	bf, err := os.Open(in)
	if err != nil {
		return err
	}
	defer bf.Close()

	br, err := bed.NewReader(bf, 3)
	if err != nil {
		return err
	}

	w, err := os.Create(out)
	if err != nil {
		return err
	}

	sc := featio.NewScanner(br)
	for sc.Next() {
		f := sc.Feat().(*bed.Bed3)
		s, ok := seqs[f.Chrom]
		if !ok {
			log.Warnf("no reference sequence for %s", f.Chrom)
			continue
		}
		start := max(0, f.ChromStart-flank)
		end := min(f.ChromEnd+flank, len(s))
		if start >= end {
			log.Warnf("empty region %s:[%d,%d)", f.Chrom, f.ChromStart, f.ChromEnd)
			continue
		}
		desc := fmt.Sprintf("%s[%d,%d)", f.Chrom, start, end)
		if flank != 0 {
			desc += fmt.Sprintf(" flanking [%d,%d)", f.ChromStart, f.ChromEnd)
		}
		_, err := fmt.Fprintf(w, "%v\n", tinyfasta.Create(desc, s[start:end]))
		if err != nil {
			w.Close()
			return err
		}
	}
	err = sc.Error()
	if err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

func readContigs(file string, open tinyfasta.Opener) (map[string]string, error) {
	seqs := make(map[string]string)
	for r, err := range tinyfasta.NewParser(file, open).All() {
		if err != nil {
			return nil, err
		}
		seqs[r.Name()] = r.Sequence.String()
	}
	return seqs, nil
}

func basename(path string) string {
	path = filepath.Base(path)
	ext := filepath.Ext(path)
	return path[:len(path)-len(ext)]
}
