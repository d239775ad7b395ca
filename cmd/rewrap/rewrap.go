// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// rewrap writes the fasta records of a file with their sequences
// rewrapped to a fixed line width.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/kortschak/tinyfasta"
	"github.com/kortschak/tinyfasta/pigz"
)

var (
	in       = flag.String("in", "", "specify input fasta file (required)")
	out      = flag.String("out", "", "specify output file name (default to stdout)")
	gz       = flag.Bool("gz", false, "decompress gzip input")
	pigzPath = flag.String("pigz", "", "decompress input with the pigz or gzip at this path")
	procs    = flag.Int("procs", 0, "number of pigz threads")
	width    = flag.Int("width", tinyfasta.DefaultLineLength, "specify sequence line width (<=0 writes one line per sequence)")
)

func main() {
	flag.Parse()
	if *in == "" {
		flag.Usage()
		os.Exit(1)
	}

	outStream := os.Stdout
	if *out != "" {
		var err error
		outStream, err = os.Create(*out)
		if err != nil {
			log.Fatalf("failed to create out file: %v", err)
		}
	}

	open := tinyfasta.Open
	switch {
	case *pigzPath != "":
		open = pigz.PIGZ{Cmd: *pigzPath, Procs: *procs}.Open
	case *gz:
		open = tinyfasta.OpenAuto
	}

	sc := tinyfasta.NewParser(*in, open).Scan()
	defer sc.Close()
	for sc.Next() {
		r := sc.Record()
		r.FormatSequenceLineLength(*width)
		_, err := fmt.Fprintf(outStream, "%v\n", r)
		if err != nil {
			log.Fatalf("failed to write %q: %v", r.Name(), err)
		}
	}
	if err := sc.Error(); err != nil {
		log.Fatalf("error during fasta read: %v", err)
	}
	err := outStream.Close()
	if err != nil {
		log.Fatalf("failed to close out file: %v", err)
	}
}
