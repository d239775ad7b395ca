// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// lengths reports the sequence length of each record in a fasta file
// and optionally renders a histogram of the length distribution.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/kortschak/tinyfasta"
)

var (
	in   = flag.String("in", "", "specify input fasta file (required)")
	gz   = flag.Bool("gz", false, "decompress gzip input")
	plt  = flag.String("plot", "", "specify histogram output file (eps, jpg, jpeg, pdf, png, svg or tiff)")
	bins = flag.Int("bins", 20, "specify the number of histogram bins")
	size = flag.Float64("size", 6, "specify the plot size in inches")
)

func main() {
	flag.Parse()
	if *in == "" || *bins < 1 {
		flag.Usage()
		os.Exit(1)
	}

	open := tinyfasta.Open
	if *gz {
		open = tinyfasta.OpenAuto
	}

	var lengths plotter.Values
	sc := tinyfasta.NewParser(*in, open).Scan()
	for sc.Next() {
		r := sc.Record()
		fmt.Printf("%s\t%d\n", r.Name(), r.Len())
		lengths = append(lengths, float64(r.Len()))
	}
	if err := sc.Error(); err != nil {
		log.Fatalf("error during fasta read: %v", err)
	}

	if *plt == "" {
		return
	}
	if len(lengths) == 0 {
		log.Warnf("no sequences in %q: not writing %q", *in, *plt)
		return
	}
	err := histogram(*plt, filepath.Base(*in), lengths, *bins, vg.Length(*size)*vg.Inch)
	if err != nil {
		log.Fatalf("failed to write histogram: %v", err)
	}
}

func histogram(file, title string, lengths plotter.Values, bins int, size vg.Length) error {
	p, err := plot.New()
	if err != nil {
		return err
	}
	p.Title.Text = title
	p.X.Label.Text = "sequence length"
	p.Y.Label.Text = "count"

	h, err := plotter.NewHist(lengths, bins)
	if err != nil {
		return err
	}
	p.Add(h)

	return p.Save(size, size, file)
}
