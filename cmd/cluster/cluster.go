// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// cluster groups the records of a fasta file whose sequences contain
// one another. Each record is reported with the index of its group.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/charmbracelet/log"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/kortschak/tinyfasta"
)

var (
	in         = flag.String("in", "", "specify input fasta file (required)")
	gz         = flag.Bool("gz", false, "decompress gzip input")
	singletons = flag.Bool("singletons", true, "report records that contain and are contained by no other")
)

func main() {
	flag.Parse()
	if *in == "" {
		flag.Usage()
		os.Exit(1)
	}

	open := tinyfasta.Open
	if *gz {
		open = tinyfasta.OpenAuto
	}
	recs, err := tinyfasta.NewParser(*in, open).ReadAll()
	if err != nil {
		log.Fatalf("error during fasta read: %v", err)
	}

	for i, c := range groups(recs) {
		if len(c) == 1 && !*singletons {
			continue
		}
		for _, n := range c {
			r := recs[n.ID()]
			fmt.Printf("%d\t%s\t%d\n", i, r.Name(), r.Len())
		}
	}
}

// groups returns the connected components of the graph of records
// joined by sequence containment. Components are ordered by their
// lowest record index and nodes within a component by index.
func groups(recs []*tinyfasta.Record) [][]graph.Node {
	g := simple.NewUndirectedGraph()
	for i := range recs {
		g.AddNode(simple.Node(i))
	}
	for i, a := range recs {
		if a.Len() == 0 {
			continue
		}
		term := tinyfasta.Literal(a.Sequence.String())
		for j, b := range recs {
			if i == j || b.Len() < a.Len() || g.HasEdgeBetween(int64(i), int64(j)) {
				continue
			}
			if b.SequenceContains(term) {
				g.SetEdge(simple.Edge{F: simple.Node(i), T: simple.Node(j)})
			}
		}
	}

	cc := topo.ConnectedComponents(g)
	for _, c := range cc {
		sort.Slice(c, func(i, j int) bool { return c[i].ID() < c[j].ID() })
	}
	sort.Slice(cc, func(i, j int) bool { return cc[i][0].ID() < cc[j][0].ID() })
	return cc
}
