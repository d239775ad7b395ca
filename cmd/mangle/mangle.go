// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// mangle does name mangling on a multiple fasta sequence file.
// It replaces each description line with the sha1 of the line,
// failing if there is a sha1 collision, and writes the mapping
// to a table file. With -unmangle the table is used to restore
// the original description lines.
package main

import (
	"bufio"
	"crypto/sha1"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/kortschak/tinyfasta"
)

var (
	in    = flag.String("in", "", "specify input fasta file (required)")
	table = flag.String("table", "", "specify mangling table file (required)")
	apply = flag.Bool("unmangle", false, "apply the inverse name mangling from the table file")
)

func main() {
	flag.Parse()
	if *in == "" || *table == "" {
		flag.Usage()
		os.Exit(1)
	}
	p := tinyfasta.NewParser(*in, tinyfasta.OpenAuto)

	var err error
	if *apply {
		err = unmangleFrom(p, *table, os.Stdout)
	} else {
		err = mangleTo(p, *table, os.Stdout)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func mangleTo(p *tinyfasta.Parser, table string, out io.Writer) error {
	f, err := os.Create(table)
	if err != nil {
		return fmt.Errorf("failed to create table file %q: %w", table, err)
	}
	err = mangle(p, f, out)
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func mangle(p *tinyfasta.Parser, table, out io.Writer) error {
	seen := make(map[string]bool)
	hash := sha1.New()
	for r, err := range p.All() {
		if err != nil {
			return fmt.Errorf("error during fasta read: %w", err)
		}
		desc := strings.TrimPrefix(r.Description.String(), ">")
		hash.Write([]byte(desc))
		id := fmt.Sprintf("%040x", hash.Sum(nil))
		hash.Reset()
		if seen[id] {
			return fmt.Errorf("duplicate sha1: %s", id)
		}
		seen[id] = true

		_, err = fmt.Fprintf(table, "%s\t%s\n", id, desc)
		if err != nil {
			return fmt.Errorf("failed to write table: %w", err)
		}
		r.Description.Update(id)
		_, err = fmt.Fprintf(out, "%v\n", r)
		if err != nil {
			return fmt.Errorf("failed to write sequence: %w", err)
		}
	}
	return nil
}

func unmangleFrom(p *tinyfasta.Parser, table string, out io.Writer) error {
	f, err := os.Open(table)
	if err != nil {
		return fmt.Errorf("failed to open table file %q: %w", table, err)
	}
	defer f.Close()
	return unmangle(p, f, out)
}

func unmangle(p *tinyfasta.Parser, table io.Reader, out io.Writer) error {
	names := make(map[string]string)
	sc := bufio.NewScanner(table)
	for sc.Scan() {
		line := sc.Text()
		id, desc, ok := strings.Cut(line, "\t")
		if !ok {
			return fmt.Errorf("unexpected table line %q", line)
		}
		names[id] = desc
	}
	err := sc.Err()
	if err != nil {
		return fmt.Errorf("failed to read table: %w", err)
	}

	for r, err := range p.All() {
		if err != nil {
			return fmt.Errorf("error during fasta read: %w", err)
		}
		desc, ok := names[r.Name()]
		if !ok {
			return fmt.Errorf("no description for sequence %s", r.Name())
		}
		r.Description.Update(desc)
		_, err = fmt.Fprintf(out, "%v\n", r)
		if err != nil {
			return fmt.Errorf("failed to write sequence: %w", err)
		}
	}
	return nil
}
